package scout

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aiscout/scoutctl/internal/model"
)

// AdminLogin authenticates an admin user with the v3 login endpoint.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*model.Session, error) {
	body := map[string]string{"email": username, "password": password}
	var session model.Session
	if err := c.do(ctx, "admin_login", http.MethodPost, "/api/v3/users/login", "", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// AdminSwitch exchanges an admin login session for an elevated admin session.
func (c *Client) AdminSwitch(ctx context.Context, userID int64, token string) (*model.Session, error) {
	path := fmt.Sprintf("/api/v3/users/%d/switch/admins", userID)
	var session model.Session
	// The switch endpoint requires a JSON body even though it is empty
	if err := c.do(ctx, "admin_switch", http.MethodPost, path, token, nil, map[string]string{}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CoachLogin authenticates a coach. Admins and coaches share the login
// endpoint; the role context comes from the subsequent switch.
func (c *Client) CoachLogin(ctx context.Context, username, password string) (*model.Session, error) {
	body := map[string]string{"email": username, "password": password}
	var session model.Session
	if err := c.do(ctx, "coach_login", http.MethodPost, "/api/v3/users/login", "", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CoachSwitch exchanges a coach login session for an elevated coach
// session carrying the coach and pro-club identifiers.
func (c *Client) CoachSwitch(ctx context.Context, userID int64, token string) (*model.CoachSession, error) {
	path := fmt.Sprintf("/api/v3/users/%d/switch/coaches", userID)
	body := map[string]string{"fcmToken": coachSwitchFCMToken}
	var session model.CoachSession
	if err := c.do(ctx, "coach_switch", http.MethodPost, path, token, nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CheckEmailExists reports whether an email is already registered.
func (c *Client) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	body := map[string]string{"email": email}
	var result struct {
		IsExisting bool `json:"isExisting"`
	}
	if err := c.do(ctx, "check_email_exists", http.MethodPost, "/api/v3/users/email/exists", "", nil, body, &result); err != nil {
		return false, err
	}
	return result.IsExisting, nil
}

// RegisterPlayerParams carries the inputs for a player registration.
// Email is the address actually registered, which may differ from
// Detail.Email when the workflow has generated an alias.
type RegisterPlayerParams struct {
	Email            string
	Password         string
	FCMToken         string
	Detail           model.PlayerDetail
	HomeCountryID    int64
	TermsAgreementID int64
}

type userSetting struct {
	Key       string `json:"key"`
	IsEnabled bool   `json:"isEnabled"`
}

// RegisterPlayer registers a new player and returns the created record.
func (c *Client) RegisterPlayer(ctx context.Context, params RegisterPlayerParams) (*model.PlayerRecord, error) {
	payload := struct {
		FirstName        string        `json:"firstName"`
		LastName         string        `json:"lastName"`
		DateOfBirth      string        `json:"dateOfBirth"`
		GuardianName     string        `json:"guardianName"`
		GuardianEmail    string        `json:"guardianEmail"`
		Email            string        `json:"email"`
		Password         string        `json:"password"`
		FCMToken         string        `json:"fcmToken"`
		Gender           string        `json:"gender"`
		HomeCountryID    int64         `json:"homeCountryId"`
		UserSettings     []userSetting `json:"userSettings"`
		TermsAgreementID int64         `json:"termsAgreementId"`
	}{
		FirstName:     params.Detail.FirstName,
		LastName:      params.Detail.LastName,
		DateOfBirth:   params.Detail.DOB,
		GuardianName:  params.Detail.GuardianName,
		GuardianEmail: params.Detail.GuardianEmail,
		Email:         params.Email,
		Password:      params.Password,
		FCMToken:      params.FCMToken,
		Gender:        params.Detail.Gender,
		HomeCountryID: params.HomeCountryID,
		UserSettings: []userSetting{
			{Key: "isNotificationOn", IsEnabled: true},
			{Key: "isReceiveMarketingOn", IsEnabled: true},
		},
		TermsAgreementID: params.TermsAgreementID,
	}

	var record model.PlayerRecord
	if err := c.do(ctx, "register_player", http.MethodPost, "/api/v3/players/register", "", nil, payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePlayerDetails sets a player's height and weight.
func (c *Client) UpdatePlayerDetails(ctx context.Context, playerID int64, token string, height, weight float64) error {
	path := fmt.Sprintf("/api/v2/players/%d/profile/footballdetails", playerID)
	body := map[string]float64{"height": height, "weight": weight}
	return c.do(ctx, "update_player_details", http.MethodPatch, path, token, nil, body, nil)
}

// AddAffiliationCode links a player to a federation affiliation code.
func (c *Client) AddAffiliationCode(ctx context.Context, playerID int64, token, affiliationCode string) error {
	path := fmt.Sprintf("/api/v2/players/%d/affiliations", playerID)
	body := map[string]string{
		"affiliationCode": affiliationCode,
		"uniqueEntryCode": uniqueEntryCode,
	}
	return c.do(ctx, "add_affiliation_code", http.MethodPost, path, token, nil, body, nil)
}

// SignPlayer signs a player to a pro club. Requires an admin token.
func (c *Client) SignPlayer(ctx context.Context, playerID int64, token string, proClubID int64, signedType int) error {
	path := fmt.Sprintf("/api/v2/players/%d/signedproclub", playerID)
	body := struct {
		ProClubSignedType int    `json:"proClubSignedType"`
		SignedProClubID   int64  `json:"signedProClubId"`
		ProClubSignedDate string `json:"proClubSignedDate"`
	}{
		ProClubSignedType: signedType,
		SignedProClubID:   proClubID,
		ProClubSignedDate: proClubSignedDate,
	}
	return c.do(ctx, "sign_player", http.MethodPut, path, token, nil, body, nil)
}

// AddToAcademyAnalysis adds one player to a training-session roster.
// Requires a coach token. The endpoint is a batch endpoint; we always
// send exactly one player.
func (c *Client) AddToAcademyAnalysis(ctx context.Context, trainingSessionID int64, token string, playerID int64, availabilityType int) error {
	path := fmt.Sprintf("/api/v2/trainingsessions/%d/trainingplayers/batch", trainingSessionID)
	type trainingPlayer struct {
		PlayerID         int64 `json:"playerId"`
		AvailabilityType int   `json:"availabilityType"`
	}
	body := struct {
		PreventMarkingMissingPlayersAsAway bool             `json:"preventMarkingMissingPlayersAsAway"`
		Players                            []trainingPlayer `json:"players"`
	}{
		PreventMarkingMissingPlayersAsAway: true,
		Players: []trainingPlayer{
			{PlayerID: playerID, AvailabilityType: availabilityType},
		},
	}
	return c.do(ctx, "add_to_academy_analysis", http.MethodPut, path, token, nil, body, nil)
}
