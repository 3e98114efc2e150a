// Package workflow sequences the multi-step flows built on top of the
// platform clients: player registration and drill submission.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aiscout/scoutctl/internal/dependencies/random"
	"github.com/aiscout/scoutctl/internal/model"
	"github.com/aiscout/scoutctl/internal/scout"
	"github.com/aiscout/scoutctl/internal/teamassign"
)

// aliasAlphabet is the character set for email alias tags.
const aliasAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const aliasTagLength = 5

// RegistrationConfig carries the environment-supplied inputs for a
// registration run. Values come from the operator's configuration, not
// from the player detail.
type RegistrationConfig struct {
	AdminUsername string
	AdminPassword string
	CoachUsername string
	CoachPassword string

	PlayerPassword string
	PlayerFCMToken string

	HomeCountryID    int64
	TermsAgreementID int64
	AffiliationCode  string

	ProClubID         int64
	ProClubSignedType int

	TrainingSessionID              int64
	TrainingPlayerAvailabilityType int

	AcademyTeamID int64
}

// TokenSet holds the elevated sessions acquired once per run and shared
// read-only across player registrations.
type TokenSet struct {
	AdminToken     string
	CoachToken     string
	CoachID        int64
	CoachProClubID int64
}

// Registrar orchestrates player registration against the platform API
// and the team-assignment service.
type Registrar struct {
	api    *scout.Client
	teams  *teamassign.Client
	random random.Random
	logger *slog.Logger
}

// NewRegistrar creates a Registrar.
func NewRegistrar(api *scout.Client, teams *teamassign.Client, rnd random.Random, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registrar{
		api:    api,
		teams:  teams,
		random: rnd,
		logger: logger,
	}
}

// CreateTokens performs the admin and coach login/switch sequence and
// returns the elevated tokens. Any failure aborts the run.
func (r *Registrar) CreateTokens(ctx context.Context, cfg RegistrationConfig) (*TokenSet, error) {
	adminLogin, err := r.api.AdminLogin(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	r.logger.Debug("admin logged in",
		slog.Int64("user_id", adminLogin.UserID),
		slog.Any("role_types", adminLogin.RoleTypes),
	)

	adminSwitch, err := r.api.AdminSwitch(ctx, adminLogin.UserID, adminLogin.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("admin switch: %w", err)
	}

	coachLogin, err := r.api.CoachLogin(ctx, cfg.CoachUsername, cfg.CoachPassword)
	if err != nil {
		return nil, fmt.Errorf("coach login: %w", err)
	}
	r.logger.Debug("coach logged in",
		slog.Int64("user_id", coachLogin.UserID),
		slog.Any("role_types", coachLogin.RoleTypes),
	)

	coachSwitch, err := r.api.CoachSwitch(ctx, coachLogin.UserID, coachLogin.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("coach switch: %w", err)
	}
	r.logger.Debug("coach switched",
		slog.Int64("coach_id", coachSwitch.CoachID),
		slog.Int64("coach_pro_club_id", coachSwitch.CoachProClubID),
	)

	return &TokenSet{
		AdminToken:     adminSwitch.AccessToken,
		CoachToken:     coachSwitch.AccessToken,
		CoachID:        coachSwitch.CoachID,
		CoachProClubID: coachSwitch.CoachProClubID,
	}, nil
}

// ProcessRegistration runs the full registration sequence for one player:
// collision check, optional email aliasing, registration, profile update,
// affiliation, signing, training roster, and team assignment. Every step
// except team assignment aborts the sequence on failure; nothing already
// completed is rolled back. Team assignment is best-effort: a failure is
// logged and the run still succeeds.
func (r *Registrar) ProcessRegistration(ctx context.Context, tokens *TokenSet, detail model.PlayerDetail, cfg RegistrationConfig) (*model.RegistrationResult, error) {
	runID := uuid.NewString()
	logger := r.logger.With(slog.String("run_id", runID))

	exists, err := r.api.CheckEmailExists(ctx, detail.Email)
	if err != nil {
		return nil, fmt.Errorf("email exists check: %w", err)
	}

	// registerEmail is deliberately a local; detail is never mutated
	registerEmail := detail.Email
	previousEmail := ""
	if exists {
		previousEmail = detail.Email
		registerEmail, err = r.aliasEmail(detail.Email)
		if err != nil {
			return nil, fmt.Errorf("email alias: %w", err)
		}
		logger.Info("email already registered, using alias",
			slog.String("requested_email", previousEmail),
			slog.String("register_email", registerEmail),
		)
	}

	record, err := r.api.RegisterPlayer(ctx, scout.RegisterPlayerParams{
		Email:            registerEmail,
		Password:         cfg.PlayerPassword,
		FCMToken:         cfg.PlayerFCMToken,
		Detail:           detail,
		HomeCountryID:    cfg.HomeCountryID,
		TermsAgreementID: cfg.TermsAgreementID,
	})
	if err != nil {
		return nil, fmt.Errorf("register player: %w", err)
	}
	if record.PlayerID == 0 {
		return nil, fmt.Errorf("register player: %w", model.ErrMissingPlayerID)
	}
	logger.Info("player registered",
		slog.Int64("player_id", record.PlayerID),
		slog.Int64("user_id", record.UserID),
		slog.String("first_name", record.FirstName),
		slog.String("last_name", record.LastName),
	)

	if err := r.api.UpdatePlayerDetails(ctx, record.PlayerID, record.AccessToken, detail.Height, detail.Weight); err != nil {
		return nil, fmt.Errorf("update player details: %w", err)
	}

	if err := r.api.AddAffiliationCode(ctx, record.PlayerID, record.AccessToken, cfg.AffiliationCode); err != nil {
		return nil, fmt.Errorf("add affiliation code: %w", err)
	}

	// Signing requires the admin session, not the player's
	if err := r.api.SignPlayer(ctx, record.PlayerID, tokens.AdminToken, cfg.ProClubID, cfg.ProClubSignedType); err != nil {
		return nil, fmt.Errorf("sign player: %w", err)
	}

	// The roster addition requires the coach session
	if err := r.api.AddToAcademyAnalysis(ctx, cfg.TrainingSessionID, tokens.CoachToken, record.PlayerID, cfg.TrainingPlayerAvailabilityType); err != nil {
		return nil, fmt.Errorf("add to academy analysis: %w", err)
	}

	// Team assignment is the one best-effort step: failure is logged and
	// swallowed rather than aborting a registration that has otherwise
	// completed
	if _, err := r.teams.AddAcademyTeamToPlayer(ctx, cfg.AcademyTeamID, record.PlayerID); err != nil {
		logger.Warn("academy team assignment failed",
			slog.Int64("academy_team_id", cfg.AcademyTeamID),
			slog.Int64("player_id", record.PlayerID),
			slog.String("error", err.Error()),
		)
	}

	result := &model.RegistrationResult{
		PreviousEmail: previousEmail,
		Email:         registerEmail,
		PlayerID:      record.PlayerID,
	}
	logger.Info("registration complete", slog.String("result", result.String()))
	return result, nil
}

// aliasEmail inserts a random tag after the local part, preserving the
// domain: user@host becomes user+ab12c@host.
func (r *Registrar) aliasEmail(email string) (string, error) {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidEmail, email)
	}
	tag := r.random.String(aliasTagLength, aliasAlphabet)
	return local + "+" + tag + "@" + domain, nil
}
