package model

import (
	"fmt"
	"strings"
)

// Environment selects which deployment of the platform to talk to.
type Environment string

const (
	EnvStage Environment = "stage"
	EnvProd  Environment = "prod"
)

// ParseEnvironment validates an environment selector. Every client
// constructor goes through this before any network call is made.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvStage:
		return EnvStage, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, s)
	}
}

// PlayerDetail holds the fields supplied for a player registration.
// It is passed by value through the workflow; the email actually used
// for registration is tracked separately so a collision rewrite never
// mutates caller-owned data.
type PlayerDetail struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	DOB           string  `json:"dob"`
	GuardianName  string  `json:"guardianName"`
	GuardianEmail string  `json:"guardianEmail"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
}

// Session is an authenticated identity returned by a login or switch call.
type Session struct {
	UserID      int64  `json:"userId"`
	AccessToken string `json:"accessToken"`
	RoleTypes   []int  `json:"roleTypes,omitempty"`
}

// CoachSession is the session produced by a coach switch. It carries the
// coach and pro-club identifiers in addition to the re-issued token.
type CoachSession struct {
	Session
	CoachID        int64 `json:"coachId"`
	CoachProClubID int64 `json:"coachProClubId"`
}

// PlayerSession is the session produced by the player app login.
type PlayerSession struct {
	UserID      int64  `json:"userId"`
	PlayerID    int64  `json:"playerId"`
	AccessToken string `json:"accessToken"`
}

// PlayerRecord is produced by registration. PlayerID is the join key for
// every subsequent step.
type PlayerRecord struct {
	PlayerID    int64  `json:"playerId"`
	UserID      int64  `json:"userId"`
	AccessToken string `json:"accessToken"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// PresignedUpload is a time-limited URL permitting one direct file upload.
type PresignedUpload struct {
	PreSignedURL string `json:"preSignedUrl"`
	S3ObjectKey  string `json:"s3ObjectKey"`
}

// RegistrationResult is the outcome of one registration run.
// PreviousEmail is empty unless the requested email collided and the
// player was registered under a generated alias.
type RegistrationResult struct {
	PreviousEmail string `json:"previousEmail,omitempty"`
	Email         string `json:"email"`
	PlayerID      int64  `json:"playerId"`
}

// Aliased reports whether the player was registered under an alias.
func (r *RegistrationResult) Aliased() bool {
	return r.PreviousEmail != "" && r.PreviousEmail != r.Email
}

// String renders a one-line summary for log output.
func (r *RegistrationResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "player %d registered as %s", r.PlayerID, r.Email)
	if r.Aliased() {
		fmt.Fprintf(&b, " (requested %s)", r.PreviousEmail)
	}
	return b.String()
}
