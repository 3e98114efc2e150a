package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRegistrationEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SCOUT_ADMIN_USER", "admin@club.com")
	t.Setenv("SCOUT_ADMIN_PASS", "admin-pass")
	t.Setenv("SCOUT_COACH_USER", "coach@club.com")
	t.Setenv("SCOUT_COACH_PASS", "coach-pass")
	t.Setenv("SCOUT_PLAYER_PASS", "player-pass")
	t.Setenv("SCOUT_PLAYER_FCM_TOKEN", "fcm")
	t.Setenv("SCOUT_AFFILIATION_CODE", "AFF123")
	t.Setenv("SCOUT_HOME_COUNTRY_ID", "44")
	t.Setenv("SCOUT_TERMS_AGREEMENT_ID", "3")
	t.Setenv("SCOUT_PRO_CLUB_ID", "99")
	t.Setenv("SCOUT_TRAINING_SESSION_ID", "77")
	t.Setenv("SCOUT_ACADEMY_TEAM_ID", "12")
	t.Setenv("SCOUT_PRO_CLUB_SIGNED_TYPE", "1")
	t.Setenv("SCOUT_TRAINING_AVAILABILITY_TYPE", "2")
}

func TestLoadRegistrationConfig(t *testing.T) {
	setRegistrationEnv(t)

	cfg, err := LoadRegistrationConfig()
	require.NoError(t, err)

	assert.Equal(t, "admin@club.com", cfg.AdminUsername)
	assert.Equal(t, "coach-pass", cfg.CoachPassword)
	assert.Equal(t, int64(44), cfg.HomeCountryID)
	assert.Equal(t, int64(77), cfg.TrainingSessionID)
	assert.Equal(t, 1, cfg.ProClubSignedType)
	assert.Equal(t, 2, cfg.TrainingPlayerAvailabilityType)
}

func TestLoadRegistrationConfigMissingValue(t *testing.T) {
	setRegistrationEnv(t)
	t.Setenv("SCOUT_PRO_CLUB_ID", "")

	_, err := LoadRegistrationConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCOUT_PRO_CLUB_ID")
}

func TestLoadRegistrationConfigMalformedInteger(t *testing.T) {
	setRegistrationEnv(t)
	t.Setenv("SCOUT_HOME_COUNTRY_ID", "forty-four")

	_, err := LoadRegistrationConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCOUT_HOME_COUNTRY_ID")
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("SCOUT_ENV", "")
	cfg := DefaultConfig()
	assert.Equal(t, "stage", cfg.Env)
	assert.Equal(t, "text", cfg.Output)

	t.Setenv("SCOUT_ENV", "prod")
	cfg = DefaultConfig()
	assert.Equal(t, "prod", cfg.Env)
}
