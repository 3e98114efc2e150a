package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aiscout/scoutctl/internal/workflow"
)

// Config holds CLI configuration
type Config struct {
	Env         string
	Output      string
	Verbose     bool
	APIURL      string
	TeamURL     string
	MetricsAddr string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Env:     getEnvOrDefault("SCOUT_ENV", "stage"),
		Output:  "text",
		APIURL:  os.Getenv("SCOUT_API_URL"),
		TeamURL: os.Getenv("SCOUT_TEAM_URL"),
	}
}

// LoadRegistrationConfig reads the registration inputs from the
// environment. All values are required; a missing or malformed value is
// reported before any request is made.
func LoadRegistrationConfig() (workflow.RegistrationConfig, error) {
	var cfg workflow.RegistrationConfig
	var err error

	strs := []struct {
		dst *string
		key string
	}{
		{&cfg.AdminUsername, "SCOUT_ADMIN_USER"},
		{&cfg.AdminPassword, "SCOUT_ADMIN_PASS"},
		{&cfg.CoachUsername, "SCOUT_COACH_USER"},
		{&cfg.CoachPassword, "SCOUT_COACH_PASS"},
		{&cfg.PlayerPassword, "SCOUT_PLAYER_PASS"},
		{&cfg.PlayerFCMToken, "SCOUT_PLAYER_FCM_TOKEN"},
		{&cfg.AffiliationCode, "SCOUT_AFFILIATION_CODE"},
	}
	for _, s := range strs {
		if *s.dst, err = requireEnv(s.key); err != nil {
			return cfg, err
		}
	}

	int64s := []struct {
		dst *int64
		key string
	}{
		{&cfg.HomeCountryID, "SCOUT_HOME_COUNTRY_ID"},
		{&cfg.TermsAgreementID, "SCOUT_TERMS_AGREEMENT_ID"},
		{&cfg.ProClubID, "SCOUT_PRO_CLUB_ID"},
		{&cfg.TrainingSessionID, "SCOUT_TRAINING_SESSION_ID"},
		{&cfg.AcademyTeamID, "SCOUT_ACADEMY_TEAM_ID"},
	}
	for _, s := range int64s {
		if *s.dst, err = requireEnvInt64(s.key); err != nil {
			return cfg, err
		}
	}

	signedType, err := requireEnvInt64("SCOUT_PRO_CLUB_SIGNED_TYPE")
	if err != nil {
		return cfg, err
	}
	cfg.ProClubSignedType = int(signedType)

	availability, err := requireEnvInt64("SCOUT_TRAINING_AVAILABILITY_TYPE")
	if err != nil {
		return cfg, err
	}
	cfg.TrainingPlayerAvailabilityType = int(availability)

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return val, nil
}

func requireEnvInt64(key string) (int64, error) {
	val, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, val)
	}
	return n, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
