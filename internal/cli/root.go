package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiscout/scoutctl/internal/model"
	"github.com/aiscout/scoutctl/internal/scout"
	"github.com/aiscout/scoutctl/internal/teamassign"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scoutctl",
		Short: "CLI tool for the aiScout platform API",
		Long: `scoutctl wraps the aiScout platform REST API: logging in users,
registering players end to end (including email-collision aliasing,
affiliation, signing and roster assignment), and submitting drill
entry videos via presigned uploads.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)

			// Reject a bad environment before any command can issue a request
			if _, err := model.ParseEnvironment(cfg.Env); err != nil {
				return err
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Env, "env", cfg.Env, "Target environment: stage, prod (env: SCOUT_ENV)")
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Override the platform API base URL (env: SCOUT_API_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.TeamURL, "team-url", cfg.TeamURL, "Override the team-assignment base URL (env: SCOUT_TEAM_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newEmailCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newDrillCmd())

	return rootCmd
}

// newAPIClient builds the platform API client from the global config
func newAPIClient(extra ...scout.Option) (*scout.Client, error) {
	opts := []scout.Option{scout.WithLogger(logger)}
	if cfg.APIURL != "" {
		opts = append(opts, scout.WithBaseURL(cfg.APIURL))
	}
	opts = append(opts, extra...)
	return scout.NewClient(cfg.Env, opts...)
}

// newTeamClient builds the team-assignment client from the global config
func newTeamClient() (*teamassign.Client, error) {
	opts := []teamassign.Option{teamassign.WithLogger(logger)}
	if cfg.TeamURL != "" {
		opts = append(opts, teamassign.WithBaseURL(cfg.TeamURL))
	}
	return teamassign.New(cfg.Env, opts...)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
