package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aiscout/scoutctl/internal/dependencies/random"
	"github.com/aiscout/scoutctl/internal/metrics"
	"github.com/aiscout/scoutctl/internal/model"
	"github.com/aiscout/scoutctl/internal/scout"
	"github.com/aiscout/scoutctl/internal/workflow"
)

func newRegisterCmd() *cobra.Command {
	var playersFile string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register players end to end",
		Long: `register runs the full registration sequence for each player in the
given file: email collision check (with alias generation), registration,
profile update, affiliation, pro-club signing, training roster and
academy team assignment. Credentials and platform identifiers are read
from SCOUT_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := loadPlayerDetails(playersFile)
			if err != nil {
				return err
			}

			regCfg, err := LoadRegistrationConfig()
			if err != nil {
				return err
			}

			var apiOpts []scout.Option
			if cfg.MetricsAddr != "" {
				reg := prometheus.NewRegistry()
				apiOpts = append(apiOpts, scout.WithMetrics(metrics.NewCollector(reg)))
				go serveMetrics(cfg.MetricsAddr, reg)
			}

			api, err := newAPIClient(apiOpts...)
			if err != nil {
				return err
			}
			teams, err := newTeamClient()
			if err != nil {
				return err
			}

			registrar := workflow.NewRegistrar(api, teams, random.New(), logger)

			ctx := cmd.Context()
			tokens, err := registrar.CreateTokens(ctx, regCfg)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			failed := 0
			for _, detail := range details {
				result, err := registrar.ProcessRegistration(ctx, tokens, detail, regCfg)
				if err != nil {
					failed++
					out.PrintError(fmt.Errorf("register %s: %w", detail.Email, err))
					continue
				}
				out.Print(result)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d registrations failed", failed, len(details))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playersFile, "players", "", "JSON file with an array of player details (required)")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address for the duration of the run")
	_ = cmd.MarkFlagRequired("players")

	return cmd
}

// loadPlayerDetails reads a JSON file holding either a single player
// detail object or an array of them.
func loadPlayerDetails(path string) ([]model.PlayerDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read players file: %w", err)
	}

	var details []model.PlayerDetail
	if err := json.Unmarshal(data, &details); err == nil {
		return details, nil
	}

	var single model.PlayerDetail
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parse players file %s: %w", path, err)
	}
	return []model.PlayerDetail{single}, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics listener stopped", "error", err.Error())
	}
}
