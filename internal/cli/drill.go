package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aiscout/scoutctl/internal/workflow"
)

func newDrillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Drill entry commands",
	}

	cmd.AddCommand(newDrillSubmitCmd())
	cmd.AddCommand(newDrillGetCmd())

	return cmd
}

func newDrillSubmitCmd() *cobra.Command {
	var email, pass, video string
	var trialID int64
	var ballSize int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Upload a local video and submit it as a drill entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			submitter := workflow.NewDrillSubmitter(client, logger)
			ctx := cmd.Context()

			if err := submitter.Login(ctx, email, pass); err != nil {
				return err
			}

			result, err := submitter.Submit(ctx, video, trialID, ballSize)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result == nil {
				out.PrintMessage("submission accepted but no entry could be fetched back")
				return nil
			}
			if result.Partial {
				out.PrintMessage("submission accepted without an entry id; raw response follows")
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Player email (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Player password (required)")
	cmd.Flags().StringVar(&video, "video", "", "Path to the video file (required)")
	cmd.Flags().Int64Var(&trialID, "trial", 0, "Trial id to submit against (required)")
	cmd.Flags().IntVar(&ballSize, "ball-size", 4, "Ball size measurement")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("video")
	_ = cmd.MarkFlagRequired("trial")

	return cmd
}

func newDrillGetCmd() *cobra.Command {
	var email, pass string
	var drillID, entryID int64
	var noFeedback bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a drill entry for the logged-in player",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			session, err := client.PlayerLogin(ctx, email, pass)
			if err != nil {
				return err
			}

			entry, err := client.GetDrillEntry(ctx, session.PlayerID, drillID, entryID, session.AccessToken, !noFeedback)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(json.RawMessage(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Player email (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Player password (required)")
	cmd.Flags().Int64Var(&drillID, "drill", 0, "Drill id (required)")
	cmd.Flags().Int64Var(&entryID, "entry", 0, "Entry id (required)")
	cmd.Flags().BoolVar(&noFeedback, "no-feedback", false, "Skip feedback in the response")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("drill")
	_ = cmd.MarkFlagRequired("entry")

	return cmd
}
