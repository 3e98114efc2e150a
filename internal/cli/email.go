package cli

import (
	"github.com/spf13/cobra"
)

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Email address commands",
	}

	cmd.AddCommand(newEmailExistsCmd())

	return cmd
}

func newEmailExistsCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "exists",
		Short: "Check whether an email is already registered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			exists, err := client.CheckEmailExists(cmd.Context(), email)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(map[string]any{"email": email, "isExisting": exists})
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to check (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
