package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var role, user, pass string
	var doSwitch bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin, coach or player and print the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			ctx := cmd.Context()

			switch role {
			case "admin":
				session, err := client.AdminLogin(ctx, user, pass)
				if err != nil {
					return err
				}
				if doSwitch {
					session, err = client.AdminSwitch(ctx, session.UserID, session.AccessToken)
					if err != nil {
						return err
					}
				}
				out.Print(session)

			case "coach":
				session, err := client.CoachLogin(ctx, user, pass)
				if err != nil {
					return err
				}
				if doSwitch {
					switched, err := client.CoachSwitch(ctx, session.UserID, session.AccessToken)
					if err != nil {
						return err
					}
					out.Print(switched)
					return nil
				}
				out.Print(session)

			case "player":
				session, err := client.PlayerLogin(ctx, user, pass)
				if err != nil {
					return err
				}
				out.Print(session)

			default:
				return fmt.Errorf("--role must be admin, coach or player, got %q", role)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role to log in as: admin, coach, player (required)")
	cmd.Flags().StringVar(&user, "user", "", "Username/email (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().BoolVar(&doSwitch, "switch", false, "Also perform the role switch and print the elevated session")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
