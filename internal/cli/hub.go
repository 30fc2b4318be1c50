package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewHubCommand creates the hub command group.
func NewHubCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Sovereign's Hub membership",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "join <email>",
		Short: "Record a hub signup",
		Long: `Record a hub signup. The signup is stored locally only; nothing
is transmitted anywhere.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubJoin(rootOpts, cmd, args[0])
		},
	})
	return cmd
}

func runHubJoin(opts *RootOptions, cmd *cobra.Command, email string) error {
	out := formatter(opts, cmd)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		msg := "that does not look like an email address"
		out.Error("INVALID_EMAIL", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	if err := s.SaveHubSignup(cmd.Context(), email, time.Now()); err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "save signup", err)
	}

	return out.SuccessText("Welcome to the Sovereign's Hub.", map[string]string{
		"email": email,
	})
}
