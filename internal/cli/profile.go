package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local identity profile",
	}
	cmd.AddCommand(newProfileCommissionCommand(rootOpts))
	cmd.AddCommand(newProfileShowCommand(rootOpts))
	return cmd
}

func newProfileCommissionCommand(rootOpts *RootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "commission <name>",
		Short: "Create the profile, once",
		Long: `Create the local profile. The profile is a singleton: once
commissioned it cannot be changed or replaced.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileCommission(rootOpts, cmd, args[0], title)
		},
	}
	cmd.Flags().StringVar(&title, "title", "Sovereign Architect", "profile title")
	return cmd
}

func newProfileShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the commissioned profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow(rootOpts, cmd)
		},
	}
}

func runProfileCommission(opts *RootOptions, cmd *cobra.Command, name, title string) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	profile, err := s.Commission(cmd.Context(), name, title, time.Now())
	if err != nil {
		if store.IsProfileExists(err) {
			msg := "a profile is already commissioned"
			out.Error(string(store.ErrCodeProfileExists), msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "commission profile", err)
	}

	text := fmt.Sprintf("Commissioned: %s, %s", profile.Name, profile.Title)
	return out.SuccessText(text, profile)
}

func runProfileShow(opts *RootOptions, cmd *cobra.Command) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	profile, exists, err := s.Profile(cmd.Context())
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "read profile", err)
	}
	if !exists {
		msg := "no profile commissioned yet"
		out.Error("NO_PROFILE", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	text := fmt.Sprintf("%s, %s\nCommissioned %s",
		profile.Name, profile.Title, profile.JoinedAt.Format("2006-01-02"))
	return out.SuccessText(text, profile)
}
