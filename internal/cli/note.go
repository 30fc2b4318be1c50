package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewNoteCommand creates the note command group.
func NewNoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Keep free-text notes against a record",
	}
	cmd.AddCommand(&cobra.Command{
		Use:           "set <record-id> <text...>",
		Short:         "Write the note for a record, replacing any previous note",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoteSet(rootOpts, cmd, args[0], strings.Join(args[1:], " "))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "show <record-id>",
		Short:         "Show the note for a record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoteShow(rootOpts, cmd, args[0])
		},
	})
	return cmd
}

func runNoteSet(opts *RootOptions, cmd *cobra.Command, recordID, text string) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	if err := s.SetNote(cmd.Context(), recordID, text); err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "write note", err)
	}

	return out.SuccessText("Note saved for "+recordID, map[string]string{
		"recordId": recordID,
		"note":     text,
	})
}

func runNoteShow(opts *RootOptions, cmd *cobra.Command, recordID string) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	text, exists, err := s.Note(cmd.Context(), recordID)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "read note", err)
	}
	if !exists {
		msg := "no note for " + recordID
		out.Error("NO_NOTE", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	return out.SuccessText(text, map[string]string{
		"recordId": recordID,
		"note":     text,
	})
}
