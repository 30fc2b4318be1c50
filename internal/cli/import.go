package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported JSON key",
		Long: `Import a previously exported JSON document. Only the fields present
in the document are overwritten; a document carrying neither profile
nor stats is rejected without touching anything.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runImport(opts *RootOptions, cmd *cobra.Command, path string) error {
	out := formatter(opts, cmd)

	raw, err := os.ReadFile(path)
	if err != nil {
		out.Error("IMPORT_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "read snapshot file", err)
	}

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	if err := s.ImportSnapshot(cmd.Context(), raw); err != nil {
		if store.IsInvalidFormat(err) {
			msg := "this file is not a valid exported key"
			out.Error(string(store.ErrCodeInvalidFormat), msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "import state", err)
	}

	// Reload everything derived so the summary reflects imported state.
	stats, err := s.LoadStats(cmd.Context())
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "reload stats", err)
	}

	text := fmt.Sprintf("State imported. Actions: %d, unlocked: %d, mastered: %d.",
		stats.Actions, stats.Unlocked, stats.Mastery)
	return out.SuccessText(text, stats)
}
