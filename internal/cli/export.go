package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all state as a portable JSON key",
		Long: `Export all state as a single portable JSON document. The default
filename is derived from the profile name and today's date.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, cmd, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default derived from profile)")
	return cmd
}

func runExport(opts *RootOptions, cmd *cobra.Command, outPath string) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	now := time.Now()
	snap, err := s.ExportSnapshot(cmd.Context(), now)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "export state", err)
	}

	if outPath == "" {
		name := ""
		if profile, exists, err := s.Profile(cmd.Context()); err == nil && exists {
			name = profile.Name
		}
		outPath = store.ExportFilename(name, now)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		out.Error("EXPORT_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "encode snapshot", err)
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		out.Error("EXPORT_FAILED", err.Error(), nil)
		return WrapExitError(ExitCommandError, "write snapshot", err)
	}

	return out.SuccessText(fmt.Sprintf("State exported to %s", outPath), map[string]string{
		"file": outPath,
	})
}
