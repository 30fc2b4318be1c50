package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// NewVaultCommand creates the vault command group.
func NewVaultCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Inspect the vault of unlocked principles",
	}
	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List unlocked principles, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVaultList(rootOpts, cmd)
		},
	})
	return cmd
}

func runVaultList(opts *RootOptions, cmd *cobra.Command) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	vault, err := s.Vault(cmd.Context())
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "read vault", err)
	}

	return out.SuccessText(renderVault(vault), vault)
}

func renderVault(vault []principle.VaultItem) string {
	if len(vault) == 0 {
		return "The vault is empty. Resolve a query to unlock your first principle."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d unlocked principle(s):\n", len(vault))
	for _, item := range vault {
		fmt.Fprintf(&b, "  %s  %s\n      %s\n",
			item.UnlockedAt.Format("2006-01-02"), item.Category, item.CorePrinciple)
		if item.Query != "" {
			fmt.Fprintf(&b, "      query: %q\n", item.Query)
		}
		fmt.Fprintf(&b, "      [%s]\n", item.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}
