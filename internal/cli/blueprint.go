package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// BlueprintOptions holds flags for the blueprint command.
type BlueprintOptions struct {
	*RootOptions
	Burden  string
	Hand    string
	History string
}

// NewBlueprintCommand creates the blueprint command.
func NewBlueprintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BlueprintOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Synthesize a purpose blueprint from three reflections",
		Long: `Synthesize a purpose blueprint from three personal reflections:
the burden you carry, what is in your hand, and your history.

All three inputs are required and the result is never stored.

Example:
  tpe blueprint --burden "..." --hand "..." --history "..."`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlueprint(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Burden, "burden", "", "the burden or problem that moves you")
	cmd.Flags().StringVar(&opts.Hand, "hand", "", "skills and resources already in your hand")
	cmd.Flags().StringVar(&opts.History, "history", "", "your formative history")
	cmd.MarkFlagRequired("burden")
	cmd.MarkFlagRequired("hand")
	cmd.MarkFlagRequired("history")

	return cmd
}

func runBlueprint(opts *BlueprintOptions, cmd *cobra.Command) error {
	out := formatter(opts.RootOptions, cmd)
	log := newLogger(opts.RootOptions)
	defer log.Sync()

	eng, err := buildEngine(opts.RootOptions, log)
	if err != nil {
		out.Error("CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load configuration", err)
	}

	bp, err := eng.SynthesizeBlueprint(cmd.Context(), opts.Burden, opts.Hand, opts.History)
	if err != nil {
		// Synthesis failures are always visible; there is no fallback.
		out.Error(string(engine.ErrCodeEngineFailure), err.Error(), nil)
		return WrapExitError(ExitRetryable, "synthesize blueprint", err)
	}

	return out.SuccessText(renderBlueprint(bp), bp)
}

func renderBlueprint(bp principle.Blueprint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Purpose Statement:\n  %s\n", bp.PurposeStatement)
	fmt.Fprintf(&b, "\nExecution Steps:\n")
	for i, step := range bp.ExecutionSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	return strings.TrimRight(b.String(), "\n")
}
