package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// NewProgressCommand creates the progress command group.
func NewProgressCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track action plan progress per record",
	}
	cmd.AddCommand(newProgressToggleCommand(rootOpts))
	cmd.AddCommand(newProgressShowCommand(rootOpts))
	return cmd
}

func newProgressToggleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <record-id> <step>",
		Short: "Toggle one action plan step done or not done",
		Long: `Toggle one action plan step done or not done.

Steps are numbered 1 through 7. Toggling adjusts the actions counter,
and completing all seven steps counts toward mastery.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgressToggle(rootOpts, cmd, args[0], args[1])
		},
	}
}

func newProgressShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <record-id>",
		Short:         "Show which action plan steps are done",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgressShow(rootOpts, cmd, args[0])
		},
	}
}

func runProgressToggle(opts *RootOptions, cmd *cobra.Command, recordID, stepArg string) error {
	out := formatter(opts, cmd)

	step, err := strconv.Atoi(stepArg)
	if err != nil || step < 1 || step > principle.ActionPlanSteps {
		msg := fmt.Sprintf("step must be a number between 1 and %d", principle.ActionPlanSteps)
		out.Error("INVALID_STEP", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	// Steps are stored zero-based.
	steps, done, err := s.ToggleProgress(cmd.Context(), recordID, step-1)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "toggle progress", err)
	}

	state := "cleared"
	if done {
		state = "done"
	}
	text := fmt.Sprintf("Step %d of %s marked %s.\n%s", step, recordID, state, renderSteps(steps))
	return out.SuccessText(text, map[string]any{
		"recordId": recordID,
		"step":     step,
		"done":     done,
		"steps":    displaySteps(steps),
	})
}

func runProgressShow(opts *RootOptions, cmd *cobra.Command, recordID string) error {
	out := formatter(opts, cmd)

	s, closeStore, err := openStore(opts)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return err
	}
	defer closeStore()

	steps, err := s.Progress(cmd.Context(), recordID)
	if err != nil {
		out.Error("STORAGE_UNAVAILABLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "read progress", err)
	}

	return out.SuccessText(renderSteps(steps), map[string]any{
		"recordId": recordID,
		"steps":    displaySteps(steps),
	})
}

// displaySteps converts zero-based stored indices to the one-based
// numbering users see.
func displaySteps(steps []int) []int {
	display := make([]int, len(steps))
	for i, s := range steps {
		display[i] = s + 1
	}
	return display
}

func renderSteps(steps []int) string {
	if len(steps) == 0 {
		return "No steps completed."
	}
	parts := make([]string, len(steps))
	for i, s := range displaySteps(steps) {
		parts[i] = strconv.Itoa(s)
	}
	label := fmt.Sprintf("Completed steps: %s (%d/%d)",
		strings.Join(parts, ", "), len(steps), principle.ActionPlanSteps)
	if len(steps) == principle.ActionPlanSteps {
		label += " - plan mastered"
	}
	return label
}
