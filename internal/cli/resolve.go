package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
)

// retryableMessage is shown for any resolution failure the user can
// retry: no principle matched, or the upstream service misbehaved.
const retryableMessage = "The engine could not retrieve a specific principle for that query. Please try again."

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a free-text query into a principle",
		Long: `Resolve a free-text query into a principle record.

Known topics answer from the built-in table; anything else is sent to
the generative service. Every resolved principle is added to the vault.

Example:
  tpe resolve "anxiety"
  tpe resolve how do I grow my business`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, cmd, strings.Join(args, " "))
		},
	}
	return cmd
}

func runResolve(opts *RootOptions, cmd *cobra.Command, query string) error {
	out := formatter(opts, cmd)
	log := newLogger(opts)
	defer log.Sync()

	eng, err := buildEngine(opts, log)
	if err != nil {
		out.Error("CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load configuration", err)
	}

	record, err := eng.Resolve(cmd.Context(), query)
	if err != nil {
		if engine.IsNoMatch(err) || engine.IsUpstreamFailure(err) {
			out.Error(resolveErrorCode(err), retryableMessage, nil)
			return WrapExitError(ExitRetryable, retryableMessage, err)
		}
		out.Error(string(engine.ErrCodeEngineFailure), err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolve query", err)
	}

	s, closeStore, err := openStore(opts)
	if err != nil {
		// Persistence is best-effort; the resolved record still renders.
		log.Warn("vault unavailable", zap.Error(err))
	} else {
		defer closeStore()
		item := principle.VaultEntry(record, query, time.Now().UTC())
		if _, err := s.AppendVault(cmd.Context(), item); err != nil {
			log.Warn("vault append failed", zap.Error(err))
		}
	}

	return out.SuccessText(renderRecord(record), record)
}

func resolveErrorCode(err error) string {
	if engine.IsNoMatch(err) {
		return string(engine.ErrCodeNoMatch)
	}
	return string(engine.ErrCodeUpstreamFailure)
}

// renderRecord formats a record for human reading.
func renderRecord(r principle.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Category)
	fmt.Fprintf(&b, "\n%s\n", r.CorePrinciple)
	fmt.Fprintf(&b, "    -- %s\n", r.SourceReference)
	fmt.Fprintf(&b, "\nAction Plan:\n")
	for i, step := range r.ActionPlan {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	if len(r.RelatedQuestions) > 0 {
		fmt.Fprintf(&b, "\nRelated Questions:\n")
		for _, q := range r.RelatedQuestions {
			fmt.Fprintf(&b, "  Q: %s\n  A: %s\n", q.Question, q.Answer)
		}
	}
	if len(r.AdditionalScriptures) > 0 {
		fmt.Fprintf(&b, "\nAdditional Scriptures:\n")
		for _, sc := range r.AdditionalScriptures {
			fmt.Fprintf(&b, "  %s: %s\n", sc.Verse, sc.Text)
		}
	}
	fmt.Fprintf(&b, "\n[%s]", r.ID)
	return b.String()
}
