package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/config"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/engine"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/gemini"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/logging"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/principle"
	"github.com/AlvinCuffy/The-Principle-Enginev2/internal/store"
)

// Resolver is the slice of the engine the commands consume.
type Resolver interface {
	Resolve(ctx context.Context, query string) (principle.Record, error)
	SynthesizeBlueprint(ctx context.Context, burden, hand, history string) (principle.Blueprint, error)
}

// formatter builds the output formatter for a command invocation.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// loadConfig resolves the config file location and loads it.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// openStore opens the state database, creating parent directories for
// the default location. The returned closer is a no-op when a test
// store was injected.
func openStore(opts *RootOptions) (*store.Store, func(), error) {
	if opts.store != nil {
		return opts.store, func() {}, nil
	}

	path := opts.Database
	if path == "" {
		cfg, err := loadConfig(opts)
		if err != nil {
			return nil, nil, err
		}
		path = cfg.Database
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, WrapExitError(ExitCommandError, "create state directory", err)
			}
		}
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "open state database", err)
	}
	return s, func() { s.Close() }, nil
}

// buildEngine wires the Gemini client into a fresh engine, or returns
// the injected test resolver.
func buildEngine(opts *RootOptions, log *zap.Logger) (Resolver, error) {
	if opts.engine != nil {
		return opts.engine, nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	client := gemini.NewClient(gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, log)
	return engine.New(client, engine.WithLogger(log)), nil
}

// newLogger builds the process logger. Output goes to stderr so it
// never mixes with command output.
func newLogger(opts *RootOptions) *zap.Logger {
	log, err := logging.New(opts.Verbose)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
