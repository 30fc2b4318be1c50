// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New constructs a logger. Verbose mode uses the development config at
// debug level; otherwise a production config at warn level keeps the
// CLI's stderr quiet.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
