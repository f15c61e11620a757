package logging

import "go.uber.org/zap"

// New creates a new zap logger for command line tools. Verbose switches to the
// development preset.
func New(verbose bool) *zap.SugaredLogger {
	var logger *zap.Logger
	if verbose {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger.Sugar()
}
