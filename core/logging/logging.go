package logging

import "go.uber.org/zap"

// Logger is the SDK-wide logger. Clients fall back to it when no logger is
// passed through their options.
var Logger = newLogger()

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger replaces the SDK-wide logger. A nil logger silences output.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Logger = logger
}
