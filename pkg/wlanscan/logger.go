package wlanscan

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFilename = "wlanscan-latest-run.log"

// NewLogger provides a logger instance for the whole program.
// Verbose runs log everything to stderr; otherwise only warnings and up
// are kept, in a file, so they don't interleave with the console report
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	var loggerConfig zap.Config

	if verbose {
		loggerConfig = zap.NewDevelopmentConfig()
		loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		loggerConfig.OutputPaths = []string{"stderr"}
	} else {
		loggerConfig = zap.NewProductionConfig()
		loggerConfig.Encoding = "console"
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		loggerConfig.OutputPaths = []string{LogFilePath()}
	}

	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.DisableCaller = true

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("create zap logger: %w", err)
	}

	return logger.Sugar(), nil
}

// LogFilePath is where non-verbose runs keep their log
func LogFilePath() string {
	return filepath.Join(os.TempDir(), logFilename)
}
