package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON stdout logger. An unknown level falls back to
// info and is reported on the returned logger.
func SetupLogging(level string) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logger.WithError(err).WithField("level", level).Warn("Logging.SetupLogging.unknownLevel")
		} else {
			logger.Level = parsed
		}
	}

	return &logger
}
