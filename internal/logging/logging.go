package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level string) *logrus.Logger {
	return NewLogger(os.Stdout, level)
}

// NewLogger builds the JSON logger used across budgetwise. Unknown levels fall back to info.
func NewLogger(out io.Writer, level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Hooks:    make(logrus.LevelHooks),
		Level:    logLevel,
		ExitFunc: os.Exit,
	}

	return &logger
}
