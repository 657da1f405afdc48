package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// InitLogger builds the shared JSON logger. The level comes from the
// LOG_LEVEL environment variable and defaults to info.
func InitLogger() {
	logger = logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetOutput(os.Stdout)
}

// GetLogger returns the shared logger, initializing it on first use.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}
