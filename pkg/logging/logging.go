// Package logging holds the process logger. Call Setup once from main;
// everything else uses GetLogger.
package logging

import (
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Setup configures the shared logger. Production logs JSON at info level,
// development logs human-readable text at debug.
func Setup(environment string) {
	if environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
		return
	}
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
}

func GetLogger() *logrus.Logger {
	return logger
}
