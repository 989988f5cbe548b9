// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var initOnce sync.Once

// Init sets the level and formatter of the standard logrus logger. Only the
// first call has any effect; later calls are ignored so warm Lambda
// containers keep the settings from cold start.
func Init(level string, jsonFormat bool) {
	initOnce.Do(func() {
		configure(logrus.StandardLogger(), level, jsonFormat)
	})
}

func configure(logger *logrus.Logger, level string, jsonFormat bool) {
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
