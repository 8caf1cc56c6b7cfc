package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger returns the module-scoped log entry
func Logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "privacy-toolkit")
}

// Configure sets the level and output format of the standard logger.
// Unknown levels fall back to info, unknown formats to text.
func Configure(level, format string) {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
