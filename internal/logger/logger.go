package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stderr)
}

// Init applies the configured level and target. When path is set the log
// goes to the file only: stdout and stderr belong to the interactive UI.
func Init(level, path string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.WithError(err).Warn("logger: cannot open log file, keeping stderr")
		return
	}
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	log.SetOutput(f)
}

// Quiet drops all output. Used by tests.
func Quiet() {
	log.SetOutput(io.Discard)
}

// L returns the configured logger.
func L() *logrus.Logger {
	return log
}

// Track returns a closure logging the duration of msg when called.
func Track(msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := log.WithField("duration", dur.String())
		if dur > 500*time.Millisecond {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Infof("%s completed", msg)
		}
	}
}
