package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger configures the shared logger. Lambda output is collected by CloudWatch,
// so JSON is used there and plain text everywhere else.
func InitLogger(s LogSettings) {
	Logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		Logger.WithError(err).Warnf("Unknown log level %q, falling back to info", s.Level)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if s.JSON {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return entry.WithField("request_id", reqID)
	}
	return entry
}
