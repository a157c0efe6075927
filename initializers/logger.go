package initializers

import (
	log "github.com/sirupsen/logrus"

	"approval-flow-backend/fiberlog"
)

func InitLogger() *fiberlog.Config {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagIP,
		},
	}
}
