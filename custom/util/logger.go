package util

import (
	"github.com/romana/rlog"
	"gorm.io/gorm/logger"
	"time"
)

type rlogWriter struct{}

func (rlogWriter) Printf(format string, args ...interface{}) {
	rlog.Debugf(format, args...)
}

// GormLogger sends gorm's SQL trace to rlog at debug level.
func GormLogger() logger.Interface {
	return logger.New(rlogWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
