package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// catalogProbes are statements gorm and the migration tools issue on their own;
// they are never worth a debug line.
var catalogProbes = []string{"pg_catalog", "information_schema", "select version()"}

var _ gormlogger.Interface = (*GormLogger)(nil)

// GormLogger sends gorm's output to the application logger. Failed statements
// are logged at error, slow ones at warn and everything else at debug.
// ErrRecordNotFound is not an error here: repositories map it to NotFound.
type GormLogger struct {
	log   logger.Interface
	slow  time.Duration
	level gormlogger.LogLevel
}

func NewGormLogger(log logger.Interface, slow time.Duration) *GormLogger {
	return &GormLogger{log: log, slow: slow, level: gormlogger.Info}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Info {
		g.log.Debugw("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Warn {
		g.log.Warnw("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Error {
		g.log.Errorw("gorm", "details", fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.log.Errorw("database error", "error", err, "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	case g.slow > 0 && elapsed > g.slow && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Warnw("slow query", "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		if isCatalogProbe(sql) {
			return
		}
		g.log.Debugw("database query", "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())
	}
}

func isCatalogProbe(sql string) bool {
	lower := strings.ToLower(sql)
	for _, p := range catalogProbes {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
