package redislog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes log entries to a Redis LIST (e.g. "logs:app") and trims it
// to a maximum length so the list never grows unbounded. A nil Logger or a
// Logger over a nil client is a no-op, so callers never need nil checks per
// log line.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
}

// New creates a Redis list logger.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention}
}

// log pushes a JSON entry: LPUSH, then LTRIM, then EXPIRE. Failures are
// swallowed; logging must never break a request.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  time.Now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, b).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

// Info logs normal informational events.
func (l *Logger) Info(msg string, meta map[string]string) { l.log("info", msg, meta) }

// Warn logs recoverable or suspicious events.
func (l *Logger) Warn(msg string, meta map[string]string) { l.log("warn", msg, meta) }

// Error logs failures.
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }
