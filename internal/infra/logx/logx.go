package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

const truncateLimit = 2 * 1024

var (
	mu      sync.RWMutex
	level   = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger  = newLogger(io.Discard)
	secrets = make([]string, 0)
	verbose bool
)

func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) {
	l := newLogger(w)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { level.SetLevel(l.zap()) }

// SetVerbose toggles verbose output (no truncation of large fields/messages).
func SetVerbose(v bool) { mu.Lock(); verbose = v; mu.Unlock() }

// Verbose returns whether verbose output is enabled.
func Verbose() bool { mu.RLock(); defer mu.RUnlock(); return verbose }

// RegisterSecret adds a string to be redacted in outputs.
func RegisterSecret(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	mu.Lock()
	secrets = append(secrets, s)
	mu.Unlock()
}

// RegisterSecrets adds multiple secrets for redaction.
func RegisterSecrets(list []string) {
	for _, s := range list {
		RegisterSecret(s)
	}
}

// StdlogWriter wraps writes as structured JSON lines at a fixed level.
// It applies redaction and optional truncation when verbose is disabled.
func StdlogWriter(lvl Level, w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return &stdlogWriter{level: lvl, log: newLogger(w)}
}

type stdlogWriter struct {
	level Level
	log   *zap.Logger
}

func (sw *stdlogWriter) Write(p []byte) (int, error) {
	written := 0
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		emit(sw.log, sw.level, string(line))
		written += len(line) + 1 // account for newline
	}
	return written, nil
}

func current() *zap.Logger { mu.RLock(); defer mu.RUnlock(); return logger }

// Debugf logs a debug message.
func Debugf(format string, args ...any) { emit(current(), LevelDebug, fmt.Sprintf(format, args...)) }

// Infof logs an info message.
func Infof(format string, args ...any) { emit(current(), LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { emit(current(), LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { emit(current(), LevelError, fmt.Sprintf(format, args...)) }

// Info logs msg with structured fields.
func Info(msg string, fields ...zap.Field) { emit(current(), LevelInfo, msg, fields...) }

// Debug logs msg with structured fields.
func Debug(msg string, fields ...zap.Field) { emit(current(), LevelDebug, msg, fields...) }

func emit(l *zap.Logger, lvl Level, msg string, fields ...zap.Field) {
	ce := l.Check(lvl.zap(), clean(msg))
	if ce == nil {
		return
	}
	for i := range fields {
		if fields[i].Type == zapcore.StringType {
			fields[i].String = clean(fields[i].String)
		}
	}
	ce.Write(fields...)
}

func clean(s string) string {
	s = redact(s)
	if !Verbose() {
		s = truncate(s, truncateLimit)
	}
	return s
}

func redact(s string) string {
	mu.RLock()
	defer mu.RUnlock()
	out := s
	for _, sec := range secrets {
		out = strings.ReplaceAll(out, sec, "[REDACTED]")
	}
	return out
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	// keep last 10 chars to aid context
	suffix := "… [truncated]"
	if limit > len(suffix)+10 {
		head := s[:limit-len(suffix)-10]
		tail := s[len(s)-10:]
		return head + suffix + tail
	}
	return s[:limit]
}
