package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a leveled structured logger writing JSON to stdout. Action and
// With return tagged copies, so call sites read
// log.Action("register_failed").Error("...", err).
type Logger struct {
	zl zerolog.Logger
}

func New(level string) (Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return Logger{}, err
	}
	hostname, _ := os.Hostname()
	zl := zerolog.New(os.Stdout).Level(lvl).With().
		Timestamp().
		Str("hostname", hostname).
		Logger()
	return Logger{zl: zl}, nil
}

// Leveled returns a copy that filters out events below the named level.
func (l Logger) Leveled(level string) (Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return l, err
	}
	l.zl = l.zl.Level(lvl)
	return l, nil
}

// Action tags every event logged through the copy with an action name.
func (l Logger) Action(action string) Logger {
	l.zl = l.zl.With().Str("action", action).Logger()
	return l
}

// With attaches alternating key/value pairs to every event logged through the
// copy.
func (l Logger) With(kv ...any) Logger {
	l.zl = l.zl.With().Fields(fields(kv)).Logger()
	return l
}

func (l Logger) Debug(msg string, kv ...any) {
	l.zl.Debug().Fields(fields(kv)).Msg(msg)
}

func (l Logger) Info(msg string, kv ...any) {
	l.zl.Info().Fields(fields(kv)).Msg(msg)
}

func (l Logger) Warn(msg string, kv ...any) {
	l.zl.Warn().Fields(fields(kv)).Msg(msg)
}

func (l Logger) Error(msg string, err error, kv ...any) {
	l.zl.Error().Err(err).Fields(fields(kv)).Msg(msg)
}

func parseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return lvl, nil
}

// fields converts alternating key/value pairs into a map zerolog accepts. A
// trailing key without a value is kept with a nil value rather than dropped.
func fields(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	m := make(map[string]any, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 < len(kv) {
			m[key] = kv[i+1]
		} else {
			m[key] = nil
		}
	}
	return m
}
