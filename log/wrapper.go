package log

import (
	stdlog "log"
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"
)

// Wrapper is a simple wrapper of a logging function.
//
// Generators report non-fatal notices (empty pools, unrecognized
// mini-language tokens) through a Wrapper,
// so callers can route them to whatever logging library they use.
type Wrapper func(msg string)

// NopWrapper is a Wrapper implementation that does nothing.
func NopWrapper(msg string) {}

// WarnWrapper is the Wrapper used by Generators by default.
//
// It logs to the global zap logger at warn level.
var WarnWrapper = ZapWrapper(zapcore.WarnLevel)

// Log is the nil-safe way of calling a Wrapper.
//
// nil Wrapper falls back to WarnWrapper.
func (w Wrapper) Log(msg string) {
	if w == nil {
		WarnWrapper(msg)
		return
	}
	w(msg)
}

// StdWrapper wraps stdlib log package into a Wrapper.
func StdWrapper(logger *stdlog.Logger) Wrapper {
	if logger == nil {
		return NopWrapper
	}
	return func(msg string) {
		logger.Print(msg)
	}
}

// TestWrapper is a wrapper can be used in test codes.
//
// It fails the test when called.
func TestWrapper(tb testing.TB) Wrapper {
	return func(msg string) {
		tb.Errorf("logger called with msg: %q", msg)
	}
}

// Recorder is a Wrapper target that keeps every message it receives.
//
// It's safe for concurrent use.
type Recorder struct {
	lock sync.Mutex
	msgs []string
}

// Wrapper returns the Wrapper writing into r.
func (r *Recorder) Wrapper() Wrapper {
	return func(msg string) {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.msgs = append(r.msgs, msg)
	}
}

// Messages returns a copy of all the messages recorded so far.
func (r *Recorder) Messages() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.msgs...)
}

// ZapWrapper wraps zap log package into a Wrapper.
func ZapWrapper(logLevel zapcore.Level) Wrapper {
	return func(msg string) {
		switch logLevel {
		default:
			// for unknown values, fallback to info level.
			fallthrough
		case zapcore.InfoLevel:
			Info(msg)
		case zapcore.DebugLevel:
			Debug(msg)
		case zapcore.WarnLevel:
			Warn(msg)
		case zapcore.ErrorLevel:
			Error(msg)
		case ZapNopLevel:
			// do nothing
		}
	}
}
