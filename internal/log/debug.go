// Package log provides the gowc debug log.
//
// Messages logged before a destination is known are held in memory. Open
// flushes them to a file; Discard drops them and everything after.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

type sink struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	pending []byte
	discard bool
}

var (
	debugSink = &sink{}
	logger    = log.New(debugSink, "gowc ", log.LstdFlags|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.discard:
		return len(p), nil
	case s.out != nil:
		return s.out.Write(p)
	}

	// p may be reused by the caller.
	s.pending = append(s.pending, p...)
	return len(p), nil
}

// reset closes the current destination. Callers hold s.mu.
func (s *sink) reset() error {
	var err error
	if s.closer != nil {
		err = s.closer.Close()
	}
	s.out = nil
	s.closer = nil
	return err
}

// Open appends the debug log to path, creating it if needed, and flushes
// pending messages. On failure logging is disabled.
func Open(path string) error {
	if path == "" {
		Discard()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		Discard()
		return err
	}

	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	_ = debugSink.reset()
	debugSink.out = f
	debugSink.closer = f
	debugSink.discard = false
	if len(debugSink.pending) > 0 {
		_, _ = f.Write(debugSink.pending)
		debugSink.pending = nil
	}
	return nil
}

// Discard drops pending messages and disables further logging.
func Discard() {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	_ = debugSink.reset()
	debugSink.discard = true
	debugSink.pending = nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close closes the debug log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	return debugSink.reset()
}
