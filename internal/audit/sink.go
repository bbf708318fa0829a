package audit

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives finished audit entries. Implementations must tolerate
// concurrent Emit calls.
type Sink interface {
	Emit(e Entry)
	Close() error
}

// WriterSink appends one JSON line per entry to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w as a Sink. When w is an io.Closer, Close closes it.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(e Entry) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(data)
	_, _ = s.w.Write([]byte("\n"))
}

func (s *WriterSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ConsoleSink mirrors audit entries onto the application logger.
type ConsoleSink struct {
	log zerolog.Logger
}

// NewConsoleSink wraps a zerolog logger as a Sink.
func NewConsoleSink(log zerolog.Logger) *ConsoleSink {
	return &ConsoleSink{log: log}
}

func (s *ConsoleSink) Emit(e Entry) {
	evt := s.log.Info()
	if e.Level == LevelError {
		evt = s.log.Error()
	}
	evt.
		Str("log_id", e.LogID).
		Str("method", e.Data.Request.Method).
		Str("url", e.Data.Request.URI).
		Int("status", e.Data.Response.StatusCode).
		Str("duration", e.Data.Response.Duration).
		Msg(e.Message)
}

func (s *ConsoleSink) Close() error { return nil }
