package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// Timeouts and cool-down for the Logstash connection. Kept short so a dead
// log pipeline cannot slow request handling down.
const (
	dialTimeout  = 2 * time.Second
	writeTimeout = time.Second
	retryAfter   = 5 * time.Second
)

// LogstashWriter mirrors log lines to a Logstash TCP input. It holds one
// connection, drops lines while Logstash is unreachable, and never blocks
// the caller beyond the write timeout. Safe for concurrent use.
type LogstashWriter struct {
	addr string

	mu       sync.Mutex
	conn     net.Conn
	downTill time.Time
	closed   bool
}

func NewLogstashWriter(addr string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{addr: addr}, nil
}

// Write implements io.Writer. A failed send drops the line, closes the
// connection, and backs off before dialing again. Dropped lines still report
// success so log.SetOutput callers keep their stdout copy.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if w.conn == nil && !w.redial() {
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := w.conn.Write(line); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.downTill = time.Now().Add(retryAfter)
	}
	return len(p), nil
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// redial attempts a new connection unless the cool-down window is still open.
// Caller must hold the mutex.
func (w *LogstashWriter) redial() bool {
	if time.Now().Before(w.downTill) {
		return false
	}
	conn, err := net.DialTimeout("tcp", w.addr, dialTimeout)
	if err != nil {
		w.downTill = time.Now().Add(retryAfter)
		return false
	}
	w.conn = conn
	w.downTill = time.Time{}
	return true
}
