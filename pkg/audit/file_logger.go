package audit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"code.cloudfoundry.org/clock"
)

const timeFormat = "2006-01-02 15:04:05.000000"

// FileLogger appends one tab-separated line per entry to its sink:
//
//	[timestamp]\t[KIND]\t message
//
// Write failures are dropped; the audit log never blocks command
// processing.
type FileLogger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	clock  clock.Clock
}

func NewFileLogger(out io.Writer, opts ...Option) *FileLogger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &FileLogger{
		out:   out,
		clock: o.clock,
	}
}

// OpenFileLogger opens (or creates) the append-only log file at path.
func OpenFileLogger(path string, opts ...Option) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	logger := NewFileLogger(f, opts...)
	logger.closer = f
	return logger, nil
}

func (l *FileLogger) Record(entry Entry) {
	line := fmt.Sprintf("[%s]\t[%s]\t%s\n",
		l.clock.Now().Format(timeFormat), entry.Kind, renderMessage(entry))

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, line)
}

func (l *FileLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func renderMessage(entry Entry) string {
	if entry.Kind == KindForbidden {
		return fmt.Sprintf(
			"Function %s was called by user %s (id: %s) in channel %s for server(s): [%s], but user is not authorized.",
			entry.Command,
			entry.Requester.Display,
			entry.Requester.ID,
			entry.Channel,
			strings.Join(entry.Targets, ", "),
		)
	}
	return entry.Message
}
