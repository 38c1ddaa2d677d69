package easymeasure

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const logTimeLayout = "2006-01-02 15:04:05"

var logSeparatorDashes = strings.Repeat("-", 10)

// LogSink appends rendered measurements to a file. Every append is preceded
// by a timestamped separator line and holds an exclusive lock on the file.
type LogSink struct {
	mu   sync.Mutex
	path string

	now func() time.Time
}

func NewLogSink(path string) *LogSink {
	return &LogSink{path: path, now: time.Now}
}

func (s *LogSink) Path() string {
	return s.path
}

// Append writes the separator line and the content in one write call.
func (s *LogSink) Append(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open measurement log %s", s.path)
	}

	defer f.Close()

	if err := lockFile(f); err != nil {
		return errors.Wrapf(err, "failed to lock measurement log %s", s.path)
	}

	defer unlockFile(f)

	if _, err := f.WriteString(s.entry(content)); err != nil {
		return errors.Wrapf(err, "failed to append measurement log %s", s.path)
	}

	return nil
}

func (s *LogSink) entry(content string) string {
	var sb strings.Builder
	sb.WriteString(separatorLine(s.now()))
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}

	return sb.String()
}

func separatorLine(t time.Time) string {
	return logSeparatorDashes + " [" + t.Format(logTimeLayout) + "] " + logSeparatorDashes + "\n"
}
