package easymeasure

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Reporter writes rendered measurements to the output writer and, once a
// log sink is configured, appends the text rendering to the log file.
type Reporter struct {
	mu sync.Mutex

	out      io.Writer
	renderer Renderer

	// logRenderer renders the log file content whatever the output format is
	logRenderer Renderer
	sink        *LogSink
}

func NewReporter(out io.Writer, renderer Renderer) *Reporter {
	if renderer == nil {
		renderer = &TextRenderer{}
	}

	return &Reporter{
		out:         out,
		renderer:    renderer,
		logRenderer: &TextRenderer{},
	}
}

// ConfigureLogSink sets the log file path. Configuring the same path again
// keeps the current sink.
func (r *Reporter) ConfigureLogSink(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sink != nil && r.sink.Path() == path {
		return
	}

	r.sink = NewLogSink(path)
}

func (r *Reporter) LogSink() *LogSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sink
}

func (r *Reporter) ReportOne(key string, v Value) error {
	content, err := r.renderer.RenderOne(key, v)
	if err != nil {
		return errors.Wrapf(err, "failed to render measurement %q", key)
	}

	return r.write(content, func() (string, error) {
		return r.logRenderer.RenderOne(key, v)
	})
}

func (r *Reporter) ReportAll(entries []Entry) error {
	content, err := r.renderer.RenderAll(entries)
	if err != nil {
		return errors.Wrap(err, "failed to render measurements")
	}

	return r.write(content, func() (string, error) {
		return r.logRenderer.RenderAll(entries)
	})
}

func (r *Reporter) write(content string, logContent func() (string, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.out, content); err != nil {
		return errors.Wrap(err, "failed to write measurement report")
	}

	if r.sink == nil {
		return nil
	}

	text, err := logContent()
	if err != nil {
		return errors.Wrap(err, "failed to render measurement log")
	}

	return r.sink.Append(text)
}
