package easymeasure

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a measurement key was never started.
var ErrNotFound = errors.New("measurement not found")

type Option func(r *Registry)

func WithClock(clock Clock) Option {
	return func(r *Registry) {
		r.clock = clock
	}
}

func WithMemoryMeter(meter MemoryMeter) Option {
	return func(r *Registry) {
		r.meter = meter
	}
}

func WithReporter(reporter *Reporter) Option {
	return func(r *Registry) {
		r.reporter = reporter
	}
}

// Registry keeps the measurements by key. Keys are kept in the order they
// were first started; restarting a key replaces its record in place.
type Registry struct {
	mu sync.Mutex

	clock    Clock
	meter    MemoryMeter
	reporter *Reporter

	keys         []string
	measurements map[string]*Measurement
}

// New creates a registry that reads the system clock and the heap meter and
// reports to stdout in text format unless overridden by options.
func New(options ...Option) *Registry {
	r := &Registry{
		clock:        SystemClock{},
		meter:        HeapMeter{},
		measurements: make(map[string]*Measurement),
	}

	for _, option := range options {
		option(r)
	}

	if r.reporter == nil {
		r.reporter = NewReporter(os.Stdout, &TextRenderer{})
	}

	return r
}

// NewWithConfig creates a registry from the config, writing reports to out.
func NewWithConfig(config *Config, out io.Writer) (*Registry, error) {
	meter, err := LookupMemoryMeter(config.MemoryMeter)
	if err != nil {
		return nil, err
	}

	renderer, err := LookupRenderer(config.Format)
	if err != nil {
		return nil, err
	}

	reporter := NewReporter(out, renderer)
	if len(config.LogFile) > 0 {
		reporter.ConfigureLogSink(config.LogFile)
	}

	return New(WithMemoryMeter(meter), WithReporter(reporter)), nil
}

func (r *Registry) Reporter() *Reporter {
	return r.reporter
}

func (r *Registry) MemoryMeter() MemoryMeter {
	return r.meter
}

// Start begins a measurement, overwriting any existing record of the key.
func (r *Registry) Start(key string) {
	m := &Measurement{
		Key:         key,
		StartTime:   r.clock.Now(),
		StartMemory: r.meter.Current(),
		State:       StateRunning,
	}

	r.mu.Lock()
	if _, ok := r.measurements[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.measurements[key] = m
	r.mu.Unlock()

	log.Debugf("measurement %q started", key)
}

// Stop freezes the elapsed time and memory delta of a running measurement.
// Stopping an already stopped measurement keeps the first resolved value.
func (r *Registry) Stop(key string) error {
	now := r.clock.Now()
	current := r.meter.Current()

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.measurements[key]
	if !ok {
		return errors.Wrapf(ErrNotFound, "can not stop %q", key)
	}

	if m.IsStopped() {
		log.Warnf("measurement %q is already stopped", key)
		return nil
	}

	m.Resolved = compute(m, now, current)
	m.State = StateStopped

	log.Debugf("measurement %q stopped, %s", key, m.Resolved)
	return nil
}

// StopAndPrint stops the measurement and reports it right away.
func (r *Registry) StopAndPrint(key string) error {
	if err := r.Stop(key); err != nil {
		return err
	}

	return r.PrintOne(key)
}

// Resolve returns the frozen value of a stopped measurement, or the live
// value of a running one.
func (r *Registry) Resolve(key string) (Value, error) {
	r.mu.Lock()
	m, ok := r.measurements[key]
	var snapshot Measurement
	if ok {
		snapshot = *m
	}
	r.mu.Unlock()

	if !ok {
		return Value{}, errors.Wrapf(ErrNotFound, "can not resolve %q", key)
	}

	return r.resolve(&snapshot), nil
}

// ResolveAll resolves every measurement in the order the keys were first started.
func (r *Registry) ResolveAll() []Entry {
	r.mu.Lock()
	snapshots := make([]Measurement, 0, len(r.keys))
	for _, key := range r.keys {
		snapshots = append(snapshots, *r.measurements[key])
	}
	r.mu.Unlock()

	entries := make([]Entry, 0, len(snapshots))
	for i := range snapshots {
		entries = append(entries, Entry{
			Key:   snapshots[i].Key,
			Value: r.resolve(&snapshots[i]),
		})
	}

	return entries
}

func (r *Registry) resolve(m *Measurement) Value {
	if m.IsStopped() {
		return m.Resolved
	}

	return compute(m, r.clock.Now(), r.meter.Current())
}

func compute(m *Measurement, now time.Time, current uint64) Value {
	return Value{
		Elapsed:     now.Sub(m.StartTime),
		MemoryDelta: int64(current) - int64(m.StartMemory),
	}
}

// Keys returns the measurement keys in the order they were first started.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// PrintOne reports one measurement
func (r *Registry) PrintOne(key string) error {
	v, err := r.Resolve(key)
	if err != nil {
		return err
	}

	return r.reporter.ReportOne(key, v)
}

// PrintAll reports all measurements
func (r *Registry) PrintAll() error {
	return r.reporter.ReportAll(r.ResolveAll())
}

// AttachLogFile appends every following report to the given file as well.
func (r *Registry) AttachLogFile(path string) {
	r.reporter.ConfigureLogSink(path)
}
