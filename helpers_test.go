package easymeasure

import (
	"bytes"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 16, 23, 15, 13, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeMeter struct {
	bytes uint64
}

func (m *fakeMeter) Current() uint64 { return m.bytes }

func (m *fakeMeter) Add(n int64) { m.bytes = uint64(int64(m.bytes) + n) }

func newTestRegistry() (*Registry, *fakeClock, *fakeMeter, *bytes.Buffer) {
	clock := newFakeClock()
	meter := &fakeMeter{bytes: 64 << 20}
	out := &bytes.Buffer{}
	registry := New(
		WithClock(clock),
		WithMemoryMeter(meter),
		WithReporter(NewReporter(out, &TextRenderer{})),
	)
	return registry, clock, meter, out
}
