package easymeasure

import (
	"fmt"
	"math"
	"time"
)

type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Value is the elapsed time and memory delta of a measurement.
type Value struct {
	Elapsed     time.Duration
	MemoryDelta int64
}

// Seconds returns the elapsed time in seconds, rounded to 2 decimals
func (v Value) Seconds() float64 {
	return round2(v.Elapsed.Seconds())
}

func (v Value) String() string {
	return fmt.Sprintf("time: %s, memory: %s", FormatSeconds(v.Elapsed), FormatBytes(v.MemoryDelta))
}

// Measurement is the record kept for a key. Resolved is only meaningful
// once State is StateStopped.
type Measurement struct {
	Key string

	// StartTime is the clock reading taken by Start
	StartTime time.Time

	// StartMemory is the memory meter reading taken by Start
	StartMemory uint64

	State State

	Resolved Value
}

func (m *Measurement) IsStopped() bool {
	return m.State == StateStopped
}

// Entry is a key and its resolved value, used by ordered results.
type Entry struct {
	Key   string
	Value Value
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
