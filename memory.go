package easymeasure

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

const (
	MemoryMeterHeap       = "heap"
	MemoryMeterSys        = "sys"
	MemoryMeterTotalAlloc = "total"
	MemoryMeterChildren   = "children"
)

// MemoryMeter reports the current memory usage in bytes.
type MemoryMeter interface {
	Current() uint64
}

// MemoryMeterFunc adapts a plain function to MemoryMeter
type MemoryMeterFunc func() uint64

func (fn MemoryMeterFunc) Current() uint64 {
	return fn()
}

// HeapMeter reports the bytes of allocated heap objects.
type HeapMeter struct{}

func (HeapMeter) Current() uint64 {
	return readMemStats().HeapAlloc
}

// SysMeter reports the total bytes obtained from the OS by the runtime.
type SysMeter struct{}

func (SysMeter) Current() uint64 {
	return readMemStats().Sys
}

// TotalAllocMeter reports the cumulative bytes allocated for heap objects.
// The value never decreases, so deltas are not affected by garbage collection.
type TotalAllocMeter struct{}

func (TotalAllocMeter) Current() uint64 {
	return readMemStats().TotalAlloc
}

// ProcessMeter sums the peak resident set sizes of the recorded child
// processes. A measurement around one child run therefore reports that
// child's own peak, whatever the earlier children used.
type ProcessMeter struct {
	mu    sync.Mutex
	total uint64
}

// Record adds the peak resident set size of the exited process.
func (m *ProcessMeter) Record(state *os.ProcessState) {
	m.Add(processMaxRSS(state))
}

func (m *ProcessMeter) Add(n uint64) {
	m.mu.Lock()
	m.total += n
	m.mu.Unlock()
}

func (m *ProcessMeter) Current() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

func readMemStats() *runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &m
}

// LookupMemoryMeter returns the meter registered under the given name.
// An empty name selects the heap meter.
func LookupMemoryMeter(name string) (MemoryMeter, error) {
	switch name {
	case "", MemoryMeterHeap:
		return HeapMeter{}, nil
	case MemoryMeterSys:
		return SysMeter{}, nil
	case MemoryMeterTotalAlloc:
		return TotalAllocMeter{}, nil
	case MemoryMeterChildren:
		return newChildrenMeter()
	}

	return nil, fmt.Errorf("unsupported memory meter %q", name)
}
