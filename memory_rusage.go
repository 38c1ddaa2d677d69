//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package easymeasure

import (
	"os"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func newChildrenMeter() (MemoryMeter, error) {
	return &ProcessMeter{}, nil
}

// processMaxRSS returns the peak resident set size of the exited process.
func processMaxRSS(state *os.ProcessState) uint64 {
	if state == nil {
		log.Debugf("process state is not available, peak rss is counted as 0")
		return 0
	}

	usage, ok := state.SysUsage().(*syscall.Rusage)
	if !ok || usage == nil {
		log.Debugf("process %d has no resource usage, peak rss is counted as 0", state.Pid())
		return 0
	}

	return maxrssBytes(int64(usage.Maxrss))
}

// maxrssBytes converts ru_maxrss into bytes; darwin reports bytes, the
// other unix systems report kilobytes.
func maxrssBytes(maxrss int64) uint64 {
	if maxrss < 0 {
		return 0
	}

	switch runtime.GOOS {
	case "darwin":
		return uint64(maxrss)
	}

	return uint64(maxrss) * 1024
}
