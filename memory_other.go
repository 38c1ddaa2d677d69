//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package easymeasure

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

func newChildrenMeter() (MemoryMeter, error) {
	return nil, fmt.Errorf("memory meter %q is not supported on %s", MemoryMeterChildren, runtime.GOOS)
}

func processMaxRSS(state *os.ProcessState) uint64 {
	log.Debugf("peak rss is not available on %s, counted as 0", runtime.GOOS)
	return 0
}
