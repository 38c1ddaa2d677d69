//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package easymeasure

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMeter_RepeatedChildren(t *testing.T) {
	meter, err := LookupMemoryMeter(MemoryMeterChildren)
	require.NoError(t, err)
	require.IsType(t, &ProcessMeter{}, meter)

	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true is not available")
	}

	registry := New(
		WithMemoryMeter(meter),
		WithReporter(NewReporter(&bytes.Buffer{}, nil)),
	)

	for i := 1; i <= 3; i++ {
		key := fmt.Sprintf("true#%d", i)
		err := registry.Measure(key, func() error {
			c := exec.Command(path)
			runErr := c.Run()
			meter.(*ProcessMeter).Record(c.ProcessState)
			return runErr
		})
		require.NoError(t, err)
	}

	for _, e := range registry.ResolveAll() {
		assert.Greater(t, e.Value.MemoryDelta, int64(0), "every run should report its own peak rss: %s", e.Key)
	}
}

func Test_processMaxRSS(t *testing.T) {
	assert.Equal(t, uint64(0), processMaxRSS(nil))

	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true is not available")
	}

	c := exec.Command(path)
	require.NoError(t, c.Run())
	assert.NotZero(t, processMaxRSS(c.ProcessState))
}

func Test_maxrssBytes(t *testing.T) {
	assert.Equal(t, uint64(0), maxrssBytes(-1))

	want := uint64(2048 * 1024)
	if runtime.GOOS == "darwin" {
		want = 2048
	}
	assert.Equal(t, want, maxrssBytes(2048))
}
