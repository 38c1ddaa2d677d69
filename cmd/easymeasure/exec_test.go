package main

import (
	"bytes"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/easymeasure"
)

func runExecCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	config = &easymeasure.Config{}
	t.Cleanup(func() { config = nil })

	cmd := newExecCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func requireCommands(t *testing.T, names ...string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("the children memory meter is not supported on windows")
	}

	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s is not available", name)
		}
	}
}

func Test_overrideConfig(t *testing.T) {
	tests := []struct {
		name   string
		config easymeasure.Config
		args   []string
		want   easymeasure.Config
	}{
		{
			name:   "defaults",
			config: easymeasure.Config{},
			want:   easymeasure.Config{Format: easymeasure.FormatTable, MemoryMeter: easymeasure.MemoryMeterChildren},
		},
		{
			name:   "config file values are kept",
			config: easymeasure.Config{Format: easymeasure.FormatText, LogFile: "a.log", MemoryMeter: easymeasure.MemoryMeterHeap},
			want:   easymeasure.Config{Format: easymeasure.FormatText, LogFile: "a.log", MemoryMeter: easymeasure.MemoryMeterHeap},
		},
		{
			name:   "flags override config file values",
			config: easymeasure.Config{Format: easymeasure.FormatText, LogFile: "a.log", MemoryMeter: easymeasure.MemoryMeterHeap},
			args:   []string{"--format", "html", "--log-file", "b.log", "--memory-meter", "total"},
			want:   easymeasure.Config{Format: easymeasure.FormatHTML, LogFile: "b.log", MemoryMeter: easymeasure.MemoryMeterTotalAlloc},
		},
		{
			name:   "short format flag",
			config: easymeasure.Config{Format: easymeasure.FormatHTML},
			args:   []string{"-f", "chart"},
			want:   easymeasure.Config{Format: easymeasure.FormatChart, MemoryMeter: easymeasure.MemoryMeterChildren},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newExecCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, err := overrideConfig(cmd, tt.config)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func Test_runKeyOf(t *testing.T) {
	assert.Equal(t, "build", runKeyOf("build", 1, 1))
	assert.Equal(t, "build#1", runKeyOf("build", 1, 3))
	assert.Equal(t, "build#3", runKeyOf("build", 3, 3))
}

func TestExecCmd_Repeat(t *testing.T) {
	requireCommands(t, "true")

	out, err := runExecCmd(t, "--key", "noop", "--repeat", "2", "--format", "text", "--", "true")
	require.NoError(t, err)

	first := strings.Index(out, "noop#1:")
	second := strings.Index(out, "noop#2:")
	assert.GreaterOrEqual(t, first, 0, out)
	assert.Greater(t, second, first, out)
	assert.NotContains(t, out, "memory: 0 B", "every run should report the peak rss of its own child")
}

func TestExecCmd_DefaultKey(t *testing.T) {
	requireCommands(t, "true")

	out, err := runExecCmd(t, "--format", "text", "--", "true")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "true:\n"), out)
}

func TestExecCmd_Failure(t *testing.T) {
	requireCommands(t, "false")

	out, err := runExecCmd(t, "--key", "fail", "--format", "text", "--", "false")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `command "fail" failed`)
	assert.Contains(t, out, "fail:")
}

func TestExecCmd_InvalidRepeat(t *testing.T) {
	_, err := runExecCmd(t, "--repeat", "0", "--", "true")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "repeat must be greater than 0")
}
