package easymeasure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "easymeasure.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`---
logFile: /tmp/easymeasure.log
format: table
memoryMeter: sys
`), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogFile:     "/tmp/easymeasure.log",
		Format:      FormatTable,
		MemoryMeter: MemoryMeterSys,
	}, config)

	t.Setenv("EASYMEASURE_FORMAT", FormatHTML)

	config, err = LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, config.Format)
	assert.Equal(t, MemoryMeterSys, config.MemoryMeter)
}

func TestLoadConfig_NotExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "easymeasure.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EASYMEASURE_LOG_FILE", "measure.log")
	t.Setenv("EASYMEASURE_MEMORY_METER", MemoryMeterTotalAlloc)

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "measure.log", config.LogFile)
	assert.Equal(t, MemoryMeterTotalAlloc, config.MemoryMeter)
	assert.Empty(t, config.Format)
}
