package easymeasure

import (
	"os"

	"github.com/codingconcepts/env"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// LogFile is the file the reports are appended to, empty disables the log
	LogFile string `json:"logFile" yaml:"logFile" env:"EASYMEASURE_LOG_FILE"`

	// Format is the output format: text, table, html or chart
	Format string `json:"format" yaml:"format" env:"EASYMEASURE_FORMAT"`

	// MemoryMeter is the memory source: heap, sys, total or children
	MemoryMeter string `json:"memoryMeter" yaml:"memoryMeter" env:"EASYMEASURE_MEMORY_METER"`
}

// LoadConfig reads the yaml config file, then applies the environment variables.
func LoadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := env.Set(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigFromEnv builds the config from the environment variables only.
func LoadConfigFromEnv() (*Config, error) {
	var config Config
	if err := env.Set(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
