// Package config handles converter configuration loading.
package config

// Config holds all converter settings.
type Config struct {
	Output     OutputConfig  `yaml:"output"`
	Properties string        `yaml:"properties"` // optional property snapshot path
	Logging    LoggingConfig `yaml:"logging"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	SkipNormals bool   `yaml:"skip_normals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         "out",
			SkipNormals: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
