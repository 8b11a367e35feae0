// Package config provides configuration structures and loading for followdiff.
package config

// Config represents the complete application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InputConfig describes the layout of the follower CSV files.
type InputConfig struct {
	Delimiter  string `yaml:"delimiter" mapstructure:"delimiter"`     // single character, defaults to ","
	HasHeader  bool   `yaml:"has_header" mapstructure:"has_header"`   // first row is skipped when true
	IDColumn   int    `yaml:"id_column" mapstructure:"id_column"`     // zero based
	NameColumn int    `yaml:"name_column" mapstructure:"name_column"` // zero based
}

// OutputConfig represents report rendering settings.
type OutputConfig struct {
	Color string `yaml:"color" mapstructure:"color"` // auto, always, never
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter:  ",",
			HasHeader:  true,
			IDColumn:   0,
			NameColumn: 1,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// DelimiterRune returns the configured delimiter as a rune, falling back to a comma.
func (ic *InputConfig) DelimiterRune() rune {
	for _, r := range ic.Delimiter {
		return r
	}
	return ','
}

// MinColumns returns the number of columns a data row needs to yield a record.
func (ic *InputConfig) MinColumns() int {
	return max(ic.IDColumn, ic.NameColumn) + 1
}
