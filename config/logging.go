package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.WarnLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the encoder and the logging level for each component.
type LoggerConfig struct {
	Encoder              LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel       string     `mapstructure:"log-level"`
	MetadataLoggerLevel  string     `mapstructure:"metadata"`
	DispatchLoggerLevel  string     `mapstructure:"dispatch"`
	ExtrinsicLoggerLevel string     `mapstructure:"extrinsic"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:              ConsoleLogEncoder,
		AppLoggerLevel:       defaultLoggingLevel.String(),
		MetadataLoggerLevel:  defaultLoggingLevel.String(),
		DispatchLoggerLevel:  defaultLoggingLevel.String(),
		ExtrinsicLoggerLevel: defaultLoggingLevel.String(),
	}
}

// Level parses the application level.
func (c LoggerConfig) Level() (zapcore.Level, error) {
	return parseLevel("log-level", c.AppLoggerLevel)
}

// ComponentLevel parses the level of a named component, falling back
// to the application level for unknown components.
func (c LoggerConfig) ComponentLevel(name string) (zapcore.Level, error) {
	switch name {
	case "metadata":
		return parseLevel(name, c.MetadataLoggerLevel)
	case "dispatch":
		return parseLevel(name, c.DispatchLoggerLevel)
	case "extrinsic":
		return parseLevel(name, c.ExtrinsicLoggerLevel)
	}
	return c.Level()
}

func parseLevel(name, level string) (zapcore.Level, error) {
	if level == "" {
		return defaultLoggingLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid %s level %q: %w", name, level, err)
	}
	return lvl, nil
}
