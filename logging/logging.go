// Package logging builds the zap loggers used by the library and its commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the verbosity of a logger.
type Level int

const (
	Debug = Level(iota)
	Info
	Warn
	Error
	// Off disables logging.
	Off
)

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
	Off:   "off",
}

// String returns the name of the level.
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel returns the level of the given name (case insensitive).
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if s == name {
			return l, nil
		}
	}
	return Off, fmt.Errorf("invalid logging level %q: valid levels are debug, info, warn, error and off", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("invalid logging level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) (err error) {
	*l, err = ParseLevel(string(text))
	return
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Config is the configuration of a logger.
type Config struct {
	Level Level `yaml:"level" json:"level"`
	// Format is either "json" (default) or "console".
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// Output is a list of zap sink URLs or file paths, stderr by default.
	Output []string `yaml:"output,omitempty" json:"output,omitempty"`
}

// Validate checks that the configuration can be built.
func (c Config) Validate() error {
	if _, ok := levelNames[c.Level]; !ok {
		return fmt.Errorf("invalid logging level %d", int(c.Level))
	}
	switch c.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("invalid logging format %q: valid formats are json and console", c.Format)
	}
}

// New returns a production zap logger at the given level.
// The logger of level [Off] is a no-op logger.
func New(level Level) (*zap.Logger, error) {
	return NewFromConfig(Config{Level: level})
}

// NewFromConfig returns a production zap logger built from c.
func NewFromConfig(c Config) (*zap.Logger, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot NewFromConfig: %w", err)
	}

	if c.Level == Off {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(c.Level.zapLevel())

	if c.Format != "" {
		config.Encoding = c.Format
	}

	if c.Format == "console" {
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if len(c.Output) != 0 {
		config.OutputPaths = c.Output
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
