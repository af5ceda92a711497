package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func TestLevel(t *testing.T) {

	t.Run("Parse", func(t *testing.T) {
		for _, l := range []Level{Debug, Info, Warn, Error, Off} {
			parsed, err := ParseLevel(strings.ToUpper(l.String()))
			require.NoError(t, err)
			require.Equal(t, l, parsed)
		}

		_, err := ParseLevel("verbose")
		require.Error(t, err)
	})

	t.Run("YAML", func(t *testing.T) {
		var c Config
		require.NoError(t, yaml.Unmarshal([]byte("level: warn\nformat: console\n"), &c))
		require.Equal(t, Warn, c.Level)
		require.Equal(t, "console", c.Format)

		data, err := yaml.Marshal(c)
		require.NoError(t, err)
		require.Contains(t, string(data), "level: warn")

		require.Error(t, yaml.Unmarshal([]byte("level: loud\n"), &c))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "Level(9)", Level(9).String())
	})
}

func TestNew(t *testing.T) {

	t.Run("Off", func(t *testing.T) {
		logger, err := New(Off)
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zap.ErrorLevel))
	})

	t.Run("Level", func(t *testing.T) {
		logger, err := New(Warn)
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zap.InfoLevel))
		require.True(t, logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "berry.log")

		logger, err := NewFromConfig(Config{Level: Debug, Output: []string{path}})
		require.NoError(t, err)

		logger.Debug("hello", zap.Int("dim", 2))
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"dim":2`)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewFromConfig(Config{Level: Info, Format: "xml"})
		require.Error(t, err)
		_, err = NewFromConfig(Config{Level: Level(-1)})
		require.Error(t, err)
	})
}
