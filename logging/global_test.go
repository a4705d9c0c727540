package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetGlobalLogger(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		require.Error(t, SetGlobalLogger("loud", "capital", "console", ""))
	})

	t.Run("console only", func(t *testing.T) {
		require.NoError(t, SetGlobalLogger("info", "lowercase", "json", ""))
		require.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))
		require.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plugin.log")
		require.NoError(t, SetGlobalLogger("error", "capital", "console", path))

		// the file core accepts every level
		require.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

		zap.L().Debug("written to file only")
		_ = zap.L().Sync()

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(raw), "written to file only")
	})
}

func TestParseConfigLevelEncoder(t *testing.T) {
	require.NotNil(t, parseConfigLevelEncoder("capitalColor"))
	require.NotNil(t, parseConfigLevelEncoder("unknown"))
}
