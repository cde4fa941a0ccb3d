package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zap.DebugLevel, ParseLevel(" DEBUG "))
	require.Equal(t, zap.WarnLevel, ParseLevel("warn"))
	require.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zap.InfoLevel, ParseLevel("verbose"))
}

func TestInitWithWriterHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", &buf)

	L().Info("hidden")
	Named("picker").Warn("shown", zap.Int("count", 3))
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "picker")

	SetLevel("debug")
	L().Debug("now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "combokit.log")
	require.NoError(t, Init("info", path))
	L().Info("to file")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}
