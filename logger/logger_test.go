package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("nonsense"))
}

func TestInitLoggerWithConfigJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	InitLoggerWithConfig(LoggerConfig{
		Level:       "warn",
		Stage:       ProdEnvironment,
		EnableJSON:  true,
		OutputPaths: []string{out},
	})
	t.Cleanup(func() { Log = zap.NewNop() })

	Info("hidden")
	Warn("visible", zap.String("sku", "012345678905"))
	Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"message":"visible"`)
	assert.Contains(t, string(data), `"sku":"012345678905"`)
	assert.Contains(t, string(data), `"service":"otc-randomizer"`)
}
