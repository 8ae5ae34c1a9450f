package logger

import (
	"testing"

	"fiftymais/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.LoggingConfig{Level: "debug", Format: "json"}, &config.AppConfig{Name: "test", Environment: "development"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger(&config.LoggingConfig{Level: "nonsense"}, &config.AppConfig{Name: "test"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("joao@example.com"))
	assert.Equal(t, "***", MaskEmail("invalid"))
	assert.Equal(t, "***", MaskEmail("@nouser.com"))
}
