package logger

import (
	"testing"

	"trivia-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		log, err := New(&config.Config{Env: env, Log: config.Log{Level: "warn"}})
		require.NoError(t, err, env)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel), env)
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel), env)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}
