package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	Init("debug", "development")
	assert.NotNil(t, L)
	assert.NotNil(t, S)
	assert.True(t, L.Core().Enabled(zapcore.DebugLevel))

	Init("not-a-level", "production")
	assert.False(t, L.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, L.Core().Enabled(zapcore.InfoLevel))
}
