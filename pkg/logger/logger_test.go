package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""), "vacío cae a info")
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"), "nivel desconocido cae a info")
}

func TestNew_RespetaNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}
