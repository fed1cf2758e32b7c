package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	cases := []string{"", "verbose", "INFO-ish"}
	for _, lvl := range cases {
		l := New(Config{Env: "production", Level: lvl})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", lvl)
	}
}

func TestNew_NivelEnMayusculas(t *testing.T) {
	l := New(Config{Env: "development", Level: "Debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}
