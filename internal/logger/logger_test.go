package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Level(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	t.Run("уровень из конфигурации", func(t *testing.T) {
		Setup("production", "warn")
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("неизвестный уровень - info", func(t *testing.T) {
		Setup("production", "verbose")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("пустой уровень - info", func(t *testing.T) {
		Setup("development", "")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}
