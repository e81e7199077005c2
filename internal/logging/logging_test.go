package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("json output with level filter", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "warn", Format: "json", Output: &buf})

		log.Info().Msg("dropped")
		log.Warn().Msg("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, `"message":"kept"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "shouty", Output: &buf})

		log.Debug().Msg("dropped")
		log.Info().Msg("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("console format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(Config{Level: "info", Format: "console", Output: &buf})

		log.Info().Msg("hello")
		assert.True(t, strings.Contains(buf.String(), "hello"))
		assert.False(t, strings.HasPrefix(buf.String(), "{"))
	})
}
