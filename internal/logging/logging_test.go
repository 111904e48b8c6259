package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("hidden too")
	log.Warn().Str("path", "/tmp/p.json").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "path=/tmp/p.json")

	buf.Reset()
	log = New(&buf, true)
	log.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
