package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("names the missing port", func(t *testing.T) {
		ports := testPorts()
		ports.Sale = nil
		err := ports.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingService)
		assert.Contains(t, err.Error(), "sale")
	})

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, testPorts().Validate())
	})
}
