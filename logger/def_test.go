package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	assert.NotNil(t, Log())
	assert.NotNil(t, S())

	require.NoError(t, Init("warn", false))
	assert.False(t, Log().Core().Enabled(-1))
	assert.True(t, Log().Core().Enabled(1))

	require.NoError(t, InitDevelopment())
	assert.True(t, Log().Core().Enabled(-1))
	Sync()
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud", false))
}
