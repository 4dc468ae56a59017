package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDs(t *testing.T) {
	gameID, err := GenerateGameID()
	require.NoError(t, err)

	sessionID, err := GenerateNewSessionID()
	require.NoError(t, err)

	assert.NotEqual(t, gameID, sessionID)

	parsed, err := uuid.Parse(gameID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
