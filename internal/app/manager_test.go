package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerLifecycle(t *testing.T) {
	sm := NewInMemorySessionManager(0, "", time.Hour)

	session, err := sm.CreateSession("web")
	require.NoError(t, err)
	require.NotNil(t, session)

	got, err := sm.GetSession(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	require.NoError(t, sm.CloseSession(session.ID))

	_, err = sm.GetSession(session.ID)
	assert.Error(t, err)

	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)
	assert.Equal(t, session.ID, sessErr.SessionID)
}

func TestSessionManagerUnknownSession(t *testing.T) {
	sm := NewInMemorySessionManager(0, "", time.Hour)

	_, err := sm.GetSession("nope")
	assert.Error(t, err)
	assert.Error(t, sm.CloseSession("nope"))
}

func TestCleanupExpiredSessions(t *testing.T) {
	// maxAge of zero expires everything on the next sweep.
	sm := NewInMemorySessionManager(0, "", 0)

	_, err := sm.CreateSession("web")
	require.NoError(t, err)
	_, err = sm.CreateSession("web")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, sm.CleanupExpiredSessions())
	assert.Equal(t, 0, sm.CleanupExpiredSessions())
}
