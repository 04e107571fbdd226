package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventadmin/internal/domain"
)

func TestJWTSessionCodecRoundTrip(t *testing.T) {
	codec := NewJWTSessionCodec("test-secret")
	principal := domain.Principal{UserID: "user-1", Username: "alice", Admin: true}

	token, err := codec.Issue("session-abc", principal, time.Hour)
	require.NoError(t, err)

	sessionID, got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
	assert.Equal(t, principal, got)
}

func TestJWTSessionCodecWrongSecret(t *testing.T) {
	token, err := NewJWTSessionCodec("secret-a").Issue("session-abc", domain.Principal{UserID: "u"}, time.Hour)
	require.NoError(t, err)

	_, _, err = NewJWTSessionCodec("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTSessionCodecExpired(t *testing.T) {
	codec := NewJWTSessionCodec("test-secret")
	token, err := codec.Issue("session-abc", domain.Principal{UserID: "u"}, -time.Minute)
	require.NoError(t, err)

	_, _, err = codec.Verify(token)
	require.Error(t, err)
}

func TestJWTSessionCodecGarbage(t *testing.T) {
	_, _, err := NewJWTSessionCodec("test-secret").Verify("not-a-token")
	require.Error(t, err)
}
