package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guilds/pkg/user"
)

func newManager(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	pool := &redis.Pool{
		Dial: func() (redis.Conn, error) { return redis.Dial("tcp", mr.Addr()) },
	}
	t.Cleanup(func() { pool.Close() })
	return NewSessionManager("test-secret", pool), mr
}

func TestTokenRoundTrip(t *testing.T) {
	sm, _ := newManager(t)
	u := &user.User{ID: 5, Username: "pike"}

	token, err := sm.CreateToken(u)
	require.NoError(t, err)

	got, sessionID, err := sm.UserFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "pike", got.Username)
	assert.Len(t, sessionID, 10)

	_, _, err = sm.UserFromToken("Bearer " + token + "x")
	assert.Error(t, err)

	_, _, err = sm.UserFromToken("")
	assert.Error(t, err)
}

func TestTokenWithoutRedisSession(t *testing.T) {
	sm, mr := newManager(t)
	token, err := sm.CreateToken(&user.User{ID: 5, Username: "pike"})
	require.NoError(t, err)

	mr.FlushAll()
	_, _, err = sm.UserFromToken(token)
	assert.ErrorContains(t, err, "Redis session is not valid")
}

func TestCleanupUserSessions(t *testing.T) {
	sm, mr := newManager(t)
	require.NoError(t, sm.AddToRedis(5, "old", time.Now().Add(-time.Hour).Unix()))
	require.NoError(t, sm.AddToRedis(5, "new", time.Now().Add(time.Hour).Unix()))

	require.NoError(t, sm.CleanupUserSessions(5))

	keys, err := mr.HKeys(sessionsKey(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, keys)
}

func TestFormKey(t *testing.T) {
	sm, _ := newManager(t)
	key := sm.FormKey("sess", 5)

	assert.True(t, sm.ValidateFormKey("sess", 5, key))
	assert.False(t, sm.ValidateFormKey("sess", 6, key))
	assert.False(t, sm.ValidateFormKey("other", 5, key))
	assert.False(t, sm.ValidateFormKey("sess", 5, ""))
}

func TestOAuthState(t *testing.T) {
	sm, mr := newManager(t)
	u := &user.User{ID: 5, LoginNonce: 2}

	state, err := sm.IssueState("sess", u)
	require.NoError(t, err)
	assert.True(t, mr.TTL(stateNS+":sess") > 0)

	ok, err := sm.CheckState("sess", u, state)
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := state[:len(state)-1] + "0"
	if tampered == state {
		tampered = state[:len(state)-1] + "1"
	}
	ok, err = sm.CheckState("sess", u, tampered)
	require.NoError(t, err)
	assert.False(t, ok)

	// a new login nonce invalidates the state even if it is stored
	ok, err = sm.CheckState("sess", &user.User{ID: 5, LoginNonce: 3}, state)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = sm.CheckState("unknown", u, state)
	assert.ErrorIs(t, err, ErrStateMissing)
}

func TestContextSession(t *testing.T) {
	_, err := GetAuthUser(context.Background())
	assert.ErrorIs(t, err, ErrNoAuth)

	u := &user.User{ID: 1}
	ctx := WithSession(context.Background(), &Session{ID: "s", User: u})
	got, err := GetAuthUser(ctx)
	require.NoError(t, err)
	assert.Same(t, u, got)

	s, err := GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s", s.ID)
}
