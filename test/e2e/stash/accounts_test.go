package stash_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/stash/pkg/stashsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginSession(t *testing.T) {
	baseURL, cleanup := setupStashContainer(t, withEnv(relaxedRateLimits()))
	defer cleanup()

	ctx := t.Context()
	c := newClient(t, baseURL)

	registered, err := c.Register(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, registered.Account.ID)
	require.NotEmpty(t, c.SessionToken(), "register sets the session cookie")

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, registered.Account.ID, me.ID)
	require.Equal(t, "alice", me.Name)

	// A second client logs in with the same credentials
	other := newClient(t, baseURL)
	_, err = other.Me(ctx)
	require.ErrorIs(t, err, stashsdk.ErrUnauthenticated)

	loggedIn, err := other.Login(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)
	require.Equal(t, registered.Account.ID, loggedIn.Account.ID)

	_, err = other.Login(ctx, "alice", "Correct horse battery staple")
	require.ErrorIs(t, err, stashsdk.ErrInvalidCredentials)

	_, err = other.Login(ctx, "nobody", "correct horse battery staple")
	require.ErrorIs(t, err, stashsdk.ErrInvalidCredentials)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Me(ctx)
	require.ErrorIs(t, err, stashsdk.ErrUnauthenticated)
}

func TestRegisterDuplicateName(t *testing.T) {
	baseURL, cleanup := setupStashContainer(t, withEnv(relaxedRateLimits()))
	defer cleanup()

	ctx := t.Context()
	_, err := newClient(t, baseURL).Register(ctx, "bob", "pw-one")
	require.NoError(t, err)

	_, err = newClient(t, baseURL).Register(ctx, "bob", "pw-two")
	require.ErrorIs(t, err, stashsdk.ErrNameTaken)
	assertStatus(t, err, http.StatusConflict)
}

func TestTamperedSessionRejected(t *testing.T) {
	baseURL, cleanup := setupStashContainer(t, withEnv(relaxedRateLimits()))
	defer cleanup()

	ctx := t.Context()
	c := newClient(t, baseURL)
	_, err := c.Register(ctx, "carol", "pw")
	require.NoError(t, err)

	token := []byte(c.SessionToken())
	last := len(token) - 1
	if token[last] == 'A' {
		token[last] = 'B'
	} else {
		token[last] = 'A'
	}
	c.SetSessionToken(string(token))

	_, err = c.Me(ctx)
	require.ErrorIs(t, err, stashsdk.ErrUnauthenticated)
}
