package stash_test

import (
	"testing"

	"github.com/aussiebroadwan/stash/pkg/stashsdk"
	"github.com/stretchr/testify/require"
)

func TestPlainClip(t *testing.T) {
	baseURL, cleanup := setupStashContainer(t, withEnv(relaxedRateLimits()))
	defer cleanup()

	ctx := t.Context()
	c := newClient(t, baseURL)

	sent, err := c.SendClip(ctx, "hello world", "")
	require.NoError(t, err)
	require.False(t, sent.Protected)
	require.GreaterOrEqual(t, sent.Code, 0)
	require.LessOrEqual(t, sent.Code, 9999)

	got, err := newClient(t, baseURL).GetClip(ctx, sent.Code)
	require.NoError(t, err)
	require.Equal(t, "hello world", got.Content)
}

func TestProtectedClip(t *testing.T) {
	baseURL, cleanup := setupStashContainer(t, withEnv(relaxedRateLimits()))
	defer cleanup()

	ctx := t.Context()
	c := newClient(t, baseURL)

	sent, err := c.SendClip(ctx, "hello world", "swordfish")
	require.NoError(t, err)
	require.True(t, sent.Protected)

	_, err = c.GetClip(ctx, sent.Code)
	require.ErrorIs(t, err, stashsdk.ErrPassphraseRequired)

	opened, err := c.OpenClip(ctx, sent.Code, "swordfish")
	require.NoError(t, err)
	require.Equal(t, "hello world", opened.Content)

	_, err = c.OpenClip(ctx, sent.Code, "sw0rdfish")
	require.ErrorIs(t, err, stashsdk.ErrDecryptionFailed)
}
