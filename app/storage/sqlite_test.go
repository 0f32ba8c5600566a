package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *SQLite {
	store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "state.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTokenRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken(ctx, "tok-1"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// a new login overwrites the single session row
	require.NoError(t, store.SetToken(ctx, "tok-2"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, store.ClearToken(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestReactionMarksPerPost(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	mark, err := store.ReactionMark(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, mark)

	require.NoError(t, store.SetReactionMark(ctx, 7, true))
	require.NoError(t, store.SetReactionMark(ctx, 8, false))

	mark, err = store.ReactionMark(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, mark)
	assert.True(t, *mark)

	mark, err = store.ReactionMark(ctx, 8)
	require.NoError(t, err)
	require.NotNil(t, mark)
	assert.False(t, *mark)

	// switching the reaction updates in place
	require.NoError(t, store.SetReactionMark(ctx, 7, false))
	mark, err = store.ReactionMark(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, mark)
	assert.False(t, *mark)
}

func TestClearReactionMark(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.SetReactionMark(ctx, 7, true))
	require.NoError(t, store.ClearReactionMark(ctx, 7))

	mark, err := store.ReactionMark(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, mark)
}

func TestClearReactionMarksWipesAll(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.SetToken(ctx, "tok-1"))
	require.NoError(t, store.SetReactionMark(ctx, 1, true))
	require.NoError(t, store.SetReactionMark(ctx, 2, false))

	require.NoError(t, store.ClearReactionMarks(ctx))

	for _, postID := range []int64{1, 2} {
		mark, err := store.ReactionMark(ctx, postID)
		require.NoError(t, err)
		assert.Nil(t, mark)
	}

	// the token is unrelated state and survives
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestReopenKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.sqlite")

	store, err := NewSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken(ctx, "tok-1"))
	require.NoError(t, store.SetReactionMark(ctx, 5, true))
	require.NoError(t, store.Close())

	store, err = NewSQLite(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	mark, err := store.ReactionMark(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, mark)
	assert.True(t, *mark)
}
