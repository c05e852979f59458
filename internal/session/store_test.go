package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "sessions.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.Add(ctx, Session{Title: "Morning focus", Minutes: 50, Tag: "work",
		StartedAt: time.Unix(1000, 0)})
	require.NoError(t, err)
	id2, err := s.Add(ctx, Session{Title: "Reading", Minutes: 25, Tag: "learning",
		StartedAt: time.Unix(2000, 0)})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "Reading", got[0].Title)
	assert.Equal(t, id2, got[0].ID)
	assert.Equal(t, 25, got[0].Minutes)
	assert.Equal(t, time.Unix(2000, 0).Unix(), got[0].StartedAt.Unix())
	assert.Equal(t, "Morning focus", got[1].Title)
}

func TestEmptyList(t *testing.T) {
	s := openTestStore(t)
	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntities(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id, err := s.Add(ctx, Session{Title: "Swim"})
	require.NoError(t, err)

	ents, err := s.Entities(ctx)
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, id, ents[0].ID)
	assert.Equal(t, "Swim", ents[0].Title)
}

func TestReopenKeepsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.sqlite")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Add(ctx, Session{Title: "persisted"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
