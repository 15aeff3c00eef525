package anncache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	cache, err := New("redis://"+s.Addr(), time.Hour)
	require.NoError(t, err)
	return cache, s
}

func TestCache_PutAndAll(t *testing.T) {
	cache, _ := setupCache(t)
	defer cache.Close()

	ctx := context.Background()
	a := domain.Announcement{
		ID:        "e1",
		Title:     "GopherMeet",
		EventDate: "2026-10-01",
		Timestamp: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.Put(ctx, a))

	all, err := cache.All(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a, all[0])
}

func TestCache_PutReplacesWholeValue(t *testing.T) {
	cache, _ := setupCache(t)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.Announcement{ID: "e1", Title: "old"}))
	require.NoError(t, cache.Put(ctx, domain.Announcement{ID: "e1", Title: "new"}))

	all, err := cache.All(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Title)
}

func TestCache_AllSkipsCorruptEntries(t *testing.T) {
	cache, s := setupCache(t)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.Announcement{ID: "e1", Title: "good"}))
	s.Set("announce:broken", "{not json")

	all, err := cache.All(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "good", all[0].Title)
}

func TestCache_Expiry(t *testing.T) {
	s := miniredis.RunT(t)
	cache, err := New("redis://"+s.Addr(), time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.Announcement{ID: "e1"}))

	s.FastForward(2 * time.Minute)

	all, err := cache.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
