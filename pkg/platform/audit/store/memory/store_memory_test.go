package memory

import (
	"context"
	"testing"
	"time"

	audit "maricheck/pkg/platform/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, audit.Event{Subject: "crew:1", Action: "crew_registered", Timestamp: base}))
	require.NoError(t, store.Append(ctx, audit.Event{Subject: "crew:2", Action: "crew_registered", Timestamp: base.Add(time.Minute)}))
	require.NoError(t, store.Append(ctx, audit.Event{Subject: "crew:1", Action: "status_changed", Timestamp: base.Add(2 * time.Minute)}))

	t.Run("list by subject newest first", func(t *testing.T) {
		events, err := store.ListBySubject(ctx, "crew:1")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "status_changed", events[0].Action)
	})

	t.Run("list recent honours limit", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "crew:1", events[0].Subject)
		assert.Equal(t, "crew:2", events[1].Subject)
	})

	t.Run("clear", func(t *testing.T) {
		store.Clear()
		events, err := store.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
