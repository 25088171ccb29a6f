package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lstephensFederation/lolTasks/internal/week"
)

func TestStateCycleIsClosed(t *testing.T) {
	states := []State{Todo, Pending, Done}
	for _, s := range states {
		assert.Equal(t, s, s.Next().Next().Next(), "three forward steps return to %s", s.Label())
		assert.Equal(t, s, s.Prev().Prev().Prev(), "three backward steps return to %s", s.Label())
		assert.Equal(t, s, s.Next().Prev())
	}
}

func TestStateSymbolsFixedWidth(t *testing.T) {
	for _, s := range []State{Todo, Pending, Done} {
		assert.Len(t, s.Symbol(), PrefixWidth)
	}
}

func TestParseStateFallsBackToTodo(t *testing.T) {
	assert.Equal(t, Pending, ParseState("PENDING"))
	assert.Equal(t, Todo, ParseState("NO-SUCH-STATE"))
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	snap := Snapshot{
		"2026-W07": {Title: "alpha", Tasks: []Task{{Text: "a", State: Todo}}},
	}
	clone := snap.Clone()
	clone["2026-W07"].Title = "beta"
	clone["2026-W07"].Tasks[0].Text = "changed"
	clone["2026-W07"].Tasks = append(clone["2026-W07"].Tasks, Task{Text: "b"})

	assert.Equal(t, "alpha", snap["2026-W07"].Title)
	assert.Equal(t, "a", snap["2026-W07"].Tasks[0].Text)
	assert.Len(t, snap["2026-W07"].Tasks, 1)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	empty, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, empty, "fresh database loads as an empty snapshot")

	snap := Snapshot{
		week.Key("2026-W07"): {
			Title: "this week",
			Tasks: []Task{
				{Text: "write report", State: Pending},
				{Text: "ship release", State: Todo},
			},
		},
		week.Key("2026-W08"): {Title: DefaultTitle},
	}
	require.NoError(t, store.Save(snap))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	// Saving again replaces, never appends.
	delete(snap, week.Key("2026-W08"))
	snap[week.Key("2026-W07")].Tasks = snap[week.Key("2026-W07")].Tasks[:1]
	require.NoError(t, store.Save(snap))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}
