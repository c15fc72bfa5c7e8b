package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "radar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_LoadMissingKey(t *testing.T) {
	s := openTemp(t)

	v, ok, err := s.Load("routine-radar-habits")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLite_SaveOverwrites(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Save("notes-2024-01-01", "first"))
	require.NoError(t, s.Save("notes-2024-01-01", "second"))

	v, ok, err := s.Load("notes-2024-01-01")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLite_EmptyValueIsPresent(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Save("notes-2024-01-01", ""))
	_, ok, err := s.Load("notes-2024-01-01")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("mood-2024-03-05", "good"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Load("mood-2024-03-05")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "good", v)
}

func TestSQLite_KeysByPrefix(t *testing.T) {
	s := openTemp(t)

	for _, k := range []string{"tasks-2024-01-02", "notes-2024-01-01", "tasks-2024-01-01", "tasks_x"} {
		require.NoError(t, s.Save(k, "x"))
	}

	keys, err := s.Keys("tasks-")
	require.NoError(t, err)
	assert.Equal(t, []string{"tasks-2024-01-01", "tasks-2024-01-02"}, keys)
}

func TestMemory_KeysAndFailSaves(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("b", "2"))
	require.NoError(t, m.Save("a", "1"))

	keys, err := m.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	m.FailSaves = true
	assert.ErrorIs(t, m.Save("c", "3"), ErrInjected)
	_, ok, _ := m.Load("c")
	assert.False(t, ok)
}
