package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitolquiz/internal/roster"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntities() []roster.Entity {
	return []roster.Entity{
		{Name: "Bernie Sanders", State: "Vermont", Party: roster.PartyIndependent, Seniority: roster.SenioritySenior, PortraitRef: "portraits/sanders.jpg"},
		{Name: "Peter Welch", State: "Vermont", Party: roster.PartyDemocrat, Seniority: roster.SeniorityJunior},
		{Name: "Ben Ray Luján", State: "New Mexico", Party: roster.PartyDemocrat, Seniority: roster.SeniorityJunior},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestJournalModeWALOnDisk(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestRosterRepo_EmptyStore(t *testing.T) {
	repo := openTestStore(t).RosterRepo()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, roster.ErrEmptyRoster)

	imp, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, imp)
}

func TestRosterRepo_ImportThenLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.RosterRepo()
	ctx := context.Background()

	imp, err := repo.Import(ctx, "senators.json", testEntities())
	require.NoError(t, err)
	assert.Equal(t, 3, imp.Entities)
	assert.Equal(t, "senators.json", imp.Source)

	r, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testEntities(), r.All())
	assert.Equal(t, []string{"Vermont", "New Mexico"}, r.States())

	last, err := repo.LastImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, imp.ID, last.ID)
	assert.WithinDuration(t, imp.ImportedAt, last.ImportedAt, time.Millisecond)
}

func TestRosterRepo_ImportReplaces(t *testing.T) {
	repo := openTestStore(t).RosterRepo()
	ctx := context.Background()

	_, err := repo.Import(ctx, "first", testEntities())
	require.NoError(t, err)
	_, err = repo.Import(ctx, "second", testEntities()[:1])
	require.NoError(t, err)

	r, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	last, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", last.Source)
}

func TestRosterRepo_ImportEmptyKeepsExisting(t *testing.T) {
	repo := openTestStore(t).RosterRepo()
	ctx := context.Background()

	_, err := repo.Import(ctx, "first", testEntities())
	require.NoError(t, err)
	_, err = repo.Import(ctx, "empty", nil)
	assert.ErrorIs(t, err, roster.ErrEmptyRoster)

	r, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}

func TestRosterRepo_DefaultRosterRoundTrip(t *testing.T) {
	repo := openTestStore(t).RosterRepo()
	ctx := context.Background()

	def, err := roster.Default(nil)
	require.NoError(t, err)
	_, err = repo.Import(ctx, "embedded", def.All())
	require.NoError(t, err)

	r, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, def.All(), r.All())
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("CAPITOLQUIZ_DB", filepath.Join(dir, "custom", "quiz.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "quiz.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("CAPITOLQUIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "capitolquiz", "capitolquiz.db"), p)
}
