package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "users.json"), zap.NewNop())
}

func TestFileStore_AddAttempt(t *testing.T) {
	t.Parallel()

	store := newFileStore(t)
	ctx := context.Background()

	attempt := models.AttemptRecord{
		Correct: 20,
		Elapsed: 42,
		Date:    time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local),
		Missed:  []string{},
	}

	require.NoError(t, store.AddAttempt(ctx, 42, attempt))

	got, err := store.Attempts(ctx, 42)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].Correct)
	assert.Equal(t, 42, got[0].Elapsed)
	assert.True(t, got[0].Date.Equal(attempt.Date))
	assert.Empty(t, got[0].Missed)
}

func TestFileStore_BestWorstOrderIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()

	orders := [][]int{
		{30, 10, 50},
		{50, 30, 10},
		{10, 50, 30},
	}

	for _, elapsed := range orders {
		store := newFileStore(t)
		for _, e := range elapsed {
			err := store.AddAttempt(ctx, 7, models.AttemptRecord{Correct: 15, Elapsed: e, Date: now})
			require.NoError(t, err)
		}

		data := store.load()
		profile, ok := data["7"]
		require.True(t, ok)
		require.NotNil(t, profile.BestTime)
		assert.Equal(t, 10, *profile.BestTime)
		assert.Equal(t, 50, profile.WorstTime)
		assert.Equal(t, 3, profile.TotalTests)
	}
}

func TestFileStore_UnknownUser(t *testing.T) {
	t.Parallel()

	store := newFileStore(t)

	got, err := store.Attempts(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path, zap.NewNop())
	ctx := context.Background()

	// Corrupt store reads as empty and is overwritten on the next save.
	got, err := store.Attempts(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.AddAttempt(ctx, 1, models.AttemptRecord{Correct: 12, Elapsed: 61, Date: time.Now()})
	require.NoError(t, err)

	got, err = store.Attempts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileStore_LegacyDateMigration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	raw := `{"5": {"attempts": [{"correct": 17, "time": 80, "errors": ["6 × 7"]}], "worst_time": 80, "total_tests": 1}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	store := NewFileStore(path, zap.NewNop())

	got, err := store.Attempts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.LegacyAttemptDate.Year(), got[0].Date.Year(), "undated attempt gets the legacy stamp")
	assert.Equal(t, []string{"6 × 7"}, got[0].Missed)
}
