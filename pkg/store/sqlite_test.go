package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestSQLiteStore(t)

	require.NoError(t, st.Save(ctx, []byte(`[{"id":"1"}]`)))

	data, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)
}

func TestSQLiteStoreMissingSlot(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	st := newTestSQLiteStore(t)

	require.NoError(t, st.Save(ctx, []byte(`first`)))
	require.NoError(t, st.Save(ctx, []byte(`second`)))

	data, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`second`), data)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")

	st, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, []byte(`persisted`)))
	require.NoError(t, st.Close())

	st2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer st2.Close()

	data, err := st2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`persisted`), data)
}
