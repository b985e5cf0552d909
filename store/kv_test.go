package store

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "redcar-test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return db
}

func TestGormKVGetSet(t *testing.T) {
	kv := NewGormKV(openTestDB(t))

	_, ok, err := kv.Get("redcar:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("redcar:parts", `[{"name":"Filtro"}]`))
	value, ok, err := kv.Get("redcar:parts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Filtro"}]`, value)

	// Set on an existing key overwrites
	require.NoError(t, kv.Set("redcar:parts", `[]`))
	value, ok, err = kv.Get("redcar:parts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestMemoryKVGetSet(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2"))
	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", value)
}
