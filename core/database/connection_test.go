package database

import (
	"path/filepath"
	"testing"

	"github.com/AzielCF/az-access/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Name:   filepath.Join(t.TempDir(), "nested", "access.db"),
		},
	}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Ping(db))
	require.NoError(t, Close(db))
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mysql"}}

	_, err := NewDatabase(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestClose_NilHandle(t *testing.T) {
	assert.NoError(t, Close(nil))
}
