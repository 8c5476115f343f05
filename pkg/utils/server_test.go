package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPersistentServerID_Override(t *testing.T) {
	assert.Equal(t, "replica-a", GetPersistentServerID("replica-a", t.TempDir()))
}

func TestGetPersistentServerID_FromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".server_id"), []byte("  azaccess-saved\n"), 0644))

	assert.Equal(t, "azaccess-saved", GetPersistentServerID("", dir))
}

func TestGetPersistentServerID_Stable(t *testing.T) {
	dir := t.TempDir()
	first := GetPersistentServerID("", dir)

	assert.NotEmpty(t, first)
	assert.Contains(t, first, serverIDPrefix)
	assert.Equal(t, first, GetPersistentServerID("", dir))
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "web-01example", sanitizeID("web-01.example"))
}
