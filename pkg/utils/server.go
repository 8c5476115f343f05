package utils

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

const serverIDPrefix = "azaccess-"

// GetPersistentServerID returns a stable ID for the current replica.
// Order: override, storagePath/.server_id, hostname, then a random ID saved to storagePath.
func GetPersistentServerID(override, storagePath string) string {
	if override != "" {
		return override
	}

	idFile := filepath.Join(storagePath, ".server_id")
	if data, err := os.ReadFile(idFile); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	if hostname, err := os.Hostname(); err == nil && hostname != "" && hostname != "localhost" {
		if clean := sanitizeID(hostname); clean != "" {
			return serverIDPrefix + clean
		}
	}

	randomPart := make([]byte, 4)
	_, _ = rand.Read(randomPart)
	newID := serverIDPrefix + hex.EncodeToString(randomPart)

	_ = os.MkdirAll(storagePath, 0755)
	_ = os.WriteFile(idFile, []byte(newID), 0644)

	return newID
}

// sanitizeID keeps characters safe inside Valkey keys and log fields.
func sanitizeID(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return -1
	}, s)
}
