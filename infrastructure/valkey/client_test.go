package valkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	c := &Client{keyPrefix: normalizePrefix("azaccess")}

	assert.Equal(t, "azaccess:grant-lock:27831234567:mtn_sa", c.Key("grant-lock", "27831234567:mtn_sa"))
	assert.Equal(t, "azaccess", c.Key())

	bare := &Client{}
	assert.Equal(t, "lock", bare.Key("lock"))
}

func TestNewClient_Live(t *testing.T) {
	c, err := NewClient(Config{Address: "localhost:6379", KeyPrefix: "azaccess-test", ConnectTimeout: 500 * time.Millisecond})
	if err != nil {
		t.Skipf("valkey not available: %v", err)
	}
	defer c.Close()

	assert.NoError(t, c.Ping(t.Context()))
}
