package repository

import (
	"context"
	"math/rand"
	"time"

	"github.com/AzielCF/az-access/access/domain"
	"github.com/AzielCF/az-access/infrastructure/valkey"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	lockWaitTime   = 50 * time.Millisecond
	maxLockRetries = 100
)

// releaseLockScript deletes the lock only when it still carries our token.
const releaseLockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// ValkeyKeyLocker serializes callers per grant key across every instance
// sharing the same Valkey server.
// Lock values are "<owner>:<uuid>" so a stuck lock points at the replica holding it.
type ValkeyKeyLocker struct {
	client *valkey.Client
	ttl    time.Duration
	owner  string
}

func NewValkeyKeyLocker(client *valkey.Client, ttl time.Duration, owner string) *ValkeyKeyLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &ValkeyKeyLocker{client: client, ttl: ttl, owner: owner}
}

func (l *ValkeyKeyLocker) lockKey(key domain.GrantKey) string {
	return l.client.Key("grant-lock", key.String())
}

func (l *ValkeyKeyLocker) Lock(ctx context.Context, key domain.GrantKey) (func(), error) {
	lockKey := l.lockKey(key)
	token := uuid.New().String()
	if l.owner != "" {
		token = l.owner + ":" + token
	}
	inner := l.client.Inner()

	for i := 0; i < maxLockRetries; i++ {
		cmd := inner.B().Set().
			Key(lockKey).
			Value(token).
			Nx().
			Px(l.ttl).
			Build()

		err := inner.Do(ctx, cmd).Error()
		if err == nil {
			return func() { l.release(lockKey, token) }, nil
		}
		if !valkey.IsNil(err) {
			logrus.Debugf("[ACCESS] Lock attempt %d failed for %s: %v", i+1, key, err)
		}

		sleep := lockWaitTime + time.Duration(rand.Intn(20))*time.Millisecond
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}

	return nil, domain.ErrLockTimeout
}

// release runs on a fresh context so a cancelled request still frees its lock.
func (l *ValkeyKeyLocker) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	inner := l.client.Inner()
	cmd := inner.B().Eval().
		Script(releaseLockScript).
		Numkeys(1).
		Key(lockKey).
		Arg(token).
		Build()
	if err := inner.Do(ctx, cmd).Error(); err != nil {
		logrus.Warnf("[ACCESS] Failed to release lock %s: %v", lockKey, err)
	}
}
