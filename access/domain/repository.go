package domain

import (
	"context"
)

// GrantRepository persists access grants.
type GrantRepository interface {
	// FindOne returns ErrGrantNotFound when no grant exists for the pair.
	FindOne(ctx context.Context, msisdn, serviceID string) (*AccessGrant, error)
	// Insert assigns ID, CreatedAt and UpdatedAt. Returns ErrDuplicateGrant on a key collision.
	Insert(ctx context.Context, grant *AccessGrant) error
	// Update rewrites the renewal fields of the grant with the given ID.
	Update(ctx context.Context, id uint, fields GrantUpdate) (*AccessGrant, error)
	// FindAll returns the grants matching filter in insertion order.
	FindAll(ctx context.Context, filter GrantFilter) ([]*AccessGrant, error)
}

// KeyLocker serializes work on a single grant key. Unrelated keys never block each other.
type KeyLocker interface {
	// Lock blocks until the key is held and returns the function releasing it.
	Lock(ctx context.Context, key GrantKey) (unlock func(), err error)
}
