package repository

import (
	"context"
	"sync"
	"time"

	"github.com/AzielCF/az-access/access/domain"
)

// GrantMemoryRepository keeps grants in process memory.
// Data is lost on restart; used with DB_DRIVER=memory and in tests.
type GrantMemoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	grants []*domain.AccessGrant
	byKey  map[domain.GrantKey]*domain.AccessGrant
}

func NewGrantMemoryRepository() *GrantMemoryRepository {
	return &GrantMemoryRepository{
		byKey: make(map[domain.GrantKey]*domain.AccessGrant),
	}
}

func (r *GrantMemoryRepository) FindOne(ctx context.Context, msisdn, serviceID string) (*domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byKey[domain.GrantKey{MSISDN: msisdn, ServiceID: serviceID}]
	if !ok {
		return nil, domain.ErrGrantNotFound
	}
	return cloneGrant(g), nil
}

func (r *GrantMemoryRepository) Insert(ctx context.Context, grant *domain.AccessGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := grant.Key()
	if _, exists := r.byKey[key]; exists {
		return domain.ErrDuplicateGrant
	}

	now := time.Now().UTC()
	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = now
	}
	if grant.UpdatedAt.IsZero() {
		grant.UpdatedAt = grant.CreatedAt
	}

	r.nextID++
	grant.ID = r.nextID

	stored := cloneGrant(grant)
	r.grants = append(r.grants, stored)
	r.byKey[key] = stored
	return nil
}

func (r *GrantMemoryRepository) Update(ctx context.Context, id uint, fields domain.GrantUpdate) (*domain.AccessGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.grants {
		if g.ID != id {
			continue
		}
		expiresAt := fields.ExpiresAt
		g.Context = fields.Context
		g.ExternalRef = fields.ExternalRef
		g.TransactionID = fields.TransactionID
		g.Source = fields.Source
		g.MNO = fields.MNO
		g.ExpiresAt = &expiresAt
		g.UpdatedAt = fields.UpdatedAt
		return cloneGrant(g), nil
	}
	return nil, domain.ErrGrantNotFound
}

func (r *GrantMemoryRepository) FindAll(ctx context.Context, filter domain.GrantFilter) ([]*domain.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.AccessGrant, 0, len(r.grants))
	for _, g := range r.grants {
		if filter.Matches(g) {
			res = append(res, cloneGrant(g))
		}
	}
	return res, nil
}

// Count returns the number of stored grants.
func (r *GrantMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grants)
}

func cloneGrant(g *domain.AccessGrant) *domain.AccessGrant {
	c := *g
	if g.ExpiresAt != nil {
		t := *g.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}
