package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AzielCF/az-access/access/domain"
	"github.com/AzielCF/az-access/core/config"
	"github.com/AzielCF/az-access/core/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGormRepo(t *testing.T) *GrantGormRepository {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Name:   filepath.Join(t.TempDir(), "access.db"),
		},
	}
	db, err := database.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	repo := NewGrantGormRepository(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func sampleGrant(msisdn, serviceID string, expiresAt time.Time) *domain.AccessGrant {
	return &domain.AccessGrant{
		MSISDN:        msisdn,
		ServiceID:     serviceID,
		Context:       "STOP",
		ExternalRef:   "8",
		TransactionID: "f27e40ed-8b1c-4e1a-a5b5-a6bfb0a4e9d4",
		Source:        "sms",
		MNO:           serviceID,
		ExpiresAt:     &expiresAt,
	}
}

func TestGrantGormRepository_InsertAndFind(t *testing.T) {
	repo := newTestGormRepo(t)
	ctx := context.Background()
	expires := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)

	g := sampleGrant("27831234567", "mtn_sa", expires)
	require.NoError(t, repo.Insert(ctx, g))
	assert.NotZero(t, g.ID)
	assert.False(t, g.CreatedAt.IsZero())

	found, err := repo.FindOne(ctx, "27831234567", "mtn_sa")
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
	assert.Equal(t, "STOP", found.Context)
	require.NotNil(t, found.ExpiresAt)
	assert.True(t, expires.Equal(*found.ExpiresAt))

	_, err = repo.FindOne(ctx, "27831234567", "cell_sa")
	assert.ErrorIs(t, err, domain.ErrGrantNotFound)
}

func TestGrantGormRepository_DuplicateKey(t *testing.T) {
	repo := newTestGormRepo(t)
	ctx := context.Background()
	expires := time.Now().UTC().Add(time.Hour)

	require.NoError(t, repo.Insert(ctx, sampleGrant("27831234567", "mtn_sa", expires)))
	err := repo.Insert(ctx, sampleGrant("27831234567", "mtn_sa", expires))
	assert.ErrorIs(t, err, domain.ErrDuplicateGrant)

	// Same msisdn on another service is a separate grant.
	require.NoError(t, repo.Insert(ctx, sampleGrant("27831234567", "cell_sa", expires)))
}

func TestGrantGormRepository_Update(t *testing.T) {
	repo := newTestGormRepo(t)
	ctx := context.Background()

	g := sampleGrant("27831234567", "mtn_sa", time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Insert(ctx, g))

	renewedAt := time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, g.ID, domain.GrantUpdate{
		Context:       "START",
		ExternalRef:   "9",
		TransactionID: "tx-2",
		Source:        "web",
		MNO:           "mtn_sa",
		ExpiresAt:     renewedAt.Add(24 * time.Hour),
		UpdatedAt:     renewedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, g.ID, updated.ID)
	assert.Equal(t, "START", updated.Context)
	assert.Equal(t, "web", updated.Source)
	assert.True(t, updated.ExpiresAt.Equal(time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, updated.UpdatedAt.Equal(renewedAt))

	_, err = repo.Update(ctx, 9999, domain.GrantUpdate{UpdatedAt: renewedAt})
	assert.ErrorIs(t, err, domain.ErrGrantNotFound)
}

func TestGrantGormRepository_FindAll(t *testing.T) {
	repo := newTestGormRepo(t)
	ctx := context.Background()
	expires := time.Now().UTC().Add(time.Hour)

	require.NoError(t, repo.Insert(ctx, sampleGrant("27831234567", "mtn_sa", expires)))
	require.NoError(t, repo.Insert(ctx, sampleGrant("27831234567", "cell_sa", expires)))
	require.NoError(t, repo.Insert(ctx, sampleGrant("27830000000", "mtn_sa", expires)))

	all, err := repo.FindAll(ctx, domain.GrantFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)

	bySubscriber, err := repo.FindAll(ctx, domain.GrantFilter{MSISDN: "27831234567"})
	require.NoError(t, err)
	assert.Len(t, bySubscriber, 2)

	exact, err := repo.FindAll(ctx, domain.GrantFilter{MSISDN: "27830000000", ServiceID: "mtn_sa"})
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "27830000000", exact[0].MSISDN)

	none, err := repo.FindAll(ctx, domain.GrantFilter{ServiceID: "telkom_sa"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.NoError(t, repo.Ping(ctx))
}
