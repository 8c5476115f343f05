package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AzielCF/az-access/access/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for unique index collisions.
const pgUniqueViolation = "23505"

// --- Persistence Model ---

type grantModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	MSISDN        string     `gorm:"column:msisdn;size:16;not null;uniqueIndex:idx_grant_subscriber_service"`
	ServiceID     string     `gorm:"column:service_id;size:64;not null;uniqueIndex:idx_grant_subscriber_service;index:idx_grant_service"`
	Ctx           string     `gorm:"column:ctx;not null"`
	ExtRef        string     `gorm:"column:ext_ref;not null"`
	TransactionID string     `gorm:"column:transaction_id;not null"`
	Source        string     `gorm:"column:source;not null"`
	MNO           string     `gorm:"column:mno;size:64;not null"`
	ExpiresAt     *time.Time `gorm:"column:expires_at;index"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"`
}

func (grantModel) TableName() string {
	return "content_security_track"
}

// --- Repository Implementation ---

type GrantGormRepository struct {
	db *gorm.DB
}

func NewGrantGormRepository(db *gorm.DB) *GrantGormRepository {
	return &GrantGormRepository{db: db}
}

func (r *GrantGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&grantModel{})
}

func (r *GrantGormRepository) FindOne(ctx context.Context, msisdn, serviceID string) (*domain.AccessGrant, error) {
	var m grantModel
	err := r.db.WithContext(ctx).
		Where("msisdn = ? AND service_id = ?", msisdn, serviceID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrantNotFound
		}
		return nil, err
	}
	return fromGrantModel(m), nil
}

func (r *GrantGormRepository) Insert(ctx context.Context, grant *domain.AccessGrant) error {
	now := time.Now().UTC()
	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = now
	}
	if grant.UpdatedAt.IsZero() {
		grant.UpdatedAt = grant.CreatedAt
	}

	model := toGrantModel(grant)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateGrant
		}
		return err
	}

	grant.ID = model.ID
	return nil
}

func (r *GrantGormRepository) Update(ctx context.Context, id uint, fields domain.GrantUpdate) (*domain.AccessGrant, error) {
	result := r.db.WithContext(ctx).Model(&grantModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ctx":            fields.Context,
			"ext_ref":        fields.ExternalRef,
			"transaction_id": fields.TransactionID,
			"source":         fields.Source,
			"mno":            fields.MNO,
			"expires_at":     fields.ExpiresAt,
			"updated_at":     fields.UpdatedAt,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrGrantNotFound
	}

	var m grantModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrantNotFound
		}
		return nil, err
	}
	return fromGrantModel(m), nil
}

func (r *GrantGormRepository) FindAll(ctx context.Context, filter domain.GrantFilter) ([]*domain.AccessGrant, error) {
	query := r.db.WithContext(ctx).Model(&grantModel{})
	if filter.MSISDN != "" {
		query = query.Where("msisdn = ?", filter.MSISDN)
	}
	if filter.ServiceID != "" {
		query = query.Where("service_id = ?", filter.ServiceID)
	}

	var models []grantModel
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return fromGrantModels(models), nil
}

// Ping checks the connection behind the repository.
func (r *GrantGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

// --- Mappers ---

func toGrantModel(g *domain.AccessGrant) grantModel {
	return grantModel{
		ID:            g.ID,
		MSISDN:        g.MSISDN,
		ServiceID:     g.ServiceID,
		Ctx:           g.Context,
		ExtRef:        g.ExternalRef,
		TransactionID: g.TransactionID,
		Source:        g.Source,
		MNO:           g.MNO,
		ExpiresAt:     utcPtr(g.ExpiresAt),
		CreatedAt:     g.CreatedAt.UTC(),
		UpdatedAt:     g.UpdatedAt.UTC(),
	}
}

func fromGrantModel(m grantModel) *domain.AccessGrant {
	return &domain.AccessGrant{
		ID:            m.ID,
		MSISDN:        m.MSISDN,
		ServiceID:     m.ServiceID,
		Context:       m.Ctx,
		ExternalRef:   m.ExtRef,
		TransactionID: m.TransactionID,
		Source:        m.Source,
		MNO:           m.MNO,
		ExpiresAt:     utcPtr(m.ExpiresAt),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func fromGrantModels(models []grantModel) []*domain.AccessGrant {
	res := make([]*domain.AccessGrant, len(models))
	for i, m := range models {
		res[i] = fromGrantModel(m)
	}
	return res
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
