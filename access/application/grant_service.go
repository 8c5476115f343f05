package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AzielCF/az-access/access/domain"
	"github.com/sirupsen/logrus"
)

// UpsertResult is the outcome of a grant request.
type UpsertResult struct {
	Grant   *domain.AccessGrant
	Outcome domain.GrantOutcome
	Message string
}

// GrantService owns the grant lifecycle: create, keep while valid, renew once expired.
type GrantService struct {
	repo   domain.GrantRepository
	locker domain.KeyLocker
	policy domain.ExpiryPolicy
	now    func() time.Time
}

type Option func(*GrantService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *GrantService) {
		s.now = now
	}
}

func NewGrantService(repo domain.GrantRepository, locker domain.KeyLocker, policy domain.ExpiryPolicy, opts ...Option) *GrantService {
	s := &GrantService{
		repo:   repo,
		locker: locker,
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GrantService) Policy() domain.ExpiryPolicy {
	return s.policy
}

// Upsert grants access for req. Requests for the same key are serialized, so
// concurrent callers never produce two grants for one (msisdn, service_id).
func (s *GrantService) Upsert(ctx context.Context, req domain.GrantRequest) (*UpsertResult, error) {
	key := req.Key()

	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock grant %s: %w", key, err)
	}
	defer unlock()

	now := s.now()

	existing, err := s.repo.FindOne(ctx, req.MSISDN, req.ServiceID)
	switch {
	case errors.Is(err, domain.ErrGrantNotFound):
		return s.create(ctx, req, now)
	case err != nil:
		return nil, fmt.Errorf("find grant %s: %w", key, err)
	}

	return s.renewIfExpired(ctx, existing, req, now)
}

func (s *GrantService) create(ctx context.Context, req domain.GrantRequest, now time.Time) (*UpsertResult, error) {
	expiresAt := s.policy.ComputeExpiry(now)
	grant := &domain.AccessGrant{
		MSISDN:        req.MSISDN,
		ServiceID:     req.ServiceID,
		Context:       req.Context,
		ExternalRef:   req.ExternalRef,
		TransactionID: req.TransactionID,
		Source:        req.Source,
		MNO:           req.MNO,
		ExpiresAt:     &expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, grant); err != nil {
		if !errors.Is(err, domain.ErrDuplicateGrant) {
			return nil, fmt.Errorf("insert grant %s: %w", req.Key(), err)
		}
		// Another instance won the race without sharing our lock; continue from its row.
		logrus.Warnf("[ACCESS] Grant %s was created concurrently, re-reading", req.Key())
		existing, findErr := s.repo.FindOne(ctx, req.MSISDN, req.ServiceID)
		if findErr != nil {
			return nil, fmt.Errorf("find grant %s after conflict: %w", req.Key(), findErr)
		}
		return s.renewIfExpired(ctx, existing, req, now)
	}

	logrus.Infof("[ACCESS] Granted %s until %s", req.Key(), expiresAt.Format(time.RFC3339))
	return s.result(grant, domain.OutcomeCreated), nil
}

func (s *GrantService) renewIfExpired(ctx context.Context, existing *domain.AccessGrant, req domain.GrantRequest, now time.Time) (*UpsertResult, error) {
	if existing.IsValid(now) {
		logrus.Debugf("[ACCESS] Grant %s still valid until %s", req.Key(), existing.ExpiresAt.Format(time.RFC3339))
		return s.result(existing, domain.OutcomeAlreadyValid), nil
	}

	updated, err := s.repo.Update(ctx, existing.ID, domain.GrantUpdate{
		Context:       req.Context,
		ExternalRef:   req.ExternalRef,
		TransactionID: req.TransactionID,
		Source:        req.Source,
		MNO:           req.MNO,
		ExpiresAt:     s.policy.ComputeExpiry(now),
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("renew grant %s: %w", req.Key(), err)
	}

	logrus.Infof("[ACCESS] Renewed %s until %s", req.Key(), updated.ExpiresAt.Format(time.RFC3339))
	return s.result(updated, domain.OutcomeRenewed), nil
}

func (s *GrantService) result(g *domain.AccessGrant, outcome domain.GrantOutcome) *UpsertResult {
	return &UpsertResult{Grant: g, Outcome: outcome, Message: s.policy.Message(outcome)}
}

// List returns every grant, expired ones included, in insertion order.
func (s *GrantService) List(ctx context.Context) ([]*domain.AccessGrant, error) {
	grants, err := s.repo.FindAll(ctx, domain.GrantFilter{})
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return nonNil(grants), nil
}

// Filter returns the grants matching every provided criterion. At least one is required.
func (s *GrantService) Filter(ctx context.Context, filter domain.GrantFilter) ([]*domain.AccessGrant, error) {
	if filter.IsEmpty() {
		return nil, domain.ErrFilterCriteriaRequired
	}
	grants, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("filter grants: %w", err)
	}
	return nonNil(grants), nil
}

// ListBySubscriber returns every grant held by msisdn.
func (s *GrantService) ListBySubscriber(ctx context.Context, msisdn string) ([]*domain.AccessGrant, error) {
	return s.Filter(ctx, domain.GrantFilter{MSISDN: msisdn})
}

func nonNil(grants []*domain.AccessGrant) []*domain.AccessGrant {
	if grants == nil {
		return []*domain.AccessGrant{}
	}
	return grants
}
