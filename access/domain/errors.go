package domain

import "errors"

var (
	// ErrGrantNotFound is returned by the store when no grant matches.
	ErrGrantNotFound = errors.New("access grant not found")

	// ErrDuplicateGrant is returned by the store when a grant for the same msisdn and service already exists.
	ErrDuplicateGrant = errors.New("access grant for this msisdn and service_id already exists")

	// ErrFilterCriteriaRequired is returned when a filter carries neither msisdn nor service_id.
	ErrFilterCriteriaRequired = errors.New("at least one of msisdn or service_id must be provided")

	// ErrLockTimeout is returned when the per-key lock could not be acquired.
	ErrLockTimeout = errors.New("grant lock acquisition timed out")
)
