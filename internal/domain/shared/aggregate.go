package shared

import (
	"time"

	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// OwnedAggregate is an aggregate that belongs to exactly one user
type OwnedAggregate interface {
	AggregateRoot
	GetUserID() uuid.UUID
	IsOwnedBy(userID uuid.UUID) bool
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// GetVersion returns the aggregate version
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// MarkUpdated bumps UpdatedAt and the version after a successful mutation
func (a *BaseAggregateRoot) MarkUpdated() {
	a.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	a.IncrementVersion()
}

// NewBaseAggregateRoot creates a new base aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// OwnedAggregateRoot extends BaseAggregateRoot with the owning user.
// Records are only visible to and mutable by this user.
type OwnedAggregateRoot struct {
	BaseAggregateRoot
	UserID uuid.UUID
}

// NewOwnedAggregateRoot creates a new aggregate root owned by userID
func NewOwnedAggregateRoot(userID uuid.UUID) OwnedAggregateRoot {
	return OwnedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		UserID:            userID,
	}
}

// GetUserID returns the owner
func (o *OwnedAggregateRoot) GetUserID() uuid.UUID {
	return o.UserID
}

// IsOwnedBy reports whether userID owns the aggregate
func (o *OwnedAggregateRoot) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID != uuid.Nil && o.UserID == userID
}
