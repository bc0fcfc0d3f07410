package testutil

import (
	"context"

	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/identity"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOwnedRepository is a testify mock of shared.OwnedRepository for any entity type.
// Embed it to add the extra methods of a concrete repository interface.
type MockOwnedRepository[T any] struct {
	mock.Mock
}

// FindByIDForUser implements shared.OwnedRepository.
func (m *MockOwnedRepository[T]) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// FindAllForUser implements shared.OwnedRepository.
func (m *MockOwnedRepository[T]) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]T, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// CountForUser implements shared.OwnedRepository.
func (m *MockOwnedRepository[T]) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Save implements shared.OwnedRepository.
func (m *MockOwnedRepository[T]) Save(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// DeleteForUser implements shared.OwnedRepository.
func (m *MockOwnedRepository[T]) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockSavedDashboardRepository adds the query lookup of dashboard.SavedDashboardRepository.
type MockSavedDashboardRepository struct {
	MockOwnedRepository[dashboard.SavedDashboard]
}

// FindByQueryForUser implements dashboard.SavedDashboardRepository.
func (m *MockSavedDashboardRepository) FindByQueryForUser(ctx context.Context, userID uuid.UUID, query string) (*dashboard.SavedDashboard, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.SavedDashboard), args.Error(1)
}

// MockUserRepository is a testify mock of identity.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// Create implements identity.UserRepository.
func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Update implements identity.UserRepository.
func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// FindByID implements identity.UserRepository.
func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

// FindByEmail implements identity.UserRepository.
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

// ExistsByEmail implements identity.UserRepository.
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
