// Package service provides business logic for the application.
package service

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rosterhq/roster/internal/metrics"
	"github.com/rosterhq/roster/internal/model"
	"github.com/rosterhq/roster/internal/repository"
	"github.com/rosterhq/roster/internal/validation"
)

const msgEmailInUse = "Email is already in use"

// UserService enforces business rules on top of the user repository.
type UserService struct {
	repo    *repository.UserRepository
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:    repo,
		metrics: recorder,
	}
}

// ListUsers returns one page of users with pagination metadata.
func (s *UserService) ListUsers(page, limit int, search string) ([]model.User, repository.Pagination) {
	users, pagination := s.repo.List(page, limit, search)
	s.metrics.IncUsersListed()
	return users, pagination
}

// CreateUser creates a user after checking email uniqueness. The check
// is case-insensitive; a conflict fails with *validation.Error keyed on
// "email".
func (s *UserService) CreateUser(name, email string) (*model.User, error) {
	if _, exists := s.repo.GetByEmail(email); exists {
		s.metrics.IncValidationFailed()
		return nil, validation.NewError("email", msgEmailInUse)
	}

	now := time.Now().UTC()
	user := s.repo.Create(model.User{
		ID:        ulid.Make().String(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.metrics.IncUserCreated()
	return &user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id string) (*model.User, bool) {
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial update. Changing the email to one owned
// by a different user fails with *validation.Error; a user may keep its
// own email without conflict. An unknown id returns (nil, nil) and
// changes nothing.
func (s *UserService) UpdateUser(id string, patch model.UserPatch) (*model.User, error) {
	if patch.Email != nil && *patch.Email != "" {
		if owner, exists := s.repo.GetByEmail(*patch.Email); exists && owner.ID != id {
			s.metrics.IncValidationFailed()
			return nil, validation.NewError("email", msgEmailInUse)
		}
	}

	user, ok := s.repo.Update(id, patch)
	if !ok {
		return nil, nil
	}
	s.metrics.IncUserUpdated()
	return user, nil
}

// DeleteUser removes a user by ID and reports whether it existed.
func (s *UserService) DeleteUser(id string) bool {
	deleted := s.repo.Delete(id)
	if deleted {
		s.metrics.IncUserDeleted()
	}
	return deleted
}
