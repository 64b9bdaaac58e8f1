// Package repository provides the in-memory user store.
package repository

import (
	"strings"
	"sync"

	"github.com/rosterhq/roster/internal/model"
)

// Pagination describes a windowed view over a filtered collection.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// UserRepository owns the in-memory user collection and is the sole
// mutation authority over it. All methods are safe for concurrent use;
// returned users are copies, so callers cannot mutate stored state.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
	order []string // insertion order, keeps pagination deterministic
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*model.User),
	}
}

// List returns one page of users with pagination metadata, optionally
// filtered by a case-insensitive substring match on name or email.
// The requested page is clamped into [1, pages]; pages is at least 1
// even when nothing matches. List never fails.
func (r *UserRepository) List(page, limit int, search string) ([]model.User, Pagination) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit < 1 {
		limit = 1
	}

	needle := strings.ToLower(search)
	filtered := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		filtered = append(filtered, *u)
	}

	total := len(filtered)
	pages := 1
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return filtered[start:end], Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(id string) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	out := *u
	return &out, true
}

// GetByEmail retrieves a user by case-insensitive exact email match.
// Under the uniqueness rule the service enforces there is at most one.
func (r *UserRepository) GetByEmail(email string) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		u := r.users[id]
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, true
		}
	}
	return nil, false
}

// Create inserts a user keyed by its ID. An existing user with the same
// ID is silently overwritten and keeps its insertion position; callers
// generate fresh IDs, so collisions are not expected in practice.
func (r *UserRepository) Create(user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		r.order = append(r.order, user.ID)
	}
	stored := user
	r.users[user.ID] = &stored
	return user
}

// Update applies a partial update to the user with the given ID and
// refreshes its UpdatedAt. It returns the mutated user, or (nil, false)
// when the ID is unknown, in which case nothing changes.
func (r *UserRepository) Update(id string, patch model.UserPatch) (*model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	u.Apply(patch)
	out := *u
	return &out, true
}

// Delete removes the user with the given ID and reports whether a
// removal occurred.
func (r *UserRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
