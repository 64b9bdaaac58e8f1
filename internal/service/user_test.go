package service

import (
	"errors"
	"testing"

	"github.com/rosterhq/roster/internal/metrics"
	"github.com/rosterhq/roster/internal/model"
	"github.com/rosterhq/roster/internal/repository"
	"github.com/rosterhq/roster/internal/validation"
)

func newTestService() (*UserService, *metrics.InMemoryRecorder) {
	recorder := metrics.NewInMemory()
	return NewUserService(repository.NewUserRepository(), recorder), recorder
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	svc, recorder := newTestService()

	user, err := svc.CreateUser("Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated ID")
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Errorf("got %s/%s, want Alice/alice@example.com", user.Name, user.Email)
	}
	if !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v on create", user.CreatedAt, user.UpdatedAt)
	}
	if got := recorder.Snapshot().UsersCreated; got != 1 {
		t.Errorf("UsersCreated = %d, want 1", got)
	}
}

func TestUserService_CreateUser_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	a, _ := svc.CreateUser("Alice", "alice@example.com")
	b, _ := svc.CreateUser("Bob", "bob@example.com")
	if a.ID == b.ID {
		t.Errorf("expected distinct IDs, both %s", a.ID)
	}
}

func TestUserService_CreateUser_DuplicateEmailDiffersByCase(t *testing.T) {
	t.Parallel()

	svc, recorder := newTestService()

	if _, err := svc.CreateUser("Alice", "a@x.com"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateUser("Bob", "A@X.com")
	if err == nil {
		t.Fatal("expected uniqueness conflict")
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if got := verr.Fields["email"]; len(got) != 1 || got[0] != "Email is already in use" {
		t.Errorf("email errors = %v, want [Email is already in use]", got)
	}
	if got := recorder.Snapshot().ValidationsFailed; got != 1 {
		t.Errorf("ValidationsFailed = %d, want 1", got)
	}
}

func TestUserService_GetUser_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	created, _ := svc.CreateUser("Alice", "alice@example.com")

	got, ok := svc.GetUser(created.ID)
	if !ok {
		t.Fatal("expected user to be found")
	}
	if got.Name != created.Name || got.Email != created.Email {
		t.Errorf("round trip mismatch: %s/%s", got.Name, got.Email)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Error("expected CreatedAt == UpdatedAt after create")
	}
}

func TestUserService_GetUser_Missing(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	if _, ok := svc.GetUser("nope"); ok {
		t.Error("expected missing user")
	}
}

func TestUserService_UpdateUser_OwnEmailNoConflict(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	created, _ := svc.CreateUser("Alice", "alice@example.com")

	email := "alice@example.com"
	name := "Alice Cooper"
	updated, err := svc.UpdateUser(created.ID, model.UserPatch{Name: &name, Email: &email})
	if err != nil {
		t.Fatalf("updating to own email should not conflict: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated user")
	}
	if updated.Name != "Alice Cooper" {
		t.Errorf("Name = %s, want Alice Cooper", updated.Name)
	}
}

func TestUserService_UpdateUser_TakenEmailConflicts(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	svc.CreateUser("Alice", "alice@example.com")
	bob, _ := svc.CreateUser("Bob", "bob@example.com")

	email := "ALICE@example.com"
	_, err := svc.UpdateUser(bob.ID, model.UserPatch{Email: &email})
	if err == nil {
		t.Fatal("expected conflict on another user's email")
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if got := verr.Fields["email"]; len(got) != 1 || got[0] != "Email is already in use" {
		t.Errorf("email errors = %v", got)
	}

	// Conflict must leave the target untouched.
	fresh, _ := svc.GetUser(bob.ID)
	if fresh.Email != "bob@example.com" {
		t.Errorf("Email = %s, want unchanged bob@example.com", fresh.Email)
	}
}

func TestUserService_UpdateUser_MissingID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	name := "Ghost"
	user, err := svc.UpdateUser("nope", model.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Error("expected nil user for unknown id")
	}
}

func TestUserService_UpdateUser_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	svc, recorder := newTestService()
	created, _ := svc.CreateUser("Alice", "alice@example.com")

	name := "Alicia"
	updated, err := svc.UpdateUser(created.ID, model.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want refreshed past %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if got := recorder.Snapshot().UsersUpdated; got != 1 {
		t.Errorf("UsersUpdated = %d, want 1", got)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	svc, recorder := newTestService()
	created, _ := svc.CreateUser("Alice", "alice@example.com")

	if !svc.DeleteUser(created.ID) {
		t.Error("expected delete to succeed")
	}
	if svc.DeleteUser(created.ID) {
		t.Error("expected delete of missing user to report false")
	}
	snap := recorder.Snapshot()
	if snap.UsersDeleted != 1 {
		t.Errorf("UsersDeleted = %d, want 1", snap.UsersDeleted)
	}
}

func TestUserService_DeletedEmailBecomesAvailable(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	created, _ := svc.CreateUser("Alice", "alice@example.com")
	svc.DeleteUser(created.ID)

	if _, err := svc.CreateUser("New Alice", "alice@example.com"); err != nil {
		t.Errorf("email of deleted user should be reusable: %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	svc, recorder := newTestService()
	svc.CreateUser("Alice", "alice@example.com")
	svc.CreateUser("Bob", "bob@example.com")
	svc.CreateUser("Carol", "carol@example.com")

	users, pagination := svc.ListUsers(1, 2, "")
	if len(users) != 2 {
		t.Errorf("len = %d, want 2", len(users))
	}
	if pagination.Pages != 2 || pagination.Total != 3 {
		t.Errorf("pagination = %+v, want pages 2 total 3", pagination)
	}
	if got := recorder.Snapshot().UsersListed; got != 1 {
		t.Errorf("UsersListed = %d, want 1", got)
	}
}
