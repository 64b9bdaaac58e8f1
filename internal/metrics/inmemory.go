package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated      uint64
	UsersUpdated      uint64
	UsersDeleted      uint64
	UsersListed       uint64
	UsersNotFound     uint64
	ValidationsFailed uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated      uint64
	usersUpdated      uint64
	usersDeleted      uint64
	usersListed       uint64
	usersNotFound     uint64
	validationsFailed uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:      atomic.LoadUint64(&m.usersCreated),
		UsersUpdated:      atomic.LoadUint64(&m.usersUpdated),
		UsersDeleted:      atomic.LoadUint64(&m.usersDeleted),
		UsersListed:       atomic.LoadUint64(&m.usersListed),
		UsersNotFound:     atomic.LoadUint64(&m.usersNotFound),
		ValidationsFailed: atomic.LoadUint64(&m.validationsFailed),
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserUpdated increments the user updated counter.
func (m *InMemoryRecorder) IncUserUpdated() {
	atomic.AddUint64(&m.usersUpdated, 1)
}

// IncUserDeleted increments the user deleted counter.
func (m *InMemoryRecorder) IncUserDeleted() {
	atomic.AddUint64(&m.usersDeleted, 1)
}

// IncUsersListed increments the list requests counter.
func (m *InMemoryRecorder) IncUsersListed() {
	atomic.AddUint64(&m.usersListed, 1)
}

// IncUserNotFound increments the not-found counter.
func (m *InMemoryRecorder) IncUserNotFound() {
	atomic.AddUint64(&m.usersNotFound, 1)
}

// IncValidationFailed increments the validation failure counter.
func (m *InMemoryRecorder) IncValidationFailed() {
	atomic.AddUint64(&m.validationsFailed, 1)
}
