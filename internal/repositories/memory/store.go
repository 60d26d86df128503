package memory

import (
	"context"
	"sync"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

// Store is the in-memory ledger: three append-only collections behind one
// RWMutex. The original runtime relied on a non-preempting event loop for
// serializability; here the single writer lock makes that explicit.
type Store struct {
	mu sync.RWMutex

	users []models.User
	waste []models.WasteRecord
	codes []models.VerificationCode
}

func NewStore() *Store {
	return &Store{}
}

// Repository returns the repository view over this store.
func (s *Store) Repository() repositories.Repository {
	return &repository{store: s}
}

// repository implements repositories.Repository. When locked is set the
// caller already holds the store's write lock (inside WithTransaction) and
// individual operations must not lock again.
type repository struct {
	store  *Store
	locked bool
}

func (r *repository) User() repositories.UserRepository { return &userRepository{r} }
func (r *repository) Waste() repositories.WasteRepository {
	return &wasteRepository{r}
}
func (r *repository) VerificationCode() repositories.VerificationCodeRepository {
	return &verificationCodeRepository{r}
}

func (r *repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	if r.locked {
		return fn(r)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&repository{store: r.store, locked: true})
}

func (r *repository) Ping(ctx context.Context) error { return nil }
func (r *repository) Close() error                   { return nil }

// rlock acquires the read lock unless the repository already holds the write
// lock; it returns the matching unlock.
func (r *repository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *repository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}
