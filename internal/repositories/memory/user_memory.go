package memory

import (
	"context"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

type userRepository struct {
	r *repository
}

func (ur *userRepository) Create(ctx context.Context, user *models.User) error {
	unlock := ur.r.lock()
	defer unlock()

	// Sequential assignment: count+1, never reused (users are never deleted).
	user.ID = len(ur.r.store.users) + 1
	ur.r.store.users = append(ur.r.store.users, *user)
	return nil
}

func (ur *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	unlock := ur.r.rlock()
	defer unlock()

	for i := range ur.r.store.users {
		if ur.r.store.users[i].ID == id {
			user := ur.r.store.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (ur *userRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	unlock := ur.r.rlock()
	defer unlock()

	for i := range ur.r.store.users {
		if ur.r.store.users[i].Phone == phone {
			user := ur.r.store.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (ur *userRepository) List(ctx context.Context) ([]models.User, error) {
	unlock := ur.r.rlock()
	defer unlock()

	out := make([]models.User, len(ur.r.store.users))
	copy(out, ur.r.store.users)
	return out, nil
}

func (ur *userRepository) Count(ctx context.Context) (int, error) {
	unlock := ur.r.rlock()
	defer unlock()

	return len(ur.r.store.users), nil
}

func (ur *userRepository) Update(ctx context.Context, user *models.User) error {
	unlock := ur.r.lock()
	defer unlock()

	for i := range ur.r.store.users {
		if ur.r.store.users[i].ID == user.ID {
			ur.r.store.users[i] = *user
			return nil
		}
	}
	return repositories.ErrNotFound
}
