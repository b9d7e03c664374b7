package memory

import (
	"context"
	"strings"
	"time"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/repository/contract"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.Id] = copyUser(user)
	r.store.userOrder = append(r.store.userOrder, user.Id)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.store.users[user.Id] = copyUser(user)
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copyUser(r.store.users[id]), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.store.userOrder))
	for _, id := range r.store.userOrder {
		if u, ok := r.store.users[id]; ok {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *userRepository) SearchByEmail(ctx context.Context, q string) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	needle := strings.ToLower(q)
	users := make([]*entity.User, 0)
	for _, id := range r.store.userOrder {
		u, ok := r.store.users[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(u.Email), needle) {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.users)), nil
}

func (r *userRepository) CountByType(ctx context.Context, userType entity.UserType) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, u := range r.store.users {
		if u.UserType == userType {
			count++
		}
	}
	return count, nil
}
