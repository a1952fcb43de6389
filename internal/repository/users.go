package repository

import (
	"context"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
)

// UserRepository provides access to user documents used for access gating.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUID(ctx context.Context, uid string) (models.User, error)
	Save(ctx context.Context, user models.User) error
	Delete(ctx context.Context, uid string) error
}

type userRepository struct {
	store store.Store
}

// NewUserRepository constructs a user repository.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	documents, err := r.store.List(ctx, store.CollectionUsers)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(documents))
	for _, raw := range documents {
		var user models.User
		if err := decodeInto(store.CollectionUsers, raw, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (models.User, error) {
	raw, err := r.store.Get(ctx, store.CollectionUsers, uid)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := decodeInto(store.CollectionUsers, raw, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) Save(ctx context.Context, user models.User) error {
	return r.store.Put(ctx, store.CollectionUsers, user.UID, user)
}

func (r *userRepository) Delete(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, store.CollectionUsers, uid)
}
