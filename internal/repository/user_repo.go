package repository

import (
	"context"
	"time"

	"fueldepot/internal/idgen"
	"fueldepot/internal/model"
	"fueldepot/internal/storage"
)

// UserRepository defines data access for User records. The whole collection
// is re-persisted under one storage key on every write.
type UserRepository interface {
	GetAll(ctx context.Context) []model.User
	GetByID(ctx context.Context, id string) (model.User, bool)
	GetByUsername(ctx context.Context, username string) (model.User, bool)
	Add(ctx context.Context, user model.User) (model.User, bool)
	Update(ctx context.Context, id string, apply func(*model.User)) bool
	Delete(ctx context.Context, id string) bool
	ReplaceAll(ctx context.Context, users []model.User) bool
}

type userRepository struct {
	store storage.Store
}

// NewUserRepository returns a UserRepository over the given store.
func NewUserRepository(store storage.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetAll(ctx context.Context) []model.User {
	var users []model.User
	storage.ReadJSON(ctx, r.store, storage.KeyUsers, &users)
	return users
}

func (r *userRepository) GetByID(ctx context.Context, id string) (model.User, bool) {
	for _, u := range r.GetAll(ctx) {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (model.User, bool) {
	for _, u := range r.GetAll(ctx) {
		if u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// Add assigns the id and creation defaults and appends the record.
func (r *userRepository) Add(ctx context.Context, user model.User) (model.User, bool) {
	users := r.GetAll(ctx)
	user.ID = idgen.New("U")
	user.CreatedAt = time.Now()
	user.Active = true
	users = append(users, user)
	return user, r.store.Write(ctx, storage.KeyUsers, users)
}

// Update applies the mutation to the matching record. Returns false without
// writing when the id is not found.
func (r *userRepository) Update(ctx context.Context, id string, apply func(*model.User)) bool {
	users := r.GetAll(ctx)
	for i := range users {
		if users[i].ID == id {
			apply(&users[i])
			return r.store.Write(ctx, storage.KeyUsers, users)
		}
	}
	return false
}

func (r *userRepository) Delete(ctx context.Context, id string) bool {
	users := r.GetAll(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return r.store.Write(ctx, storage.KeyUsers, kept)
}

func (r *userRepository) ReplaceAll(ctx context.Context, users []model.User) bool {
	return r.store.Write(ctx, storage.KeyUsers, users)
}
