package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// DTOs for request validation
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=4"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse omits the stored credential.
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	Capabilities []string  `json:"capabilities,omitempty"`
}

// UserService covers registration, login and account administration.
// Credentials are compared in plaintext against the stored records; that is
// the system's documented security model, not an oversight.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	GetByID(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) []UserResponse
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService returns a UserService over the given repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	if !model.ValidRole(req.Role) {
		return UserResponse{}, fmt.Errorf("invalid role: must be admin, officer or requester")
	}
	if _, exists := s.repo.GetByUsername(ctx, req.Username); exists {
		return UserResponse{}, fmt.Errorf("username already exists")
	}

	user, ok := s.repo.Add(ctx, model.User{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if !ok {
		return UserResponse{}, fmt.Errorf("save user: %w", ErrStorageFailure)
	}
	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	user, found := s.repo.GetByUsername(ctx, req.Username)
	if !found {
		return TokenResponse{}, fmt.Errorf("user not found")
	}
	if !user.Active {
		return TokenResponse{}, fmt.Errorf("account is deactivated")
	}
	if user.Password != req.Password {
		return TokenResponse{}, fmt.Errorf("incorrect password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"iat":  time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("failed to generate token")
	}

	res := toUserResponse(user)
	res.Capabilities = model.Capabilities(user.Role)
	return TokenResponse{Token: signed, User: res}, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, found := s.repo.GetByID(ctx, userID)
	if !found {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if user.Password != req.OldPassword {
		return fmt.Errorf("old password is incorrect")
	}
	if !s.repo.Update(ctx, userID, func(u *model.User) { u.Password = req.NewPassword }) {
		return fmt.Errorf("update user: %w", ErrStorageFailure)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id string) (UserResponse, error) {
	user, found := s.repo.GetByID(ctx, id)
	if !found {
		return UserResponse{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	res := toUserResponse(user)
	res.Capabilities = model.Capabilities(user.Role)
	return res, nil
}

func (s *userService) List(ctx context.Context) []UserResponse {
	users := s.repo.GetAll(ctx)
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func (s *userService) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if req.Role != "" && !model.ValidRole(req.Role) {
		return UserResponse{}, fmt.Errorf("invalid role: must be admin, officer or requester")
	}

	ok := s.repo.Update(ctx, id, func(u *model.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Role != "" {
			u.Role = req.Role
		}
		if req.Password != "" {
			u.Password = req.Password
		}
		if req.Active != nil {
			u.Active = *req.Active
		}
	})
	if !ok {
		return UserResponse{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	user, _ := s.repo.GetByID(ctx, id)
	return toUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, found := s.repo.GetByID(ctx, id); !found {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if !s.repo.Delete(ctx, id) {
		return fmt.Errorf("delete user: %w", ErrStorageFailure)
	}
	return nil
}
