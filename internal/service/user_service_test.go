package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fueldepot/internal/model"
	"fueldepot/internal/repository"
	"fueldepot/internal/storage"
)

func newUserFixture() (UserService, repository.UserRepository) {
	store := storage.NewMemStore()
	repo := repository.NewUserRepository(store)
	repo.ReplaceAll(context.Background(), model.DefaultUsers(time.Now()))
	return NewUserService(repo), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Error("empty token")
	}
	if res.User.Role != model.RoleAdmin || res.User.Username != "admin" {
		t.Errorf("user payload wrong: %+v", res.User)
	}
	if len(res.User.Capabilities) == 0 {
		t.Error("capabilities missing from login payload")
	}
}

func TestLoginFailures(t *testing.T) {
	svc, repo := newUserFixture()
	ctx := context.Background()

	repo.Update(ctx, "U003", func(u *model.User) { u.Active = false })

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"unknown user", LoginRequest{Username: "ghost", Password: "x"}},
		{"wrong password", LoginRequest{Username: "admin", Password: "nope"}},
		{"deactivated account", LoginRequest{Username: "user1", Password: "user123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tc.req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Username: "driver7", Password: "pass1234", Name: "Driver Seven", Role: model.RoleRequester})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.ID == "" || !res.Active {
		t.Errorf("new account wrong: %+v", res)
	}

	if _, err := svc.Login(ctx, LoginRequest{Username: "driver7", Password: "pass1234"}); err != nil {
		t.Errorf("login as new account: %v", err)
	}

	if _, err := svc.Register(ctx, RegisterRequest{Username: "driver7", Password: "other", Name: "Dup", Role: model.RoleRequester}); err == nil {
		t.Error("duplicate username accepted")
	}
	if _, err := svc.Register(ctx, RegisterRequest{Username: "boss", Password: "pass", Name: "B", Role: "superuser"}); err == nil {
		t.Error("invalid role accepted")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, "U003", ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpass"}); err == nil {
		t.Error("wrong old password accepted")
	}
	if err := svc.ChangePassword(ctx, "U003", ChangePasswordRequest{OldPassword: "user123", NewPassword: "newpass"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Username: "user1", Password: "newpass"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Username: "user1", Password: "user123"}); err == nil {
		t.Error("old password still works")
	}
}

func TestUpdateAndDeleteUser(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Update(ctx, "U003", UpdateUserRequest{Role: "superuser"}); err == nil {
		t.Error("invalid role accepted on update")
	}

	res, err := svc.Update(ctx, "U003", UpdateUserRequest{Name: "Renamed", Role: model.RoleOfficer})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Name != "Renamed" || res.Role != model.RoleOfficer {
		t.Errorf("update not applied: %+v", res)
	}

	if err := svc.Delete(ctx, "U003"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, "U003"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "U003"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: err = %v, want ErrNotFound", err)
	}
}

func TestUserListOmitsCredentials(t *testing.T) {
	svc, _ := newUserFixture()
	users := svc.List(context.Background())
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3 seeded accounts", len(users))
	}
}
