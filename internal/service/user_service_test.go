package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
)

func newUserFixture() (*mockUserRepo, UserService) {
	users := newMockUserRepo()
	return users, NewUserService(users, zap.NewNop())
}

func TestUserUpdateProfileRehashesPassword(t *testing.T) {
	users, svc := newUserFixture()
	users.users["user-1"] = &model.User{UserID: "user-1", Name: "A", PasswordHash: "old"}

	name := "B"
	password := "newsecret"
	resp, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{
		Name:     &name,
		Password: &password,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if resp.Name != "B" {
		t.Errorf("Name = %s, want B", resp.Name)
	}
	if users.users["user-1"].PasswordHash == "old" {
		t.Error("password hash was not replaced")
	}
}

func TestUserDelete(t *testing.T) {
	users, svc := newUserFixture()
	users.users["user-1"] = &model.User{UserID: "user-1"}
	users.users["user-2"] = &model.User{UserID: "user-2"}

	if err := svc.Delete(context.Background(), "user-1", "user-2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := users.users["user-2"]; ok {
		t.Error("user-2 still present after delete")
	}
}

func TestUserDeleteSelf(t *testing.T) {
	users, svc := newUserFixture()
	users.users["user-1"] = &model.User{UserID: "user-1"}

	err := svc.Delete(context.Background(), "user-1", "user-1")
	if !errors.Is(err, ErrDeleteSelf) {
		t.Fatalf("err = %v, want ErrDeleteSelf", err)
	}
}

func TestUserDeleteMissing(t *testing.T) {
	_, svc := newUserFixture()

	err := svc.Delete(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
