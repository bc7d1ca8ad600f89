package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/config"
	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/model"
	"github.com/duyvawss25/Do-An-Co-So/pkg/jwt"
)

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*model.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.UserID == "" {
		m.seq++
		u.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	cp := *u
	m.users[u.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	m.users[u.UserID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func newAuthFixture() (*mockUserRepo, *jwt.Manager, AuthService) {
	users := newMockUserRepo()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-at-least-16",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	svc := NewAuthService(users, jwtMgr, nil, zap.NewNop())
	return users, jwtMgr, svc
}

func TestAuthRegisterAndLogin(t *testing.T) {
	_, jwtMgr, svc := newAuthFixture()

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Quản trị",
		Email:    "admin@univ.edu.vn",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User.Role != "admin" {
		t.Errorf("Role = %s, want admin", reg.User.Role)
	}

	claims, err := jwtMgr.ParseToken(reg.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "access" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@univ.edu.vn",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user %s != registered %s", login.User.ID, reg.User.ID)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	_, _, svc := newAuthFixture()

	req := &dto.RegisterRequest{Name: "A", Email: "a@univ.edu.vn", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	_, _, svc := newAuthFixture()

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@univ.edu.vn", Password: "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@univ.edu.vn", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "missing@univ.edu.vn", Password: "secret123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthRefresh(t *testing.T) {
	_, _, svc := newAuthFixture()

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@univ.edu.vn", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("refresh returned empty tokens")
	}

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: reg.AccessToken})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Fatalf("err = %v, want ErrInvalidRefresh", err)
	}
}
