package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/duyvawss25/Do-An-Co-So/internal/dto"
	"github.com/duyvawss25/Do-An-Co-So/internal/repository"
)

var (
	ErrUserNotFound = errors.New("Không tìm thấy người dùng")
	ErrDeleteSelf   = errors.New("Không thể xóa tài khoản đang đăng nhập")
)

// UserService serves the caller's own account plus admin account management.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Delete(ctx context.Context, actorID, userID string) error
}

type userService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewUserService builds the user service.
func NewUserService(users repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{users: users, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("user_id", user.UserID))

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	resps := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resps = append(resps, toUserResponse(&users[i]))
	}
	return resps, nil
}

func (s *userService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return ErrDeleteSelf
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}
