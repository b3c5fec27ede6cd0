package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	"github.com/Ommishra2/Dataintellect/internal/core/domain"
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
	"github.com/Ommishra2/Dataintellect/internal/utils"
	"github.com/google/uuid"
)

// userService implements registration, authentication and admin user management.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	maxUsers int64
}

// NewUserService creates a new user service. maxUsers is the registration
// capacity cap.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, maxUsers int) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, maxUsers: int64(maxUsers)}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users during registration")
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count >= s.maxUsers {
		s.LogWarn(ctx, "Registration rejected, user limit reached", slog.Int64("count", count))
		return nil, fmt.Errorf("user limit reached (max %d users): %w", s.maxUsers, apperrors.ErrCapacity)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up email during registration")
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("new_user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown email: %w", apperrors.ErrAuthentication)
		}
		s.LogError(ctx, err, "Failed to look up user during login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("password mismatch: %w", apperrors.ErrAuthentication)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}
