package user

import (
	"context"
	"errors"

	"toolsPlaza/domain"
	"toolsPlaza/pkg/logger"
	"toolsPlaza/pkg/utils"
)

// UserRepository contract interface
type UserRepository interface {
	Upsert(ctx context.Context, email string, patch domain.User) (domain.UpsertResult, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, email, role string) (int64, error)
}

// UserInfoRepository contract interface
type UserInfoRepository interface {
	Upsert(ctx context.Context, email string, info domain.UserInfo) (domain.UpsertResult, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserInfo, error)
}

type userService struct {
	userRepo UserRepository
	infoRepo UserInfoRepository
}

func NewUserService(userRepo UserRepository, infoRepo UserInfoRepository) *userService {
	return &userService{
		userRepo: userRepo,
		infoRepo: infoRepo,
	}
}

// SyncUser upserts the profile keyed by email and issues a fresh bearer
// token for the identity. Repeated syncs are idempotent.
func (s *userService) SyncUser(ctx context.Context, email string, patch domain.User) (domain.UpsertResult, string, error) {
	result, err := s.userRepo.Upsert(ctx, email, patch)
	if err != nil {
		return domain.UpsertResult{}, "", err
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return domain.UpsertResult{}, "", err
	}

	return result, token, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

// IsAdmin reports whether the email belongs to an existing admin user.
// Unknown emails are simply not admins.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.Role == domain.RoleAdmin, nil
}

// PromoteAdmin escalates the target's role. The requester must resolve to
// an existing admin user, otherwise the target is left untouched.
func (s *userService) PromoteAdmin(ctx context.Context, requesterEmail, targetEmail string) (int64, error) {
	requester, err := s.userRepo.FindByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrForbidden
		}
		return 0, err
	}

	if requester.Role != domain.RoleAdmin {
		return 0, domain.ErrForbidden
	}

	matched, err := s.userRepo.SetRole(ctx, targetEmail, domain.RoleAdmin)
	if err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, domain.ErrNotFound
	}

	return matched, nil
}

func (s *userService) UpsertUserInfo(ctx context.Context, email string, info domain.UserInfo) (domain.UpsertResult, error) {
	return s.infoRepo.Upsert(ctx, email, info)
}

func (s *userService) GetUserInfo(ctx context.Context, email string) (*domain.UserInfo, error) {
	return s.infoRepo.FindByEmail(ctx, email)
}
