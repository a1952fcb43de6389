package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/repository"
)

// UserService manages the user accounts used for route gating. It shares the
// same gateway contract as the record entities but has no bearing on
// reconciliation or statistics.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, uid string) (dto.UserResponse, error)
	Update(ctx context.Context, uid string, req dto.UserUpdateRequest) (dto.UserResponse, error)
	Deactivate(ctx context.Context, uid string) error
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewUserService constructs the user service.
func NewUserService(repo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "user_service").Logger(),
		now:       time.Now,
	}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}

	return responses, nil
}

func (s *userService) Get(ctx context.Context, uid string) (dto.UserResponse, error) {
	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, uid string, req dto.UserUpdateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.UserResponse{}, validationError(err)
	}

	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return dto.UserResponse{}, err
	}

	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Str("uid", uid).Msg("user updated")
	return dto.NewUserResponse(user), nil
}

func (s *userService) Deactivate(ctx context.Context, uid string) error {
	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}

	user.IsActive = false
	user.UpdatedAt = s.now().UTC()

	return s.repo.Save(ctx, user)
}
