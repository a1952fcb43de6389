package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/repository"
)

// ErrDuplicateProgramName indicates a program with the same name (compared
// case-insensitively) already exists.
var ErrDuplicateProgramName = errors.New("program name already exists")

// ProgramService orchestrates study program management use cases.
type ProgramService interface {
	Create(ctx context.Context, req dto.ProgramCreateRequest) (dto.ProgramResponse, error)
	Get(ctx context.Context, name string) (dto.ProgramResponse, error)
	List(ctx context.Context) ([]dto.ProgramResponse, error)
	Update(ctx context.Context, name string, req dto.ProgramUpdateRequest) (dto.ProgramResponse, error)
	Delete(ctx context.Context, name string) error
}

type programService struct {
	repo      repository.ProgramRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewProgramService constructs the program service.
func NewProgramService(repo repository.ProgramRepository, validate *validator.Validate, logger zerolog.Logger) ProgramService {
	return &programService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "program_service").Logger(),
		now:       time.Now,
	}
}

func (s *programService) Create(ctx context.Context, req dto.ProgramCreateRequest) (dto.ProgramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ProgramResponse{}, validationError(err)
	}

	name := strings.TrimSpace(req.Name)

	_, found, err := s.repo.FindByNameFold(ctx, name)
	if err != nil {
		return dto.ProgramResponse{}, err
	}
	if found {
		return dto.ProgramResponse{}, ErrDuplicateProgramName
	}

	now := s.now().UTC()
	program := models.Program{
		Name:         name,
		TotalCredits: req.TotalCredits,
		CourseCodes:  req.CourseCodes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Save(ctx, program); err != nil {
		return dto.ProgramResponse{}, err
	}

	s.logger.Info().Str("program", program.Name).Msg("program created")
	return dto.NewProgramResponse(program), nil
}

func (s *programService) Get(ctx context.Context, name string) (dto.ProgramResponse, error) {
	program, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return dto.ProgramResponse{}, err
	}
	return dto.NewProgramResponse(program), nil
}

func (s *programService) List(ctx context.Context) ([]dto.ProgramResponse, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProgramResponse, 0, len(programs))
	for _, program := range programs {
		responses = append(responses, dto.NewProgramResponse(program))
	}

	return responses, nil
}

func (s *programService) Update(ctx context.Context, name string, req dto.ProgramUpdateRequest) (dto.ProgramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ProgramResponse{}, validationError(err)
	}

	program, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return dto.ProgramResponse{}, err
	}

	if req.TotalCredits != nil {
		program.TotalCredits = *req.TotalCredits
	}
	if req.CourseCodes != nil {
		program.CourseCodes = req.CourseCodes
	}
	program.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, program); err != nil {
		return dto.ProgramResponse{}, err
	}

	return dto.NewProgramResponse(program), nil
}

func (s *programService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}
