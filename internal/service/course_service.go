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

// ErrDuplicateCourseCode indicates a course with the same code (compared
// case-insensitively) already exists.
var ErrDuplicateCourseCode = errors.New("course code already exists")

// CourseService orchestrates course management use cases.
type CourseService interface {
	Create(ctx context.Context, req dto.CourseCreateRequest) (dto.CourseResponse, error)
	Get(ctx context.Context, code string) (dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Update(ctx context.Context, code string, req dto.CourseUpdateRequest) (dto.CourseResponse, error)
	Delete(ctx context.Context, code string) error
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
		now:       time.Now,
	}
}

func (s *courseService) Create(ctx context.Context, req dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.CourseResponse{}, validationError(err)
	}

	code := strings.TrimSpace(req.Code)

	_, found, err := s.repo.FindByCodeFold(ctx, code)
	if err != nil {
		return dto.CourseResponse{}, err
	}
	if found {
		return dto.CourseResponse{}, ErrDuplicateCourseCode
	}

	now := s.now().UTC()
	course := models.Course{
		Code:      code,
		Name:      strings.TrimSpace(req.Name),
		Credits:   req.Credits,
		Semester:  req.Semester,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Str("course_code", course.Code).Msg("course created")
	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Get(ctx context.Context, code string) (dto.CourseResponse, error) {
	course, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return dto.CourseResponse{}, err
	}
	return dto.NewCourseResponse(course), nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course))
	}

	return responses, nil
}

func (s *courseService) Update(ctx context.Context, code string, req dto.CourseUpdateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.CourseResponse{}, validationError(err)
	}

	course, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return dto.CourseResponse{}, err
	}

	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}
	course.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, course); err != nil {
		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
