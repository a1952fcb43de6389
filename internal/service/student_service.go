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

// ErrDuplicateStudent indicates a student with the same id already exists.
var ErrDuplicateStudent = errors.New("student id already exists")

// ErrDuplicateStudentEmail indicates another student already uses the email.
var ErrDuplicateStudentEmail = errors.New("student email already in use")

// StudentService orchestrates student management use cases.
type StudentService interface {
	Create(ctx context.Context, req dto.StudentCreateRequest) (dto.StudentResponse, error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
	GetByEmail(ctx context.Context, email string) (dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
		now:       time.Now,
	}
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, validationError(err)
	}

	// Uniqueness is checked by scanning the current collection; the store
	// offers no unique indexes. The id is the store key, so any existing id
	// is a duplicate regardless of program.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	email := strings.TrimSpace(req.Email)
	for _, other := range existing {
		if other.ID == req.ID {
			return dto.StudentResponse{}, ErrDuplicateStudent
		}
		if strings.EqualFold(other.Email, email) {
			return dto.StudentResponse{}, ErrDuplicateStudentEmail
		}
	}

	now := s.now().UTC()
	student := models.Student{
		ID:               req.ID,
		Name:             strings.TrimSpace(req.Name),
		Email:            email,
		EnrolledCourses:  req.EnrolledCourses,
		GradeSheet:       map[string]float64{},
		Program:          strings.TrimSpace(req.Program),
		Semester:         req.Semester,
		CompletedCredits: req.CompletedCredits,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Save(ctx, student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Str("student_id", student.ID).Msg("student created")
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Get(ctx context.Context, id string) (dto.StudentResponse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}

// GetByEmail resolves the authenticated principal to a student document. The
// email claim from the identity provider is the sole link.
func (s *studentService) GetByEmail(ctx context.Context, email string) (dto.StudentResponse, error) {
	student, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}

	return responses, nil
}

func (s *studentService) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.StudentResponse{}, validationError(err)
	}

	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		others, err := s.repo.List(ctx)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		for _, other := range others {
			if other.ID != id && strings.EqualFold(other.Email, email) {
				return dto.StudentResponse{}, ErrDuplicateStudentEmail
			}
		}
		student.Email = email
	}
	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.EnrolledCourses != nil {
		student.EnrolledCourses = req.EnrolledCourses
	}
	if req.Program != nil {
		student.Program = strings.TrimSpace(*req.Program)
	}
	if req.Semester != nil {
		student.Semester = *req.Semester
	}
	if req.CompletedCredits != nil {
		student.CompletedCredits = *req.CompletedCredits
	}
	student.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, student); err != nil {
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("student_id", id).Msg("student deleted")
	return nil
}
