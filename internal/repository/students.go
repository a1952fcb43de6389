package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

// StudentRepository provides access to student documents.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (models.Student, error)
	GetByEmail(ctx context.Context, email string) (models.Student, error)
	Save(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, id string) error
}

type studentRepository struct {
	store store.Store
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(s store.Store) StudentRepository {
	return &studentRepository{store: s}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	documents, err := r.store.List(ctx, store.CollectionStudents)
	if err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(documents))
	for _, raw := range documents {
		var student models.Student
		if err := decodeInto(store.CollectionStudents, raw, &student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (models.Student, error) {
	raw, err := r.store.Get(ctx, store.CollectionStudents, id)
	if err != nil {
		return models.Student{}, err
	}

	var student models.Student
	if err := decodeInto(store.CollectionStudents, raw, &student); err != nil {
		return models.Student{}, err
	}

	return student, nil
}

// GetByEmail scans the collection; the store offers no secondary indexes. The
// match is case-insensitive, mirroring the email uniqueness rule.
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return models.Student{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, student := range students {
		if strings.ToLower(student.Email) == needle {
			return student, nil
		}
	}

	return models.Student{}, apperr.NewNotFound(store.CollectionStudents, email)
}

func (r *studentRepository) Save(ctx context.Context, student models.Student) error {
	return r.store.Put(ctx, store.CollectionStudents, student.ID, student)
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionStudents, id)
}
