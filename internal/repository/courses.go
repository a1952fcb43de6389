package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
)

// CourseRepository provides access to course documents.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByCode(ctx context.Context, code string) (models.Course, error)
	FindByCodeFold(ctx context.Context, code string) (models.Course, bool, error)
	Save(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, code string) error
}

type courseRepository struct {
	store store.Store
}

// NewCourseRepository constructs a course repository.
func NewCourseRepository(s store.Store) CourseRepository {
	return &courseRepository{store: s}
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	documents, err := r.store.List(ctx, store.CollectionCourses)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(documents))
	for _, raw := range documents {
		var course models.Course
		if err := decodeInto(store.CollectionCourses, raw, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (models.Course, error) {
	raw, err := r.store.Get(ctx, store.CollectionCourses, code)
	if err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := decodeInto(store.CollectionCourses, raw, &course); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

// FindByCodeFold locates a course by code ignoring case. Used by the
// uniqueness guard, which must treat "cs101" and "CS101" as the same course.
func (r *courseRepository) FindByCodeFold(ctx context.Context, code string) (models.Course, bool, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return models.Course{}, false, err
	}

	for _, course := range courses {
		if strings.EqualFold(course.Code, code) {
			return course, true, nil
		}
	}

	return models.Course{}, false, nil
}

func (r *courseRepository) Save(ctx context.Context, course models.Course) error {
	return r.store.Put(ctx, store.CollectionCourses, course.Code, course)
}

func (r *courseRepository) Delete(ctx context.Context, code string) error {
	return r.store.Delete(ctx, store.CollectionCourses, code)
}
