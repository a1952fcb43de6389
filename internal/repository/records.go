package repository

import (
	"context"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
)

// RecordRepository provides access to course record documents.
type RecordRepository interface {
	List(ctx context.Context) ([]models.CourseRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.CourseRecord, error)
	GetByID(ctx context.Context, id string) (models.CourseRecord, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseCode string) (models.CourseRecord, bool, error)
	Save(ctx context.Context, record models.CourseRecord) error
	Delete(ctx context.Context, id string) error
}

type recordRepository struct {
	store store.Store
}

// NewRecordRepository constructs a course record repository.
func NewRecordRepository(s store.Store) RecordRepository {
	return &recordRepository{store: s}
}

func (r *recordRepository) List(ctx context.Context) ([]models.CourseRecord, error) {
	documents, err := r.store.List(ctx, store.CollectionRecords)
	if err != nil {
		return nil, err
	}

	records := make([]models.CourseRecord, 0, len(documents))
	for _, raw := range documents {
		var record models.CourseRecord
		if err := decodeInto(store.CollectionRecords, raw, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ListByStudent filters client-side by equality on the student id; the store
// has no query support beyond key lookup.
func (r *recordRepository) ListByStudent(ctx context.Context, studentID string) ([]models.CourseRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CourseRecord, 0, len(records))
	for _, record := range records {
		if record.StudentID == studentID {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (models.CourseRecord, error) {
	raw, err := r.store.Get(ctx, store.CollectionRecords, id)
	if err != nil {
		return models.CourseRecord{}, err
	}

	var record models.CourseRecord
	if err := decodeInto(store.CollectionRecords, raw, &record); err != nil {
		return models.CourseRecord{}, err
	}

	return record, nil
}

// FindByStudentAndCourse locates the authoritative record for the
// (studentId, courseCode) pair. The match on the course code is exact.
func (r *recordRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseCode string) (models.CourseRecord, bool, error) {
	records, err := r.List(ctx)
	if err != nil {
		return models.CourseRecord{}, false, err
	}

	for _, record := range records {
		if record.StudentID == studentID && record.CourseCode == courseCode {
			return record, true, nil
		}
	}

	return models.CourseRecord{}, false, nil
}

func (r *recordRepository) Save(ctx context.Context, record models.CourseRecord) error {
	return r.store.Put(ctx, store.CollectionRecords, record.ID, record)
}

func (r *recordRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionRecords, id)
}
