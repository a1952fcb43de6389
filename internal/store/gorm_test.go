package store

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

func setupStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	s, err := NewGormStore(db, zerolog.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestStoreStudentRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	student := models.Student{
		ID:               "123456789",
		Name:             "Dewi Lestari",
		Email:            "dewi@example.com",
		EnrolledCourses:  []string{"CS101", "MA201"},
		GradeSheet:       map[string]float64{"CS101": 88},
		Program:          "Informatics",
		Semester:         models.SemesterA,
		CompletedCredits: 12,
		CreatedAt:        time.Now().UTC().Truncate(time.Second),
		UpdatedAt:        time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, s.Put(ctx, CollectionStudents, student.ID, student))

	raw, err := s.Get(ctx, CollectionStudents, student.ID)
	require.NoError(t, err)

	var got models.Student
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, student, got)
}

func TestStorePutOverwritesExistingKey(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	course := models.Course{Code: "CS101", Name: "Intro", Credits: 3, Semester: models.SemesterA}
	require.NoError(t, s.Put(ctx, CollectionCourses, course.Code, course))

	course.Name = "Introduction to Computing"
	require.NoError(t, s.Put(ctx, CollectionCourses, course.Code, course))

	documents, err := s.List(ctx, CollectionCourses)
	require.NoError(t, err)
	require.Len(t, documents, 1)

	var got models.Course
	require.NoError(t, json.Unmarshal(documents[0], &got))
	require.Equal(t, "Introduction to Computing", got.Name)
}

func TestStoreGetMissingKeyReturnsNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get(context.Background(), CollectionStudents, "000000000")
	require.Error(t, err)
	require.True(t, apperr.IsNotFound(err))
}

func TestStoreDeleteMissingKeyReturnsNotFound(t *testing.T) {
	s := setupStore(t)

	err := s.Delete(context.Background(), CollectionCourses, "NOPE")
	require.Error(t, err)
	require.True(t, apperr.IsNotFound(err))
}

func TestStoreDeleteRemovesDocument(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	program := models.Program{Name: "Informatics", TotalCredits: 144}
	require.NoError(t, s.Put(ctx, CollectionPrograms, program.Name, program))
	require.NoError(t, s.Delete(ctx, CollectionPrograms, program.Name))

	_, err := s.Get(ctx, CollectionPrograms, program.Name)
	require.True(t, apperr.IsNotFound(err))
}

func TestStoreRejectsMalformedDocumentOnRead(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	s, err := NewGormStore(db, zerolog.New(io.Discard))
	require.NoError(t, err)

	// Grade above 100 violates the record schema; simulate a bad row written
	// by external tooling.
	bad := map[string]interface{}{
		"id":          "rec-1",
		"student_id":  "123456789",
		"course_code": "CS101",
		"grade":       140.0,
		"semester":    "A",
		"year":        2024,
		"attempts":    1,
	}
	require.NoError(t, db.Exec(
		"INSERT INTO documents (collection, key, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		CollectionRecords, "rec-1", mustJSON(t, bad), time.Now(), time.Now(),
	).Error)

	_, err = s.Get(context.Background(), CollectionRecords, "rec-1")
	require.Error(t, err)

	var storeErr *apperr.StoreError
	require.ErrorAs(t, err, &storeErr)
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return body
}
