package repository

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
)

func setupTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	s, err := store.NewGormStore(db, zerolog.New(io.Discard))
	require.NoError(t, err)
	return s
}

func TestRecordRepositoryListByStudentFiltersOnEquality(t *testing.T) {
	repo := NewRecordRepository(setupTestStore(t))
	ctx := context.Background()

	records := []models.CourseRecord{
		{ID: "rec-1", StudentID: "123456789", CourseCode: "CS101", Grade: 90, Semester: "A", Year: 2024, Attempts: 1},
		{ID: "rec-2", StudentID: "123456789", CourseCode: "MA201", Grade: 72, Semester: "B", Year: 2024, Attempts: 1},
		{ID: "rec-3", StudentID: "987654321", CourseCode: "CS101", Grade: 55, Semester: "A", Year: 2024, Attempts: 2},
	}
	for _, record := range records {
		require.NoError(t, repo.Save(ctx, record))
	}

	matched, err := repo.ListByStudent(ctx, "123456789")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, record := range matched {
		require.Equal(t, "123456789", record.StudentID)
	}
}

func TestRecordRepositoryFindByStudentAndCourse(t *testing.T) {
	repo := NewRecordRepository(setupTestStore(t))
	ctx := context.Background()

	record := models.CourseRecord{ID: "rec-1", StudentID: "123456789", CourseCode: "CS101", Grade: 64, Semester: "A", Year: 2023, Attempts: 1}
	require.NoError(t, repo.Save(ctx, record))

	found, ok, err := repo.FindByStudentAndCourse(ctx, "123456789", "CS101")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "rec-1", found.ID)

	// Course code match is exact; a differently cased code is a different course here.
	_, ok, err = repo.FindByStudentAndCourse(ctx, "123456789", "cs101")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStudentRepositoryGetByEmailIgnoresCase(t *testing.T) {
	repo := NewStudentRepository(setupTestStore(t))
	ctx := context.Background()

	student := models.Student{ID: "123456789", Name: "Dewi", Email: "Dewi@Example.com"}
	require.NoError(t, repo.Save(ctx, student))

	got, err := repo.GetByEmail(ctx, "dewi@example.com")
	require.NoError(t, err)
	require.Equal(t, "123456789", got.ID)
}

func TestCourseRepositoryFindByCodeFold(t *testing.T) {
	repo := NewCourseRepository(setupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.Course{Code: "CS101", Name: "Intro", Credits: 3, Semester: "A"}))

	_, ok, err := repo.FindByCodeFold(ctx, "cs101")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = repo.FindByCodeFold(ctx, "CS102")
	require.NoError(t, err)
	require.False(t, ok)
}
