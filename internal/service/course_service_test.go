package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

func TestCourseCreateRejectsDuplicateCodeIgnoringCase(t *testing.T) {
	repo := newFakeCourseRepo(models.Course{Code: "CS101", Name: "Intro", Credits: 3, Semester: "A"})
	svc := NewCourseService(repo, NewValidator(), testLogger())

	_, err := svc.Create(context.Background(), dto.CourseCreateRequest{
		Code: "cs101", Name: "Intro Again", Credits: 3, Semester: "A",
	})
	require.ErrorIs(t, err, ErrDuplicateCourseCode)
	require.Len(t, repo.courses, 1)
}

func TestCourseCreateValidatesPayload(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), NewValidator(), testLogger())

	_, err := svc.Create(context.Background(), dto.CourseCreateRequest{Code: "", Name: "", Credits: 0, Semester: "Z"})
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Fields, "code")
	require.Contains(t, validationErr.Fields, "name")
	require.Contains(t, validationErr.Fields, "credits")
	require.Contains(t, validationErr.Fields, "semester")
}

func TestCourseUpdateKeepsCodeFixed(t *testing.T) {
	repo := newFakeCourseRepo(models.Course{Code: "CS101", Name: "Intro", Credits: 3, Semester: "A"})
	svc := NewCourseService(repo, NewValidator(), testLogger())

	name := "Introduction to Computing"
	credits := 4
	updated, err := svc.Update(context.Background(), "CS101", dto.CourseUpdateRequest{Name: &name, Credits: &credits})
	require.NoError(t, err)
	require.Equal(t, "CS101", updated.Code)
	require.Equal(t, 4, updated.Credits)
}

func TestCourseGetMissingSurfacesNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), NewValidator(), testLogger())

	_, err := svc.Get(context.Background(), "NOPE")
	require.True(t, apperr.IsNotFound(err))
}
