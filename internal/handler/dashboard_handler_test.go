package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/handler"
	"github.com/noah-isme/siakad-go-api/internal/middleware"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

type mockStudentService struct {
	student      dto.StudentResponse
	byEmailErr   error
	lastEmailArg string
}

func (m *mockStudentService) Create(_ context.Context, _ dto.StudentCreateRequest) (dto.StudentResponse, error) {
	return dto.StudentResponse{}, nil
}

func (m *mockStudentService) Get(_ context.Context, _ string) (dto.StudentResponse, error) {
	return m.student, nil
}

func (m *mockStudentService) GetByEmail(_ context.Context, email string) (dto.StudentResponse, error) {
	m.lastEmailArg = email
	if m.byEmailErr != nil {
		return dto.StudentResponse{}, m.byEmailErr
	}
	return m.student, nil
}

func (m *mockStudentService) List(_ context.Context) ([]dto.StudentResponse, error) {
	return nil, nil
}

func (m *mockStudentService) Update(_ context.Context, _ string, _ dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	return m.student, nil
}

func (m *mockStudentService) Delete(_ context.Context, _ string) error { return nil }

type mockStatsService struct {
	stats       dto.StudentStatsResponse
	progress    dto.ProgressResponse
	report      dto.GradeReportResponse
	courses     dto.MyCoursesResponse
	lastStudent string
}

func (m *mockStatsService) ComputeStudentStats(_ context.Context, studentID string) (dto.StudentStatsResponse, error) {
	m.lastStudent = studentID
	return m.stats, nil
}

func (m *mockStatsService) Progress(_ context.Context, studentID string) (dto.ProgressResponse, error) {
	m.lastStudent = studentID
	return m.progress, nil
}

func (m *mockStatsService) GradeReport(_ context.Context, studentID string) (dto.GradeReportResponse, error) {
	m.lastStudent = studentID
	return m.report, nil
}

func (m *mockStatsService) MyCourses(_ context.Context, studentID string) (dto.MyCoursesResponse, error) {
	m.lastStudent = studentID
	return m.courses, nil
}

func newDashboardApp(students *mockStudentService, stats *mockStatsService, email string) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/me", func(c *fiber.Ctx) error {
		if email != "" {
			c.Locals(middleware.LocalUserEmail, email)
		}
		return c.Next()
	})
	handler.NewDashboardHandler(students, stats, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestDashboardHandler_StatsResolvesStudentByEmail(t *testing.T) {
	students := &mockStudentService{student: dto.StudentResponse{ID: "123456789", Email: "budi@example.com"}}
	stats := &mockStatsService{stats: dto.StudentStatsResponse{StudentID: "123456789", TotalCourses: 3, AverageGrade: 81.5}}
	app := newDashboardApp(students, stats, "budi@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "budi@example.com", students.lastEmailArg)
	require.Equal(t, "123456789", stats.lastStudent)

	var response struct {
		Data dto.StudentStatsResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, 3, response.Data.TotalCourses)
	require.Equal(t, 81.5, response.Data.AverageGrade)
}

func TestDashboardHandler_MissingEmailClaim(t *testing.T) {
	app := newDashboardApp(&mockStudentService{}, &mockStatsService{}, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardHandler_UnknownStudentEmail(t *testing.T) {
	students := &mockStudentService{byEmailErr: &apperr.NotFoundError{Entity: "student", Key: "ghost@example.com"}}
	app := newDashboardApp(students, &mockStatsService{}, "ghost@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/me/progress", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardHandler_ProgressAndReportRoutes(t *testing.T) {
	students := &mockStudentService{student: dto.StudentResponse{ID: "123456789"}}
	stats := &mockStatsService{
		progress: dto.ProgressResponse{StudentID: "123456789", CompletionPercent: 62.5},
		report:   dto.GradeReportResponse{StudentID: "123456789"},
		courses:  dto.MyCoursesResponse{StudentID: "123456789"},
	}
	app := newDashboardApp(students, stats, "budi@example.com")

	for _, path := range []string{"/api/v1/me/profile", "/api/v1/me/progress", "/api/v1/me/grade-report", "/api/v1/me/courses"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}
