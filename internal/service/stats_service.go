package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/repository"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

// StatsService reduces a student's course records into display-ready
// aggregates for the dashboards.
type StatsService interface {
	ComputeStudentStats(ctx context.Context, studentID string) (dto.StudentStatsResponse, error)
	Progress(ctx context.Context, studentID string) (dto.ProgressResponse, error)
	GradeReport(ctx context.Context, studentID string) (dto.GradeReportResponse, error)
	MyCourses(ctx context.Context, studentID string) (dto.MyCoursesResponse, error)
}

type statsService struct {
	records      repository.RecordRepository
	students     repository.StudentRepository
	courses      repository.CourseRepository
	programs     repository.ProgramRepository
	cache        *redis.Client
	cacheTTL     time.Duration
	passingGrade float64
	logger       zerolog.Logger
}

// NewStatsService builds the statistics calculator. The cache may be nil.
func NewStatsService(
	records repository.RecordRepository,
	students repository.StudentRepository,
	courses repository.CourseRepository,
	programs repository.ProgramRepository,
	cache *redis.Client,
	ttl time.Duration,
	passingGrade float64,
	logger zerolog.Logger,
) StatsService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &statsService{
		records:      records,
		students:     students,
		courses:      courses,
		programs:     programs,
		cache:        cache,
		cacheTTL:     ttl,
		passingGrade: passingGrade,
		logger:       logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *statsService) ComputeStudentStats(ctx context.Context, studentID string) (dto.StudentStatsResponse, error) {
	cacheKey := statsCacheKey(studentID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.StudentStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("student_id", studentID).Msg("stats cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read stats cache")
		}
	}

	records, err := s.records.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	response := dto.StudentStatsResponse{
		StudentID:          studentID,
		TotalCourses:       len(records),
		PerSemesterAverage: []dto.SemesterAverage{},
	}

	// Empty record sets yield zero values, never NaN.
	if len(records) > 0 {
		var total float64
		var highest float64
		groupTotals := map[string]float64{}
		groupCounts := map[string]int{}
		groupOrder := []string{}

		for _, record := range records {
			total += record.Grade
			if record.Grade > highest {
				highest = record.Grade
			}
			if record.Grade >= s.passingGrade {
				response.PassingCount++
			}

			label := fmt.Sprintf("%d-%s", record.Year, record.Semester)
			if _, seen := groupCounts[label]; !seen {
				groupOrder = append(groupOrder, label)
			}
			groupTotals[label] += record.Grade
			groupCounts[label]++
		}

		response.AverageGrade = round2(total / float64(len(records)))
		response.HighestGrade = highest

		for _, label := range groupOrder {
			response.PerSemesterAverage = append(response.PerSemesterAverage, dto.SemesterAverage{
				Label:   label,
				Average: round2(groupTotals[label] / float64(groupCounts[label])),
			})
		}
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store stats cache")
			}
		}
	}

	return response, nil
}

// Progress reports completed credits against the student's program total. The
// percentage is left unclamped: the program total may be a placeholder
// default, so values above 100 pass through.
func (s *statsService) Progress(ctx context.Context, studentID string) (dto.ProgressResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	response := dto.ProgressResponse{
		StudentID:        student.ID,
		Program:          student.Program,
		CompletedCredits: student.CompletedCredits,
		CurrentSemester:  student.Semester,
	}

	if student.Program != "" {
		program, err := s.programs.GetByName(ctx, student.Program)
		if err != nil && !apperr.IsNotFound(err) {
			return dto.ProgressResponse{}, err
		}
		response.TotalCredits = program.TotalCredits
	}

	if response.TotalCredits > 0 {
		response.CompletionPercent = round2(float64(response.CompletedCredits) / float64(response.TotalCredits) * 100)
	}

	return response, nil
}

// GradeReport joins the student's course records with course documents. A
// record whose course no longer exists still appears, with course details
// blank.
func (s *statsService) GradeReport(ctx context.Context, studentID string) (dto.GradeReportResponse, error) {
	records, err := s.records.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.GradeReportResponse{}, err
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return dto.GradeReportResponse{}, err
	}

	courseByCode := make(map[string]int, len(courses))
	for i, course := range courses {
		courseByCode[course.Code] = i
	}

	entries := make([]dto.GradeReportEntry, 0, len(records))
	for _, record := range records {
		entry := dto.GradeReportEntry{
			CourseCode: record.CourseCode,
			Grade:      record.Grade,
			Semester:   record.Semester,
			Year:       record.Year,
			Attempts:   record.Attempts,
			Passed:     record.Grade >= s.passingGrade,
		}
		if i, ok := courseByCode[record.CourseCode]; ok {
			entry.CourseName = courses[i].Name
			entry.Credits = courses[i].Credits
		}
		entries = append(entries, entry)
	}

	return dto.GradeReportResponse{StudentID: studentID, Entries: entries}, nil
}

// MyCourses lists the student's enrolled courses with the grade sheet entry
// joined in, for the home page summary.
func (s *statsService) MyCourses(ctx context.Context, studentID string) (dto.MyCoursesResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return dto.MyCoursesResponse{}, err
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return dto.MyCoursesResponse{}, err
	}

	courseByCode := make(map[string]int, len(courses))
	for i, course := range courses {
		courseByCode[course.Code] = i
	}

	enrolled := make([]dto.EnrolledCourse, 0, len(student.EnrolledCourses))
	for _, code := range student.EnrolledCourses {
		entry := dto.EnrolledCourse{Code: code}
		if i, ok := courseByCode[code]; ok {
			entry.Name = courses[i].Name
			entry.Credits = courses[i].Credits
			entry.Semester = courses[i].Semester
		}
		if grade, ok := student.GradeSheet[code]; ok {
			g := grade
			entry.Grade = &g
		}
		enrolled = append(enrolled, entry)
	}

	return dto.MyCoursesResponse{
		StudentID: student.ID,
		Program:   student.Program,
		Courses:   enrolled,
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
