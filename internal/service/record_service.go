package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/noah-isme/siakad-go-api/internal/dto"
	"github.com/noah-isme/siakad-go-api/internal/events"
	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/observability"
	"github.com/noah-isme/siakad-go-api/internal/repository"
	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

// RecordService reconciles grade submissions against stored course records
// and keeps the denormalized student grade sheet in sync. It is the only
// writer of the grade sheet.
type RecordService interface {
	SubmitGrade(ctx context.Context, req dto.GradeSubmissionRequest) (dto.GradeSubmissionResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.CourseRecordResponse, error)
	Delete(ctx context.Context, recordID string) error
}

type recordService struct {
	records   repository.RecordRepository
	students  repository.StudentRepository
	validator *validator.Validate
	cache     *redis.Client
	publisher events.Publisher
	yearFloor int
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewRecordService constructs the reconciliation service. The cache and
// publisher may be nil; both are best-effort side channels.
func NewRecordService(
	records repository.RecordRepository,
	students repository.StudentRepository,
	validate *validator.Validate,
	cache *redis.Client,
	publisher events.Publisher,
	yearFloor int,
	logger zerolog.Logger,
) RecordService {
	return &recordService{
		records:   records,
		students:  students,
		validator: validate,
		cache:     cache,
		publisher: publisher,
		yearFloor: yearFloor,
		logger:    logger.With().Str("component", "record_service").Logger(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SubmitGrade applies the create / retake / edit decision rule.
//
// The record write and the grade sheet write are two separate store
// operations with no transaction spanning them. If the second fails after the
// first succeeded the store is inconsistent; that state is surfaced as
// *apperr.PartialReconciliationError and never masked as success.
func (s *recordService) SubmitGrade(ctx context.Context, req dto.GradeSubmissionRequest) (dto.GradeSubmissionResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/siakad-go-api/internal/service/record")
	ctx, span := tracer.Start(ctx, "record.submit_grade")
	span.SetAttributes(
		attribute.String("record.student_id", req.StudentID),
		attribute.String("record.course_code", req.CourseCode),
	)
	defer span.End()

	start := s.now()
	defer func() {
		observability.ReconciliationLatency().Observe(time.Since(start).Seconds())
	}()

	if err := s.validate(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.GradeSubmissionResponse{}, err
	}

	var (
		record  models.CourseRecord
		outcome string
		err     error
	)

	if req.EditingRecordID != "" {
		record, err = s.applyEdit(ctx, req)
		outcome = dto.RecordOutcomeEdited
	} else {
		record, outcome, err = s.applyCreateOrMerge(ctx, req)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "record_write_failed")
		return dto.GradeSubmissionResponse{}, err
	}

	// Second write of the pair: sync the denormalized grade sheet entry for
	// the (possibly new) course code on the record's student.
	if err := s.syncGradeSheet(ctx, record); err != nil {
		observability.Reconciliations().WithLabelValues("partial_failure").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "grade_sheet_write_failed")
		s.logger.Error().Err(err).
			Str("record_id", record.ID).
			Str("student_id", record.StudentID).
			Msg("record written but grade sheet update failed")
		return dto.GradeSubmissionResponse{}, &apperr.PartialReconciliationError{
			RecordID:   record.ID,
			StudentID:  record.StudentID,
			CourseCode: record.CourseCode,
			Err:        err,
		}
	}

	observability.Reconciliations().WithLabelValues(outcome).Inc()
	span.SetAttributes(attribute.String("record.outcome", outcome))

	s.invalidateStats(ctx, record.StudentID)
	s.publish(ctx, outcome, record)

	s.logger.Info().
		Str("record_id", record.ID).
		Str("student_id", record.StudentID).
		Str("course_code", record.CourseCode).
		Str("outcome", outcome).
		Int("attempts", record.Attempts).
		Msg("grade submission reconciled")

	return dto.GradeSubmissionResponse{
		Outcome: outcome,
		Record:  dto.NewCourseRecordResponse(record),
	}, nil
}

func (s *recordService) ListByStudent(ctx context.Context, studentID string) ([]dto.CourseRecordResponse, error) {
	records, err := s.records.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.NewCourseRecordResponse(record))
	}

	return responses, nil
}

func (s *recordService) Delete(ctx context.Context, recordID string) error {
	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return err
	}

	if err := s.records.Delete(ctx, recordID); err != nil {
		return err
	}

	s.invalidateStats(ctx, record.StudentID)
	return nil
}

// validate checks every field before any store access; all failures are
// reported together.
func (s *recordService) validate(req dto.GradeSubmissionRequest) error {
	fields := map[string]string{}

	if err := s.validator.Struct(req); err != nil {
		fields = fieldErrors(err)
	}

	if _, reported := fields["year"]; !reported {
		switch {
		case req.Year < 1000 || req.Year > 9999:
			fields["year"] = "must be a 4-digit year"
		case req.Year < s.yearFloor:
			fields["year"] = fmt.Sprintf("must not be before %d", s.yearFloor)
		}
	}

	if len(fields) > 0 {
		return apperr.NewValidation(fields)
	}

	return nil
}

// applyEdit loads the record named by the submission and updates it in place.
// The record's student identity is preserved regardless of the submitted
// student id; identity is not transferable through an edit. A missing record
// is surfaced, not recreated.
func (s *recordService) applyEdit(ctx context.Context, req dto.GradeSubmissionRequest) (models.CourseRecord, error) {
	record, err := s.records.GetByID(ctx, req.EditingRecordID)
	if err != nil {
		return models.CourseRecord{}, err
	}

	record.CourseCode = req.CourseCode
	record.Grade = *req.Grade
	record.Semester = req.Semester
	record.Year = req.Year
	if req.Attempts >= 1 {
		record.Attempts = req.Attempts
	}
	record.UpdatedAt = s.now().UTC()

	if err := s.records.Save(ctx, record); err != nil {
		return models.CourseRecord{}, err
	}

	return record, nil
}

// applyCreateOrMerge scans for an authoritative record matching the
// (studentId, courseCode) pair. A match is treated as a retake: the attempt
// counter advances even when the resubmitted grade is identical.
func (s *recordService) applyCreateOrMerge(ctx context.Context, req dto.GradeSubmissionRequest) (models.CourseRecord, string, error) {
	existing, found, err := s.records.FindByStudentAndCourse(ctx, req.StudentID, req.CourseCode)
	if err != nil {
		return models.CourseRecord{}, "", err
	}

	now := s.now().UTC()

	if found {
		existing.Grade = *req.Grade
		existing.Semester = req.Semester
		existing.Year = req.Year
		existing.Attempts = maxInt(1, existing.Attempts+1)
		existing.UpdatedAt = now

		if err := s.records.Save(ctx, existing); err != nil {
			return models.CourseRecord{}, "", err
		}

		return existing, dto.RecordOutcomeRetaken, nil
	}

	attempts := req.Attempts
	if attempts < 1 {
		attempts = 1
	}

	record := models.CourseRecord{
		ID:         s.newID(),
		StudentID:  req.StudentID,
		CourseCode: req.CourseCode,
		Grade:      *req.Grade,
		Semester:   req.Semester,
		Year:       req.Year,
		Attempts:   attempts,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.records.Save(ctx, record); err != nil {
		return models.CourseRecord{}, "", err
	}

	return record, dto.RecordOutcomeCreated, nil
}

func (s *recordService) syncGradeSheet(ctx context.Context, record models.CourseRecord) error {
	student, err := s.students.GetByID(ctx, record.StudentID)
	if err != nil {
		return err
	}

	if student.GradeSheet == nil {
		student.GradeSheet = map[string]float64{}
	}
	student.GradeSheet[record.CourseCode] = record.Grade
	student.UpdatedAt = s.now().UTC()

	return s.students.Save(ctx, student)
}

func (s *recordService) invalidateStats(ctx context.Context, studentID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(studentID)).Err(); err != nil {
		s.logger.Warn().Err(err).Str("student_id", studentID).Msg("failed to invalidate stats cache")
	}
}

func (s *recordService) publish(ctx context.Context, outcome string, record models.CourseRecord) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishRecordEvent(ctx, events.RecordEvent{
		Type:       "record." + outcome,
		RecordID:   record.ID,
		StudentID:  record.StudentID,
		CourseCode: record.CourseCode,
		Grade:      record.Grade,
		Attempts:   record.Attempts,
		OccurredAt: s.now().UTC(),
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
