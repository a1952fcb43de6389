package dto

import (
	"time"

	"github.com/noah-isme/siakad-go-api/internal/models"
)

// GradeSubmissionRequest is the payload of a grade submission. When
// EditingRecordID is set the submission edits that record in place; the
// record's student identity is preserved regardless of StudentID.
type GradeSubmissionRequest struct {
	StudentID       string   `json:"student_id" validate:"required,len=9,numeric"`
	CourseCode      string   `json:"course_code" validate:"required"`
	Grade           *float64 `json:"grade" validate:"required,gte=0,lte=100"`
	Semester        string   `json:"semester" validate:"required,oneof=A B C"`
	Year            int      `json:"year" validate:"required"`
	Attempts        int      `json:"attempts" validate:"omitempty,gte=1"`
	EditingRecordID string   `json:"editing_record_id"`
}

// Reconciliation outcomes reported on grade submissions.
const (
	RecordOutcomeCreated = "created"
	RecordOutcomeRetaken = "retaken"
	RecordOutcomeEdited  = "edited"
)

// CourseRecordResponse describes a stored course record.
type CourseRecordResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseCode string    `json:"course_code"`
	Grade      float64   `json:"grade"`
	Semester   string    `json:"semester"`
	Year       int       `json:"year"`
	Attempts   int       `json:"attempts"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GradeSubmissionResponse reports the reconciliation outcome together with the
// written record.
type GradeSubmissionResponse struct {
	Outcome string               `json:"outcome"`
	Record  CourseRecordResponse `json:"record"`
}

// NewCourseRecordResponse maps a course record model to its response shape.
func NewCourseRecordResponse(record models.CourseRecord) CourseRecordResponse {
	return CourseRecordResponse{
		ID:         record.ID,
		StudentID:  record.StudentID,
		CourseCode: record.CourseCode,
		Grade:      record.Grade,
		Semester:   record.Semester,
		Year:       record.Year,
		Attempts:   record.Attempts,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
