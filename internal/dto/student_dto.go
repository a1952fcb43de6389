package dto

import (
	"time"

	"github.com/noah-isme/siakad-go-api/internal/models"
)

// StudentCreateRequest creates a new student. The id and email are locked
// after creation.
type StudentCreateRequest struct {
	ID               string   `json:"id" validate:"required,len=9,numeric"`
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	EnrolledCourses  []string `json:"enrolled_courses"`
	Program          string   `json:"program"`
	Semester         string   `json:"semester" validate:"omitempty,oneof=A B C"`
	CompletedCredits int      `json:"completed_credits" validate:"gte=0"`
}

// StudentUpdateRequest updates mutable student fields. The id is immutable
// and the grade sheet is owned by the reconciliation path, so neither appears
// here.
type StudentUpdateRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	EnrolledCourses  []string `json:"enrolled_courses"`
	Program          *string  `json:"program"`
	Semester         *string  `json:"semester" validate:"omitempty,oneof=A B C"`
	CompletedCredits *int     `json:"completed_credits" validate:"omitempty,gte=0"`
}

// StudentResponse describes a stored student.
type StudentResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	EnrolledCourses  []string           `json:"enrolled_courses"`
	GradeSheet       map[string]float64 `json:"grade_sheet"`
	Program          string             `json:"program"`
	Semester         string             `json:"semester"`
	CompletedCredits int                `json:"completed_credits"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// NewStudentResponse maps a student model to its response shape.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:               student.ID,
		Name:             student.Name,
		Email:            student.Email,
		EnrolledCourses:  student.EnrolledCourses,
		GradeSheet:       student.GradeSheet,
		Program:          student.Program,
		Semester:         student.Semester,
		CompletedCredits: student.CompletedCredits,
		CreatedAt:        student.CreatedAt,
		UpdatedAt:        student.UpdatedAt,
	}
}
