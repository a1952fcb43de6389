package dto

import (
	"time"

	"github.com/noah-isme/siakad-go-api/internal/models"
)

// CourseCreateRequest creates a new course.
type CourseCreateRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Credits  int    `json:"credits" validate:"required,gt=0"`
	Semester string `json:"semester" validate:"required,oneof=A B C"`
}

// CourseUpdateRequest updates mutable course fields; the code is the store
// key and stays fixed.
type CourseUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Credits  *int    `json:"credits" validate:"omitempty,gt=0"`
	Semester *string `json:"semester" validate:"omitempty,oneof=A B C"`
}

// CourseResponse describes a stored course.
type CourseResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Credits   int       `json:"credits"`
	Semester  string    `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCourseResponse maps a course model to its response shape.
func NewCourseResponse(course models.Course) CourseResponse {
	return CourseResponse{
		Code:      course.Code,
		Name:      course.Name,
		Credits:   course.Credits,
		Semester:  course.Semester,
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
}
