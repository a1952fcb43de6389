package dto

import (
	"time"

	"github.com/noah-isme/siakad-go-api/internal/models"
)

// ProgramCreateRequest creates a new study program.
type ProgramCreateRequest struct {
	Name         string   `json:"name" validate:"required"`
	TotalCredits int      `json:"total_credits" validate:"gte=0"`
	CourseCodes  []string `json:"course_codes"`
}

// ProgramUpdateRequest updates mutable program fields.
type ProgramUpdateRequest struct {
	TotalCredits *int     `json:"total_credits" validate:"omitempty,gte=0"`
	CourseCodes  []string `json:"course_codes"`
}

// ProgramResponse describes a stored study program.
type ProgramResponse struct {
	Name         string    `json:"name"`
	TotalCredits int       `json:"total_credits"`
	CourseCodes  []string  `json:"course_codes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProgramResponse maps a program model to its response shape.
func NewProgramResponse(program models.Program) ProgramResponse {
	return ProgramResponse{
		Name:         program.Name,
		TotalCredits: program.TotalCredits,
		CourseCodes:  program.CourseCodes,
		CreatedAt:    program.CreatedAt,
		UpdatedAt:    program.UpdatedAt,
	}
}
