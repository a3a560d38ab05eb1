// file: internals/features/academy/instructors/dto/instructor_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "gymku_backend/internals/features/academy/instructors/model"
)

type CreateInstructorRequest struct {
	BranchID  uuid.UUID `json:"instructor_branch_id" validate:"required"`
	Name      string    `json:"instructor_name" validate:"required,min=2,max=80"`
	Lastname  string    `json:"instructor_lastname" validate:"required,min=2,max=80"`
	CI        string    `json:"instructor_ci" validate:"required,min=5,max=20"`
	Cellphone string    `json:"instructor_cellphone" validate:"required,min=6,max=20"`
	Email     *string   `json:"instructor_email" validate:"omitempty,email"`
}

func (r *CreateInstructorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.CI = strings.TrimSpace(r.CI)
	r.Cellphone = strings.TrimSpace(r.Cellphone)
}

// ToModel denormalizes the branch name so listings survive renames.
func (r *CreateInstructorRequest) ToModel(branchName string) m.InstructorModel {
	return m.InstructorModel{
		InstructorBranchID:   r.BranchID,
		InstructorBranchName: branchName,
		InstructorName:       r.Name,
		InstructorLastname:   r.Lastname,
		InstructorCI:         r.CI,
		InstructorCellphone:  r.Cellphone,
		InstructorEmail:      r.Email,
		InstructorStatus:     m.InstructorActivo,
	}
}

type UpdateInstructorRequest struct {
	Name      *string `json:"instructor_name" validate:"omitempty,min=2,max=80"`
	Lastname  *string `json:"instructor_lastname" validate:"omitempty,min=2,max=80"`
	CI        *string `json:"instructor_ci" validate:"omitempty,min=5,max=20"`
	Cellphone *string `json:"instructor_cellphone" validate:"omitempty,min=6,max=20"`
	Email     *string `json:"instructor_email" validate:"omitempty,email"`
	Status    *string `json:"instructor_status" validate:"omitempty,oneof=activo inactivo"`
}

func (r *UpdateInstructorRequest) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Name != nil {
		out["instructor_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Lastname != nil {
		out["instructor_lastname"] = strings.TrimSpace(*r.Lastname)
	}
	if r.CI != nil {
		out["instructor_ci"] = strings.TrimSpace(*r.CI)
	}
	if r.Cellphone != nil {
		out["instructor_cellphone"] = strings.TrimSpace(*r.Cellphone)
	}
	if r.Email != nil {
		out["instructor_email"] = *r.Email
	}
	if r.Status != nil {
		out["instructor_status"] = *r.Status
	}
	return out
}
