// file: internals/features/academy/students/dto/student_dto.go
package dto

import (
	"strings"

	m "gymku_backend/internals/features/academy/students/model"
)

type CreateStudentRequest struct {
	Name             string  `json:"student_name" validate:"required,min=2,max=80"`
	Lastname         string  `json:"student_lastname" validate:"required,min=2,max=80"`
	CI               string  `json:"student_ci" validate:"required,min=5,max=20"`
	Cellphone        string  `json:"student_cellphone" validate:"required,min=6,max=20"`
	Email            *string `json:"student_email" validate:"omitempty,email"`
	EmergencyContact *string `json:"student_emergency_contact" validate:"omitempty,max=120"`
	EmergencyPhone   *string `json:"student_emergency_phone" validate:"omitempty,max=20"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.CI = strings.TrimSpace(r.CI)
	r.Cellphone = strings.TrimSpace(r.Cellphone)
}

func (r *CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentName:             r.Name,
		StudentLastname:         r.Lastname,
		StudentCI:               r.CI,
		StudentCellphone:        r.Cellphone,
		StudentEmail:            r.Email,
		StudentEmergencyContact: r.EmergencyContact,
		StudentEmergencyPhone:   r.EmergencyPhone,
		StudentStatus:           m.StudentActivo,
	}
}

type UpdateStudentRequest struct {
	Name             *string `json:"student_name" validate:"omitempty,min=2,max=80"`
	Lastname         *string `json:"student_lastname" validate:"omitempty,min=2,max=80"`
	CI               *string `json:"student_ci" validate:"omitempty,min=5,max=20"`
	Cellphone        *string `json:"student_cellphone" validate:"omitempty,min=6,max=20"`
	Email            *string `json:"student_email" validate:"omitempty,email"`
	EmergencyContact *string `json:"student_emergency_contact" validate:"omitempty,max=120"`
	EmergencyPhone   *string `json:"student_emergency_phone" validate:"omitempty,max=20"`
	Status           *string `json:"student_status" validate:"omitempty,oneof=activo inactivo"`
}

func (r *UpdateStudentRequest) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Name != nil {
		out["student_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Lastname != nil {
		out["student_lastname"] = strings.TrimSpace(*r.Lastname)
	}
	if r.CI != nil {
		out["student_ci"] = strings.TrimSpace(*r.CI)
	}
	if r.Cellphone != nil {
		out["student_cellphone"] = strings.TrimSpace(*r.Cellphone)
	}
	if r.Email != nil {
		out["student_email"] = *r.Email
	}
	if r.EmergencyContact != nil {
		out["student_emergency_contact"] = *r.EmergencyContact
	}
	if r.EmergencyPhone != nil {
		out["student_emergency_phone"] = *r.EmergencyPhone
	}
	if r.Status != nil {
		out["student_status"] = *r.Status
	}
	return out
}
