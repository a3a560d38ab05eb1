// file: internals/features/academy/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentActivo   StudentStatus = "activo"
	StudentInactivo StudentStatus = "inactivo"
)

/* =========================
   Model: StudentModel
========================= */

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentName     string `gorm:"type:varchar(80);not null;column:student_name" json:"student_name"`
	StudentLastname string `gorm:"type:varchar(80);not null;column:student_lastname" json:"student_lastname"`

	// Cédula de identidad: the kiosk check-in key, unique across students
	StudentCI string `gorm:"type:varchar(20);not null;uniqueIndex:uq_students_ci;column:student_ci" json:"student_ci"`

	StudentCellphone        string  `gorm:"type:varchar(20);not null;column:student_cellphone" json:"student_cellphone"`
	StudentEmail            *string `gorm:"type:varchar(120);column:student_email" json:"student_email,omitempty"`
	StudentEmergencyContact *string `gorm:"type:varchar(120);column:student_emergency_contact" json:"student_emergency_contact,omitempty"`
	StudentEmergencyPhone   *string `gorm:"type:varchar(20);column:student_emergency_phone" json:"student_emergency_phone,omitempty"`

	StudentStatus StudentStatus `gorm:"type:varchar(10);not null;default:'activo';column:student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		s.StudentID = id
	}
	return nil
}

// FullName is the denormalized display name copied onto attendance records.
func (s *StudentModel) FullName() string {
	return s.StudentName + " " + s.StudentLastname
}
