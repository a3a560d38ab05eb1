// file: internals/features/academy/instructors/model/instructor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorStatus string

const (
	InstructorActivo   InstructorStatus = "activo"
	InstructorInactivo InstructorStatus = "inactivo"
)

/* =========================
   Model: InstructorModel
========================= */

type InstructorModel struct {
	InstructorID uuid.UUID `gorm:"type:uuid;primaryKey;column:instructor_id" json:"instructor_id"`

	InstructorBranchID uuid.UUID `gorm:"type:uuid;not null;index;column:instructor_branch_id" json:"instructor_branch_id"`
	// Denormalized so listings survive branch renames
	InstructorBranchName string `gorm:"type:varchar(120);column:instructor_branch_name" json:"instructor_branch_name"`

	InstructorName     string `gorm:"type:varchar(80);not null;column:instructor_name" json:"instructor_name"`
	InstructorLastname string `gorm:"type:varchar(80);not null;column:instructor_lastname" json:"instructor_lastname"`

	InstructorCI string `gorm:"type:varchar(20);not null;uniqueIndex:uq_instructors_ci;column:instructor_ci" json:"instructor_ci"`

	InstructorCellphone string  `gorm:"type:varchar(20);not null;column:instructor_cellphone" json:"instructor_cellphone"`
	InstructorEmail     *string `gorm:"type:varchar(120);column:instructor_email" json:"instructor_email,omitempty"`

	InstructorStatus InstructorStatus `gorm:"type:varchar(10);not null;default:'activo';column:instructor_status" json:"instructor_status"`

	InstructorCreatedAt time.Time      `gorm:"column:instructor_created_at;autoCreateTime" json:"instructor_created_at"`
	InstructorUpdatedAt time.Time      `gorm:"column:instructor_updated_at;autoUpdateTime" json:"instructor_updated_at"`
	InstructorDeletedAt gorm.DeletedAt `gorm:"column:instructor_deleted_at;index" json:"-"`
}

func (InstructorModel) TableName() string { return "instructors" }

func (i *InstructorModel) BeforeCreate(tx *gorm.DB) error {
	if i.InstructorID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		i.InstructorID = id
	}
	return nil
}

func (i *InstructorModel) FullName() string {
	return i.InstructorName + " " + i.InstructorLastname
}
