// file: internals/features/academy/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleStatus string

const (
	ScheduleActivo   ScheduleStatus = "activo"
	ScheduleInactivo ScheduleStatus = "inactivo"
)

/* =========================
   Model: ScheduleModel

   A recurring weekly class slot. Day is stored as its Spanish name
   ("Lunes", ...) and times as HH:mm strings; two schedules of the same
   branch/day must not overlap (validated by the schedules service).
========================= */

type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"type:uuid;primaryKey;column:schedule_id" json:"schedule_id"`

	ScheduleBranchID   uuid.UUID `gorm:"type:uuid;not null;index;column:schedule_branch_id" json:"schedule_branch_id"`
	ScheduleBranchName string    `gorm:"type:varchar(120);column:schedule_branch_name" json:"schedule_branch_name"`

	ScheduleDay       string `gorm:"type:varchar(12);not null;index;column:schedule_day" json:"schedule_day"`
	ScheduleStartTime string `gorm:"type:varchar(5);not null;column:schedule_start_time" json:"schedule_start_time"`
	ScheduleEndTime   string `gorm:"type:varchar(5);not null;column:schedule_end_time" json:"schedule_end_time"`

	ScheduleDiscipline string `gorm:"type:varchar(80);not null;column:schedule_discipline" json:"schedule_discipline"`

	// Optional assignment; the instructor clock-in flow requires it
	ScheduleInstructorID   *uuid.UUID `gorm:"type:uuid;index;column:schedule_instructor_id" json:"schedule_instructor_id,omitempty"`
	ScheduleInstructorName *string    `gorm:"type:varchar(160);column:schedule_instructor_name" json:"schedule_instructor_name,omitempty"`

	ScheduleStatus ScheduleStatus `gorm:"type:varchar(10);not null;default:'activo';column:schedule_status" json:"schedule_status"`

	ScheduleCreatedAt time.Time      `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"-"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (s *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ScheduleID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		s.ScheduleID = id
	}
	return nil
}
