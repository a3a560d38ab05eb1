// file: internals/features/attendance/classes/model/class_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonType string

const (
	PersonStudent    PersonType = "student"
	PersonInstructor PersonType = "instructor"
)

type ClassAttendanceStatus string

const (
	ClassAttPresente  ClassAttendanceStatus = "presente"
	ClassAttRetrasado ClassAttendanceStatus = "retrasado"
	ClassAttFalta     ClassAttendanceStatus = "falta"
	ClassAttPermiso   ClassAttendanceStatus = "permiso"
)

/* =========================
   Model: ClassAttendanceModel

   Schedule-based attendance: a student or instructor marking presence
   in a specific class slot. The duplicate rule here is per
   (person, schedule, day), unlike the kiosk flow's per-day rule.
========================= */

type ClassAttendanceModel struct {
	ClassAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_attendance_id" json:"class_attendance_id"`

	ClassAttendancePersonType PersonType `gorm:"type:varchar(10);not null;column:class_attendance_person_type" json:"class_attendance_person_type"`
	ClassAttendancePersonID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_class_attendance_day;column:class_attendance_person_id" json:"class_attendance_person_id"`
	ClassAttendancePersonName string     `gorm:"type:varchar(160);column:class_attendance_person_name" json:"class_attendance_person_name"`

	// Set only for students
	ClassAttendanceEnrollmentID *uuid.UUID `gorm:"type:uuid;index;column:class_attendance_enrollment_id" json:"class_attendance_enrollment_id,omitempty"`

	ClassAttendanceScheduleID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_class_attendance_day;column:class_attendance_schedule_id" json:"class_attendance_schedule_id"`
	ClassAttendanceBranchID   uuid.UUID `gorm:"type:uuid;not null;index;column:class_attendance_branch_id" json:"class_attendance_branch_id"`
	ClassAttendanceBranchName string    `gorm:"type:varchar(120);column:class_attendance_branch_name" json:"class_attendance_branch_name"`

	ClassAttendanceDiscipline string `gorm:"type:varchar(80);column:class_attendance_discipline" json:"class_attendance_discipline"`

	// Weekday (0=Domingo..6=Sábado) of the marking
	ClassAttendanceDayOfWeek int `gorm:"not null;column:class_attendance_day_of_week" json:"class_attendance_day_of_week"`

	// Lateness fields, instructors only
	ClassAttendanceExpectedStartTime *string `gorm:"type:varchar(5);column:class_attendance_expected_start_time" json:"class_attendance_expected_start_time,omitempty"`
	ClassAttendanceActualArrivalTime *string `gorm:"type:varchar(5);column:class_attendance_actual_arrival_time" json:"class_attendance_actual_arrival_time,omitempty"`
	ClassAttendanceIsLate            bool    `gorm:"not null;default:false;column:class_attendance_is_late" json:"class_attendance_is_late"`
	ClassAttendanceMinutesLate       int     `gorm:"not null;default:0;column:class_attendance_minutes_late" json:"class_attendance_minutes_late"`

	ClassAttendanceStatus ClassAttendanceStatus `gorm:"type:varchar(10);not null;default:'presente';column:class_attendance_status" json:"class_attendance_status"`

	ClassAttendanceDate time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_class_attendance_day;column:class_attendance_date" json:"class_attendance_date"`

	ClassAttendanceCreatedAt time.Time `gorm:"column:class_attendance_created_at;autoCreateTime" json:"class_attendance_created_at"`
}

func (ClassAttendanceModel) TableName() string { return "class_attendances" }

func (a *ClassAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.ClassAttendanceID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.ClassAttendanceID = id
	}
	return nil
}
