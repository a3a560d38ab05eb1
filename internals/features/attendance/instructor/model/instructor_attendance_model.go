// file: internals/features/attendance/instructor/model/instructor_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorAttendanceStatus string

const (
	InstructorAttPresente         InstructorAttendanceStatus = "presente"
	InstructorAttRetrasado        InstructorAttendanceStatus = "retrasado"
	InstructorAttFalta            InstructorAttendanceStatus = "falta"
	InstructorAttPermiso          InstructorAttendanceStatus = "permiso"
	InstructorAttSalidaAnticipada InstructorAttendanceStatus = "salida-anticipada"
)

/* =========================
   Model: InstructorAttendanceModel

   One row per instructor clock-in for a scheduled class. Created at
   clock-in (presente/retrasado), mutated exactly once at clock-out
   (departure time, actual hours, possibly salida-anticipada),
   otherwise immutable.
========================= */

type InstructorAttendanceModel struct {
	InstructorAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:instructor_attendance_id" json:"instructor_attendance_id"`

	InstructorAttendanceInstructorID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_instructor_attendance_day;column:instructor_attendance_instructor_id" json:"instructor_attendance_instructor_id"`
	InstructorAttendanceInstructorName string    `gorm:"type:varchar(160);column:instructor_attendance_instructor_name" json:"instructor_attendance_instructor_name"`

	InstructorAttendanceScheduleID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_instructor_attendance_day;column:instructor_attendance_schedule_id" json:"instructor_attendance_schedule_id"`
	InstructorAttendanceBranchID   uuid.UUID `gorm:"type:uuid;not null;index;column:instructor_attendance_branch_id" json:"instructor_attendance_branch_id"`

	InstructorAttendanceExpectedStartTime string `gorm:"type:varchar(5);not null;column:instructor_attendance_expected_start_time" json:"instructor_attendance_expected_start_time"`
	InstructorAttendanceExpectedEndTime   string `gorm:"type:varchar(5);not null;column:instructor_attendance_expected_end_time" json:"instructor_attendance_expected_end_time"`

	InstructorAttendanceActualArrivalTime   string  `gorm:"type:varchar(5);not null;column:instructor_attendance_actual_arrival_time" json:"instructor_attendance_actual_arrival_time"`
	InstructorAttendanceActualDepartureTime *string `gorm:"type:varchar(5);column:instructor_attendance_actual_departure_time" json:"instructor_attendance_actual_departure_time,omitempty"`

	InstructorAttendanceIsLate      bool `gorm:"not null;default:false;column:instructor_attendance_is_late" json:"instructor_attendance_is_late"`
	InstructorAttendanceMinutesLate int  `gorm:"not null;default:0;column:instructor_attendance_minutes_late" json:"instructor_attendance_minutes_late"`

	InstructorAttendanceScheduledHours float64  `gorm:"type:numeric(5,2);not null;column:instructor_attendance_scheduled_hours" json:"instructor_attendance_scheduled_hours"`
	InstructorAttendanceActualHours    *float64 `gorm:"type:numeric(5,2);column:instructor_attendance_actual_hours" json:"instructor_attendance_actual_hours,omitempty"`

	InstructorAttendanceStatus InstructorAttendanceStatus `gorm:"type:varchar(18);not null;default:'presente';column:instructor_attendance_status" json:"instructor_attendance_status"`

	InstructorAttendanceDate time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_instructor_attendance_day;column:instructor_attendance_date" json:"instructor_attendance_date"`

	InstructorAttendanceCreatedAt time.Time `gorm:"column:instructor_attendance_created_at;autoCreateTime" json:"instructor_attendance_created_at"`
}

func (InstructorAttendanceModel) TableName() string { return "instructor_attendances" }

func (a *InstructorAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.InstructorAttendanceID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.InstructorAttendanceID = id
	}
	return nil
}
