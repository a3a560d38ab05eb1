// file: internals/features/attendance/student/model/student_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentAttendanceStatus string

const (
	StudentAttPresente StudentAttendanceStatus = "presente"
	StudentAttFalta    StudentAttendanceStatus = "falta"
	StudentAttPermiso  StudentAttendanceStatus = "permiso"
)

/* =========================
   Model: StudentAttendanceModel

   One row per kiosk check-in. Immutable once created except for the
   status correction; deleting one must reverse the session ledger
   effect (handled by the service, never by raw deletes).

   The unique index on (student, attended_on) is what closes the
   duplicate-mark race: two concurrent check-ins collapse into one
   insert plus one SQLSTATE 23505.
========================= */

type StudentAttendanceModel struct {
	StudentAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_attendance_id" json:"student_attendance_id"`

	StudentAttendanceStudentID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_attendance_day;column:student_attendance_student_id" json:"student_attendance_student_id"`
	StudentAttendanceStudentName string    `gorm:"type:varchar(160);column:student_attendance_student_name" json:"student_attendance_student_name"`

	StudentAttendanceEnrollmentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_attendance_enrollment_id" json:"student_attendance_enrollment_id"`
	StudentAttendanceBranchID     uuid.UUID `gorm:"type:uuid;not null;index;column:student_attendance_branch_id" json:"student_attendance_branch_id"`

	// usedSessions AFTER the increment, and the remaining count after it
	StudentAttendanceSessionNumber          int `gorm:"not null;column:student_attendance_session_number" json:"student_attendance_session_number"`
	StudentAttendanceRemainingSessionsAfter int `gorm:"not null;column:student_attendance_remaining_sessions_after" json:"student_attendance_remaining_sessions_after"`

	StudentAttendanceStatus StudentAttendanceStatus `gorm:"type:varchar(10);not null;default:'presente';column:student_attendance_status" json:"student_attendance_status"`

	// Calendar day of the check-in (branch-local), duplicate-check key
	StudentAttendanceDate time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_student_attendance_day;column:student_attendance_date" json:"student_attendance_date"`

	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at;autoCreateTime" json:"student_attendance_created_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }

func (a *StudentAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.StudentAttendanceID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.StudentAttendanceID = id
	}
	return nil
}
