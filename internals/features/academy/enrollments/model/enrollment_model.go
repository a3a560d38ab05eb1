// file: internals/features/academy/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type EnrollmentStatus string

const (
	EnrollmentActiva     EnrollmentStatus = "activa"
	EnrollmentVencida    EnrollmentStatus = "vencida"
	EnrollmentCancelada  EnrollmentStatus = "cancelada"
	EnrollmentCompletada EnrollmentStatus = "completada"
)

// Terminal states admit no further session consumption. There is no
// transition back to activa anywhere; renewal creates a new enrollment.
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentCancelada || s == EnrollmentCompletada
}

type PaymentMethod string

const (
	PaymentQr       PaymentMethod = "Qr"
	PaymentEfectivo PaymentMethod = "Efectivo"
)

/* =========================
   Model: EnrollmentModel

   A student's paid membership cycle at one branch. The session counters
   (used/remaining) and the status are owned exclusively by the session
   ledger (enrollments/service); nothing else may write them.
========================= */

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentStudentID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollments_active,where:enrollment_status = 'activa';column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentStudentName string    `gorm:"type:varchar(160);column:enrollment_student_name" json:"enrollment_student_name"`

	EnrollmentMembershipID   uuid.UUID `gorm:"type:uuid;not null;column:enrollment_membership_id" json:"enrollment_membership_id"`
	EnrollmentMembershipName string    `gorm:"type:varchar(120);column:enrollment_membership_name" json:"enrollment_membership_name"`

	EnrollmentBranchID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollments_active,where:enrollment_status = 'activa';column:enrollment_branch_id" json:"enrollment_branch_id"`
	EnrollmentBranchName string    `gorm:"type:varchar(120);column:enrollment_branch_name" json:"enrollment_branch_name"`

	EnrollmentStartDate time.Time `gorm:"type:date;not null;column:enrollment_start_date" json:"enrollment_start_date"`
	EnrollmentEndDate   time.Time `gorm:"type:date;not null;column:enrollment_end_date" json:"enrollment_end_date"`

	// Invariant: remaining == total - used, remaining >= 0
	EnrollmentTotalSessions     int `gorm:"not null;column:enrollment_total_sessions" json:"enrollment_total_sessions"`
	EnrollmentUsedSessions      int `gorm:"not null;default:0;column:enrollment_used_sessions" json:"enrollment_used_sessions"`
	EnrollmentRemainingSessions int `gorm:"not null;column:enrollment_remaining_sessions" json:"enrollment_remaining_sessions"`

	// Weekdays the plan allows (0=Domingo..6=Sábado), copied from the membership
	EnrollmentAllowedDays pq.Int64Array `gorm:"type:int[];column:enrollment_allowed_days" json:"enrollment_allowed_days"`

	EnrollmentCost          float64       `gorm:"type:numeric(10,2);not null;column:enrollment_cost" json:"enrollment_cost"`
	EnrollmentPaymentMethod PaymentMethod `gorm:"type:varchar(10);not null;default:'Efectivo';column:enrollment_payment_method" json:"enrollment_payment_method"`

	// Snapshot of the membership at enrollment time, for audit after plan edits
	EnrollmentMembershipSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:enrollment_membership_snapshot" json:"enrollment_membership_snapshot,omitempty"`

	EnrollmentStatus EnrollmentStatus `gorm:"type:varchar(12);not null;default:'activa';index;column:enrollment_status" json:"enrollment_status"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"-"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.EnrollmentID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		e.EnrollmentID = id
	}
	return nil
}

// AllowsDay reports whether weekday (0=Domingo..6=Sábado) is allowed.
func (e *EnrollmentModel) AllowsDay(weekday int) bool {
	for _, d := range e.EnrollmentAllowedDays {
		if int(d) == weekday {
			return true
		}
	}
	return false
}
