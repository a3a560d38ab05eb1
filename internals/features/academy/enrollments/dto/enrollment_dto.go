// file: internals/features/academy/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "gymku_backend/internals/features/academy/enrollments/model"
	membershipModel "gymku_backend/internals/features/academy/memberships/model"
)

type CreateEnrollmentRequest struct {
	StudentID     uuid.UUID `json:"enrollment_student_id" validate:"required"`
	MembershipID  uuid.UUID `json:"enrollment_membership_id" validate:"required"`
	BranchID      uuid.UUID `json:"enrollment_branch_id" validate:"required"`
	PaymentMethod string    `json:"enrollment_payment_method" validate:"required,oneof=Qr Efectivo"`

	// Optional; defaults to today
	StartDate *time.Time `json:"enrollment_start_date"`
}

// ToModel builds the enrollment from the membership: the cycle dates, the
// session quota, the allowed days and the cost are all copied at this
// moment, plus a JSONB snapshot for audit after plan edits.
func (r *CreateEnrollmentRequest) ToModel(studentName string, membership *membershipModel.MembershipModel, branchName string, today time.Time) m.EnrollmentModel {
	start := today
	if r.StartDate != nil {
		start = *r.StartDate
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	return m.EnrollmentModel{
		EnrollmentStudentID:         r.StudentID,
		EnrollmentStudentName:       studentName,
		EnrollmentMembershipID:      membership.MembershipID,
		EnrollmentMembershipName:    membership.MembershipName,
		EnrollmentBranchID:          r.BranchID,
		EnrollmentBranchName:        branchName,
		EnrollmentStartDate:         start,
		EnrollmentEndDate:           start.AddDate(0, 0, membership.MembershipDurationDays),
		EnrollmentTotalSessions:     membership.MembershipTotalSessions,
		EnrollmentUsedSessions:      0,
		EnrollmentRemainingSessions: membership.MembershipTotalSessions,
		EnrollmentAllowedDays:       membership.MembershipAllowedDays,
		EnrollmentCost:              membership.MembershipCost,
		EnrollmentPaymentMethod:     m.PaymentMethod(r.PaymentMethod),
		EnrollmentMembershipSnapshot: datatypes.JSONMap{
			"membership_id":             membership.MembershipID.String(),
			"membership_name":           membership.MembershipName,
			"membership_duration_days":  membership.MembershipDurationDays,
			"membership_total_sessions": membership.MembershipTotalSessions,
			"membership_cost":           membership.MembershipCost,
		},
		EnrollmentStatus: m.EnrollmentActiva,
	}
}
