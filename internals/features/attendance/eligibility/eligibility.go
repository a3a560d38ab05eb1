// file: internals/features/attendance/eligibility/eligibility.go
//
// Rule chains deciding whether an attendance event is allowed right now.
// Rules run in order, first failure wins. The engine is read-only except
// for one documented side effect: detecting an expired membership
// transitions the enrollment to vencida through the session ledger, even
// though the attendance attempt itself fails.
package eligibility

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
)

/* =========================
   Error taxonomy
========================= */

var (
	ErrNoActiveEnrollment    = errors.New("No tienes una inscripción activa")
	ErrSessionsExhausted     = errors.New("No te quedan sesiones disponibles. Renueva tu membresía")
	ErrDayNotAllowed         = errors.New("Tu membresía no permite asistir hoy")
	ErrMembershipExpired     = errors.New("Tu membresía ha vencido. Renueva para continuar")
	ErrAlreadyMarked         = errors.New("Ya marcaste asistencia hoy")
	ErrInstructorInactive    = errors.New("Tu cuenta está inactiva. Contacta con administración")
	ErrNoScheduleToday       = errors.New("No tienes horarios asignados para hoy")
	ErrScheduleInactive      = errors.New("Este horario está inactivo. Contacta con administración")
	ErrNotAssignedToSchedule = errors.New("No estás asignado a este horario")
)

// StatusWriter is the slice of the session ledger the engine may touch.
type StatusWriter interface {
	TransitionStatus(ctx context.Context, id uuid.UUID, status enrollmentModel.EnrollmentStatus) error
}

// DuplicateCheck reports whether an attendance is already on record for
// the flow's dedup key (per-day for the kiosk, per-schedule-day otherwise).
type DuplicateCheck func(ctx context.Context) (bool, error)

/* =========================
   Student rules
========================= */

type StudentInput struct {
	// Enrollment is the student's enrollment at the target branch;
	// nil when none is activa.
	Enrollment *enrollmentModel.EnrollmentModel

	Today time.Time

	// EnforceAllowedDays is on for the schedule-based flow only. The kiosk
	// flow historically skips the allowed-days rule; kept as found.
	EnforceAllowedDays bool

	Ledger        StatusWriter
	AlreadyMarked DuplicateCheck
}

// CheckStudent validates a student check-in attempt.
func CheckStudent(ctx context.Context, in StudentInput) error {
	enr := in.Enrollment
	if enr == nil || enr.EnrollmentStatus != enrollmentModel.EnrollmentActiva {
		return ErrNoActiveEnrollment
	}

	if enr.EnrollmentRemainingSessions <= 0 {
		return ErrSessionsExhausted
	}

	if in.EnforceAllowedDays && !enr.AllowsDay(int(in.Today.Weekday())) {
		return ErrDayNotAllowed
	}

	if dateOnly(enr.EnrollmentEndDate).Before(dateOnly(in.Today)) {
		if in.Ledger != nil {
			if err := in.Ledger.TransitionStatus(ctx, enr.EnrollmentID, enrollmentModel.EnrollmentVencida); err != nil {
				log.Printf("[ERROR] marking enrollment %s vencida: %v", enr.EnrollmentID, err)
			}
		}
		return ErrMembershipExpired
	}

	if in.AlreadyMarked != nil {
		marked, err := in.AlreadyMarked(ctx)
		if err != nil {
			return err
		}
		if marked {
			return ErrAlreadyMarked
		}
	}

	return nil
}

/* =========================
   Instructor rules
========================= */

type InstructorInput struct {
	Instructor *instructorModel.InstructorModel

	// Schedule is the class slot being clocked into; nil when the
	// instructor has nothing scheduled today.
	Schedule *scheduleModel.ScheduleModel

	// RequireAssignment is on for the schedule-based flow: the marking
	// instructor must be the one assigned to the slot.
	RequireAssignment bool

	AlreadyMarked DuplicateCheck
}

// CheckInstructor validates an instructor clock-in attempt.
func CheckInstructor(ctx context.Context, in InstructorInput) error {
	if in.Instructor == nil || in.Instructor.InstructorStatus != instructorModel.InstructorActivo {
		return ErrInstructorInactive
	}

	if in.Schedule == nil {
		return ErrNoScheduleToday
	}
	if in.Schedule.ScheduleStatus != scheduleModel.ScheduleActivo {
		return ErrScheduleInactive
	}

	if in.RequireAssignment {
		assigned := in.Schedule.ScheduleInstructorID
		if assigned == nil || *assigned != in.Instructor.InstructorID {
			return ErrNotAssignedToSchedule
		}
	}

	if in.AlreadyMarked != nil {
		marked, err := in.AlreadyMarked(ctx)
		if err != nil {
			return err
		}
		if marked {
			return ErrAlreadyMarked
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
