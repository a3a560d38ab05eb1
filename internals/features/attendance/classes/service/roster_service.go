// file: internals/features/attendance/classes/service/roster_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
	"gymku_backend/internals/features/attendance/classes/model"
	"gymku_backend/internals/features/attendance/eligibility"
	"gymku_backend/internals/features/attendance/identity"
	"gymku_backend/internals/features/attendance/timeclock"
	helper "gymku_backend/internals/helpers"
)

var (
	ErrScheduleNotFound   = errors.New("Horario no encontrado")
	ErrAttendanceNotFound = errors.New("Registro de asistencia no encontrado")

	// ErrCompensationFailed marks a deletion whose compensating session
	// decrement could not be applied; callers must surface it apart from
	// an ordinary failed delete.
	ErrCompensationFailed = errors.New("No se pudo revertir el contador de sesiones")
)

// Store is the persistence surface of the schedule-based flow. The
// ActiveEnrollment lookup is branch-scoped: the class's branch decides
// which enrollment pays for the session.
type Store interface {
	ActiveEnrollment(ctx context.Context, studentID, branchID uuid.UUID) (*enrollmentModel.EnrollmentModel, error)
	MarkedOn(ctx context.Context, personID, scheduleID uuid.UUID, day time.Time) (bool, error)
	Create(ctx context.Context, att *model.ClassAttendanceModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassAttendanceModel, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID, day time.Time) ([]model.ClassAttendanceModel, error)
	RunInTx(ctx context.Context, fn func(txStore Store, txLedger *enrollmentService.Ledger) error) error
}

// ScheduleSource fetches the target slot; nil when it does not exist.
type ScheduleSource interface {
	GetActive(ctx context.Context, id uuid.UUID) (*scheduleModel.ScheduleModel, error)
}

// Receipt covers both person kinds; the session fields are zero for
// instructors and the lateness fields for students.
type Receipt struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	PersonType model.PersonType `json:"person_type"`
	PersonName string           `json:"person_name"`

	SessionNumber     int `json:"session_number,omitempty"`
	RemainingSessions int `json:"remaining_sessions,omitempty"`

	IsLate      bool `json:"is_late,omitempty"`
	MinutesLate int  `json:"minutes_late,omitempty"`
}

// Roster marks attendance for a specific class slot, resolving the CI to
// a student or instructor and applying that kind's rules.
type Roster struct {
	resolver  *identity.Resolver
	schedules ScheduleSource
	store     Store
	ledger    *enrollmentService.Ledger

	// Now is the injectable clock; defaults to time.Now.
	Now func() time.Time
}

func NewRoster(resolver *identity.Resolver, schedules ScheduleSource, store Store, ledger *enrollmentService.Ledger) *Roster {
	return &Roster{resolver: resolver, schedules: schedules, store: store, ledger: ledger, Now: time.Now}
}

func (r *Roster) Mark(ctx context.Context, ci string, scheduleID uuid.UUID) (*Receipt, error) {
	person, err := r.resolver.Resolve(ctx, ci)
	if err != nil {
		return nil, err
	}

	schedule, err := r.schedules.GetActive(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	switch person.Kind {
	case identity.KindStudent:
		return r.markStudent(ctx, person, schedule)
	default:
		return r.markInstructor(ctx, person, schedule)
	}
}

func (r *Roster) markStudent(ctx context.Context, person identity.Person, schedule *scheduleModel.ScheduleModel) (*Receipt, error) {
	now := r.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	studentID := person.Student.StudentID

	enr, err := r.store.ActiveEnrollment(ctx, studentID, schedule.ScheduleBranchID)
	if err != nil {
		return nil, err
	}

	err = eligibility.CheckStudent(ctx, eligibility.StudentInput{
		Enrollment:         enr,
		Today:              now,
		EnforceAllowedDays: true,
		Ledger:             r.ledger,
		AlreadyMarked: func(ctx context.Context) (bool, error) {
			return r.store.MarkedOn(ctx, studentID, schedule.ScheduleID, today)
		},
	})
	if err != nil {
		return nil, err
	}

	att := &model.ClassAttendanceModel{
		ClassAttendancePersonType:   model.PersonStudent,
		ClassAttendancePersonID:     studentID,
		ClassAttendancePersonName:   person.FullName(),
		ClassAttendanceEnrollmentID: &enr.EnrollmentID,
		ClassAttendanceScheduleID:   schedule.ScheduleID,
		ClassAttendanceBranchID:     schedule.ScheduleBranchID,
		ClassAttendanceBranchName:   schedule.ScheduleBranchName,
		ClassAttendanceDiscipline:   schedule.ScheduleDiscipline,
		ClassAttendanceDayOfWeek:    int(now.Weekday()),
		ClassAttendanceStatus:       model.ClassAttPresente,
		ClassAttendanceDate:         today,
	}

	sessionNumber := enr.EnrollmentUsedSessions + 1
	remaining := enr.EnrollmentRemainingSessions - 1

	err = r.store.RunInTx(ctx, func(txStore Store, txLedger *enrollmentService.Ledger) error {
		if err := txStore.Create(ctx, att); err != nil {
			if helper.IsDuplicateKey(err) {
				return eligibility.ErrAlreadyMarked
			}
			return err
		}
		return txLedger.IncrementUsedSessions(ctx, enr.EnrollmentID)
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{
		Success:           true,
		Message:           fmt.Sprintf("Asistencia registrada para %s en %s. Sesión %d, te quedan %d.", person.FullName(), schedule.ScheduleDiscipline, sessionNumber, remaining),
		PersonType:        model.PersonStudent,
		PersonName:        person.FullName(),
		SessionNumber:     sessionNumber,
		RemainingSessions: remaining,
	}, nil
}

func (r *Roster) markInstructor(ctx context.Context, person identity.Person, schedule *scheduleModel.ScheduleModel) (*Receipt, error) {
	now := r.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	instructor := person.Instructor

	err := eligibility.CheckInstructor(ctx, eligibility.InstructorInput{
		Instructor:        instructor,
		Schedule:          schedule,
		RequireAssignment: true,
		AlreadyMarked: func(ctx context.Context) (bool, error) {
			return r.store.MarkedOn(ctx, instructor.InstructorID, schedule.ScheduleID, today)
		},
	})
	if err != nil {
		return nil, err
	}

	arrival := timeclock.HHMM(now)
	lateness, err := timeclock.ComputeLateness(schedule.ScheduleStartTime, arrival)
	if err != nil {
		return nil, err
	}

	status := model.ClassAttPresente
	if lateness.IsLate {
		status = model.ClassAttRetrasado
	}

	att := &model.ClassAttendanceModel{
		ClassAttendancePersonType:        model.PersonInstructor,
		ClassAttendancePersonID:          instructor.InstructorID,
		ClassAttendancePersonName:        person.FullName(),
		ClassAttendanceScheduleID:        schedule.ScheduleID,
		ClassAttendanceBranchID:          schedule.ScheduleBranchID,
		ClassAttendanceBranchName:        schedule.ScheduleBranchName,
		ClassAttendanceDiscipline:        schedule.ScheduleDiscipline,
		ClassAttendanceDayOfWeek:         int(now.Weekday()),
		ClassAttendanceExpectedStartTime: &schedule.ScheduleStartTime,
		ClassAttendanceActualArrivalTime: &arrival,
		ClassAttendanceIsLate:            lateness.IsLate,
		ClassAttendanceMinutesLate:       lateness.MinutesLate,
		ClassAttendanceStatus:            status,
		ClassAttendanceDate:              today,
	}
	if err := r.store.Create(ctx, att); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, eligibility.ErrAlreadyMarked
		}
		return nil, err
	}

	msg := fmt.Sprintf("Asistencia registrada para %s en %s.", person.FullName(), schedule.ScheduleDiscipline)
	if lateness.IsLate {
		msg = fmt.Sprintf("Asistencia registrada para %s en %s. Llegaste %d minutos tarde.", person.FullName(), schedule.ScheduleDiscipline, lateness.MinutesLate)
	}
	return &Receipt{
		Success:     true,
		Message:     msg,
		PersonType:  model.PersonInstructor,
		PersonName:  person.FullName(),
		IsLate:      lateness.IsLate,
		MinutesLate: lateness.MinutesLate,
	}, nil
}

// Delete removes a class attendance. A student record that consumed a
// session gets its ledger effect reversed in the same transaction; a
// failed reversal rolls the deletion back and is reported as
// ErrCompensationFailed. Instructor records consume nothing.
func (r *Roster) Delete(ctx context.Context, id uuid.UUID) error {
	att, err := r.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if att == nil {
		return ErrAttendanceNotFound
	}

	if att.ClassAttendancePersonType != model.PersonStudent || att.ClassAttendanceEnrollmentID == nil {
		rows, err := r.store.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAttendanceNotFound
		}
		return nil
	}

	return r.store.RunInTx(ctx, func(txStore Store, txLedger *enrollmentService.Ledger) error {
		rows, err := txStore.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAttendanceNotFound
		}
		if err := txLedger.DecrementUsedSessions(ctx, *att.ClassAttendanceEnrollmentID); err != nil {
			return fmt.Errorf("%w: %v", ErrCompensationFailed, err)
		}
		return nil
	})
}

// RosterFor lists who marked attendance in a slot on a given day.
func (r *Roster) RosterFor(ctx context.Context, scheduleID uuid.UUID, day time.Time) ([]model.ClassAttendanceModel, error) {
	return r.store.ListBySchedule(ctx, scheduleID, day)
}
