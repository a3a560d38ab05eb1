// file: internals/features/attendance/student/service/checkin_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	studentModel "gymku_backend/internals/features/academy/students/model"
	"gymku_backend/internals/features/attendance/eligibility"
	"gymku_backend/internals/features/attendance/student/model"
	helper "gymku_backend/internals/helpers"
)

var (
	ErrAttendanceNotFound = errors.New("Registro de asistencia no encontrado")

	// ErrCompensationFailed marks a deletion whose compensating session
	// decrement could not be applied; callers must surface it apart from
	// an ordinary failed delete.
	ErrCompensationFailed = errors.New("No se pudo revertir el contador de sesiones")
)

// Store is the persistence surface of the kiosk flow. RunInTx executes fn
// atomically; the Store and Ledger handed to fn are bound to the same
// transaction, so the attendance write and the session-counter update
// land together or not at all.
type Store interface {
	ActiveEnrollment(ctx context.Context, studentID uuid.UUID) (*enrollmentModel.EnrollmentModel, error)
	MarkedOn(ctx context.Context, studentID uuid.UUID, day time.Time) (bool, error)
	Create(ctx context.Context, att *model.StudentAttendanceModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.StudentAttendanceModel, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.StudentAttendanceStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time, status model.StudentAttendanceStatus) ([]model.StudentAttendanceModel, error)
	CountByStatus(ctx context.Context, branchID *uuid.UUID, day time.Time) (map[model.StudentAttendanceStatus]int64, error)
	RunInTx(ctx context.Context, fn func(txStore Store, txLedger *enrollmentService.Ledger) error) error
}

// Receipt is what the kiosk screen shows after a check-in attempt.
type Receipt struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	StudentName       string `json:"student_name"`
	SessionNumber     int    `json:"session_number"`
	RemainingSessions int    `json:"remaining_sessions"`
}

// CheckIn records student attendances from the kiosk and keeps them in
// step with the session ledger.
type CheckIn struct {
	store  Store
	ledger *enrollmentService.Ledger

	// Now is the injectable clock; defaults to time.Now.
	Now func() time.Time
}

func NewCheckIn(store Store, ledger *enrollmentService.Ledger) *CheckIn {
	return &CheckIn{store: store, ledger: ledger, Now: time.Now}
}

// Mark runs the full kiosk check-in for an already-resolved student:
// eligibility, then one transaction holding the attendance insert and the
// session consumption. The allowed-days rule is not enforced here; the
// kiosk has no target schedule to check it against.
func (c *CheckIn) Mark(ctx context.Context, student *studentModel.StudentModel) (*Receipt, error) {
	now := c.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	enr, err := c.store.ActiveEnrollment(ctx, student.StudentID)
	if err != nil {
		return nil, err
	}

	err = eligibility.CheckStudent(ctx, eligibility.StudentInput{
		Enrollment:         enr,
		Today:              now,
		EnforceAllowedDays: false,
		Ledger:             c.ledger,
		AlreadyMarked: func(ctx context.Context) (bool, error) {
			return c.store.MarkedOn(ctx, student.StudentID, today)
		},
	})
	if err != nil {
		return nil, err
	}

	att := &model.StudentAttendanceModel{
		StudentAttendanceStudentID:              student.StudentID,
		StudentAttendanceStudentName:            student.FullName(),
		StudentAttendanceEnrollmentID:           enr.EnrollmentID,
		StudentAttendanceBranchID:               enr.EnrollmentBranchID,
		StudentAttendanceSessionNumber:          enr.EnrollmentUsedSessions + 1,
		StudentAttendanceRemainingSessionsAfter: enr.EnrollmentRemainingSessions - 1,
		StudentAttendanceStatus:                 model.StudentAttPresente,
		StudentAttendanceDate:                   today,
	}

	err = c.store.RunInTx(ctx, func(txStore Store, txLedger *enrollmentService.Ledger) error {
		if err := txStore.Create(ctx, att); err != nil {
			if helper.IsDuplicateKey(err) {
				// Lost the race against a concurrent check-in; the unique
				// index collapsed the duplicate into this error.
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
		Success:     true,
		Message:     fmt.Sprintf("¡Bienvenido %s! Sesión %d de %d. Te quedan %d sesiones.", student.FullName(), att.StudentAttendanceSessionNumber, enr.EnrollmentTotalSessions, att.StudentAttendanceRemainingSessionsAfter),
		StudentName: student.FullName(),

		SessionNumber:     att.StudentAttendanceSessionNumber,
		RemainingSessions: att.StudentAttendanceRemainingSessionsAfter,
	}, nil
}

// UpdateStatus is the administrative status correction (presente, falta,
// permiso). It is the only mutable field on a student attendance.
func (c *CheckIn) UpdateStatus(ctx context.Context, id uuid.UUID, status model.StudentAttendanceStatus) error {
	rows, err := c.store.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

// Delete removes an attendance record and reverses its ledger effect in
// one transaction. A decrement failure rolls the deletion back and is
// reported as ErrCompensationFailed.
func (c *CheckIn) Delete(ctx context.Context, id uuid.UUID) error {
	att, err := c.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if att == nil {
		return ErrAttendanceNotFound
	}

	return c.store.RunInTx(ctx, func(txStore Store, txLedger *enrollmentService.Ledger) error {
		rows, err := txStore.Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAttendanceNotFound
		}
		if err := txLedger.DecrementUsedSessions(ctx, att.StudentAttendanceEnrollmentID); err != nil {
			return fmt.Errorf("%w: %v", ErrCompensationFailed, err)
		}
		return nil
	})
}

// DayStats is the admin dashboard's per-day summary, broken down by
// attendance status.
type DayStats struct {
	Date     string `json:"date"`
	Total    int64  `json:"total"`
	Presente int64  `json:"presente"`
	Falta    int64  `json:"falta"`
	Permiso  int64  `json:"permiso"`
}

func (c *CheckIn) StatsOn(ctx context.Context, branchID *uuid.UUID, day time.Time) (*DayStats, error) {
	counts, err := c.store.CountByStatus(ctx, branchID, day)
	if err != nil {
		return nil, err
	}
	stats := &DayStats{
		Date:     day.Format("2006-01-02"),
		Presente: counts[model.StudentAttPresente],
		Falta:    counts[model.StudentAttFalta],
		Permiso:  counts[model.StudentAttPermiso],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// ListOn lists a day's attendances, optionally narrowed to one branch
// and one status ("" lists every status).
func (c *CheckIn) ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time, status model.StudentAttendanceStatus) ([]model.StudentAttendanceModel, error) {
	return c.store.ListOn(ctx, branchID, day, status)
}
