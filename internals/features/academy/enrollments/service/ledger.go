// file: internals/features/academy/enrollments/service/ledger.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gymku_backend/internals/features/academy/enrollments/model"
)

var (
	ErrEnrollmentNotFound  = errors.New("Inscripción no encontrada")
	ErrNoSessionsRemaining = errors.New("No quedan sesiones disponibles")
)

// Store is the narrow persistence surface the ledger owns. ApplyCounters
// must be a conditional write: when guardRemaining is set it only lands
// if the row still has remaining sessions, so two concurrent check-ins
// cannot consume the same session twice.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.EnrollmentModel, error)
	ApplyCounters(ctx context.Context, id uuid.UUID, used, remaining int, status model.EnrollmentStatus, guardRemaining bool) (rows int64, err error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.EnrollmentStatus) (rows int64, err error)
	ListActiveExpiring(ctx context.Context, before time.Time) ([]model.EnrollmentModel, error)
}

// Ledger owns usedSessions/remainingSessions/status transitions for
// enrollments. No other component writes those fields.
type Ledger struct {
	store Store

	// RevertStatusOnDecrement controls whether removing an attendance from a
	// completada enrollment reactivates it. The historical behavior is to
	// never revert, asymmetric with the increment side; kept off by default.
	RevertStatusOnDecrement bool
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// IncrementUsedSessions consumes one session. When the counter reaches
// zero the enrollment transitions to completada.
func (l *Ledger) IncrementUsedSessions(ctx context.Context, id uuid.UUID) error {
	enr, err := l.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enr == nil {
		return ErrEnrollmentNotFound
	}
	if enr.EnrollmentRemainingSessions <= 0 {
		return ErrNoSessionsRemaining
	}

	used := enr.EnrollmentUsedSessions + 1
	remaining := enr.EnrollmentTotalSessions - used
	status := enr.EnrollmentStatus
	if remaining == 0 {
		status = model.EnrollmentCompletada
	}

	rows, err := l.store.ApplyCounters(ctx, id, used, remaining, status, true)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Lost the race against another check-in consuming the last session.
		return ErrNoSessionsRemaining
	}
	return nil
}

// DecrementUsedSessions is the compensating inverse used when an
// attendance record is deleted. Floors usedSessions at zero.
func (l *Ledger) DecrementUsedSessions(ctx context.Context, id uuid.UUID) error {
	enr, err := l.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enr == nil {
		return ErrEnrollmentNotFound
	}

	used := enr.EnrollmentUsedSessions - 1
	if used < 0 {
		used = 0
	}
	remaining := enr.EnrollmentTotalSessions - used

	status := enr.EnrollmentStatus
	if l.RevertStatusOnDecrement && status == model.EnrollmentCompletada && remaining > 0 {
		status = model.EnrollmentActiva
	}

	_, err = l.store.ApplyCounters(ctx, id, used, remaining, status, false)
	return err
}

// TransitionStatus overwrites the enrollment status directly. Used by
// expiry sweeps and cancellation; no legality check on the transition.
func (l *Ledger) TransitionStatus(ctx context.Context, id uuid.UUID, status model.EnrollmentStatus) error {
	rows, err := l.store.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

// SweepExpired marks every activa enrollment whose end date passed as
// vencida and returns how many were transitioned.
func (l *Ledger) SweepExpired(ctx context.Context, today time.Time) (int, error) {
	expired, err := l.store.ListActiveExpiring(ctx, today)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, enr := range expired {
		if err := l.TransitionStatus(ctx, enr.EnrollmentID, model.EnrollmentVencida); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
