package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"gymku_backend/internals/features/academy/enrollments/model"
)

/* =========================
   In-memory Store fake
========================= */

type memStore struct {
	rows map[uuid.UUID]*model.EnrollmentModel
}

func newMemStore(enrs ...*model.EnrollmentModel) *memStore {
	s := &memStore{rows: map[uuid.UUID]*model.EnrollmentModel{}}
	for _, e := range enrs {
		s.rows[e.EnrollmentID] = e
	}
	return s
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.EnrollmentModel, error) {
	e, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (s *memStore) ApplyCounters(_ context.Context, id uuid.UUID, used, remaining int, status model.EnrollmentStatus, guardRemaining bool) (int64, error) {
	e, ok := s.rows[id]
	if !ok {
		return 0, nil
	}
	if guardRemaining && e.EnrollmentRemainingSessions <= 0 {
		return 0, nil
	}
	e.EnrollmentUsedSessions = used
	e.EnrollmentRemainingSessions = remaining
	e.EnrollmentStatus = status
	return 1, nil
}

func (s *memStore) SetStatus(_ context.Context, id uuid.UUID, status model.EnrollmentStatus) (int64, error) {
	e, ok := s.rows[id]
	if !ok {
		return 0, nil
	}
	e.EnrollmentStatus = status
	return 1, nil
}

func (s *memStore) ListActiveExpiring(_ context.Context, before time.Time) ([]model.EnrollmentModel, error) {
	var out []model.EnrollmentModel
	for _, e := range s.rows {
		if e.EnrollmentStatus == model.EnrollmentActiva && e.EnrollmentEndDate.Before(before) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func newEnrollment(total, used int, status model.EnrollmentStatus) *model.EnrollmentModel {
	id, _ := uuid.NewV7()
	return &model.EnrollmentModel{
		EnrollmentID:                id,
		EnrollmentTotalSessions:     total,
		EnrollmentUsedSessions:      used,
		EnrollmentRemainingSessions: total - used,
		EnrollmentStatus:            status,
		EnrollmentEndDate:           time.Now().AddDate(0, 1, 0),
	}
}

func checkInvariant(t *testing.T, e *model.EnrollmentModel) {
	t.Helper()
	if e.EnrollmentRemainingSessions != e.EnrollmentTotalSessions-e.EnrollmentUsedSessions {
		t.Errorf("invariant broken: remaining=%d total=%d used=%d",
			e.EnrollmentRemainingSessions, e.EnrollmentTotalSessions, e.EnrollmentUsedSessions)
	}
	if e.EnrollmentRemainingSessions < 0 {
		t.Errorf("remaining sessions negative: %d", e.EnrollmentRemainingSessions)
	}
}

/* =========================
   Tests
========================= */

func TestIncrementUsedSessions(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(12, 3, model.EnrollmentActiva)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.IncrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("IncrementUsedSessions() error = %v", err)
	}

	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 4 || got.EnrollmentRemainingSessions != 8 {
		t.Errorf("counters = used %d / remaining %d, want 4/8", got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
	if got.EnrollmentStatus != model.EnrollmentActiva {
		t.Errorf("status = %s, want activa", got.EnrollmentStatus)
	}
	checkInvariant(t, got)
}

func TestIncrementCompletesAtZero(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(10, 9, model.EnrollmentActiva)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.IncrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("IncrementUsedSessions() error = %v", err)
	}

	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentStatus != model.EnrollmentCompletada {
		t.Errorf("status = %s, want completada", got.EnrollmentStatus)
	}
	if got.EnrollmentRemainingSessions != 0 {
		t.Errorf("remaining = %d, want 0", got.EnrollmentRemainingSessions)
	}
	checkInvariant(t, got)
}

func TestIncrementExhausted(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(10, 10, model.EnrollmentCompletada)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	err := ledger.IncrementUsedSessions(ctx, enr.EnrollmentID)
	if err != ErrNoSessionsRemaining {
		t.Fatalf("IncrementUsedSessions() error = %v, want ErrNoSessionsRemaining", err)
	}
	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 10 {
		t.Errorf("used = %d, ledger must stay untouched", got.EnrollmentUsedSessions)
	}
}

func TestIncrementNotFound(t *testing.T) {
	ledger := NewLedger(newMemStore())
	id, _ := uuid.NewV7()
	if err := ledger.IncrementUsedSessions(context.Background(), id); err != ErrEnrollmentNotFound {
		t.Fatalf("IncrementUsedSessions() error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestIncrementThenDecrementRestores(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(12, 5, model.EnrollmentActiva)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.IncrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := ledger.DecrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 5 || got.EnrollmentRemainingSessions != 7 {
		t.Errorf("counters = used %d / remaining %d, want restored 5/7", got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
	checkInvariant(t, got)
}

func TestDecrementFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(12, 0, model.EnrollmentActiva)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.DecrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("DecrementUsedSessions() error = %v", err)
	}
	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 0 || got.EnrollmentRemainingSessions != 12 {
		t.Errorf("counters = used %d / remaining %d, want 0/12", got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
}

func TestDecrementKeepsTerminalStatus(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(10, 10, model.EnrollmentCompletada)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.DecrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("DecrementUsedSessions() error = %v", err)
	}
	got := store.rows[enr.EnrollmentID]
	if got.EnrollmentStatus != model.EnrollmentCompletada {
		t.Errorf("status = %s, completada must not revert by default", got.EnrollmentStatus)
	}
	if got.EnrollmentUsedSessions != 9 || got.EnrollmentRemainingSessions != 1 {
		t.Errorf("counters = used %d / remaining %d, want 9/1", got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
}

func TestDecrementRevertPolicy(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(10, 10, model.EnrollmentCompletada)
	store := newMemStore(enr)
	ledger := NewLedger(store)
	ledger.RevertStatusOnDecrement = true

	if err := ledger.DecrementUsedSessions(ctx, enr.EnrollmentID); err != nil {
		t.Fatalf("DecrementUsedSessions() error = %v", err)
	}
	if got := store.rows[enr.EnrollmentID]; got.EnrollmentStatus != model.EnrollmentActiva {
		t.Errorf("status = %s, want activa with revert policy on", got.EnrollmentStatus)
	}
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()
	enr := newEnrollment(10, 2, model.EnrollmentActiva)
	store := newMemStore(enr)
	ledger := NewLedger(store)

	if err := ledger.TransitionStatus(ctx, enr.EnrollmentID, model.EnrollmentCancelada); err != nil {
		t.Fatalf("TransitionStatus() error = %v", err)
	}
	if got := store.rows[enr.EnrollmentID]; got.EnrollmentStatus != model.EnrollmentCancelada {
		t.Errorf("status = %s, want cancelada", got.EnrollmentStatus)
	}

	id, _ := uuid.NewV7()
	if err := ledger.TransitionStatus(ctx, id, model.EnrollmentVencida); err != ErrEnrollmentNotFound {
		t.Errorf("TransitionStatus(missing) error = %v, want ErrEnrollmentNotFound", err)
	}
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	past := newEnrollment(10, 2, model.EnrollmentActiva)
	past.EnrollmentEndDate = today.AddDate(0, 0, -3)
	future := newEnrollment(10, 2, model.EnrollmentActiva)
	future.EnrollmentEndDate = today.AddDate(0, 0, 10)
	cancelled := newEnrollment(10, 2, model.EnrollmentCancelada)
	cancelled.EnrollmentEndDate = today.AddDate(0, 0, -3)

	store := newMemStore(past, future, cancelled)
	ledger := NewLedger(store)

	n, err := ledger.SweepExpired(ctx, today)
	if err != nil {
		t.Fatalf("SweepExpired() error = %v", err)
	}
	if n != 1 {
		t.Errorf("SweepExpired() = %d, want 1", n)
	}
	if got := store.rows[past.EnrollmentID]; got.EnrollmentStatus != model.EnrollmentVencida {
		t.Errorf("expired status = %s, want vencida", got.EnrollmentStatus)
	}
	if got := store.rows[future.EnrollmentID]; got.EnrollmentStatus != model.EnrollmentActiva {
		t.Errorf("future status = %s, must stay activa", got.EnrollmentStatus)
	}
	if got := store.rows[cancelled.EnrollmentID]; got.EnrollmentStatus != model.EnrollmentCancelada {
		t.Errorf("cancelled status = %s, must stay cancelada", got.EnrollmentStatus)
	}
}
