package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	studentModel "gymku_backend/internals/features/academy/students/model"
	"gymku_backend/internals/features/attendance/eligibility"
	"gymku_backend/internals/features/attendance/student/model"
)

// Monday 10:30
var monday = time.Date(2025, 6, 16, 10, 30, 0, 0, time.UTC)

/* =========================
   In-memory fakes
========================= */

type memEnrollments struct {
	rows map[uuid.UUID]*enrollmentModel.EnrollmentModel
}

func (m *memEnrollments) GetByID(_ context.Context, id uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	if e, ok := m.rows[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memEnrollments) ApplyCounters(_ context.Context, id uuid.UUID, used, remaining int, status enrollmentModel.EnrollmentStatus, guardRemaining bool) (int64, error) {
	e, ok := m.rows[id]
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

func (m *memEnrollments) SetStatus(_ context.Context, id uuid.UUID, status enrollmentModel.EnrollmentStatus) (int64, error) {
	e, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	e.EnrollmentStatus = status
	return 1, nil
}

func (m *memEnrollments) ListActiveExpiring(_ context.Context, before time.Time) ([]enrollmentModel.EnrollmentModel, error) {
	var out []enrollmentModel.EnrollmentModel
	for _, e := range m.rows {
		if e.EnrollmentStatus == enrollmentModel.EnrollmentActiva && e.EnrollmentEndDate.Before(before) {
			out = append(out, *e)
		}
	}
	return out, nil
}

type memStore struct {
	enrollments *memEnrollments
	attendances map[uuid.UUID]*model.StudentAttendanceModel

	createErr error
	ledgerErr error
}

func newMemStore() *memStore {
	return &memStore{
		enrollments: &memEnrollments{rows: map[uuid.UUID]*enrollmentModel.EnrollmentModel{}},
		attendances: map[uuid.UUID]*model.StudentAttendanceModel{},
	}
}

func (m *memStore) ActiveEnrollment(_ context.Context, studentID uuid.UUID) (*enrollmentModel.EnrollmentModel, error) {
	for _, e := range m.enrollments.rows {
		if e.EnrollmentStudentID == studentID && e.EnrollmentStatus == enrollmentModel.EnrollmentActiva {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) MarkedOn(_ context.Context, studentID uuid.UUID, day time.Time) (bool, error) {
	for _, a := range m.attendances {
		if a.StudentAttendanceStudentID == studentID && a.StudentAttendanceDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Create(_ context.Context, att *model.StudentAttendanceModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	if att.StudentAttendanceID == uuid.Nil {
		id, _ := uuid.NewV7()
		att.StudentAttendanceID = id
	}
	cp := *att
	m.attendances[att.StudentAttendanceID] = &cp
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.StudentAttendanceModel, error) {
	if a, ok := m.attendances[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) SetStatus(_ context.Context, id uuid.UUID, status model.StudentAttendanceStatus) (int64, error) {
	a, ok := m.attendances[id]
	if !ok {
		return 0, nil
	}
	a.StudentAttendanceStatus = status
	return 1, nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.attendances[id]; !ok {
		return 0, nil
	}
	delete(m.attendances, id)
	return 1, nil
}

func (m *memStore) ListOn(_ context.Context, branchID *uuid.UUID, day time.Time, status model.StudentAttendanceStatus) ([]model.StudentAttendanceModel, error) {
	var out []model.StudentAttendanceModel
	for _, a := range m.attendances {
		if !a.StudentAttendanceDate.Equal(day) {
			continue
		}
		if branchID != nil && a.StudentAttendanceBranchID != *branchID {
			continue
		}
		if status != "" && a.StudentAttendanceStatus != status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *memStore) CountByStatus(ctx context.Context, branchID *uuid.UUID, day time.Time) (map[model.StudentAttendanceStatus]int64, error) {
	rows, err := m.ListOn(ctx, branchID, day, "")
	if err != nil {
		return nil, err
	}
	out := map[model.StudentAttendanceStatus]int64{}
	for _, a := range rows {
		out[a.StudentAttendanceStatus]++
	}
	return out, nil
}

// RunInTx is not transactional in the fake; ledgerErr simulates a failed
// counter update so rollback-path behavior can be asserted by the caller.
func (m *memStore) RunInTx(_ context.Context, fn func(txStore Store, txLedger *enrollmentService.Ledger) error) error {
	if m.ledgerErr != nil {
		return m.ledgerErr
	}
	return fn(m, enrollmentService.NewLedger(m.enrollments))
}

/* =========================
   Fixtures
========================= */

func seedStudent() *studentModel.StudentModel {
	id, _ := uuid.NewV7()
	return &studentModel.StudentModel{
		StudentID:       id,
		StudentName:     "Carla",
		StudentLastname: "Mamani",
		StudentCI:       "9876543",
		StudentStatus:   studentModel.StudentActivo,
	}
}

func seedEnrollment(m *memStore, studentID uuid.UUID, used, total int) *enrollmentModel.EnrollmentModel {
	id, _ := uuid.NewV7()
	branch, _ := uuid.NewV7()
	enr := &enrollmentModel.EnrollmentModel{
		EnrollmentID:                id,
		EnrollmentStudentID:         studentID,
		EnrollmentBranchID:          branch,
		EnrollmentTotalSessions:     total,
		EnrollmentUsedSessions:      used,
		EnrollmentRemainingSessions: total - used,
		EnrollmentEndDate:           monday.AddDate(0, 1, 0),
		EnrollmentStatus:            enrollmentModel.EnrollmentActiva,
	}
	m.enrollments.rows[id] = enr
	return enr
}

func newCheckIn(store *memStore) *CheckIn {
	c := NewCheckIn(store, enrollmentService.NewLedger(store.enrollments))
	c.Now = func() time.Time { return monday }
	return c
}

/* =========================
   Tests
========================= */

func TestMarkHappyPath(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 3, 12)

	receipt, err := newCheckIn(store).Mark(context.Background(), student)
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if !receipt.Success || receipt.SessionNumber != 4 || receipt.RemainingSessions != 8 {
		t.Errorf("receipt = %+v, want session 4 with 8 remaining", receipt)
	}
	if receipt.StudentName != "Carla Mamani" {
		t.Errorf("receipt.StudentName = %q", receipt.StudentName)
	}

	got := store.enrollments.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 4 || got.EnrollmentRemainingSessions != 8 {
		t.Errorf("enrollment after mark = used %d remaining %d, want 4/8",
			got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
	if len(store.attendances) != 1 {
		t.Fatalf("attendance rows = %d, want 1", len(store.attendances))
	}
	for _, a := range store.attendances {
		if a.StudentAttendanceStatus != model.StudentAttPresente {
			t.Errorf("attendance status = %s, want presente", a.StudentAttendanceStatus)
		}
		if a.StudentAttendanceSessionNumber != 4 || a.StudentAttendanceRemainingSessionsAfter != 8 {
			t.Errorf("attendance counters = %d/%d, want 4/8",
				a.StudentAttendanceSessionNumber, a.StudentAttendanceRemainingSessionsAfter)
		}
	}
}

func TestMarkExhaustedLeavesNoTrace(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 12, 12)

	_, err := newCheckIn(store).Mark(context.Background(), student)
	if err != eligibility.ErrSessionsExhausted {
		t.Fatalf("Mark() error = %v, want ErrSessionsExhausted", err)
	}
	if len(store.attendances) != 0 {
		t.Errorf("attendance rows = %d, want 0", len(store.attendances))
	}
	if got := store.enrollments.rows[enr.EnrollmentID]; got.EnrollmentUsedSessions != 12 {
		t.Errorf("ledger touched on rejected mark: used = %d", got.EnrollmentUsedSessions)
	}
}

func TestMarkNoActiveEnrollment(t *testing.T) {
	store := newMemStore()
	student := seedStudent()

	_, err := newCheckIn(store).Mark(context.Background(), student)
	if err != eligibility.ErrNoActiveEnrollment {
		t.Fatalf("Mark() error = %v, want ErrNoActiveEnrollment", err)
	}
}

func TestMarkExpiredTransitionsEnrollment(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 3, 12)
	enr.EnrollmentEndDate = monday.AddDate(0, 0, -1)

	_, err := newCheckIn(store).Mark(context.Background(), student)
	if err != eligibility.ErrMembershipExpired {
		t.Fatalf("Mark() error = %v, want ErrMembershipExpired", err)
	}
	if got := store.enrollments.rows[enr.EnrollmentID]; got.EnrollmentStatus != enrollmentModel.EnrollmentVencida {
		t.Errorf("enrollment status = %s, want vencida side effect", got.EnrollmentStatus)
	}
	if len(store.attendances) != 0 {
		t.Errorf("attendance rows = %d, want 0", len(store.attendances))
	}
}

func TestMarkDuplicateSameDay(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 3, 12)
	svc := newCheckIn(store)

	if _, err := svc.Mark(context.Background(), student); err != nil {
		t.Fatalf("first Mark() error = %v", err)
	}
	_, err := svc.Mark(context.Background(), student)
	if err != eligibility.ErrAlreadyMarked {
		t.Fatalf("second Mark() error = %v, want ErrAlreadyMarked", err)
	}
	if len(store.attendances) != 1 {
		t.Errorf("attendance rows = %d, want 1", len(store.attendances))
	}
	if got := store.enrollments.rows[enr.EnrollmentID]; got.EnrollmentUsedSessions != 4 {
		t.Errorf("double decrement: used = %d, want 4", got.EnrollmentUsedSessions)
	}
}

func TestMarkDuplicateKeyRaceMapsToAlreadyMarked(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	seedEnrollment(store, student.StudentID, 3, 12)
	store.createErr = errors.New(`ERROR: duplicate key value violates unique constraint "uq_student_attendance_day" (SQLSTATE 23505)`)

	_, err := newCheckIn(store).Mark(context.Background(), student)
	if err != eligibility.ErrAlreadyMarked {
		t.Fatalf("Mark() error = %v, want ErrAlreadyMarked on unique violation", err)
	}
}

func TestMarkLastSessionCompletesEnrollment(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 11, 12)

	receipt, err := newCheckIn(store).Mark(context.Background(), student)
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if receipt.SessionNumber != 12 || receipt.RemainingSessions != 0 {
		t.Errorf("receipt = %+v, want session 12 with 0 remaining", receipt)
	}
	if got := store.enrollments.rows[enr.EnrollmentID]; got.EnrollmentStatus != enrollmentModel.EnrollmentCompletada {
		t.Errorf("enrollment status = %s, want completada", got.EnrollmentStatus)
	}
}

func TestDeleteRestoresLedger(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	enr := seedEnrollment(store, student.StudentID, 3, 12)
	svc := newCheckIn(store)

	if _, err := svc.Mark(context.Background(), student); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	var attID uuid.UUID
	for id := range store.attendances {
		attID = id
	}

	if err := svc.Delete(context.Background(), attID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got := store.enrollments.rows[enr.EnrollmentID]
	if got.EnrollmentUsedSessions != 3 || got.EnrollmentRemainingSessions != 9 {
		t.Errorf("enrollment after delete = used %d remaining %d, want 3/9 restored",
			got.EnrollmentUsedSessions, got.EnrollmentRemainingSessions)
	}
	if len(store.attendances) != 0 {
		t.Errorf("attendance rows = %d, want 0", len(store.attendances))
	}
}

func TestDeleteNotFound(t *testing.T) {
	store := newMemStore()
	id, _ := uuid.NewV7()
	if err := newCheckIn(store).Delete(context.Background(), id); err != ErrAttendanceNotFound {
		t.Fatalf("Delete() error = %v, want ErrAttendanceNotFound", err)
	}
}

func TestDeleteCompensationFailureIsDistinct(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	seedEnrollment(store, student.StudentID, 3, 12)
	svc := newCheckIn(store)

	if _, err := svc.Mark(context.Background(), student); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	var attID uuid.UUID
	for id := range store.attendances {
		attID = id
	}

	// Enrollment vanishes between increment and delete.
	att := store.attendances[attID]
	delete(store.enrollments.rows, att.StudentAttendanceEnrollmentID)

	err := svc.Delete(context.Background(), attID)
	if !errors.Is(err, ErrCompensationFailed) {
		t.Fatalf("Delete() error = %v, want ErrCompensationFailed", err)
	}
}

func TestStatsOnCountsPerStatus(t *testing.T) {
	store := newMemStore()
	svc := newCheckIn(store)

	// Three marks on the same Monday, then two corrections.
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		student := seedStudent()
		seedEnrollment(store, student.StudentID, 0, 12)
		if _, err := svc.Mark(context.Background(), student); err != nil {
			t.Fatalf("Mark() error = %v", err)
		}
	}
	for id := range store.attendances {
		ids = append(ids, id)
	}
	if err := svc.UpdateStatus(context.Background(), ids[0], model.StudentAttFalta); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), ids[1], model.StudentAttPermiso); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	today := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
	stats, err := svc.StatsOn(context.Background(), nil, today)
	if err != nil {
		t.Fatalf("StatsOn() error = %v", err)
	}
	if stats.Total != 3 || stats.Presente != 1 || stats.Falta != 1 || stats.Permiso != 1 {
		t.Errorf("stats = %+v, want total 3 with presente/falta/permiso 1/1/1", stats)
	}

	rows, err := svc.ListOn(context.Background(), nil, today, model.StudentAttFalta)
	if err != nil {
		t.Fatalf("ListOn() error = %v", err)
	}
	if len(rows) != 1 || rows[0].StudentAttendanceStatus != model.StudentAttFalta {
		t.Errorf("ListOn(falta) = %d rows, want the single falta record", len(rows))
	}

	all, err := svc.ListOn(context.Background(), nil, today, "")
	if err != nil {
		t.Fatalf("ListOn() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListOn(all) = %d rows, want 3", len(all))
	}
}

func TestUpdateStatus(t *testing.T) {
	store := newMemStore()
	student := seedStudent()
	seedEnrollment(store, student.StudentID, 3, 12)
	svc := newCheckIn(store)

	if _, err := svc.Mark(context.Background(), student); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	var attID uuid.UUID
	for id := range store.attendances {
		attID = id
	}

	if err := svc.UpdateStatus(context.Background(), attID, model.StudentAttPermiso); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got := store.attendances[attID].StudentAttendanceStatus; got != model.StudentAttPermiso {
		t.Errorf("status = %s, want permiso", got)
	}

	missing, _ := uuid.NewV7()
	if err := svc.UpdateStatus(context.Background(), missing, model.StudentAttFalta); err != ErrAttendanceNotFound {
		t.Errorf("UpdateStatus(missing) error = %v, want ErrAttendanceNotFound", err)
	}
}
