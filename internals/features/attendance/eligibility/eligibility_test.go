package eligibility

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
)

// Monday
var monday = time.Date(2025, 6, 16, 10, 30, 0, 0, time.UTC)

type statusRecorder struct {
	id     uuid.UUID
	status enrollmentModel.EnrollmentStatus
	calls  int
}

func (r *statusRecorder) TransitionStatus(_ context.Context, id uuid.UUID, status enrollmentModel.EnrollmentStatus) error {
	r.id = id
	r.status = status
	r.calls++
	return nil
}

func notMarked(_ context.Context) (bool, error)  { return false, nil }
func wasMarked(_ context.Context) (bool, error) { return true, nil }

func activeEnrollment() *enrollmentModel.EnrollmentModel {
	id, _ := uuid.NewV7()
	return &enrollmentModel.EnrollmentModel{
		EnrollmentID:                id,
		EnrollmentTotalSessions:     12,
		EnrollmentUsedSessions:      3,
		EnrollmentRemainingSessions: 9,
		EnrollmentAllowedDays:       pq.Int64Array{1, 3, 5},
		EnrollmentEndDate:           monday.AddDate(0, 1, 0),
		EnrollmentStatus:            enrollmentModel.EnrollmentActiva,
	}
}

func TestCheckStudentHappyPath(t *testing.T) {
	in := StudentInput{
		Enrollment:         activeEnrollment(),
		Today:              monday,
		EnforceAllowedDays: true,
		AlreadyMarked:      notMarked,
	}
	if err := CheckStudent(context.Background(), in); err != nil {
		t.Fatalf("CheckStudent() error = %v, want nil", err)
	}
}

func TestCheckStudentRuleOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StudentInput)
		wantErr error
	}{
		{
			name:    "no enrollment",
			mutate:  func(in *StudentInput) { in.Enrollment = nil },
			wantErr: ErrNoActiveEnrollment,
		},
		{
			name: "enrollment not activa",
			mutate: func(in *StudentInput) {
				in.Enrollment.EnrollmentStatus = enrollmentModel.EnrollmentCancelada
			},
			wantErr: ErrNoActiveEnrollment,
		},
		{
			name: "sessions exhausted",
			mutate: func(in *StudentInput) {
				in.Enrollment.EnrollmentUsedSessions = 12
				in.Enrollment.EnrollmentRemainingSessions = 0
			},
			wantErr: ErrSessionsExhausted,
		},
		{
			name: "day not allowed",
			mutate: func(in *StudentInput) {
				in.Enrollment.EnrollmentAllowedDays = pq.Int64Array{2, 4} // mar, jue
			},
			wantErr: ErrDayNotAllowed,
		},
		{
			name: "expired",
			mutate: func(in *StudentInput) {
				in.Enrollment.EnrollmentEndDate = monday.AddDate(0, 0, -1)
			},
			wantErr: ErrMembershipExpired,
		},
		{
			name:    "already marked",
			mutate:  func(in *StudentInput) { in.AlreadyMarked = wasMarked },
			wantErr: ErrAlreadyMarked,
		},
		{
			name: "exhaustion beats bad day", // rule 2 before rule 3
			mutate: func(in *StudentInput) {
				in.Enrollment.EnrollmentRemainingSessions = 0
				in.Enrollment.EnrollmentAllowedDays = pq.Int64Array{2}
			},
			wantErr: ErrSessionsExhausted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := StudentInput{
				Enrollment:         activeEnrollment(),
				Today:              monday,
				EnforceAllowedDays: true,
				AlreadyMarked:      notMarked,
			}
			tt.mutate(&in)
			if err := CheckStudent(context.Background(), in); err != tt.wantErr {
				t.Errorf("CheckStudent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckStudentExpirySideEffect(t *testing.T) {
	rec := &statusRecorder{}
	enr := activeEnrollment()
	enr.EnrollmentEndDate = monday.AddDate(0, 0, -5)

	in := StudentInput{
		Enrollment:    enr,
		Today:         monday,
		Ledger:        rec,
		AlreadyMarked: notMarked,
	}
	if err := CheckStudent(context.Background(), in); err != ErrMembershipExpired {
		t.Fatalf("CheckStudent() error = %v, want ErrMembershipExpired", err)
	}
	if rec.calls != 1 || rec.id != enr.EnrollmentID || rec.status != enrollmentModel.EnrollmentVencida {
		t.Errorf("expiry side effect = %+v, want one vencida transition for %s", rec, enr.EnrollmentID)
	}
}

func TestCheckStudentEndDateToday(t *testing.T) {
	// Membership ending today is still usable: endDate >= today.
	enr := activeEnrollment()
	enr.EnrollmentEndDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	in := StudentInput{Enrollment: enr, Today: monday, AlreadyMarked: notMarked}
	if err := CheckStudent(context.Background(), in); err != nil {
		t.Errorf("CheckStudent() error = %v, membership ending today must pass", err)
	}
}

func TestCheckStudentKioskSkipsAllowedDays(t *testing.T) {
	enr := activeEnrollment()
	enr.EnrollmentAllowedDays = pq.Int64Array{2, 4} // monday not allowed

	in := StudentInput{Enrollment: enr, Today: monday, EnforceAllowedDays: false, AlreadyMarked: notMarked}
	if err := CheckStudent(context.Background(), in); err != nil {
		t.Errorf("CheckStudent() error = %v, kiosk flow must skip allowed days", err)
	}
}

func TestCheckStudentIsReadOnlyWhenEligible(t *testing.T) {
	// Pure read: same inputs, same verdict, no ledger calls.
	rec := &statusRecorder{}
	in := StudentInput{
		Enrollment:         activeEnrollment(),
		Today:              monday,
		EnforceAllowedDays: true,
		Ledger:             rec,
		AlreadyMarked:      notMarked,
	}
	for i := 0; i < 2; i++ {
		if err := CheckStudent(context.Background(), in); err != nil {
			t.Fatalf("CheckStudent() pass %d error = %v", i, err)
		}
	}
	if rec.calls != 0 {
		t.Errorf("ledger touched %d times on eligible checks, want 0", rec.calls)
	}
}

/* =========================
   Instructor rules
========================= */

func activeInstructor() *instructorModel.InstructorModel {
	id, _ := uuid.NewV7()
	return &instructorModel.InstructorModel{
		InstructorID:     id,
		InstructorStatus: instructorModel.InstructorActivo,
	}
}

func activeSchedule(instructorID *uuid.UUID) *scheduleModel.ScheduleModel {
	id, _ := uuid.NewV7()
	return &scheduleModel.ScheduleModel{
		ScheduleID:           id,
		ScheduleDay:          "Lunes",
		ScheduleStartTime:    "18:00",
		ScheduleEndTime:      "20:00",
		ScheduleInstructorID: instructorID,
		ScheduleStatus:       scheduleModel.ScheduleActivo,
	}
}

func TestCheckInstructor(t *testing.T) {
	inst := activeInstructor()
	other, _ := uuid.NewV7()

	tests := []struct {
		name    string
		in      InstructorInput
		wantErr error
	}{
		{
			name:    "ok",
			in:      InstructorInput{Instructor: inst, Schedule: activeSchedule(&inst.InstructorID), RequireAssignment: true, AlreadyMarked: notMarked},
			wantErr: nil,
		},
		{
			name: "inactive account",
			in: InstructorInput{
				Instructor: &instructorModel.InstructorModel{InstructorStatus: instructorModel.InstructorInactivo},
				Schedule:   activeSchedule(&inst.InstructorID),
			},
			wantErr: ErrInstructorInactive,
		},
		{
			name:    "no schedule today",
			in:      InstructorInput{Instructor: inst, Schedule: nil},
			wantErr: ErrNoScheduleToday,
		},
		{
			name: "schedule inactive",
			in: func() InstructorInput {
				s := activeSchedule(&inst.InstructorID)
				s.ScheduleStatus = scheduleModel.ScheduleInactivo
				return InstructorInput{Instructor: inst, Schedule: s}
			}(),
			wantErr: ErrScheduleInactive,
		},
		{
			name:    "not assigned",
			in:      InstructorInput{Instructor: inst, Schedule: activeSchedule(&other), RequireAssignment: true, AlreadyMarked: notMarked},
			wantErr: ErrNotAssignedToSchedule,
		},
		{
			name:    "unassigned slot requires assignment",
			in:      InstructorInput{Instructor: inst, Schedule: activeSchedule(nil), RequireAssignment: true, AlreadyMarked: notMarked},
			wantErr: ErrNotAssignedToSchedule,
		},
		{
			name:    "assignment not required for kiosk clock-in",
			in:      InstructorInput{Instructor: inst, Schedule: activeSchedule(&other), RequireAssignment: false, AlreadyMarked: notMarked},
			wantErr: nil,
		},
		{
			name:    "already marked",
			in:      InstructorInput{Instructor: inst, Schedule: activeSchedule(&inst.InstructorID), RequireAssignment: true, AlreadyMarked: wasMarked},
			wantErr: ErrAlreadyMarked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckInstructor(context.Background(), tt.in); err != tt.wantErr {
				t.Errorf("CheckInstructor() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
