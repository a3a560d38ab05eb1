package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"gymku_backend/internals/features/academy/schedules/model"
)

type memStore struct {
	schedules []model.ScheduleModel
}

func (m *memStore) ListByBranchDay(_ context.Context, branchID uuid.UUID, day string) ([]model.ScheduleModel, error) {
	var out []model.ScheduleModel
	for _, s := range m.schedules {
		if s.ScheduleBranchID == branchID && s.ScheduleDay == day && s.ScheduleStatus == model.ScheduleActivo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) ListByInstructorDay(_ context.Context, instructorID uuid.UUID, day string) ([]model.ScheduleModel, error) {
	var out []model.ScheduleModel
	for _, s := range m.schedules {
		if s.ScheduleInstructorID != nil && *s.ScheduleInstructorID == instructorID &&
			s.ScheduleDay == day && s.ScheduleStatus == model.ScheduleActivo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	for i := range m.schedules {
		if m.schedules[i].ScheduleID == id {
			return &m.schedules[i], nil
		}
	}
	return nil, nil
}

func newSlot(branch uuid.UUID, day, start, end string) model.ScheduleModel {
	id, _ := uuid.NewV7()
	return model.ScheduleModel{
		ScheduleID:        id,
		ScheduleBranchID:  branch,
		ScheduleDay:       day,
		ScheduleStartTime: start,
		ScheduleEndTime:   end,
		ScheduleStatus:    model.ScheduleActivo,
	}
}

func TestValidateSlot(t *testing.T) {
	branch, _ := uuid.NewV7()
	otherBranch, _ := uuid.NewV7()
	existing := newSlot(branch, "Lunes", "18:00", "20:00")

	tests := []struct {
		name      string
		candidate model.ScheduleModel
		wantErr   error
	}{
		{"disjoint earlier", newSlot(branch, "Lunes", "16:00", "18:00"), nil},
		{"disjoint later", newSlot(branch, "Lunes", "20:00", "21:30"), nil},
		{"overlapping", newSlot(branch, "Lunes", "19:00", "21:00"), ErrScheduleOverlap},
		{"contained", newSlot(branch, "Lunes", "18:30", "19:00"), ErrScheduleOverlap},
		{"different day", newSlot(branch, "Martes", "18:00", "20:00"), nil},
		{"different branch", newSlot(otherBranch, "Lunes", "18:00", "20:00"), nil},
		{"inverted range", newSlot(branch, "Lunes", "20:00", "18:00"), ErrInvalidTimeRange},
		{"malformed time", newSlot(branch, "Lunes", "6pm", "20:00"), ErrInvalidTimeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanner(&memStore{schedules: []model.ScheduleModel{existing}})
			if err := p.ValidateSlot(context.Background(), &tt.candidate); err != tt.wantErr {
				t.Errorf("ValidateSlot() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlotSkipsItselfOnUpdate(t *testing.T) {
	branch, _ := uuid.NewV7()
	existing := newSlot(branch, "Lunes", "18:00", "20:00")
	p := NewPlanner(&memStore{schedules: []model.ScheduleModel{existing}})

	// Same row, shifted by half an hour.
	updated := existing
	updated.ScheduleEndTime = "20:30"
	if err := p.ValidateSlot(context.Background(), &updated); err != nil {
		t.Errorf("ValidateSlot() error = %v, updating a slot must not collide with itself", err)
	}
}

func TestForInstructorOnDay(t *testing.T) {
	branch, _ := uuid.NewV7()
	instructor, _ := uuid.NewV7()

	late := newSlot(branch, "Lunes", "19:00", "21:00")
	late.ScheduleInstructorID = &instructor
	early := newSlot(branch, "Lunes", "07:00", "08:30")
	early.ScheduleInstructorID = &instructor

	p := NewPlanner(&memStore{schedules: []model.ScheduleModel{late, early}})

	got, err := p.ForInstructorOnDay(context.Background(), instructor, "Lunes")
	if err != nil {
		t.Fatalf("ForInstructorOnDay() error = %v", err)
	}
	if got == nil || got.ScheduleID != early.ScheduleID {
		t.Errorf("ForInstructorOnDay() = %v, want earliest slot %s", got, early.ScheduleID)
	}

	got, err = p.ForInstructorOnDay(context.Background(), instructor, "Jueves")
	if err != nil {
		t.Fatalf("ForInstructorOnDay() error = %v", err)
	}
	if got != nil {
		t.Errorf("ForInstructorOnDay() = %v, want nil on a day with no assignment", got)
	}
}
