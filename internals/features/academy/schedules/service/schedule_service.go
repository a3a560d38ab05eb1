// file: internals/features/academy/schedules/service/schedule_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gymku_backend/internals/features/academy/schedules/model"
	"gymku_backend/internals/features/attendance/timeclock"
)

var (
	ErrInvalidTimeRange = errors.New("El horario de inicio debe ser anterior al de fin")
	ErrScheduleOverlap  = errors.New("El horario se superpone con otro horario existente")
)

// Store is the lookup surface the planner needs. ListByBranchDay returns
// only schedules that are activo and not soft-deleted.
type Store interface {
	ListByBranchDay(ctx context.Context, branchID uuid.UUID, day string) ([]model.ScheduleModel, error)
	ListByInstructorDay(ctx context.Context, instructorID uuid.UUID, day string) ([]model.ScheduleModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error)
}

// Planner validates class slots against the branch's weekly grid and
// resolves which slot an instructor works on a given day.
type Planner struct {
	store Store
}

func NewPlanner(store Store) *Planner {
	return &Planner{store: store}
}

// ValidateSlot rejects a candidate whose time range is malformed or that
// overlaps another active schedule of the same branch and day. The
// candidate's own ID is skipped so updates do not collide with themselves.
func (p *Planner) ValidateSlot(ctx context.Context, candidate *model.ScheduleModel) error {
	if !timeclock.ValidRange(candidate.ScheduleStartTime, candidate.ScheduleEndTime) {
		return ErrInvalidTimeRange
	}

	existing, err := p.store.ListByBranchDay(ctx, candidate.ScheduleBranchID, candidate.ScheduleDay)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ScheduleID == candidate.ScheduleID {
			continue
		}
		overlaps, err := timeclock.Overlaps(
			candidate.ScheduleStartTime, candidate.ScheduleEndTime,
			other.ScheduleStartTime, other.ScheduleEndTime,
		)
		if err != nil {
			// Stored slot with a malformed time; skip it rather than
			// block every new slot on the branch.
			continue
		}
		if overlaps {
			return ErrScheduleOverlap
		}
	}
	return nil
}

// ForInstructorOnDay returns the instructor's assigned slot for the given
// Spanish day name, or nil when none exists. With multiple assignments on
// the same day the earliest-starting slot wins.
func (p *Planner) ForInstructorOnDay(ctx context.Context, instructorID uuid.UUID, day string) (*model.ScheduleModel, error) {
	slots, err := p.store.ListByInstructorDay(ctx, instructorID, day)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, nil
	}

	best := slots[0]
	for _, s := range slots[1:] {
		sm, err := timeclock.MinutesOfDay(s.ScheduleStartTime)
		if err != nil {
			continue
		}
		bm, err := timeclock.MinutesOfDay(best.ScheduleStartTime)
		if err != nil || sm < bm {
			best = s
		}
	}
	return &best, nil
}

// GetActive fetches a schedule by ID regardless of status; callers decide
// whether an inactivo slot is acceptable for their flow.
func (p *Planner) GetActive(ctx context.Context, id uuid.UUID) (*model.ScheduleModel, error) {
	return p.store.GetByID(ctx, id)
}
