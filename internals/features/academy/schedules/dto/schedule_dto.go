// file: internals/features/academy/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "gymku_backend/internals/features/academy/schedules/model"
)

type CreateScheduleRequest struct {
	BranchID     uuid.UUID  `json:"schedule_branch_id" validate:"required"`
	Day          string     `json:"schedule_day" validate:"required,oneof=Domingo Lunes Martes Miércoles Jueves Viernes Sábado"`
	StartTime    string     `json:"schedule_start_time" validate:"required,len=5"`
	EndTime      string     `json:"schedule_end_time" validate:"required,len=5"`
	Discipline   string     `json:"schedule_discipline" validate:"required,min=2,max=80"`
	InstructorID *uuid.UUID `json:"schedule_instructor_id"`
}

func (r *CreateScheduleRequest) Normalize() {
	r.Day = strings.TrimSpace(r.Day)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	r.Discipline = strings.TrimSpace(r.Discipline)
}

func (r *CreateScheduleRequest) ToModel(branchName string, instructorName *string) m.ScheduleModel {
	return m.ScheduleModel{
		ScheduleBranchID:       r.BranchID,
		ScheduleBranchName:     branchName,
		ScheduleDay:            r.Day,
		ScheduleStartTime:      r.StartTime,
		ScheduleEndTime:        r.EndTime,
		ScheduleDiscipline:     r.Discipline,
		ScheduleInstructorID:   r.InstructorID,
		ScheduleInstructorName: instructorName,
		ScheduleStatus:         m.ScheduleActivo,
	}
}

type UpdateScheduleRequest struct {
	Day          *string    `json:"schedule_day" validate:"omitempty,oneof=Domingo Lunes Martes Miércoles Jueves Viernes Sábado"`
	StartTime    *string    `json:"schedule_start_time" validate:"omitempty,len=5"`
	EndTime      *string    `json:"schedule_end_time" validate:"omitempty,len=5"`
	Discipline   *string    `json:"schedule_discipline" validate:"omitempty,min=2,max=80"`
	InstructorID *uuid.UUID `json:"schedule_instructor_id"`
	Status       *string    `json:"schedule_status" validate:"omitempty,oneof=activo inactivo"`
}

// Apply overlays the request onto an existing row, for overlap
// re-validation before persisting.
func (r *UpdateScheduleRequest) Apply(s *m.ScheduleModel) {
	if r.Day != nil {
		s.ScheduleDay = strings.TrimSpace(*r.Day)
	}
	if r.StartTime != nil {
		s.ScheduleStartTime = strings.TrimSpace(*r.StartTime)
	}
	if r.EndTime != nil {
		s.ScheduleEndTime = strings.TrimSpace(*r.EndTime)
	}
	if r.Discipline != nil {
		s.ScheduleDiscipline = strings.TrimSpace(*r.Discipline)
	}
	if r.InstructorID != nil {
		s.ScheduleInstructorID = r.InstructorID
	}
	if r.Status != nil {
		s.ScheduleStatus = m.ScheduleStatus(*r.Status)
	}
}
