// file: internals/features/attendance/instructor/service/timeclock_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gymku_backend/internals/constants"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
	"gymku_backend/internals/features/attendance/eligibility"
	"gymku_backend/internals/features/attendance/instructor/model"
	"gymku_backend/internals/features/attendance/timeclock"
	helper "gymku_backend/internals/helpers"
)

var (
	ErrAttendanceNotFound = errors.New("Registro de asistencia no encontrado")
	ErrAlreadyDeparted    = errors.New("Ya registraste tu salida para esta clase")
)

// Store is the persistence surface of the instructor time clock.
type Store interface {
	MarkedOn(ctx context.Context, instructorID, scheduleID uuid.UUID, day time.Time) (bool, error)
	Create(ctx context.Context, att *model.InstructorAttendanceModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.InstructorAttendanceModel, error)
	SetDeparture(ctx context.Context, id uuid.UUID, departure string, actualHours float64, status model.InstructorAttendanceStatus) (int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.InstructorAttendanceStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time) ([]model.InstructorAttendanceModel, error)
	ListRange(ctx context.Context, instructorID uuid.UUID, from, to time.Time) ([]model.InstructorAttendanceModel, error)
}

// SchedulePlanner resolves the instructor's assigned slot for a Spanish
// day name ("Lunes", ...). Nil result means no slot that day.
type SchedulePlanner interface {
	ForInstructorOnDay(ctx context.Context, instructorID uuid.UUID, day string) (*scheduleModel.ScheduleModel, error)
}

type ArrivalReceipt struct {
	Success        bool                             `json:"success"`
	Message        string                           `json:"message"`
	InstructorName string                           `json:"instructor_name"`
	ArrivalTime    string                           `json:"arrival_time"`
	IsLate         bool                             `json:"is_late"`
	MinutesLate    int                              `json:"minutes_late"`
	Status         model.InstructorAttendanceStatus `json:"status"`
}

type DepartureReceipt struct {
	Success       bool                             `json:"success"`
	Message       string                           `json:"message"`
	DepartureTime string                           `json:"departure_time"`
	ActualHours   float64                          `json:"actual_hours"`
	LeftEarly     bool                             `json:"left_early"`
	Status        model.InstructorAttendanceStatus `json:"status"`
}

// TimeClock records instructor arrivals and departures against their
// weekly schedule.
type TimeClock struct {
	store   Store
	planner SchedulePlanner

	// Now is the injectable clock; defaults to time.Now.
	Now func() time.Time
}

func NewTimeClock(store Store, planner SchedulePlanner) *TimeClock {
	return &TimeClock{store: store, planner: planner, Now: time.Now}
}

// ClockIn is the kiosk entry point: resolves the instructor's slot for
// today, then records the arrival. Assignment needs no extra check here
// since the slot was found through the instructor's own assignment.
func (t *TimeClock) ClockIn(ctx context.Context, instructor *instructorModel.InstructorModel) (*ArrivalReceipt, error) {
	now := t.Now()
	schedule, err := t.planner.ForInstructorOnDay(ctx, instructor.InstructorID, constants.DayName(now.Weekday()))
	if err != nil {
		return nil, err
	}
	return t.MarkArrival(ctx, instructor, schedule, false)
}

// MarkArrival records a clock-in for a specific slot. The schedule-based
// flow passes requireAssignment so an instructor cannot clock in on a
// colleague's class.
func (t *TimeClock) MarkArrival(ctx context.Context, instructor *instructorModel.InstructorModel, schedule *scheduleModel.ScheduleModel, requireAssignment bool) (*ArrivalReceipt, error) {
	now := t.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	err := eligibility.CheckInstructor(ctx, eligibility.InstructorInput{
		Instructor:        instructor,
		Schedule:          schedule,
		RequireAssignment: requireAssignment,
		AlreadyMarked: func(ctx context.Context) (bool, error) {
			return t.store.MarkedOn(ctx, instructor.InstructorID, schedule.ScheduleID, today)
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
	scheduledHours, err := timeclock.ScheduledHours(schedule.ScheduleStartTime, schedule.ScheduleEndTime)
	if err != nil {
		return nil, err
	}

	status := model.InstructorAttPresente
	if lateness.IsLate {
		status = model.InstructorAttRetrasado
	}

	att := &model.InstructorAttendanceModel{
		InstructorAttendanceInstructorID:      instructor.InstructorID,
		InstructorAttendanceInstructorName:    instructor.FullName(),
		InstructorAttendanceScheduleID:        schedule.ScheduleID,
		InstructorAttendanceBranchID:          schedule.ScheduleBranchID,
		InstructorAttendanceExpectedStartTime: schedule.ScheduleStartTime,
		InstructorAttendanceExpectedEndTime:   schedule.ScheduleEndTime,
		InstructorAttendanceActualArrivalTime: arrival,
		InstructorAttendanceIsLate:            lateness.IsLate,
		InstructorAttendanceMinutesLate:       lateness.MinutesLate,
		InstructorAttendanceScheduledHours:    scheduledHours,
		InstructorAttendanceStatus:            status,
		InstructorAttendanceDate:              today,
	}
	if err := t.store.Create(ctx, att); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, eligibility.ErrAlreadyMarked
		}
		return nil, err
	}

	msg := fmt.Sprintf("Hola %s, llegada registrada a las %s.", instructor.FullName(), arrival)
	if lateness.IsLate {
		msg = fmt.Sprintf("Hola %s, llegada registrada a las %s. Llegaste %d minutos tarde.", instructor.FullName(), arrival, lateness.MinutesLate)
	}
	return &ArrivalReceipt{
		Success:        true,
		Message:        msg,
		InstructorName: instructor.FullName(),
		ArrivalTime:    arrival,
		IsLate:         lateness.IsLate,
		MinutesLate:    lateness.MinutesLate,
		Status:         status,
	}, nil
}

// MarkDeparture closes the attendance: sets the departure time, computes
// worked hours, and flags an early exit. A retrasado arrival stays
// retrasado unless the departure was early.
func (t *TimeClock) MarkDeparture(ctx context.Context, id uuid.UUID, departure *string) (*DepartureReceipt, error) {
	att, err := t.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrAttendanceNotFound
	}
	if att.InstructorAttendanceActualDepartureTime != nil {
		return nil, ErrAlreadyDeparted
	}

	dep := timeclock.HHMM(t.Now())
	if departure != nil && *departure != "" {
		dep = *departure
	}

	actualHours, err := timeclock.ActualHours(att.InstructorAttendanceActualArrivalTime, dep)
	if err != nil {
		return nil, err
	}
	leftEarly, err := timeclock.LeftEarly(att.InstructorAttendanceExpectedEndTime, dep)
	if err != nil {
		return nil, err
	}

	status := att.InstructorAttendanceStatus
	if leftEarly {
		status = model.InstructorAttSalidaAnticipada
	}

	rows, err := t.store.SetDeparture(ctx, id, dep, actualHours, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAttendanceNotFound
	}

	msg := fmt.Sprintf("Salida registrada a las %s. Horas trabajadas: %.2f.", dep, actualHours)
	if leftEarly {
		msg = fmt.Sprintf("Salida anticipada registrada a las %s. Horas trabajadas: %.2f.", dep, actualHours)
	}
	return &DepartureReceipt{
		Success:       true,
		Message:       msg,
		DepartureTime: dep,
		ActualHours:   actualHours,
		LeftEarly:     leftEarly,
		Status:        status,
	}, nil
}

// UpdateStatus is the administrative correction (falta, permiso, ...).
func (t *TimeClock) UpdateStatus(ctx context.Context, id uuid.UUID, status model.InstructorAttendanceStatus) error {
	rows, err := t.store.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

// Delete removes a clock-in record. No ledger compensation applies here;
// instructor attendances consume nothing.
func (t *TimeClock) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := t.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

func (t *TimeClock) ListOn(ctx context.Context, branchID *uuid.UUID, day time.Time) ([]model.InstructorAttendanceModel, error) {
	return t.store.ListOn(ctx, branchID, day)
}

// RangeStats summarizes an instructor's worked period for payroll review.
type RangeStats struct {
	InstructorID    uuid.UUID `json:"instructor_id"`
	TotalClasses    int       `json:"total_classes"`
	TotalHours      float64   `json:"total_hours"`
	LateArrivals    int       `json:"late_arrivals"`
	EarlyDepartures int       `json:"early_departures"`
	PunctualityRate float64   `json:"punctuality_rate"`
}

// Stats aggregates [from, to]. Hours use actual hours when the departure
// was recorded, scheduled hours otherwise.
func (t *TimeClock) Stats(ctx context.Context, instructorID uuid.UUID, from, to time.Time) (*RangeStats, error) {
	rows, err := t.store.ListRange(ctx, instructorID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &RangeStats{InstructorID: instructorID}
	for _, att := range rows {
		stats.TotalClasses++
		if att.InstructorAttendanceActualHours != nil {
			stats.TotalHours += *att.InstructorAttendanceActualHours
		} else {
			stats.TotalHours += att.InstructorAttendanceScheduledHours
		}
		if att.InstructorAttendanceIsLate {
			stats.LateArrivals++
		}
		if att.InstructorAttendanceStatus == model.InstructorAttSalidaAnticipada {
			stats.EarlyDepartures++
		}
	}
	if stats.TotalClasses > 0 {
		onTime := stats.TotalClasses - stats.LateArrivals
		stats.PunctualityRate = float64(onTime) / float64(stats.TotalClasses) * 100
	}
	return stats, nil
}
