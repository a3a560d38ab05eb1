// file: internals/features/attendance/kiosk/controller/kiosk_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	"gymku_backend/internals/features/attendance/eligibility"
	"gymku_backend/internals/features/attendance/identity"
	instructorAttService "gymku_backend/internals/features/attendance/instructor/service"
	studentAttService "gymku_backend/internals/features/attendance/student/service"
	"gymku_backend/internals/features/attendance/timeclock"
	helper "gymku_backend/internals/helpers"
)

type checkInRequest struct {
	CI string `json:"ci" validate:"required,min=5,max=20"`
}

type clockOutRequest struct {
	AttendanceID  uuid.UUID `json:"attendance_id" validate:"required"`
	DepartureTime *string   `json:"departure_time" validate:"omitempty,len=5"`
}

// KioskController is the public self-service surface: one endpoint takes
// a CI, resolves the person kind, and runs that kind's check-in.
type KioskController struct {
	Resolver  *identity.Resolver
	CheckIn   *studentAttService.CheckIn
	TimeClock *instructorAttService.TimeClock
	Validate  *validator.Validate
}

func NewKioskController(resolver *identity.Resolver, checkIn *studentAttService.CheckIn, timeClock *instructorAttService.TimeClock) *KioskController {
	return &KioskController{
		Resolver:  resolver,
		CheckIn:   checkIn,
		TimeClock: timeClock,
		Validate:  validator.New(),
	}
}

// POST /api/p/kiosk/check-in
func (h *KioskController) Mark(c *fiber.Ctx) error {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.CI = strings.TrimSpace(req.CI)
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	person, err := h.Resolver.Resolve(c.Context(), req.CI)
	if err != nil {
		return MapAttendanceError(err)
	}

	switch person.Kind {
	case identity.KindStudent:
		receipt, err := h.CheckIn.Mark(c.Context(), person.Student)
		if err != nil {
			return MapAttendanceError(err)
		}
		return helper.JsonCreated(c, receipt.Message, receipt)
	default:
		receipt, err := h.TimeClock.ClockIn(c.Context(), person.Instructor)
		if err != nil {
			return MapAttendanceError(err)
		}
		return helper.JsonCreated(c, receipt.Message, receipt)
	}
}

// POST /api/p/kiosk/clock-out
func (h *KioskController) ClockOut(c *fiber.Ctx) error {
	var req clockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	receipt, err := h.TimeClock.MarkDeparture(c.Context(), req.AttendanceID, req.DepartureTime)
	if err != nil {
		return MapAttendanceError(err)
	}
	return helper.JsonOK(c, receipt.Message, receipt)
}

// MapAttendanceError turns the attendance error taxonomy into HTTP
// failures with the original Spanish messages.
func MapAttendanceError(err error) error {
	switch {
	case errors.Is(err, identity.ErrIdentityNotFound),
		errors.Is(err, studentAttService.ErrAttendanceNotFound),
		errors.Is(err, instructorAttService.ErrAttendanceNotFound),
		errors.Is(err, enrollmentService.ErrEnrollmentNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())

	case errors.Is(err, eligibility.ErrAlreadyMarked),
		errors.Is(err, instructorAttService.ErrAlreadyDeparted):
		return fiber.NewError(fiber.StatusConflict, err.Error())

	case errors.Is(err, timeclock.ErrBadClock):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())

	case errors.Is(err, eligibility.ErrNoActiveEnrollment),
		errors.Is(err, eligibility.ErrSessionsExhausted),
		errors.Is(err, eligibility.ErrDayNotAllowed),
		errors.Is(err, eligibility.ErrMembershipExpired),
		errors.Is(err, eligibility.ErrInstructorInactive),
		errors.Is(err, eligibility.ErrNoScheduleToday),
		errors.Is(err, eligibility.ErrScheduleInactive),
		errors.Is(err, eligibility.ErrNotAssignedToSchedule),
		errors.Is(err, enrollmentService.ErrNoSessionsRemaining):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, studentAttService.ErrCompensationFailed):
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Registro no encontrado")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Error interno al registrar asistencia")
}
