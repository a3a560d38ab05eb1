// file: internals/features/attendance/classes/controller/class_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/attendance/classes/service"
	kioskController "gymku_backend/internals/features/attendance/kiosk/controller"
	helper "gymku_backend/internals/helpers"
)

type markRequest struct {
	CI         string    `json:"ci" validate:"required,min=5,max=20"`
	ScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
}

// ClassAttendanceController is the schedule-based flow: attendance for a
// specific class slot, with the per-schedule duplicate rule and the
// allowed-days check that the kiosk skips.
type ClassAttendanceController struct {
	Roster   *service.Roster
	Validate *validator.Validate
}

func NewClassAttendanceController(roster *service.Roster) *ClassAttendanceController {
	return &ClassAttendanceController{Roster: roster, Validate: validator.New()}
}

// POST /api/i/classes/mark
func (h *ClassAttendanceController) Mark(c *fiber.Ctx) error {
	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.CI = strings.TrimSpace(req.CI)
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	receipt, err := h.Roster.Mark(c.Context(), req.CI, req.ScheduleID)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return kioskController.MapAttendanceError(err)
	}
	return helper.JsonCreated(c, receipt.Message, receipt)
}

// DELETE /api/i/classes/attendance/:id
// Deleting a student record reverses its session consumption; a failed
// reversal rolls the deletion back and surfaces as its own error.
func (h *ClassAttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.Roster.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCompensationFailed):
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la asistencia")
	}
	return helper.JsonDeleted(c, "Asistencia eliminada", fiber.Map{"class_attendance_id": id})
}

// GET /api/i/classes/:schedule_id/roster?date=
func (h *ClassAttendanceController) ListRoster(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Params("schedule_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "schedule_id inválido")
	}

	day := time.Now()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		if day, err = time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date inválida, formato YYYY-MM-DD")
		}
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	rows, err := h.Roster.RosterFor(c.Context(), scheduleID, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la lista")
	}
	return helper.JsonOK(c, "Lista de asistencia", rows)
}
