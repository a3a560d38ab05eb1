// file: internals/features/attendance/instructor/controller/instructor_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/attendance/instructor/model"
	"gymku_backend/internals/features/attendance/instructor/service"
	"gymku_backend/internals/features/attendance/timeclock"
	helper "gymku_backend/internals/helpers"
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=presente retrasado falta permiso salida-anticipada"`
}

type departureRequest struct {
	DepartureTime *string `json:"departure_time" validate:"omitempty,len=5"`
}

type InstructorAttendanceController struct {
	Service  *service.TimeClock
	Validate *validator.Validate
}

func NewInstructorAttendanceController(svc *service.TimeClock) *InstructorAttendanceController {
	return &InstructorAttendanceController{Service: svc, Validate: validator.New()}
}

func parseDay(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date inválida, formato YYYY-MM-DD")
	}
	return day, nil
}

// GET /api/a/attendance/instructors?date=&branch_id=
func (h *InstructorAttendanceController) ListByDay(c *fiber.Ctx) error {
	day, err := parseDay(c)
	if err != nil {
		return err
	}

	var branchID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id inválido")
		}
		branchID = &id
	}

	rows, err := h.Service.ListOn(c.Context(), branchID, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar asistencias")
	}
	return helper.JsonOK(c, "Asistencias del día", rows)
}

// GET /api/a/attendance/instructors/:id/stats?from=&to=
// Defaults to the current month.
func (h *InstructorAttendanceController) Stats(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from inválido, formato YYYY-MM-DD")
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		if to, err = time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to inválido, formato YYYY-MM-DD")
		}
	}
	if to.Before(from) {
		return fiber.NewError(fiber.StatusBadRequest, "El rango de fechas es inválido")
	}

	stats, err := h.Service.Stats(c.Context(), instructorID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular estadísticas")
	}
	return helper.JsonOK(c, "Estadísticas del instructor", stats)
}

// POST /api/a/attendance/instructors/:id/departure
// Administrative clock-out on behalf of the instructor.
func (h *InstructorAttendanceController) MarkDeparture(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req departureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	receipt, err := h.Service.MarkDeparture(c.Context(), id, req.DepartureTime)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyDeparted):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, timeclock.ErrBadClock):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la salida")
	}
	return helper.JsonOK(c, receipt.Message, receipt)
}

// PUT /api/a/attendance/instructors/:id/status
func (h *InstructorAttendanceController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if err := h.Service.UpdateStatus(c.Context(), id, model.InstructorAttendanceStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el estado")
	}
	return helper.JsonUpdated(c, "Estado de asistencia actualizado", fiber.Map{
		"instructor_attendance_id": id,
		"status":                   req.Status,
	})
}

// DELETE /api/a/attendance/instructors/:id
func (h *InstructorAttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la asistencia")
	}
	return helper.JsonDeleted(c, "Asistencia eliminada", fiber.Map{"instructor_attendance_id": id})
}
