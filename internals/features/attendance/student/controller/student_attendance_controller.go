// file: internals/features/attendance/student/controller/student_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/attendance/student/model"
	"gymku_backend/internals/features/attendance/student/service"
	helper "gymku_backend/internals/helpers"
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=presente falta permiso"`
}

// StudentAttendanceController is the administrative surface over kiosk
// check-ins: daily listings, status corrections and deletions.
type StudentAttendanceController struct {
	Service  *service.CheckIn
	Validate *validator.Validate
}

func NewStudentAttendanceController(svc *service.CheckIn) *StudentAttendanceController {
	return &StudentAttendanceController{Service: svc, Validate: validator.New()}
}

// parseDay reads ?date=YYYY-MM-DD, defaulting to today.
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

func parseBranchID(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query("branch_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "branch_id inválido")
	}
	return &id, nil
}

// GET /api/a/attendance/students?date=&branch_id=&status=
func (h *StudentAttendanceController) ListByDay(c *fiber.Ctx) error {
	day, err := parseDay(c)
	if err != nil {
		return err
	}
	branchID, err := parseBranchID(c)
	if err != nil {
		return err
	}
	status := strings.TrimSpace(c.Query("status"))
	switch status {
	case "", "presente", "falta", "permiso":
	default:
		return fiber.NewError(fiber.StatusBadRequest, "status inválido")
	}

	rows, err := h.Service.ListOn(c.Context(), branchID, day, model.StudentAttendanceStatus(status))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar asistencias")
	}
	return helper.JsonOK(c, "Asistencias del día", rows)
}

// GET /api/a/attendance/students/stats?date=&branch_id=
func (h *StudentAttendanceController) Stats(c *fiber.Ctx) error {
	day, err := parseDay(c)
	if err != nil {
		return err
	}
	branchID, err := parseBranchID(c)
	if err != nil {
		return err
	}

	stats, err := h.Service.StatsOn(c.Context(), branchID, day)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular estadísticas")
	}
	return helper.JsonOK(c, "Estadísticas de asistencia", stats)
}

// PUT /api/a/attendance/students/:id/status
func (h *StudentAttendanceController) UpdateStatus(c *fiber.Ctx) error {
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

	if err := h.Service.UpdateStatus(c.Context(), id, model.StudentAttendanceStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el estado")
	}
	return helper.JsonUpdated(c, "Estado de asistencia actualizado", fiber.Map{
		"student_attendance_id": id,
		"status":                req.Status,
	})
}

// DELETE /api/a/attendance/students/:id
// Deleting reverses the session consumption; a failed reversal rolls the
// deletion back and surfaces as its own error.
func (h *StudentAttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAttendanceNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCompensationFailed):
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la asistencia")
	}
	return helper.JsonDeleted(c, "Asistencia eliminada y sesión restituida", fiber.Map{"student_attendance_id": id})
}
