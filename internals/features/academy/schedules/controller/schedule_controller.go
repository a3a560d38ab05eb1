// file: internals/features/academy/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "gymku_backend/internals/features/academy/branches/model"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	scheduleDTO "gymku_backend/internals/features/academy/schedules/dto"
	scheduleModel "gymku_backend/internals/features/academy/schedules/model"
	scheduleService "gymku_backend/internals/features/academy/schedules/service"
	helper "gymku_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Planner  *scheduleService.Planner
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Planner:  scheduleService.NewPlanner(scheduleService.NewGormStore(db)),
		Validate: validator.New(),
	}
}

// POST /api/a/schedules
func (h *ScheduleController) Create(c *fiber.Ctx) error {
	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var branch branchModel.BranchModel
	if err := h.DB.Where("branch_id = ?", req.BranchID).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Sucursal no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la sucursal")
	}

	var instructorName *string
	if req.InstructorID != nil {
		var inst instructorModel.InstructorModel
		if err := h.DB.Where("instructor_id = ?", *req.InstructorID).First(&inst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Instructor no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el instructor")
		}
		full := inst.FullName()
		instructorName = &full
	}

	m := req.ToModel(branch.BranchName, instructorName)
	if err := h.Planner.ValidateSlot(c.Context(), &m); err != nil {
		switch err {
		case scheduleService.ErrInvalidTimeRange, scheduleService.ErrScheduleOverlap:
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo validar el horario")
		}
	}

	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el horario")
	}
	return helper.JsonCreated(c, "Horario creado", m)
}

// GET /api/a/schedules/:id
func (h *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m scheduleModel.ScheduleModel
	if err := h.DB.Where("schedule_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el horario")
	}
	return helper.JsonOK(c, "Horario encontrado", m)
}

// GET /api/a/schedules?branch_id=&instructor_id=&day=&status=&page=&per_page=
// Also mounted read-only under /api/i for instructors checking their own slots.
func (h *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&scheduleModel.ScheduleModel{})
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id inválido")
		}
		q = q.Where("schedule_branch_id = ?", branchID)
	}
	if raw := strings.TrimSpace(c.Query("instructor_id")); raw != "" {
		instructorID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "instructor_id inválido")
		}
		q = q.Where("schedule_instructor_id = ?", instructorID)
	}
	if day := strings.TrimSpace(c.Query("day")); day != "" {
		q = q.Where("schedule_day = ?", day)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("schedule_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar horarios")
	}

	var rows []scheduleModel.ScheduleModel
	if err := q.Order("schedule_day ASC, schedule_start_time ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar horarios")
	}
	return helper.JsonList(c, "Horarios", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/schedules/:id
func (h *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req scheduleDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m scheduleModel.ScheduleModel
	if err := h.DB.Where("schedule_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el horario")
	}

	req.Apply(&m)

	if req.InstructorID != nil {
		var inst instructorModel.InstructorModel
		if err := h.DB.Where("instructor_id = ?", *req.InstructorID).First(&inst).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Instructor no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el instructor")
		}
		full := inst.FullName()
		m.ScheduleInstructorName = &full
	}

	if err := h.Planner.ValidateSlot(c.Context(), &m); err != nil {
		switch err {
		case scheduleService.ErrInvalidTimeRange, scheduleService.ErrScheduleOverlap:
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo validar el horario")
		}
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el horario")
	}
	return helper.JsonUpdated(c, "Horario actualizado", m)
}

// DELETE /api/a/schedules/:id (soft delete)
func (h *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("schedule_id = ?", id).Delete(&scheduleModel.ScheduleModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el horario")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Horario no encontrado")
	}
	return helper.JsonDeleted(c, "Horario eliminado", fiber.Map{"schedule_id": id})
}
