// file: internals/features/academy/instructors/controller/instructor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "gymku_backend/internals/features/academy/branches/model"
	instructorDTO "gymku_backend/internals/features/academy/instructors/dto"
	instructorModel "gymku_backend/internals/features/academy/instructors/model"
	helper "gymku_backend/internals/helpers"
)

type InstructorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstructorController(db *gorm.DB) *InstructorController {
	return &InstructorController{DB: db, Validate: validator.New()}
}

// POST /api/a/instructors
func (h *InstructorController) Create(c *fiber.Ctx) error {
	var req instructorDTO.CreateInstructorRequest
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

	m := req.ToModel(branch.BranchName)
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un instructor con ese CI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el instructor")
	}
	return helper.JsonCreated(c, "Instructor creado", m)
}

// GET /api/a/instructors/:id
func (h *InstructorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m instructorModel.InstructorModel
	if err := h.DB.Where("instructor_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Instructor no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el instructor")
	}
	return helper.JsonOK(c, "Instructor encontrado", m)
}

// GET /api/a/instructors?branch_id=&status=&page=&per_page=
func (h *InstructorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&instructorModel.InstructorModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("instructor_status = ?", status)
	}
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id inválido")
		}
		q = q.Where("instructor_branch_id = ?", branchID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar instructores")
	}

	var rows []instructorModel.InstructorModel
	if err := q.Order("instructor_lastname ASC, instructor_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar instructores")
	}
	return helper.JsonList(c, "Instructores", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/instructors/:id
func (h *InstructorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req instructorDTO.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := h.DB.Model(&instructorModel.InstructorModel{}).
		Where("instructor_id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un instructor con ese CI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el instructor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Instructor no encontrado")
	}

	var m instructorModel.InstructorModel
	if err := h.DB.Where("instructor_id = ?", id).First(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el instructor")
	}
	return helper.JsonUpdated(c, "Instructor actualizado", m)
}

// DELETE /api/a/instructors/:id (soft delete)
func (h *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("instructor_id = ?", id).Delete(&instructorModel.InstructorModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el instructor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Instructor no encontrado")
	}
	return helper.JsonDeleted(c, "Instructor eliminado", fiber.Map{"instructor_id": id})
}
