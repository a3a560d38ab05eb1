// file: internals/features/academy/branches/controller/branch_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchDTO "gymku_backend/internals/features/academy/branches/dto"
	branchModel "gymku_backend/internals/features/academy/branches/model"
	helper "gymku_backend/internals/helpers"
)

type BranchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db, Validate: validator.New()}
}

// POST /api/a/branches
func (h *BranchController) Create(c *fiber.Ctx) error {
	var req branchDTO.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una sucursal con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la sucursal")
	}
	return helper.JsonCreated(c, "Sucursal creada", m)
}

// GET /api/a/branches/:id
func (h *BranchController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m branchModel.BranchModel
	if err := h.DB.Where("branch_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sucursal no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la sucursal")
	}
	return helper.JsonOK(c, "Sucursal encontrada", m)
}

// GET /api/a/branches?status=activo&page=1&per_page=20
func (h *BranchController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&branchModel.BranchModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("branch_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar sucursales")
	}

	var rows []branchModel.BranchModel
	if err := q.Order("branch_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar sucursales")
	}
	return helper.JsonList(c, "Sucursales", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/branches/:id
func (h *BranchController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req branchDTO.UpdateBranchRequest
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

	res := h.DB.Model(&branchModel.BranchModel{}).
		Where("branch_id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una sucursal con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la sucursal")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sucursal no encontrada")
	}

	var m branchModel.BranchModel
	if err := h.DB.Where("branch_id = ?", id).First(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la sucursal")
	}
	return helper.JsonUpdated(c, "Sucursal actualizada", m)
}

// DELETE /api/a/branches/:id (soft delete)
func (h *BranchController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("branch_id = ?", id).Delete(&branchModel.BranchModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la sucursal")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sucursal no encontrada")
	}
	return helper.JsonDeleted(c, "Sucursal eliminada", fiber.Map{"branch_id": id})
}
