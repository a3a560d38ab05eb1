// file: internals/features/academy/memberships/controller/membership_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	membershipDTO "gymku_backend/internals/features/academy/memberships/dto"
	membershipModel "gymku_backend/internals/features/academy/memberships/model"
	helper "gymku_backend/internals/helpers"
)

type MembershipController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db, Validate: validator.New()}
}

// POST /api/a/memberships
func (h *MembershipController) Create(c *fiber.Ctx) error {
	var req membershipDTO.CreateMembershipRequest
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
			return fiber.NewError(fiber.StatusConflict, "Ya existe una membresía con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la membresía")
	}
	return helper.JsonCreated(c, "Membresía creada", m)
}

// GET /api/a/memberships/:id
func (h *MembershipController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m membershipModel.MembershipModel
	if err := h.DB.Where("membership_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membresía no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la membresía")
	}
	return helper.JsonOK(c, "Membresía encontrada", m)
}

// GET /api/a/memberships?status=&page=&per_page=
func (h *MembershipController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&membershipModel.MembershipModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("membership_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar membresías")
	}

	var rows []membershipModel.MembershipModel
	if err := q.Order("membership_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar membresías")
	}
	return helper.JsonList(c, "Membresías", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/memberships/:id
// Edits only affect future enrollments; existing ones keep their copied
// counters and snapshot.
func (h *MembershipController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req membershipDTO.UpdateMembershipRequest
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

	res := h.DB.Model(&membershipModel.MembershipModel{}).
		Where("membership_id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una membresía con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la membresía")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membresía no encontrada")
	}

	var m membershipModel.MembershipModel
	if err := h.DB.Where("membership_id = ?", id).First(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la membresía")
	}
	return helper.JsonUpdated(c, "Membresía actualizada", m)
}

// DELETE /api/a/memberships/:id (soft delete)
func (h *MembershipController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("membership_id = ?", id).Delete(&membershipModel.MembershipModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la membresía")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membresía no encontrada")
	}
	return helper.JsonDeleted(c, "Membresía eliminada", fiber.Map{"membership_id": id})
}
