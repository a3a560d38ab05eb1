// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "gymku_backend/internals/features/users/user/dto"
	userModel "gymku_backend/internals/features/users/user/model"
	helper "gymku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/a/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el usuario")
	}
	return helper.JsonOK(c, "Usuario encontrado", u)
}

// GET /api/a/users?role=&status=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("user_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar usuarios")
	}

	var rows []userModel.UserModel
	if err := q.Order("user_lastname ASC, user_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar usuarios")
	}
	return helper.JsonList(c, "Usuarios", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	changes := req.Changes()
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
		}
		changes["user_password"] = string(hash)
	}
	if len(changes) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := h.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Updates(changes)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}

	var u userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el usuario")
	}
	return helper.JsonUpdated(c, "Usuario actualizado", u)
}

// DELETE /api/a/users/:id (soft delete)
// An admin cannot delete their own account.
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if raw, ok := c.Locals("user_id").(string); ok && raw == id.String() {
		return fiber.NewError(fiber.StatusConflict, "No puedes eliminar tu propia cuenta")
	}

	res := h.DB.Where("user_id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el usuario")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonDeleted(c, "Usuario eliminado", fiber.Map{"user_id": id})
}
