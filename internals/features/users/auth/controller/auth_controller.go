// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "gymku_backend/internals/features/users/auth/service"
	userModel "gymku_backend/internals/features/users/user/model"
	helper "gymku_backend/internals/helpers"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Lastname string `json:"lastname" validate:"required,min=2,max=80"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin instructor"`
}

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}
	if user.UserStatus != userModel.UserActivo {
		return fiber.NewError(fiber.StatusForbidden, "Usuario inactivo")
	}
	if !user.CheckPassword(req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	tokens, err := authService.IssueTokens(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	return helper.JsonOK(c, "Sesión iniciada", fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// POST /api/auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	rawID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token de actualización inválido")
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_id = ? AND user_status = ?", userID, userModel.UserActivo).
		First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuario no válido")
	}

	tokens, err := authService.IssueTokens(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	return helper.JsonOK(c, "Token renovado", tokens)
}

// POST /api/a/auth/register (admin only; the creating admin comes from
// the auth middleware locals)
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.Lastname = strings.TrimSpace(req.Lastname)
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	user := userModel.UserModel{
		UserEmail:    req.Email,
		UserName:     req.Name,
		UserLastname: req.Lastname,
		UserRole:     userModel.UserRole(req.Role),
		UserStatus:   userModel.UserActivo,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	if raw, ok := c.Locals("user_id").(string); ok {
		if creator, err := uuid.Parse(raw); err == nil {
			user.UserCreatedBy = &creator
		}
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un usuario con ese email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}
	return helper.JsonCreated(c, "Usuario creado", user)
}

// GET /api/u/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "No autenticado")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "No autenticado")
	}

	var user userModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonOK(c, "Perfil", user)
}
