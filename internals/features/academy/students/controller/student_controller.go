// file: internals/features/academy/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "gymku_backend/internals/features/academy/students/dto"
	studentModel "gymku_backend/internals/features/academy/students/model"
	helper "gymku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
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
			return fiber.NewError(fiber.StatusConflict, "Ya existe un alumno con ese CI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el alumno")
	}
	return helper.JsonCreated(c, "Alumno creado", m)
}

// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el alumno")
	}
	return helper.JsonOK(c, "Alumno encontrado", m)
}

// GET /api/a/students?q=&status=&page=&per_page=
// q matches name, lastname or CI.
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&studentModel.StudentModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("lower(student_name) LIKE ? OR lower(student_lastname) LIKE ? OR student_ci LIKE ?",
			like, like, "%"+term+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar alumnos")
	}

	var rows []studentModel.StudentModel
	if err := q.Order("student_lastname ASC, student_name ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar alumnos")
	}
	return helper.JsonList(c, "Alumnos", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req studentDTO.UpdateStudentRequest
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

	res := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", id).
		Updates(changes)
	if res.Error != nil {
		if helper.IsDuplicateKey(res.Error) {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un alumno con ese CI")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el alumno")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	}

	var m studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", id).First(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener el alumno")
	}
	return helper.JsonUpdated(c, "Alumno actualizado", m)
}

// DELETE /api/a/students/:id (soft delete)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Where("student_id = ?", id).Delete(&studentModel.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el alumno")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	}
	return helper.JsonDeleted(c, "Alumno eliminado", fiber.Map{"student_id": id})
}
