// file: internals/features/academy/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "gymku_backend/internals/features/academy/branches/model"
	enrollmentDTO "gymku_backend/internals/features/academy/enrollments/dto"
	enrollmentModel "gymku_backend/internals/features/academy/enrollments/model"
	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	membershipModel "gymku_backend/internals/features/academy/memberships/model"
	studentModel "gymku_backend/internals/features/academy/students/model"
	helper "gymku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Ledger   *enrollmentService.Ledger
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:       db,
		Ledger:   enrollmentService.NewLedger(enrollmentService.NewGormStore(db)),
		Validate: validator.New(),
	}
}

// POST /api/a/enrollments
// One activa enrollment per student per branch: pre-checked here for a
// friendly message, enforced by the partial unique index for races.
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	var req enrollmentDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_id = ?", req.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Alumno no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el alumno")
	}

	var membership membershipModel.MembershipModel
	if err := h.DB.Where("membership_id = ? AND membership_status = ?", req.MembershipID, membershipModel.MembershipActivo).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Membresía no encontrada o inactiva")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la membresía")
	}

	var branch branchModel.BranchModel
	if err := h.DB.Where("branch_id = ?", req.BranchID).First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Sucursal no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la sucursal")
	}

	var active int64
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_branch_id = ? AND enrollment_status = ?",
			req.StudentID, req.BranchID, enrollmentModel.EnrollmentActiva).
		Count(&active).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar inscripciones activas")
	}
	if active > 0 {
		return fiber.NewError(fiber.StatusConflict, "El alumno ya tiene una inscripción activa en esta sucursal")
	}

	m := req.ToModel(student.FullName(), &membership, branch.BranchName, time.Now())
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "El alumno ya tiene una inscripción activa en esta sucursal")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la inscripción")
	}
	return helper.JsonCreated(c, "Inscripción creada", m)
}

// GET /api/a/enrollments/:id
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m enrollmentModel.EnrollmentModel
	if err := h.DB.Where("enrollment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inscripción no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener la inscripción")
	}
	return helper.JsonOK(c, "Inscripción encontrada", m)
}

// GET /api/a/enrollments?student_id=&branch_id=&status=&page=&per_page=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&enrollmentModel.EnrollmentModel{})
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "student_id inválido")
		}
		q = q.Where("enrollment_student_id = ?", studentID)
	}
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id inválido")
		}
		q = q.Where("enrollment_branch_id = ?", branchID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar inscripciones")
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := q.Order("enrollment_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar inscripciones")
	}
	return helper.JsonList(c, "Inscripciones", rows, helper.BuildPagination(paging.Page, paging.PerPage, total))
}

// POST /api/a/enrollments/:id/cancel
func (h *EnrollmentController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.Ledger.TransitionStatus(c.Context(), id, enrollmentModel.EnrollmentCancelada); err != nil {
		if errors.Is(err, enrollmentService.ErrEnrollmentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cancelar la inscripción")
	}
	return helper.JsonUpdated(c, "Inscripción cancelada", fiber.Map{"enrollment_id": id})
}

// GET /api/a/enrollments/expiring?days=7
// Active enrollments whose end date falls within the window.
func (h *EnrollmentController) Expiring(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 || days > 90 {
		return fiber.NewError(fiber.StatusBadRequest, "days debe estar entre 1 y 90")
	}
	until := time.Now().AddDate(0, 0, days)

	var rows []enrollmentModel.EnrollmentModel
	if err := h.DB.
		Where("enrollment_status = ? AND enrollment_end_date <= ?", enrollmentModel.EnrollmentActiva, until).
		Order("enrollment_end_date ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo listar inscripciones por vencer")
	}
	return helper.JsonOK(c, "Inscripciones por vencer", rows)
}

// POST /api/a/enrollments/sweep-expired
// Marks every activa enrollment past its end date as vencida.
func (h *EnrollmentController) SweepExpired(c *fiber.Ctx) error {
	count, err := h.Ledger.SweepExpired(c.Context(), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo ejecutar el barrido de vencimientos")
	}
	return helper.JsonOK(c, "Barrido de vencimientos ejecutado", fiber.Map{"expired": count})
}
