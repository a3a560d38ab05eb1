// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchController "gymku_backend/internals/features/academy/branches/controller"
	enrollmentController "gymku_backend/internals/features/academy/enrollments/controller"
	instructorController "gymku_backend/internals/features/academy/instructors/controller"
	membershipController "gymku_backend/internals/features/academy/memberships/controller"
	scheduleController "gymku_backend/internals/features/academy/schedules/controller"
	studentController "gymku_backend/internals/features/academy/students/controller"
)

func AcademyAdminRoutes(r fiber.Router, db *gorm.DB) {
	branchCtl := branchController.NewBranchController(db)
	branches := r.Group("/branches")
	branches.Post("/", branchCtl.Create)
	branches.Get("/", branchCtl.List)
	branches.Get("/:id", branchCtl.GetByID)
	branches.Put("/:id", branchCtl.Update)
	branches.Delete("/:id", branchCtl.Delete)

	studentCtl := studentController.NewStudentController(db)
	students := r.Group("/students")
	students.Post("/", studentCtl.Create)
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Put("/:id", studentCtl.Update)
	students.Delete("/:id", studentCtl.Delete)

	instructorCtl := instructorController.NewInstructorController(db)
	instructors := r.Group("/instructors")
	instructors.Post("/", instructorCtl.Create)
	instructors.Get("/", instructorCtl.List)
	instructors.Get("/:id", instructorCtl.GetByID)
	instructors.Put("/:id", instructorCtl.Update)
	instructors.Delete("/:id", instructorCtl.Delete)

	membershipCtl := membershipController.NewMembershipController(db)
	memberships := r.Group("/memberships")
	memberships.Post("/", membershipCtl.Create)
	memberships.Get("/", membershipCtl.List)
	memberships.Get("/:id", membershipCtl.GetByID)
	memberships.Put("/:id", membershipCtl.Update)
	memberships.Delete("/:id", membershipCtl.Delete)

	scheduleCtl := scheduleController.NewScheduleController(db)
	schedules := r.Group("/schedules")
	schedules.Post("/", scheduleCtl.Create)
	schedules.Get("/", scheduleCtl.List)
	schedules.Get("/:id", scheduleCtl.GetByID)
	schedules.Put("/:id", scheduleCtl.Update)
	schedules.Delete("/:id", scheduleCtl.Delete)

	enrollmentCtl := enrollmentController.NewEnrollmentController(db)
	enrollments := r.Group("/enrollments")
	enrollments.Post("/", enrollmentCtl.Create)
	enrollments.Get("/", enrollmentCtl.List)
	// static segments before the :id wildcard
	enrollments.Get("/expiring", enrollmentCtl.Expiring)
	enrollments.Post("/sweep-expired", enrollmentCtl.SweepExpired)
	enrollments.Get("/:id", enrollmentCtl.GetByID)
	enrollments.Post("/:id/cancel", enrollmentCtl.Cancel)
}
