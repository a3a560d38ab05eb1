// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	scheduleController "gymku_backend/internals/features/academy/schedules/controller"
	scheduleService "gymku_backend/internals/features/academy/schedules/service"
	classController "gymku_backend/internals/features/attendance/classes/controller"
	classService "gymku_backend/internals/features/attendance/classes/service"
	"gymku_backend/internals/features/attendance/identity"
	instructorAttController "gymku_backend/internals/features/attendance/instructor/controller"
	instructorAttService "gymku_backend/internals/features/attendance/instructor/service"
	studentAttController "gymku_backend/internals/features/attendance/student/controller"
	studentAttService "gymku_backend/internals/features/attendance/student/service"
)

// AttendanceAdminRoutes: day listings, stats and corrections.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := enrollmentService.NewLedger(enrollmentService.NewGormStore(db))
	checkIn := studentAttService.NewCheckIn(studentAttService.NewGormStore(db), ledger)
	planner := scheduleService.NewPlanner(scheduleService.NewGormStore(db))
	timeClock := instructorAttService.NewTimeClock(instructorAttService.NewGormStore(db), planner)

	studentCtl := studentAttController.NewStudentAttendanceController(checkIn)
	students := r.Group("/attendance/students")
	students.Get("/", studentCtl.ListByDay)
	students.Get("/stats", studentCtl.Stats)
	students.Put("/:id/status", studentCtl.UpdateStatus)
	students.Delete("/:id", studentCtl.Delete)

	instructorCtl := instructorAttController.NewInstructorAttendanceController(timeClock)
	instructors := r.Group("/attendance/instructors")
	instructors.Get("/", instructorCtl.ListByDay)
	instructors.Get("/:id/stats", instructorCtl.Stats)
	instructors.Post("/:id/departure", instructorCtl.MarkDeparture)
	instructors.Put("/:id/status", instructorCtl.UpdateStatus)
	instructors.Delete("/:id", instructorCtl.Delete)
}

// ClassRoutes: per-class marking and rosters for instructors.
func ClassRoutes(r fiber.Router, db *gorm.DB) {
	resolver := identity.NewResolver(
		identity.GormStudents{DB: db},
		identity.GormInstructors{DB: db},
	)
	ledger := enrollmentService.NewLedger(enrollmentService.NewGormStore(db))
	planner := scheduleService.NewPlanner(scheduleService.NewGormStore(db))
	roster := classService.NewRoster(resolver, planner, classService.NewGormStore(db), ledger)

	ctl := classController.NewClassAttendanceController(roster)
	classes := r.Group("/classes")
	classes.Post("/mark", ctl.Mark)
	classes.Delete("/attendance/:id", ctl.Delete)
	classes.Get("/:schedule_id/roster", ctl.ListRoster)

	// read-only schedule views for instructors
	scheduleCtl := scheduleController.NewScheduleController(db)
	schedules := r.Group("/schedules")
	schedules.Get("/", scheduleCtl.List)
	schedules.Get("/:id", scheduleCtl.GetByID)
}
