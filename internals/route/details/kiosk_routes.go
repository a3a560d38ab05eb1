// file: internals/route/details/kiosk_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentService "gymku_backend/internals/features/academy/enrollments/service"
	scheduleService "gymku_backend/internals/features/academy/schedules/service"
	"gymku_backend/internals/features/attendance/identity"
	instructorAttService "gymku_backend/internals/features/attendance/instructor/service"
	kioskController "gymku_backend/internals/features/attendance/kiosk/controller"
	studentAttService "gymku_backend/internals/features/attendance/student/service"
	middlewares "gymku_backend/internals/middlewares"
)

// KioskRoutes: the shared check-in terminal. No auth, just a rate limit;
// the terminal identifies people by CI, not by session.
func KioskRoutes(app *fiber.App, db *gorm.DB) {
	resolver := identity.NewResolver(
		identity.GormStudents{DB: db},
		identity.GormInstructors{DB: db},
	)
	ledger := enrollmentService.NewLedger(enrollmentService.NewGormStore(db))
	checkIn := studentAttService.NewCheckIn(studentAttService.NewGormStore(db), ledger)
	planner := scheduleService.NewPlanner(scheduleService.NewGormStore(db))
	timeClock := instructorAttService.NewTimeClock(instructorAttService.NewGormStore(db), planner)

	ctl := kioskController.NewKioskController(resolver, checkIn, timeClock)

	grp := app.Group("/api/p/kiosk", middlewares.KioskRateLimiter())
	grp.Post("/check-in", ctl.Mark)
	grp.Post("/clock-out", ctl.ClockOut)
}
