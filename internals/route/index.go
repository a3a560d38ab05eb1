// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	authMiddleware "gymku_backend/internals/middlewares/auth"
	routeDetails "gymku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes (kiosk + auth)...")
	routeDetails.KioskRoutes(app, db)
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (any logged-in user) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("el panel administrativo"), constants.RoleAdmin),
	)
	routeDetails.AcademyAdminRoutes(admin, db)
	routeDetails.AttendanceAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)

	// ===================== INSTRUCTOR =====================
	log.Println("[INFO] Setting up INSTRUCTOR group...")
	instructor := app.Group("/api/i",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorInstructor("las clases"), constants.RoleInstructor, constants.RoleAdmin),
	)
	routeDetails.ClassRoutes(instructor, db)
}
