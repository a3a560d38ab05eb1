// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gymku_backend/internals/features/users/auth/controller"
	userController "gymku_backend/internals/features/users/user/controller"
	middlewares "gymku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/refresh", ctl.Refresh)
}

// UserRoutes: endpoints any authenticated user can hit.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	r.Get("/me", ctl.Me)
}

// UserAdminRoutes: account management, admin only.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	authCtl := authController.NewAuthController(db)
	userCtl := userController.NewUserController(db)

	r.Post("/auth/register", authCtl.Register)

	users := r.Group("/users")
	users.Get("/", userCtl.List)
	users.Get("/:id", userCtl.GetByID)
	users.Put("/:id", userCtl.Update)
	users.Delete("/:id", userCtl.Delete)
}
