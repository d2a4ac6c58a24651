package route

import (
	"encuestas_backend/internals/constants"
	userController "encuestas_backend/internals/features/users/user/controller"
	authMiddleware "encuestas_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := app.Group("/api/v1/users", authMiddleware.AuthMiddleware(db))

	// ✅ Profil diri (semua role)
	users.Get("/me", ctrl.GetMe)
	users.Patch("/me", ctrl.UpdateMe)
	users.Patch("/me/avatar", ctrl.UpdateMyAvatar)

	// 🛡️ Admin only
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...)
	users.Get("/", adminOnly, ctrl.List)
	users.Delete("/:id", adminOnly, ctrl.Delete)
}
