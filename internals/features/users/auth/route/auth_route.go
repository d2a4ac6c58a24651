package route

import (
	controller "encuestas_backend/internals/features/users/auth/controller"
	rateLimiter "encuestas_backend/internals/middlewares"
	authMiddleware "encuestas_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/v1/auth
	baseAuth := app.Group("/api/v1/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)

	// Register public; JWT opsional supaya admin bisa membuat akun teacher/admin
	baseAuth.Post("/register",
		rateLimiter.RegisterRateLimiter(),
		authMiddleware.OptionalAuthMiddleware(db),
		authController.Register)

	baseAuth.Post("/logout", authController.Logout)
}
