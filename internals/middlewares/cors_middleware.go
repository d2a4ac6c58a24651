package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"encuestas_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS; origin bisa dioverride via env.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnvDefault("CORS_ALLOW_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://127.0.0.1:5500",
	}, ", "))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
