package route

import (
	"encuestas_backend/internals/constants"
	surveyController "encuestas_backend/internals/features/surveys/survey/controller"
	authMiddleware "encuestas_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SurveyRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := surveyController.NewSurveyController(db)

	surveys := app.Group("/api/v1/surveys")

	// 🔓 Public read
	surveys.Get("/", ctrl.ListActive)
	surveys.Get("/:id", ctrl.GetByID)
	surveys.Get("/:id/questions", ctrl.ListQuestions)

	// 🛡️ Teacher/Admin
	teacherOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("manajemen survei"), constants.TeacherAndAbove...)
	surveys.Post("/", authMiddleware.AuthMiddleware(db), teacherOnly, ctrl.Create)
	surveys.Post("/:id/questions", authMiddleware.AuthMiddleware(db), teacherOnly, ctrl.AddQuestion)
	surveys.Put("/:id", authMiddleware.AuthMiddleware(db), teacherOnly, ctrl.Update)

	// 🛡️ Admin only (varian hardened)
	surveys.Delete("/:id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("hapus survei"), constants.AdminOnly...),
		ctrl.Delete)
}
