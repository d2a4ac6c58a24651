package route

import (
	"encuestas_backend/internals/constants"
	answerController "encuestas_backend/internals/features/surveys/answer/controller"
	authMiddleware "encuestas_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnswerRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := answerController.NewAnswerController(db)

	answers := app.Group("/api/v1/answers")

	// 📩 Submit jawaban — JWT opsional (lihat REQUIRE_AUTH)
	answers.Post("/", authMiddleware.OptionalAuthMiddleware(db), ctrl.SubmitAnswers)

	// 🔐 Jawaban milik user login (semua role)
	answers.Get("/survey/:surveyId",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorLogin("jawaban survei"), constants.AllRoles...),
		ctrl.GetUserAnswers)

	// 🛡️ Jumlah responden — teacher/admin
	answers.Get("/survey/:surveyId/respondents",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("jumlah responden"), constants.TeacherAndAbove...),
		ctrl.GetRespondentCount)
}
