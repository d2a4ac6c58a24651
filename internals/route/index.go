package routes

import (
	"log"
	"time"

	answerRoute "encuestas_backend/internals/features/surveys/answer/route"
	surveyRoute "encuestas_backend/internals/features/surveys/survey/route"
	authRoute "encuestas_backend/internals/features/users/auth/route"
	userRoute "encuestas_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up SurveyRoutes...")
	surveyRoute.SurveyRoutes(app, db)

	log.Println("[INFO] Setting up AnswerRoutes...")
	answerRoute.AnswerRoutes(app, db)
}
