package controller

import (
	"errors"
	"log"

	"encuestas_backend/internals/configs"
	answerDto "encuestas_backend/internals/features/surveys/answer/dto"
	answerService "encuestas_backend/internals/features/surveys/answer/service"
	helper "encuestas_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerController struct {
	DB *gorm.DB
}

func NewAnswerController(db *gorm.DB) *AnswerController {
	return &AnswerController{DB: db}
}

// 📩 POST /api/v1/answers — menyimpan satu batch jawaban (atomik).
// JWT opsional: tanpa token perilaku ditentukan REQUIRE_AUTH (lihat configs).
func (ctrl *AnswerController) SubmitAnswers(c *fiber.Ctx) error {
	var req answerDto.SubmitSurveyAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Println("[ERROR] Failed to parse answers input:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	// surveyId divalidasi sebelum resolve identitas (tanpa akses store)
	if req.SurveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "surveyId wajib diisi")
	}

	userID, err := ctrl.resolveSubmitter(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Gagal resolve submitter:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	saved, err := answerService.SubmitSurveyAnswers(ctrl.DB, userID, req)
	if err != nil {
		return mapAnswerError(c, err)
	}

	return helper.JsonOK(c, "Survey answers submitted successfully", answerDto.ToSurveyAnswerResponses(saved))
}

// GET /api/v1/answers/survey/:surveyId — jawaban user saat ini
func (ctrl *AnswerController) GetUserAnswers(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	answers, err := answerService.GetUserAnswers(ctrl.DB, userID, surveyID)
	if err != nil {
		return mapAnswerError(c, err)
	}
	return helper.JsonOK(c, "ok", answerDto.ToSurveyAnswerResponses(answers))
}

// GET /api/v1/answers/survey/:surveyId/respondents — jumlah responden unik
func (ctrl *AnswerController) GetRespondentCount(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	count, err := answerService.GetRespondentCount(ctrl.DB, surveyID)
	if err != nil {
		return mapAnswerError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"respondent_count": count})
}

// resolveSubmitter: identitas dari token kalau ada; tanpa token mengikuti
// REQUIRE_AUTH (true -> 401, false -> akun anonim/fallback).
// Return error non-nil (bukan response yang sudah ditulis) supaya caller
// benar-benar berhenti saat identitas gagal di-resolve.
func (ctrl *AnswerController) resolveSubmitter(c *fiber.Ctx) (uuid.UUID, error) {
	if c.Locals("user_id") != nil {
		return helper.GetUserUUID(c)
	}

	if configs.RequireAuth {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token provided")
	}

	user, err := answerService.ResolveFallbackUser(ctrl.DB, configs.AnonymousEmail)
	if err != nil {
		if errors.Is(err, answerService.ErrNoUsersAvailable) {
			return uuid.Nil, fiber.NewError(fiber.StatusServiceUnavailable, "Tidak ada user yang tersedia untuk submit anonim")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal resolve user anonim")
	}
	log.Println("[INFO] Submit tanpa token, memakai akun fallback:", user.Email)
	return user.ID, nil
}

// mapAnswerError memetakan error sentinel service ke satu bentuk response baku.
func mapAnswerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, answerService.ErrInvalidRequest):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, answerService.ErrSurveyNotFound),
		errors.Is(err, answerService.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, answerService.ErrSurveyInactive):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, answerService.ErrQuestionSurveyMismatch):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Println("[ERROR] Answer service:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
