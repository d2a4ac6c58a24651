package controller

import (
	"errors"
	"log"

	surveyDto "encuestas_backend/internals/features/surveys/survey/dto"
	surveyService "encuestas_backend/internals/features/surveys/survey/service"
	helper "encuestas_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// POST /api/v1/surveys — teacher/admin
func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req surveyDto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	survey := req.ToModel(userID)
	if err := surveyService.CreateSurvey(ctrl.DB, survey); err != nil {
		if errors.Is(err, surveyService.ErrInvalidDateRange) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Println("[ERROR] Gagal membuat survei:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create survey")
	}

	return helper.JsonCreated(c, "Survei berhasil dibuat", survey)
}

// POST /api/v1/surveys/:id/questions — teacher/admin
func (ctrl *SurveyController) AddQuestion(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	var req surveyDto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question := req.ToModel(surveyID)
	if err := surveyService.AddQuestion(ctrl.DB, surveyID, question); err != nil {
		if errors.Is(err, surveyService.ErrSurveyNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Println("[ERROR] Gagal menambah pertanyaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add question")
	}

	return helper.JsonCreated(c, "Pertanyaan berhasil ditambahkan", question)
}

// GET /api/v1/surveys — public, hanya survei aktif
func (ctrl *SurveyController) ListActive(c *fiber.Ctx) error {
	surveys, err := surveyService.ListActiveSurveys(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil survei aktif:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch surveys")
	}
	return helper.JsonOK(c, "ok", surveys)
}

// GET /api/v1/surveys/:id — public
func (ctrl *SurveyController) GetByID(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	survey, err := surveyService.GetSurveyByID(ctrl.DB, surveyID)
	if err != nil {
		if errors.Is(err, surveyService.ErrSurveyNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch survey")
	}
	return helper.JsonOK(c, "ok", survey)
}

// GET /api/v1/surveys/:id/questions — public
func (ctrl *SurveyController) ListQuestions(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	questions, err := surveyService.ListQuestionsBySurvey(ctrl.DB, surveyID)
	if err != nil {
		if errors.Is(err, surveyService.ErrSurveyNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.JsonOK(c, "ok", questions)
}

// PUT /api/v1/surveys/:id — teacher/admin
func (ctrl *SurveyController) Update(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	var req surveyDto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	survey, err := surveyService.UpdateSurvey(ctrl.DB, surveyID, req)
	if err != nil {
		switch {
		case errors.Is(err, surveyService.ErrSurveyNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, surveyService.ErrInvalidDateRange):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			log.Println("[ERROR] Gagal update survei:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update survey")
		}
	}
	return helper.JsonUpdated(c, "Survei berhasil diperbarui", survey)
}

// DELETE /api/v1/surveys/:id — admin only; cascade eksplisit
func (ctrl *SurveyController) Delete(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID survei tidak valid")
	}

	if err := surveyService.DeleteSurvey(ctrl.DB, surveyID); err != nil {
		if errors.Is(err, surveyService.ErrSurveyNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Println("[ERROR] Gagal hapus survei:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete survey")
	}
	return helper.JsonDeleted(c, "Survei berhasil dihapus", fiber.Map{"survey_id": surveyID})
}
