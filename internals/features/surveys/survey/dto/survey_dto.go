package dto

import (
	"strings"
	"time"

	surveyModel "encuestas_backend/internals/features/surveys/survey/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateSurveyRequest — untuk teacher/admin membuat survei baru
type CreateSurveyRequest struct {
	SurveyTitle       string    `json:"survey_title" validate:"required,min=3,max=255"`
	SurveyDescription string    `json:"survey_description" validate:"required"`
	SurveyStartDate   time.Time `json:"survey_start_date" validate:"required"`
	SurveyEndDate     time.Time `json:"survey_end_date" validate:"required"`
	SurveyIsActive    *bool     `json:"survey_is_active,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateSurveyRequest) Normalize() {
	r.SurveyTitle = strings.TrimSpace(r.SurveyTitle)
	r.SurveyDescription = strings.TrimSpace(r.SurveyDescription)
}

func (r *CreateSurveyRequest) ToModel(createdBy uuid.UUID) *surveyModel.SurveyModel {
	m := &surveyModel.SurveyModel{
		SurveyTitle:       r.SurveyTitle,
		SurveyDescription: r.SurveyDescription,
		SurveyStartDate:   r.SurveyStartDate,
		SurveyEndDate:     r.SurveyEndDate,
		SurveyIsActive:    true,
		SurveyCreatedBy:   createdBy,
	}
	if r.SurveyIsActive != nil {
		m.SurveyIsActive = *r.SurveyIsActive
	}
	return m
}

// UpdateSurveyRequest — full update field mutable (title, deskripsi,
// kedua tanggal, flag aktif)
type UpdateSurveyRequest struct {
	SurveyTitle       string    `json:"survey_title" validate:"required,min=3,max=255"`
	SurveyDescription string    `json:"survey_description" validate:"required"`
	SurveyStartDate   time.Time `json:"survey_start_date" validate:"required"`
	SurveyEndDate     time.Time `json:"survey_end_date" validate:"required"`
	SurveyIsActive    bool      `json:"survey_is_active"`
}

func (r *UpdateSurveyRequest) Normalize() {
	r.SurveyTitle = strings.TrimSpace(r.SurveyTitle)
	r.SurveyDescription = strings.TrimSpace(r.SurveyDescription)
}

// CreateQuestionRequest — menambah pertanyaan ke survei
type CreateQuestionRequest struct {
	SurveyQuestionText    string   `json:"survey_question_text" validate:"required"`
	SurveyQuestionType    string   `json:"survey_question_type" validate:"omitempty,oneof=text single_choice multiple_choice"`
	SurveyQuestionOptions []string `json:"survey_question_options,omitempty"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.SurveyQuestionText = strings.TrimSpace(r.SurveyQuestionText)
	r.SurveyQuestionType = strings.TrimSpace(r.SurveyQuestionType)
	if r.SurveyQuestionType == "" {
		r.SurveyQuestionType = surveyModel.QuestionTypeText
	}
}

func (r *CreateQuestionRequest) ToModel(surveyID int) *surveyModel.SurveyQuestionModel {
	return &surveyModel.SurveyQuestionModel{
		SurveyQuestionSurveyID: surveyID,
		SurveyQuestionText:     r.SurveyQuestionText,
		SurveyQuestionType:     r.SurveyQuestionType,
		SurveyQuestionOptions:  pq.StringArray(r.SurveyQuestionOptions),
	}
}
