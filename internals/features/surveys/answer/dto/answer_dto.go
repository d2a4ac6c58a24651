package dto

import (
	"strings"

	answerModel "encuestas_backend/internals/features/surveys/answer/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// AnswerRequest — satu jawaban untuk satu pertanyaan.
type AnswerRequest struct {
	QuestionID int    `json:"questionId" validate:"required,gt=0"`
	Respuesta  string `json:"respuesta" validate:"required"`
}

// SubmitSurveyAnswersRequest — payload POST /api/v1/answers.
// Field mengikuti kontrak wire lama (camelCase + respuestas).
type SubmitSurveyAnswersRequest struct {
	SurveyID   int             `json:"surveyId" validate:"required,gt=0"`
	Respuestas []AnswerRequest `json:"respuestas" validate:"required,min=1,dive"`
}

// Normalize — trim seluruh teks jawaban
func (r *SubmitSurveyAnswersRequest) Normalize() {
	for i := range r.Respuestas {
		r.Respuestas[i].Respuesta = strings.TrimSpace(r.Respuestas[i].Respuesta)
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type SurveyAnswerResponse struct {
	SurveyAnswerID         int    `json:"survey_answer_id"`
	SurveyAnswerUserID     string `json:"survey_answer_user_id"`
	SurveyAnswerQuestionID int    `json:"survey_answer_question_id"`
	SurveyAnswerText       string `json:"survey_answer_text"`
	CreatedAt              string `json:"created_at"`
}

func ToSurveyAnswerResponse(m answerModel.SurveyAnswerModel) SurveyAnswerResponse {
	return SurveyAnswerResponse{
		SurveyAnswerID:         m.SurveyAnswerID,
		SurveyAnswerUserID:     m.SurveyAnswerUserID.String(),
		SurveyAnswerQuestionID: m.SurveyAnswerQuestionID,
		SurveyAnswerText:       m.SurveyAnswerText,
		CreatedAt:              m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToSurveyAnswerResponses(ms []answerModel.SurveyAnswerModel) []SurveyAnswerResponse {
	out := make([]SurveyAnswerResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSurveyAnswerResponse(m))
	}
	return out
}
