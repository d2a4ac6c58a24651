package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveyAnswerModel struct {
	SurveyAnswerID         int       `gorm:"column:survey_answer_id;primaryKey" json:"survey_answer_id"`
	SurveyAnswerUserID     uuid.UUID `gorm:"column:survey_answer_user_id;type:uuid;not null;index" json:"survey_answer_user_id"`
	SurveyAnswerQuestionID int       `gorm:"column:survey_answer_question_id;not null;index" json:"survey_answer_question_id"`
	SurveyAnswerText       string    `gorm:"column:survey_answer_text;type:text;not null" json:"survey_answer_text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyAnswerModel) TableName() string {
	return "survey_answers"
}
