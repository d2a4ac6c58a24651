package model

import (
	"time"

	"github.com/lib/pq"
)

// Tipe pertanyaan yang didukung
const (
	QuestionTypeText           = "text"
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
)

type SurveyQuestionModel struct {
	SurveyQuestionID       int            `gorm:"column:survey_question_id;primaryKey" json:"survey_question_id"`
	SurveyQuestionSurveyID int            `gorm:"column:survey_question_survey_id;not null;index" json:"survey_question_survey_id"`
	SurveyQuestionText     string         `gorm:"column:survey_question_text;type:text;not null" json:"survey_question_text"`
	SurveyQuestionType     string         `gorm:"column:survey_question_type;type:varchar(20);not null;default:'text'" json:"survey_question_type"`
	SurveyQuestionOptions  pq.StringArray `gorm:"column:survey_question_options;type:text[]" json:"survey_question_options,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyQuestionModel) TableName() string {
	return "survey_questions"
}
