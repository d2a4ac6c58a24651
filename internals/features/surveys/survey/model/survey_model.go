package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveyModel struct {
	SurveyID          int       `gorm:"column:survey_id;primaryKey" json:"survey_id"`
	SurveyTitle       string    `gorm:"column:survey_title;size:255;not null" json:"survey_title"`
	SurveyDescription string    `gorm:"column:survey_description;type:text;not null" json:"survey_description"`
	SurveyStartDate   time.Time `gorm:"column:survey_start_date;not null" json:"survey_start_date"`
	SurveyEndDate     time.Time `gorm:"column:survey_end_date;not null" json:"survey_end_date"`
	// tanpa tag default: GORM melewatkan nilai zero pada insert kalau ada
	// default, sehingga survei nonaktif tidak pernah bisa dibuat. Default
	// aktif diurus dto.ToModel.
	SurveyIsActive    bool      `gorm:"column:survey_is_active;not null" json:"survey_is_active"`
	SurveyCreatedBy   uuid.UUID `gorm:"column:survey_created_by;type:uuid;not null;index" json:"survey_created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyModel) TableName() string {
	return "surveys"
}
