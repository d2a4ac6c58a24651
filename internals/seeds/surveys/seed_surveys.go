package surveys

import (
	"encoding/json"
	"log"
	"os"
	"time"

	surveyModel "encuestas_backend/internals/features/surveys/survey/model"
	userModel "encuestas_backend/internals/features/users/user/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionSeed struct {
	SurveyQuestionText    string   `json:"survey_question_text"`
	SurveyQuestionType    string   `json:"survey_question_type"`
	SurveyQuestionOptions []string `json:"survey_question_options"`
}

type SurveySeed struct {
	SurveyTitle       string         `json:"survey_title"`
	SurveyDescription string         `json:"survey_description"`
	SurveyDays        int            `json:"survey_days"`
	SurveyIsActive    bool           `json:"survey_is_active"`
	CreatedByEmail    string         `json:"created_by_email"`
	Questions         []QuestionSeed `json:"questions"`
}

func SeedSurveysFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file surveys:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []SurveySeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var count int64
		if err := db.Model(&surveyModel.SurveyModel{}).
			Where("survey_title = ?", s.SurveyTitle).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek survei existing: %v", err)
		}
		if count > 0 {
			log.Printf("ℹ️ Survei '%s' sudah ada, dilewati.", s.SurveyTitle)
			continue
		}

		var creator userModel.UserModel
		if err := db.First(&creator, "email = ?", s.CreatedByEmail).Error; err != nil {
			log.Fatalf("❌ Creator seed '%s' tidak ditemukan (jalankan seed users dulu): %v", s.CreatedByEmail, err)
		}

		now := time.Now()
		survey := surveyModel.SurveyModel{
			SurveyTitle:       s.SurveyTitle,
			SurveyDescription: s.SurveyDescription,
			SurveyStartDate:   now,
			SurveyEndDate:     now.AddDate(0, 0, s.SurveyDays),
			SurveyIsActive:    s.SurveyIsActive,
			SurveyCreatedBy:   creator.ID,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&survey).Error; err != nil {
				return err
			}
			for _, q := range s.Questions {
				question := surveyModel.SurveyQuestionModel{
					SurveyQuestionSurveyID: survey.SurveyID,
					SurveyQuestionText:     q.SurveyQuestionText,
					SurveyQuestionType:     q.SurveyQuestionType,
					SurveyQuestionOptions:  pq.StringArray(q.SurveyQuestionOptions),
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("❌ Gagal insert survei seed: %v", err)
		}
		log.Printf("✅ Survei '%s' berhasil diinsert (%d pertanyaan)", s.SurveyTitle, len(s.Questions))
	}
}
