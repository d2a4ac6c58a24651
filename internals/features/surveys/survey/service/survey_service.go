package service

import (
	"errors"
	"fmt"
	"log"

	answerModel "encuestas_backend/internals/features/surveys/answer/model"
	surveyDto "encuestas_backend/internals/features/surveys/survey/dto"
	surveyModel "encuestas_backend/internals/features/surveys/survey/model"

	"gorm.io/gorm"
)

var (
	ErrSurveyNotFound   = errors.New("survey not found")
	ErrInvalidDateRange = errors.New("survey start date must not be after end date")
)

// CreateSurvey menyimpan survei baru. Tanggal mulai tidak boleh melewati
// tanggal selesai (satu pipeline validasi untuk semua jalur).
func CreateSurvey(db *gorm.DB, m *surveyModel.SurveyModel) error {
	if m.SurveyStartDate.After(m.SurveyEndDate) {
		return ErrInvalidDateRange
	}
	return db.Create(m).Error
}

func GetSurveyByID(db *gorm.DB, id int) (*surveyModel.SurveyModel, error) {
	var survey surveyModel.SurveyModel
	if err := db.First(&survey, "survey_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSurveyNotFound, id)
		}
		return nil, err
	}
	return &survey, nil
}

func ListActiveSurveys(db *gorm.DB) ([]surveyModel.SurveyModel, error) {
	var surveys []surveyModel.SurveyModel
	err := db.
		Where("survey_is_active = ?", true).
		Order("survey_id ASC").
		Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

// UpdateSurvey mengubah field mutable in place.
func UpdateSurvey(db *gorm.DB, id int, req surveyDto.UpdateSurveyRequest) (*surveyModel.SurveyModel, error) {
	if req.SurveyStartDate.After(req.SurveyEndDate) {
		return nil, ErrInvalidDateRange
	}

	survey, err := GetSurveyByID(db, id)
	if err != nil {
		return nil, err
	}

	survey.SurveyTitle = req.SurveyTitle
	survey.SurveyDescription = req.SurveyDescription
	survey.SurveyStartDate = req.SurveyStartDate
	survey.SurveyEndDate = req.SurveyEndDate
	survey.SurveyIsActive = req.SurveyIsActive

	if err := db.Save(survey).Error; err != nil {
		return nil, err
	}
	return survey, nil
}

// DeleteSurvey menghapus survei beserta turunannya secara eksplisit dalam
// satu transaksi. Urutan wajib: answers -> questions -> survey.
func DeleteSurvey(db *gorm.DB, id int) error {
	if _, err := GetSurveyByID(db, id); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("survey_answer_question_id IN (?)",
				tx.Model(&surveyModel.SurveyQuestionModel{}).
					Select("survey_question_id").
					Where("survey_question_survey_id = ?", id),
			).
			Delete(&answerModel.SurveyAnswerModel{}).Error; err != nil {
			log.Println("[ERROR] Gagal hapus answers survei:", err)
			return err
		}

		if err := tx.
			Where("survey_question_survey_id = ?", id).
			Delete(&surveyModel.SurveyQuestionModel{}).Error; err != nil {
			log.Println("[ERROR] Gagal hapus questions survei:", err)
			return err
		}

		return tx.Delete(&surveyModel.SurveyModel{}, "survey_id = ?", id).Error
	})
}

// AddQuestion menempelkan pertanyaan baru ke survei yang sudah ada;
// parent id di-stamp sebelum insert.
func AddQuestion(db *gorm.DB, surveyID int, q *surveyModel.SurveyQuestionModel) error {
	if _, err := GetSurveyByID(db, surveyID); err != nil {
		return err
	}
	q.SurveyQuestionSurveyID = surveyID
	return db.Create(q).Error
}

func ListQuestionsBySurvey(db *gorm.DB, surveyID int) ([]surveyModel.SurveyQuestionModel, error) {
	if _, err := GetSurveyByID(db, surveyID); err != nil {
		return nil, err
	}

	var questions []surveyModel.SurveyQuestionModel
	err := db.
		Where("survey_question_survey_id = ?", surveyID).
		Order("survey_question_id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
