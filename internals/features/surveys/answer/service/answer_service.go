package service

import (
	"errors"
	"fmt"
	"strings"

	answerDto "encuestas_backend/internals/features/surveys/answer/dto"
	answerModel "encuestas_backend/internals/features/surveys/answer/model"
	surveyModel "encuestas_backend/internals/features/surveys/survey/model"
	userModel "encuestas_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Error sentinel — controller memetakan ke satu bentuk response baku.
var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrSurveyNotFound         = errors.New("survey not found")
	ErrSurveyInactive         = errors.New("survey is not active")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrQuestionSurveyMismatch = errors.New("question does not belong to the survey")
	ErrNoUsersAvailable       = errors.New("no users available")
)

// SubmitSurveyAnswers menyimpan satu batch jawaban untuk satu survei dalam
// satu transaksi: semua baris masuk, atau tidak sama sekali.
//
// Urutan validasi (fail-fast):
//  1. survey_id wajib
//  2. survei harus ada
//  3. survei harus aktif
//  4. daftar jawaban tidak boleh kosong
//  5. per jawaban: question_id wajib, pertanyaan harus ada, pertanyaan harus
//     milik survei tsb, teks jawaban (setelah trim) tidak boleh kosong
func SubmitSurveyAnswers(db *gorm.DB, userID uuid.UUID, req answerDto.SubmitSurveyAnswersRequest) ([]answerModel.SurveyAnswerModel, error) {
	if req.SurveyID <= 0 {
		return nil, fmt.Errorf("%w: surveyId wajib diisi", ErrInvalidRequest)
	}

	saved := make([]answerModel.SurveyAnswerModel, 0, len(req.Respuestas))

	err := db.Transaction(func(tx *gorm.DB) error {
		var survey surveyModel.SurveyModel
		if err := tx.First(&survey, "survey_id = ?", req.SurveyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrSurveyNotFound, req.SurveyID)
			}
			return err
		}

		if !survey.SurveyIsActive {
			return ErrSurveyInactive
		}

		if len(req.Respuestas) == 0 {
			return fmt.Errorf("%w: minimal satu jawaban", ErrInvalidRequest)
		}

		for _, in := range req.Respuestas {
			answer, err := createAnswer(tx, userID, survey.SurveyID, in)
			if err != nil {
				return err
			}
			saved = append(saved, *answer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func createAnswer(tx *gorm.DB, userID uuid.UUID, surveyID int, in answerDto.AnswerRequest) (*answerModel.SurveyAnswerModel, error) {
	if in.QuestionID <= 0 {
		return nil, fmt.Errorf("%w: questionId wajib diisi", ErrInvalidRequest)
	}

	var question surveyModel.SurveyQuestionModel
	if err := tx.First(&question, "survey_question_id = ?", in.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, in.QuestionID)
		}
		return nil, err
	}

	if question.SurveyQuestionSurveyID != surveyID {
		return nil, fmt.Errorf("%w: pertanyaan %d", ErrQuestionSurveyMismatch, in.QuestionID)
	}

	text := strings.TrimSpace(in.Respuesta)
	if text == "" {
		return nil, fmt.Errorf("%w: respuesta tidak boleh kosong", ErrInvalidRequest)
	}

	answer := answerModel.SurveyAnswerModel{
		SurveyAnswerUserID:     userID,
		SurveyAnswerQuestionID: question.SurveyQuestionID,
		SurveyAnswerText:       text,
	}
	if err := tx.Create(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetUserAnswers mengembalikan seluruh jawaban user tsb pada survei yang
// diminta, urut stabil berdasarkan id.
func GetUserAnswers(db *gorm.DB, userID uuid.UUID, surveyID int) ([]answerModel.SurveyAnswerModel, error) {
	if err := ensureSurveyExists(db, surveyID); err != nil {
		return nil, err
	}

	var answers []answerModel.SurveyAnswerModel
	err := db.
		Joins("JOIN survey_questions ON survey_questions.survey_question_id = survey_answers.survey_answer_question_id").
		Where("survey_answers.survey_answer_user_id = ? AND survey_questions.survey_question_survey_id = ?", userID, surveyID).
		Order("survey_answers.survey_answer_id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// GetRespondentCount menghitung jumlah user berbeda yang punya minimal satu
// jawaban pada pertanyaan milik survei tsb.
func GetRespondentCount(db *gorm.DB, surveyID int) (int64, error) {
	if err := ensureSurveyExists(db, surveyID); err != nil {
		return 0, err
	}

	var count int64
	err := db.Model(&answerModel.SurveyAnswerModel{}).
		Joins("JOIN survey_questions ON survey_questions.survey_question_id = survey_answers.survey_answer_question_id").
		Where("survey_questions.survey_question_survey_id = ?", surveyID).
		Distinct("survey_answers.survey_answer_user_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func ensureSurveyExists(db *gorm.DB, surveyID int) error {
	var n int64
	if err := db.Model(&surveyModel.SurveyModel{}).
		Where("survey_id = ?", surveyID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrSurveyNotFound, surveyID)
	}
	return nil
}

// ResolveFallbackUser mencari identitas pengganti untuk submit tanpa token
// (hanya dipakai saat REQUIRE_AUTH=false): akun anonim by email dulu,
// kalau tidak ada ambil user tertua. Error kalau tabel users kosong.
func ResolveFallbackUser(db *gorm.DB, anonymousEmail string) (*userModel.UserModel, error) {
	var user userModel.UserModel

	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(anonymousEmail))).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Order("created_at ASC").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUsersAvailable
		}
		return nil, err
	}
	return &user, nil
}
