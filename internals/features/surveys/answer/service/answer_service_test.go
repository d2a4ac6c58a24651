package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	answerDto "encuestas_backend/internals/features/surveys/answer/dto"
	answerModel "encuestas_backend/internals/features/surveys/answer/model"
	surveyModel "encuestas_backend/internals/features/surveys/survey/model"
	userModel "encuestas_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// satu DB in-memory per test; cache=shared supaya semua koneksi pool
	// melihat schema yang sama
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UsersProfileModel{},
		&surveyModel.SurveyModel{},
		&surveyModel.SurveyQuestionModel{},
		&answerModel.SurveyAnswerModel{},
	))
	return db
}

func seedSurvey(t *testing.T, db *gorm.DB, active bool, questionTexts ...string) (surveyModel.SurveyModel, []surveyModel.SurveyQuestionModel) {
	t.Helper()

	survey := surveyModel.SurveyModel{
		SurveyTitle:       "Encuesta de prueba",
		SurveyDescription: "deskripsi",
		SurveyStartDate:   time.Now().Add(-24 * time.Hour),
		SurveyEndDate:     time.Now().Add(24 * time.Hour),
		SurveyIsActive:    active,
		SurveyCreatedBy:   uuid.New(),
	}
	require.NoError(t, db.Create(&survey).Error)

	questions := make([]surveyModel.SurveyQuestionModel, 0, len(questionTexts))
	for _, text := range questionTexts {
		q := surveyModel.SurveyQuestionModel{
			SurveyQuestionSurveyID: survey.SurveyID,
			SurveyQuestionText:     text,
			SurveyQuestionType:     surveyModel.QuestionTypeText,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return survey, questions
}

func countAnswers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&answerModel.SurveyAnswerModel{}).Count(&n).Error)
	return n
}

func TestSubmitSurveyAnswers_Success(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, true, "¿Qué opinas?", "¿Volverías?")
	userID := uuid.New()

	saved, err := SubmitSurveyAnswers(db, userID, answerDto.SubmitSurveyAnswersRequest{
		SurveyID: survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questions[0].SurveyQuestionID, Respuesta: "  muy bien  "},
			{QuestionID: questions[1].SurveyQuestionID, Respuesta: "sí"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// urutan input dipertahankan, teks di-trim, identitas ter-stamp
	assert.Equal(t, "muy bien", saved[0].SurveyAnswerText)
	assert.Equal(t, "sí", saved[1].SurveyAnswerText)
	assert.Equal(t, questions[0].SurveyQuestionID, saved[0].SurveyAnswerQuestionID)
	assert.Equal(t, userID, saved[0].SurveyAnswerUserID)
	assert.Equal(t, userID, saved[1].SurveyAnswerUserID)
	assert.EqualValues(t, 2, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_MissingSurveyID(t *testing.T) {
	db := newTestDB(t)

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		Respuestas: []answerDto.AnswerRequest{{QuestionID: 1, Respuesta: "hola"}},
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.EqualValues(t, 0, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_SurveyNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   999,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: 1, Respuesta: "hola"}},
	})
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestSubmitSurveyAnswers_InactiveSurveyStoresNothing(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, false, "¿Qué opinas?")

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: questions[0].SurveyQuestionID, Respuesta: "hola"}},
	})
	require.ErrorIs(t, err, ErrSurveyInactive)
	assert.EqualValues(t, 0, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_EmptyList(t *testing.T) {
	db := newTestDB(t)
	survey, _ := seedSurvey(t, db, true, "¿Qué opinas?")

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID: survey.SurveyID,
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSubmitSurveyAnswers_UnknownQuestionRollsBackBatch(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, true, "¿Qué opinas?")

	// entri pertama valid, entri kedua tidak ada -> seluruh batch batal
	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID: survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questions[0].SurveyQuestionID, Respuesta: "valida"},
			{QuestionID: 9999, Respuesta: "huérfana"},
		},
	})
	require.ErrorIs(t, err, ErrQuestionNotFound)
	assert.EqualValues(t, 0, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_QuestionFromOtherSurveyRollsBack(t *testing.T) {
	db := newTestDB(t)
	surveyA, questionsA := seedSurvey(t, db, true, "pregunta A")
	_, questionsB := seedSurvey(t, db, true, "pregunta B")

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID: surveyA.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questionsA[0].SurveyQuestionID, Respuesta: "valida"},
			{QuestionID: questionsB[0].SurveyQuestionID, Respuesta: "ajena"},
		},
	})
	require.ErrorIs(t, err, ErrQuestionSurveyMismatch)
	assert.EqualValues(t, 0, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_BlankTextRejected(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, true, "¿Qué opinas?")

	_, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: questions[0].SurveyQuestionID, Respuesta: "   "}},
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.EqualValues(t, 0, countAnswers(t, db))
}

func TestSubmitSurveyAnswers_DuplicateQuestionNotDeduped(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, true, "¿Qué opinas?")

	saved, err := SubmitSurveyAnswers(db, uuid.New(), answerDto.SubmitSurveyAnswersRequest{
		SurveyID: survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questions[0].SurveyQuestionID, Respuesta: "primera"},
			{QuestionID: questions[0].SurveyQuestionID, Respuesta: "segunda"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.EqualValues(t, 2, countAnswers(t, db))
}

func TestGetUserAnswers_FiltersByUserAndSurvey(t *testing.T) {
	db := newTestDB(t)
	surveyA, questionsA := seedSurvey(t, db, true, "pregunta A1", "pregunta A2")
	surveyB, questionsB := seedSurvey(t, db, true, "pregunta B1")

	alice := uuid.New()
	bob := uuid.New()

	_, err := SubmitSurveyAnswers(db, alice, answerDto.SubmitSurveyAnswersRequest{
		SurveyID: surveyA.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questionsA[0].SurveyQuestionID, Respuesta: "alice a1"},
			{QuestionID: questionsA[1].SurveyQuestionID, Respuesta: "alice a2"},
		},
	})
	require.NoError(t, err)

	_, err = SubmitSurveyAnswers(db, alice, answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   surveyB.SurveyID,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: questionsB[0].SurveyQuestionID, Respuesta: "alice b1"}},
	})
	require.NoError(t, err)

	_, err = SubmitSurveyAnswers(db, bob, answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   surveyA.SurveyID,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: questionsA[0].SurveyQuestionID, Respuesta: "bob a1"}},
	})
	require.NoError(t, err)

	answers, err := GetUserAnswers(db, alice, surveyA.SurveyID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "alice a1", answers[0].SurveyAnswerText)
	assert.Equal(t, "alice a2", answers[1].SurveyAnswerText)

	// baca ulang tidak mengubah isi store
	again, err := GetUserAnswers(db, alice, surveyA.SurveyID)
	require.NoError(t, err)
	assert.Equal(t, answers, again)
	assert.EqualValues(t, 4, countAnswers(t, db))
}

func TestGetUserAnswers_SurveyNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetUserAnswers(db, uuid.New(), 404)
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestGetRespondentCount_DistinctUsers(t *testing.T) {
	db := newTestDB(t)
	survey, questions := seedSurvey(t, db, true, "pregunta 1", "pregunta 2")

	alice := uuid.New()
	bob := uuid.New()

	// alice menjawab dua pertanyaan, bob satu -> tetap 2 responden
	_, err := SubmitSurveyAnswers(db, alice, answerDto.SubmitSurveyAnswersRequest{
		SurveyID: survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{
			{QuestionID: questions[0].SurveyQuestionID, Respuesta: "uno"},
			{QuestionID: questions[1].SurveyQuestionID, Respuesta: "dos"},
		},
	})
	require.NoError(t, err)

	_, err = SubmitSurveyAnswers(db, bob, answerDto.SubmitSurveyAnswersRequest{
		SurveyID:   survey.SurveyID,
		Respuestas: []answerDto.AnswerRequest{{QuestionID: questions[0].SurveyQuestionID, Respuesta: "tres"}},
	})
	require.NoError(t, err)

	count, err := GetRespondentCount(db, survey.SurveyID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestGetRespondentCount_EmptySurvey(t *testing.T) {
	db := newTestDB(t)
	survey, _ := seedSurvey(t, db, true, "pregunta 1")

	count, err := GetRespondentCount(db, survey.SurveyID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestResolveFallbackUser_PrefersAnonymousAccount(t *testing.T) {
	db := newTestDB(t)

	older := userModel.UserModel{
		UserName:  "viejo",
		Email:     "viejo@encuestas.local",
		Password:  "hash",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)

	anon := userModel.UserModel{
		UserName:  "anonimo",
		Email:     "anonimo@encuestas.local",
		Password:  "hash",
		CreatedAt: time.Now().Add(-1 * time.Hour),
	}
	require.NoError(t, db.Create(&anon).Error)

	got, err := ResolveFallbackUser(db, "  Anonimo@Encuestas.LOCAL ")
	require.NoError(t, err)
	assert.Equal(t, anon.ID, got.ID)
}

func TestResolveFallbackUser_FallsBackToOldestUser(t *testing.T) {
	db := newTestDB(t)

	older := userModel.UserModel{
		UserName:  "viejo",
		Email:     "viejo@encuestas.local",
		Password:  "hash",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(&older).Error)

	newer := userModel.UserModel{
		UserName:  "nuevo",
		Email:     "nuevo@encuestas.local",
		Password:  "hash",
		CreatedAt: time.Now().Add(-1 * time.Hour),
	}
	require.NoError(t, db.Create(&newer).Error)

	got, err := ResolveFallbackUser(db, "anonimo@encuestas.local")
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)
}

func TestResolveFallbackUser_NoUsers(t *testing.T) {
	db := newTestDB(t)

	_, err := ResolveFallbackUser(db, "anonimo@encuestas.local")
	require.ErrorIs(t, err, ErrNoUsersAvailable)
}
