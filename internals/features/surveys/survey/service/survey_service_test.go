package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	answerModel "encuestas_backend/internals/features/surveys/answer/model"
	surveyDto "encuestas_backend/internals/features/surveys/survey/dto"
	surveyModel "encuestas_backend/internals/features/surveys/survey/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&surveyModel.SurveyModel{},
		&surveyModel.SurveyQuestionModel{},
		&answerModel.SurveyAnswerModel{},
	))
	return db
}

func makeSurvey(active bool) *surveyModel.SurveyModel {
	return &surveyModel.SurveyModel{
		SurveyTitle:       "Satisfacción del curso",
		SurveyDescription: "deskripsi",
		SurveyStartDate:   time.Now().Add(-24 * time.Hour),
		SurveyEndDate:     time.Now().Add(24 * time.Hour),
		SurveyIsActive:    active,
		SurveyCreatedBy:   uuid.New(),
	}
}

func TestCreateSurvey_RejectsInvertedDates(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(true)
	m.SurveyStartDate = time.Now().Add(48 * time.Hour)
	m.SurveyEndDate = time.Now()

	err := CreateSurvey(db, m)
	require.ErrorIs(t, err, ErrInvalidDateRange)

	var n int64
	require.NoError(t, db.Model(&surveyModel.SurveyModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateAndGetSurvey(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(true)
	require.NoError(t, CreateSurvey(db, m))
	require.NotZero(t, m.SurveyID)

	got, err := GetSurveyByID(db, m.SurveyID)
	require.NoError(t, err)
	assert.Equal(t, m.SurveyTitle, got.SurveyTitle)
	assert.Equal(t, m.SurveyCreatedBy, got.SurveyCreatedBy)
}

func TestCreateSurvey_PersistsInactiveFlag(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(false)
	require.NoError(t, CreateSurvey(db, m))

	got, err := GetSurveyByID(db, m.SurveyID)
	require.NoError(t, err)
	assert.False(t, got.SurveyIsActive)
}

func TestGetSurveyByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetSurveyByID(db, 404)
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestListActiveSurveys_FiltersInactive(t *testing.T) {
	db := newTestDB(t)

	active := makeSurvey(true)
	inactive := makeSurvey(false)
	require.NoError(t, CreateSurvey(db, active))
	require.NoError(t, CreateSurvey(db, inactive))

	got, err := ListActiveSurveys(db)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.SurveyID, got[0].SurveyID)
}

func TestUpdateSurvey(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(true)
	require.NoError(t, CreateSurvey(db, m))

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(72 * time.Hour)
	updated, err := UpdateSurvey(db, m.SurveyID, surveyDto.UpdateSurveyRequest{
		SurveyTitle:       "Nuevo título",
		SurveyDescription: "nueva descripción",
		SurveyStartDate:   start,
		SurveyEndDate:     end,
		SurveyIsActive:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", updated.SurveyTitle)
	assert.False(t, updated.SurveyIsActive)

	// pembuat tidak ikut berubah
	assert.Equal(t, m.SurveyCreatedBy, updated.SurveyCreatedBy)
}

func TestUpdateSurvey_RejectsInvertedDates(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(true)
	require.NoError(t, CreateSurvey(db, m))

	_, err := UpdateSurvey(db, m.SurveyID, surveyDto.UpdateSurveyRequest{
		SurveyTitle:       "X",
		SurveyDescription: "Y",
		SurveyStartDate:   time.Now().Add(48 * time.Hour),
		SurveyEndDate:     time.Now(),
		SurveyIsActive:    true,
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestAddQuestion_StampsParentSurvey(t *testing.T) {
	db := newTestDB(t)

	m := makeSurvey(true)
	require.NoError(t, CreateSurvey(db, m))

	q := &surveyModel.SurveyQuestionModel{
		SurveyQuestionText: "¿Recomendarías el curso?",
		SurveyQuestionType: surveyModel.QuestionTypeSingleChoice,
		SurveyQuestionOptions: []string{
			"sí", "no",
		},
	}
	require.NoError(t, AddQuestion(db, m.SurveyID, q))
	assert.Equal(t, m.SurveyID, q.SurveyQuestionSurveyID)

	list, err := ListQuestionsBySurvey(db, m.SurveyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, q.SurveyQuestionID, list[0].SurveyQuestionID)
}

func TestAddQuestion_UnknownSurvey(t *testing.T) {
	db := newTestDB(t)

	err := AddQuestion(db, 404, &surveyModel.SurveyQuestionModel{SurveyQuestionText: "?"})
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestDeleteSurvey_CascadesAnswersAndQuestions(t *testing.T) {
	db := newTestDB(t)

	keep := makeSurvey(true)
	doomed := makeSurvey(true)
	require.NoError(t, CreateSurvey(db, keep))
	require.NoError(t, CreateSurvey(db, doomed))

	keepQ := &surveyModel.SurveyQuestionModel{SurveyQuestionText: "se queda"}
	doomedQ := &surveyModel.SurveyQuestionModel{SurveyQuestionText: "se va"}
	require.NoError(t, AddQuestion(db, keep.SurveyID, keepQ))
	require.NoError(t, AddQuestion(db, doomed.SurveyID, doomedQ))

	keepAns := answerModel.SurveyAnswerModel{
		SurveyAnswerUserID:     uuid.New(),
		SurveyAnswerQuestionID: keepQ.SurveyQuestionID,
		SurveyAnswerText:       "respuesta que se queda",
	}
	doomedAns := answerModel.SurveyAnswerModel{
		SurveyAnswerUserID:     uuid.New(),
		SurveyAnswerQuestionID: doomedQ.SurveyQuestionID,
		SurveyAnswerText:       "respuesta que se va",
	}
	require.NoError(t, db.Create(&keepAns).Error)
	require.NoError(t, db.Create(&doomedAns).Error)

	require.NoError(t, DeleteSurvey(db, doomed.SurveyID))

	_, err := GetSurveyByID(db, doomed.SurveyID)
	require.ErrorIs(t, err, ErrSurveyNotFound)

	var nQ, nA int64
	require.NoError(t, db.Model(&surveyModel.SurveyQuestionModel{}).Count(&nQ).Error)
	require.NoError(t, db.Model(&answerModel.SurveyAnswerModel{}).Count(&nA).Error)
	assert.EqualValues(t, 1, nQ)
	assert.EqualValues(t, 1, nA)

	// survei lain tidak tersentuh
	list, err := ListQuestionsBySurvey(db, keep.SurveyID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteSurvey_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := DeleteSurvey(db, 404)
	require.ErrorIs(t, err, ErrSurveyNotFound)
}
