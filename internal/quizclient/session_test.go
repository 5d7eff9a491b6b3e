package quizclient_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/examai/internal/exam"
	mock_quizclient "github.com/saulo-duarte/examai/internal/mocks/quizclient"
	"github.com/saulo-duarte/examai/internal/quizclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleForm = quizclient.Form{Topic: "Geography", Difficulty: exam.DifficultyEasy, NumberOfQuestions: 2}

func sampleExam() *exam.Exam {
	return &exam.Exam{
		ID:    uuid.New(),
		Topic: "Geography",
		Questions: []exam.Question{
			capitalQuestion,
			{ID: 5, Text: "Largest ocean?", Options: []string{"Atlantic", "Pacific"}, CorrectAnswer: "Pacific", Explanation: "By area."},
		},
	}
}

func TestSession_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)
	generated := sampleExam()
	api.EXPECT().GenerateExam(gomock.Any(), sampleForm.Request()).Return(generated, nil)

	session := quizclient.NewSession()
	assert.Equal(t, quizclient.PhaseForm, session.Phase())

	require.NoError(t, session.Submit(context.Background(), api, sampleForm))

	view := session.View()
	assert.Equal(t, quizclient.PhaseResult, view.Phase)
	assert.Empty(t, view.Error)
	assert.Same(t, generated, view.Exam)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "Capital of France?", view.Cards[0].Question.Text)
	assert.Equal(t, "Largest ocean?", view.Cards[1].Question.Text)
}

func TestSession_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).Return(nil, errors.New("response error 500"))

	session := quizclient.NewSession()
	err := session.Submit(context.Background(), api, sampleForm)
	require.Error(t, err)

	view := session.View()
	assert.Equal(t, quizclient.PhaseForm, view.Phase)
	assert.Equal(t, quizclient.GenerateFailedMessage, view.Error)
	assert.Nil(t, view.Exam)
	assert.Empty(t, view.Cards)
	assert.Equal(t, sampleForm, view.Form)
}

func TestSession_LoadingRejectsResubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)

	session := quizclient.NewSession()
	release := make(chan struct{})
	started := make(chan struct{})
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req exam.ExamRequest) (*exam.Exam, error) {
			close(started)
			<-release
			return sampleExam(), nil
		}).
		Times(1)

	done := make(chan error)
	go func() {
		done <- session.Submit(context.Background(), api, sampleForm)
	}()

	<-started
	assert.Equal(t, quizclient.PhaseLoading, session.Phase())
	assert.ErrorIs(t, session.Submit(context.Background(), api, sampleForm), quizclient.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, quizclient.PhaseResult, session.Phase())
	assert.ErrorIs(t, session.Submit(context.Background(), api, sampleForm), quizclient.ErrExamActive)
}

func TestSession_ResetWhileLoadingDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)

	session := quizclient.NewSession()
	release := make(chan struct{})
	started := make(chan struct{})
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req exam.ExamRequest) (*exam.Exam, error) {
			close(started)
			<-release
			return sampleExam(), nil
		})

	done := make(chan error)
	go func() {
		done <- session.Submit(context.Background(), api, sampleForm)
	}()

	<-started
	session.Reset()
	close(release)
	require.NoError(t, <-done)

	view := session.View()
	assert.Equal(t, quizclient.PhaseForm, view.Phase)
	assert.Nil(t, view.Exam)
}

func TestSession_Answer(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).Return(sampleExam(), nil)

	session := quizclient.NewSession()

	_, err := session.Answer(0, 0)
	assert.ErrorIs(t, err, quizclient.ErrNoExam)

	require.NoError(t, session.Submit(context.Background(), api, sampleForm))

	changed, err := session.Answer(0, 2)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = session.Answer(0, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = session.Answer(2, 0)
	assert.ErrorIs(t, err, quizclient.ErrUnknownQuestion)
	_, err = session.Answer(1, 5)
	assert.ErrorIs(t, err, quizclient.ErrUnknownOption)

	view := session.View()
	assert.Equal(t, "Rome", view.Cards[0].Selected())
	assert.Equal(t, quizclient.OptionIncorrect, view.Cards[0].Style("Rome"))
	assert.Equal(t, quizclient.OptionCorrect, view.Cards[0].Style("Paris"))
	assert.False(t, view.Cards[1].Answered())
}

func TestSession_ViewIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).Return(sampleExam(), nil)

	session := quizclient.NewSession()
	require.NoError(t, session.Submit(context.Background(), api, sampleForm))

	view := session.View()
	view.Cards[0].Select("Paris")

	assert.False(t, session.View().Cards[0].Answered())
}

func TestSession_ResetAfterResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_quizclient.NewMockExamAPI(ctrl)
	api.EXPECT().GenerateExam(gomock.Any(), gomock.Any()).Return(sampleExam(), nil).Times(2)

	session := quizclient.NewSession()
	require.NoError(t, session.Submit(context.Background(), api, sampleForm))
	_, err := session.Answer(0, 1)
	require.NoError(t, err)

	session.Reset()

	view := session.View()
	assert.Equal(t, quizclient.PhaseForm, view.Phase)
	assert.Equal(t, quizclient.DefaultForm(), view.Form)
	assert.Nil(t, view.Exam)
	assert.Empty(t, view.Cards)

	require.NoError(t, session.Submit(context.Background(), api, sampleForm))
	assert.False(t, session.View().Cards[0].Answered())
}

func TestSession_Reject(t *testing.T) {
	session := quizclient.NewSession()
	form := quizclient.Form{Difficulty: exam.DifficultyHard, NumberOfQuestions: 50}

	session.Reject(form, []string{"topic is a required field"})

	view := session.View()
	assert.Equal(t, quizclient.PhaseForm, view.Phase)
	assert.Equal(t, form, view.Form)
	assert.Equal(t, []string{"topic is a required field"}, view.Validation)
}
