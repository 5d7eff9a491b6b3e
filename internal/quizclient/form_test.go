package quizclient_test

import (
	"net/url"
	"testing"

	"github.com/saulo-duarte/examai/internal/exam"
	"github.com/saulo-duarte/examai/internal/quizclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		want    quizclient.Form
		wantErr bool
	}{
		{
			name:   "defaults for blank fields",
			values: url.Values{"topic": {"  World History "}},
			want:   quizclient.Form{Topic: "World History", Difficulty: exam.DifficultyMedium, NumberOfQuestions: 5},
		},
		{
			name:   "all fields",
			values: url.Values{"topic": {"Go"}, "difficulty": {"Hard"}, "numberOfQuestions": {"12"}},
			want:   quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyHard, NumberOfQuestions: 12},
		},
		{
			name:    "non numeric count",
			values:  url.Values{"topic": {"Go"}, "numberOfQuestions": {"ten"}},
			want:    quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyMedium, NumberOfQuestions: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quizclient.ParseForm(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormValidator_Validate(t *testing.T) {
	validator, err := quizclient.NewFormValidator()
	require.NoError(t, err)

	tests := []struct {
		name string
		form quizclient.Form
		want []string
	}{
		{
			name: "valid",
			form: quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyEasy, NumberOfQuestions: 1},
		},
		{
			name: "upper bound",
			form: quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyHard, NumberOfQuestions: 20},
		},
		{
			name: "missing topic",
			form: quizclient.Form{Difficulty: exam.DifficultyEasy, NumberOfQuestions: 5},
			want: []string{"topic is a required field"},
		},
		{
			name: "too many questions",
			form: quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyEasy, NumberOfQuestions: 21},
			want: []string{"numberOfQuestions must be 20 or less"},
		},
		{
			name: "too few questions",
			form: quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyEasy, NumberOfQuestions: 0},
			want: []string{"numberOfQuestions must be 1 or greater"},
		},
		{
			name: "unknown difficulty",
			form: quizclient.Form{Topic: "Go", Difficulty: "Extreme", NumberOfQuestions: 5},
			want: []string{"difficulty must be one of [Easy Medium Hard]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Validate(tt.form))
		})
	}
}

func TestForm_Request(t *testing.T) {
	form := quizclient.Form{Topic: "Go", Difficulty: exam.DifficultyHard, NumberOfQuestions: 7}

	assert.Equal(t, exam.ExamRequest{Topic: "Go", NumberOfQuestions: 7, Difficulty: exam.DifficultyHard}, form.Request())
}
