package exam

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultNumberOfQuestions = 10
	DefaultDifficulty        = DifficultyMedium
)

type ExamRequest struct {
	Topic             string     `json:"topic"`
	NumberOfQuestions int        `json:"numberOfQuestions"`
	Difficulty        Difficulty `json:"difficulty"`
}

// NewExamRequest returns a request holding the defaults used for fields a caller omits.
func NewExamRequest() ExamRequest {
	return ExamRequest{
		NumberOfQuestions: DefaultNumberOfQuestions,
		Difficulty:        DefaultDifficulty,
	}
}

// Question is produced by the generator and relayed as is. ID is only unique within
// one exam.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type Exam struct {
	ID        uuid.UUID  `json:"id"`
	Topic     string     `json:"topic"`
	CreatedAt time.Time  `json:"createdAt"`
	Questions []Question `json:"questions"`
}
