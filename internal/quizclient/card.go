package quizclient

import "github.com/saulo-duarte/examai/internal/exam"

type CardState int

const (
	Unanswered CardState = iota
	Answered
)

func (s CardState) String() string {
	if s == Answered {
		return "answered"
	}
	return "unanswered"
}

// OptionStyle is how an option is shown once its card is answered.
type OptionStyle string

const (
	OptionPlain     OptionStyle = "plain"
	OptionCorrect   OptionStyle = "correct"
	OptionIncorrect OptionStyle = "incorrect"
	OptionMuted     OptionStyle = "muted"
)

// Card tracks one question. The first selection is final.
type Card struct {
	Index    int
	Question exam.Question
	state    CardState
	selected string
}

func NewCard(index int, q exam.Question) *Card {
	return &Card{Index: index, Question: q}
}

// NewCards builds one card per question in exam order.
func NewCards(e *exam.Exam) []*Card {
	cards := make([]*Card, len(e.Questions))
	for i, q := range e.Questions {
		cards[i] = NewCard(i, q)
	}
	return cards
}

func (c *Card) State() CardState {
	return c.state
}

func (c *Card) Answered() bool {
	return c.state == Answered
}

func (c *Card) Selected() string {
	return c.selected
}

// Select records option and reports whether the card changed state.
func (c *Card) Select(option string) bool {
	if c.state == Answered {
		return false
	}
	c.selected = option
	c.state = Answered
	return true
}

// SelectIndex selects the option at position i of the question's options.
func (c *Card) SelectIndex(i int) bool {
	if i < 0 || i >= len(c.Question.Options) {
		return false
	}
	return c.Select(c.Question.Options[i])
}

func (c *Card) IsCorrect() bool {
	return c.state == Answered && c.selected == c.Question.CorrectAnswer
}

func (c *Card) Style(option string) OptionStyle {
	if c.state == Unanswered {
		return OptionPlain
	}
	if option == c.Question.CorrectAnswer {
		return OptionCorrect
	}
	if option == c.selected {
		return OptionIncorrect
	}
	return OptionMuted
}

// Explanation is only revealed after the card is answered.
func (c *Card) Explanation() (string, bool) {
	if c.state == Unanswered {
		return "", false
	}
	return c.Question.Explanation, true
}
