package quizclient

import (
	"context"
	"errors"
	"sync"

	"github.com/saulo-duarte/examai/internal/config"
	"github.com/saulo-duarte/examai/internal/exam"
)

type Phase int

const (
	PhaseForm Phase = iota
	PhaseLoading
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	default:
		return "form"
	}
}

const GenerateFailedMessage = "Failed to generate exam. Please try again."

var (
	ErrBusy            = errors.New("an exam is already being generated")
	ErrExamActive      = errors.New("discard the current exam before creating a new one")
	ErrNoExam          = errors.New("no exam to answer")
	ErrUnknownQuestion = errors.New("question does not exist")
	ErrUnknownOption   = errors.New("option does not exist")
)

// View is a point-in-time copy of a session, safe to render.
type View struct {
	Phase      Phase
	Form       Form
	Error      string
	Validation []string
	Exam       *exam.Exam
	Cards      []*Card
}

// Session is the quiz view state of one user: the form, the in-flight request and
// the cards of the current exam.
type Session struct {
	mu         sync.Mutex
	phase      Phase
	form       Form
	errMsg     string
	validation []string
	exam       *exam.Exam
	cards      []*Card
	generation int
}

func NewSession() *Session {
	return &Session{form: DefaultForm()}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Reject keeps the submitted form on screen together with its validation messages.
func (s *Session) Reject(form Form, messages []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseForm {
		return
	}
	s.form = form
	s.validation = messages
	s.errMsg = ""
}

// Submit moves the form into loading, calls api and settles on the result or back on
// the form with GenerateFailedMessage. Only one submission runs at a time.
func (s *Session) Submit(ctx context.Context, api ExamAPI, form Form) error {
	s.mu.Lock()
	switch s.phase {
	case PhaseLoading:
		s.mu.Unlock()
		return ErrBusy
	case PhaseResult:
		s.mu.Unlock()
		return ErrExamActive
	}
	s.phase = PhaseLoading
	s.form = form
	s.errMsg = ""
	s.validation = nil
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	generated, err := api.GenerateExam(ctx, form.Request())
	if err == nil && generated == nil {
		err = errors.New("relay API returned no exam")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reset while loading discards this result.
	if generation != s.generation {
		return err
	}

	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Exam generation failed")
		s.phase = PhaseForm
		s.errMsg = GenerateFailedMessage
		return err
	}

	s.exam = generated
	s.cards = NewCards(generated)
	s.phase = PhaseResult
	return nil
}

// Answer selects option optionIndex on card index. It reports false when the card was
// already answered.
func (s *Session) Answer(index, optionIndex int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResult {
		return false, ErrNoExam
	}
	if index < 0 || index >= len(s.cards) {
		return false, ErrUnknownQuestion
	}
	card := s.cards[index]
	if optionIndex < 0 || optionIndex >= len(card.Question.Options) {
		return false, ErrUnknownOption
	}
	return card.SelectIndex(optionIndex), nil
}

// Reset discards the exam and every card and returns to an empty form.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseForm
	s.form = DefaultForm()
	s.errMsg = ""
	s.validation = nil
	s.exam = nil
	s.cards = nil
	s.generation++
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]*Card, len(s.cards))
	for i, c := range s.cards {
		snapshot := *c
		cards[i] = &snapshot
	}

	return View{
		Phase:      s.phase,
		Form:       s.form,
		Error:      s.errMsg,
		Validation: append([]string(nil), s.validation...),
		Exam:       s.exam,
		Cards:      cards,
	}
}
