package exam

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/examai/internal/config"
)

type Service interface {
	GenerateExam(ctx context.Context, req ExamRequest) (*Exam, error)
}

type service struct {
	generator Generator
	now       func() time.Time
	newID     func() uuid.UUID
}

type ServiceOption func(*service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

func WithIDSource(newID func() uuid.UUID) ServiceOption {
	return func(s *service) { s.newID = newID }
}

func NewService(generator Generator, opts ...ServiceOption) Service {
	s := &service{
		generator: generator,
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GenerateExam(ctx context.Context, req ExamRequest) (*Exam, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrTopicRequired
	}

	log.WithField("topic", req.Topic).Infof("Generating %d %s questions", req.NumberOfQuestions, req.Difficulty)

	questions, err := s.generator.GenerateQuestions(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Exam{
		ID:        s.newID(),
		Topic:     req.Topic,
		CreatedAt: s.now().UTC(),
		Questions: questions,
	}, nil
}
