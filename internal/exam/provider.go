package exam

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/examai/internal/config"
	"resty.dev/v3"
)

//go:generate mockgen -source=provider.go -destination=../mocks/exam/mock_generator.go -package=mock_exam Generator

type Generator interface {
	GenerateQuestions(ctx context.Context, req ExamRequest) ([]Question, error)
}

type WebhookGenerator struct {
	httpClient *resty.Client
	webhookURL string
}

// NewWebhookGenerator relays requests to the webhook at webhookURL. The URL is only
// checked when a request is made.
func NewWebhookGenerator(webhookURL string) *WebhookGenerator {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetRetryCount(0)

	return &WebhookGenerator{
		httpClient: client,
		webhookURL: webhookURL,
	}
}

func (g *WebhookGenerator) Close() error {
	return g.httpClient.Close()
}

func (g *WebhookGenerator) GenerateQuestions(ctx context.Context, req ExamRequest) ([]Question, error) {
	log := config.WithContext(ctx)

	if g.webhookURL == "" {
		log.Error("Generator webhook URL is not configured")
		return nil, ErrWebhookNotConfigured
	}

	response, err := g.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post(g.webhookURL)
	if err != nil {
		log.WithError(err).Error("Generator webhook request failed")
		return nil, fmt.Errorf("failed to call generator webhook: %w", err)
	}

	raw := response.String()
	log.Debugf("[GENERATOR] Raw response (%d):\n%s", response.StatusCode(), raw)

	if !response.IsSuccess() {
		log.Warnf("Generator responded with status %d", response.StatusCode())
		return nil, &UpstreamError{StatusCode: response.StatusCode(), Body: raw}
	}

	questions, err := DecodeQuestions([]byte(raw))
	if err != nil {
		log.WithError(err).Error("Failed to decode generator response")
		return nil, err
	}

	log.Infof("[GENERATOR] Received %d questions", len(questions))
	return questions, nil
}
