package quizclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/examai/internal/config"
	"github.com/saulo-duarte/examai/internal/exam"
	"resty.dev/v3"
)

//go:generate mockgen -source=client.go -destination=../mocks/quizclient/mock_exam_api.go -package=mock_quizclient ExamAPI

// ExamAPI is the relay API as seen by the quiz views.
type ExamAPI interface {
	GenerateExam(ctx context.Context, req exam.ExamRequest) (*exam.Exam, error)
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/") + "/api")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

func (c *Client) GenerateExam(ctx context.Context, req exam.ExamRequest) (*exam.Exam, error) {
	log := config.WithContext(ctx)

	var result exam.Exam
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/exam/generate")
	if err != nil {
		log.WithError(err).Error("Relay API request failed")
		return nil, fmt.Errorf("failed to call relay API: %w", err)
	}

	if !response.IsSuccess() {
		log.Warnf("Relay API responded with status %d: %s", response.StatusCode(), response.String())
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), strings.TrimSpace(response.String()))
	}

	return &result, nil
}
