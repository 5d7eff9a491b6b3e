package exam

import (
	"errors"
	"fmt"
)

var ErrTopicRequired = &ValidationError{Message: "Topic is required."}

var ErrWebhookNotConfigured = &ConfigurationError{Message: "generator webhook URL is not configured"}

// ValidationError is raised at the API boundary and never reaches the generator.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError means the generator answered with a non-success status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generator returned %d: %s", e.StatusCode, e.Body)
}

// ParseError keeps the raw generator body since its output is not schema-guaranteed.
type ParseError struct {
	Message string
	Body    string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse generator response: %s. Raw: %s", e.Message, e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errUnexpectedShape = errors.New("unexpected JSON shape")
