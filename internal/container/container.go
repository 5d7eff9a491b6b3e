package container

import (
	"github.com/saulo-duarte/examai/internal/config"
	"github.com/saulo-duarte/examai/internal/exam"
)

type Container struct {
	Settings      *config.Settings
	ExamContainer *exam.ExamContainer
}

func New(settings *config.Settings) *Container {
	config.InitLogger(settings.Log)

	if settings.Generator.WebhookURL == "" {
		config.Logger.Warn("GENERATOR_WEBHOOK_URL is empty, exam generation requests will fail")
	}

	return &Container{
		Settings:      settings,
		ExamContainer: exam.NewExamContainer(settings.Generator.WebhookURL),
	}
}

func (c *Container) Close() error {
	return c.ExamContainer.Generator.Close()
}
