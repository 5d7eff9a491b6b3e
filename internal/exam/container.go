package exam

type ExamContainer struct {
	Generator *WebhookGenerator
	Service   Service
	Handler   *Handler
}

func NewExamContainer(webhookURL string) *ExamContainer {
	generator := NewWebhookGenerator(webhookURL)
	service := NewService(generator)
	handler := NewHandler(service)

	return &ExamContainer{
		Generator: generator,
		Service:   service,
		Handler:   handler,
	}
}
