package exam

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/examai/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateExam godoc
// @Summary  Generate an exam
// @Accept   json
// @Produce  json
// @Param    request body ExamRequest true "Exam parameters"
// @Success  200 {object} Exam
// @Failure  400 {string} string "Topic is required."
// @Failure  500 {string} string "Internal server error"
// @Router   /api/exam/generate [post]
func (h *Handler) GenerateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req := NewExamRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for exam generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		http.Error(w, ErrTopicRequired.Error(), http.StatusBadRequest)
		return
	}

	exam, err := h.service.GenerateExam(r.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to generate exam")
		http.Error(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, exam)
}
