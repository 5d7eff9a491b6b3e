package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/examai/internal/config"
	"github.com/saulo-duarte/examai/internal/exam"
	"github.com/saulo-duarte/examai/internal/quizclient"
	util "github.com/saulo-duarte/examai/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookie = "examai_session"

type Options struct {
	SessionIdle time.Duration
	Location    *time.Location
}

type Server struct {
	api       quizclient.ExamAPI
	validator *quizclient.FormValidator
	store     *SessionStore
	templates *template.Template
}

type page struct {
	View         quizclient.View
	Loading      bool
	Result       bool
	Difficulties []exam.Difficulty
	MinQuestions int
	MaxQuestions int
}

func NewServer(api quizclient.ExamAPI, opts Options) (*Server, error) {
	validator, err := quizclient.NewFormValidator()
	if err != nil {
		return nil, err
	}

	loc := opts.Location
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"localTime": func(t time.Time) string {
			return util.FormatLocal(t, loc)
		},
	}
	templates, err := template.New("examai").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		api:       api,
		validator: validator,
		store:     NewSessionStore(opts.SessionIdle),
		templates: templates,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.Index)
	r.Post("/exam", s.CreateExam)
	r.Post("/questions/{index}/answer", s.AnswerQuestion)
	r.Post("/reset", s.Reset)
	return r
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *quizclient.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if session, ok := s.store.Get(cookie.Value); ok {
			return session
		}
	}

	id, session := s.store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	view := s.session(w, r).View()

	data := page{
		View:         view,
		Loading:      view.Phase == quizclient.PhaseLoading,
		Result:       view.Phase == quizclient.PhaseResult,
		Difficulties: exam.AllDifficulties,
		MinQuestions: quizclient.MinQuestions,
		MaxQuestions: quizclient.MaxQuestions,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index", data); err != nil {
		log.WithError(err).Error("Failed to render quiz page")
	}
}

func (s *Server) CreateExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := s.session(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form, err := quizclient.ParseForm(r.PostForm)
	if err != nil {
		session.Reject(form, []string{err.Error()})
		redirectHome(w, r, "")
		return
	}
	if messages := s.validator.Validate(form); len(messages) > 0 {
		session.Reject(form, messages)
		redirectHome(w, r, "")
		return
	}

	if err := session.Submit(r.Context(), s.api, form); err != nil {
		switch {
		case errors.Is(err, quizclient.ErrBusy), errors.Is(err, quizclient.ErrExamActive):
			log.WithError(err).Info("Ignoring exam submission")
		default:
			log.WithError(err).Error("Failed to generate exam")
		}
	}
	redirectHome(w, r, "")
}

func (s *Server) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	session := s.session(w, r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid question", http.StatusBadRequest)
		return
	}
	option, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		http.Error(w, "invalid option", http.StatusBadRequest)
		return
	}

	if _, err := session.Answer(index, option); err != nil {
		log.WithError(err).Warn("Rejected answer")
		if errors.Is(err, quizclient.ErrNoExam) {
			redirectHome(w, r, "")
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	redirectHome(w, r, fmt.Sprintf("question-%d", index))
}

func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	s.session(w, r).Reset()
	redirectHome(w, r, "")
}

func redirectHome(w http.ResponseWriter, r *http.Request, anchor string) {
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
