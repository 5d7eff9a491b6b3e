package quizclient

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/saulo-duarte/examai/internal/exam"
)

const (
	DefaultFormQuestions = 5
	MinQuestions         = 1
	MaxQuestions         = 20
)

type Form struct {
	Topic             string          `form:"topic" validate:"required"`
	Difficulty        exam.Difficulty `form:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	NumberOfQuestions int             `form:"numberOfQuestions" validate:"min=1,max=20"`
}

func DefaultForm() Form {
	return Form{
		Difficulty:        exam.DifficultyMedium,
		NumberOfQuestions: DefaultFormQuestions,
	}
}

// FormValues is the subset of url.Values used to read a submitted form.
type FormValues interface {
	Get(key string) string
}

// ParseForm reads submitted values over the defaults. Fields left blank keep their default.
func ParseForm(values FormValues) (Form, error) {
	form := DefaultForm()
	form.Topic = strings.TrimSpace(values.Get("topic"))

	if d := strings.TrimSpace(values.Get("difficulty")); d != "" {
		form.Difficulty = exam.Difficulty(d)
	}
	if n := strings.TrimSpace(values.Get("numberOfQuestions")); n != "" {
		count, err := strconv.Atoi(n)
		if err != nil {
			return form, errors.New("numberOfQuestions must be a whole number")
		}
		form.NumberOfQuestions = count
	}
	return form, nil
}

func (f Form) Request() exam.ExamRequest {
	return exam.ExamRequest{
		Topic:             f.Topic,
		NumberOfQuestions: f.NumberOfQuestions,
		Difficulty:        f.Difficulty,
	}
}

type FormValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewFormValidator() (*FormValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FormValidator{validate: validate, trans: trans}, nil
}

// Validate returns one translated message per invalid field.
func (v *FormValidator) Validate(f Form) []string {
	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fe.Translate(v.trans))
	}
	return messages
}
