package exam

import (
	"bytes"
	"encoding/json"
	"strings"
)

type payloadShape int

const (
	shapeUnknown payloadShape = iota
	// {"questions": [...]}
	shapeEnvelope
	// [...]
	shapeList
)

// generatorPayload is the generator body narrowed to one of the accepted shapes.
type generatorPayload struct {
	shape     payloadShape
	questions json.RawMessage
}

const questionsKey = "questions"

func classifyPayload(raw []byte) (generatorPayload, error) {
	var root json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return generatorPayload{}, err
	}

	root = bytes.TrimSpace(root)
	switch root[0] {
	case '[':
		return generatorPayload{shape: shapeList, questions: root}, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(root, &fields); err != nil {
			return generatorPayload{}, err
		}
		if value, ok := fields[questionsKey]; ok {
			return generatorPayload{shape: shapeEnvelope, questions: value}, nil
		}
		for key, value := range fields {
			if strings.EqualFold(key, questionsKey) {
				return generatorPayload{shape: shapeEnvelope, questions: value}, nil
			}
		}
	}

	return generatorPayload{shape: shapeUnknown}, errUnexpectedShape
}

// DecodeQuestions normalizes a generator body into an ordered question list.
// Field names are matched case-insensitively; values are not checked.
func DecodeQuestions(raw []byte) ([]Question, error) {
	payload, err := classifyPayload(raw)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Body: string(raw), Err: err}
	}

	var questions []Question
	if err := json.Unmarshal(payload.questions, &questions); err != nil {
		return nil, &ParseError{Message: err.Error(), Body: string(raw), Err: err}
	}

	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}
