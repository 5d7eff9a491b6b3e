// Package docs registers the OpenAPI document of the relay API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/exam/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate an exam",
                "parameters": [
                    {
                        "description": "Exam parameters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/exam.ExamRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/exam.Exam"}},
                    "400": {"description": "Topic is required.", "schema": {"type": "string"}},
                    "500": {"description": "Internal server error", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "exam.ExamRequest": {
            "type": "object",
            "required": ["topic"],
            "properties": {
                "topic": {"type": "string"},
                "numberOfQuestions": {"type": "integer", "default": 10},
                "difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"], "default": "Medium"}
            }
        },
        "exam.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correctAnswer": {"type": "string"},
                "explanation": {"type": "string"}
            }
        },
        "exam.Exam": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "topic": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/exam.Question"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ExamAI relay API",
	Description:      "Relays exam requests to the question generator webhook.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
