package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor Classes API",
        "description": "Tutor availability search and registration",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Classes", "description": "Tutor classes and weekly availability"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "Search tutors available for a subject at a weekday and time",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "subject", "in": "query", "required": true, "type": "string"},
                    {"name": "week_day", "in": "query", "required": true, "type": "integer", "description": "0 (Sunday) to 6"},
                    {"name": "time", "in": "query", "required": true, "type": "string", "description": "HH:MM"}
                ],
                "responses": {
                    "200": {"description": "Matching classes", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassListing"}}},
                    "400": {"description": "Missing or invalid filters", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Register a tutor with the class they teach and its weekly schedule",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Registration failed", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        }
    },
    "definitions": {
        "ScheduleItem": {
            "type": "object",
            "required": ["week_day", "from", "to"],
            "properties": {
                "week_day": {"type": "integer"},
                "from": {"type": "string", "example": "08:00"},
                "to": {"type": "string", "example": "09:00"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "required": ["name", "avatar", "whatsapp", "bio", "subject", "cost", "schedule"],
            "properties": {
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "number"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/ScheduleItem"}}
            }
        },
        "ClassListing": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subject": {"type": "string"},
                "cost": {"type": "number"},
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "whatsapp": {"type": "string"},
                "bio": {"type": "string"}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Missing Filters to Search Classes"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
