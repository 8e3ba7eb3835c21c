package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Asistencia API",
        "description": "Classroom attendance backend: session tokens, presence ledger and attendance reports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Credential exchange"},
        {"name": "Attendance", "description": "Presence marking"},
        {"name": "Sessions", "description": "Class session lifecycle"},
        {"name": "Reports", "description": "Attendance aggregation"},
        {"name": "Notes", "description": "Student annotations"},
        {"name": "Director", "description": "Unrestricted read surface"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate by username and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/attendance/mark": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Student self-registers presence via session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkRequest"}}
                ],
                "responses": {
                    "200": {"description": "Attendance recorded"},
                    "400": {"description": "Invalid token"},
                    "403": {"description": "Not enrolled"},
                    "429": {"description": "Rate limited"}
                }
            }
        },
        "/teacher/groups": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List the caller's groups",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teacher/groups/{groupID}/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List the group's sessions, newest first",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "No teaching assignment"}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Open a class session (token or manual mode)",
                "responses": {
                    "201": {"description": "Session created"},
                    "403": {"description": "No teaching assignment"}
                }
            }
        },
        "/teacher/groups/{groupID}/sessions/{sessionID}": {
            "delete": {
                "tags": ["Sessions"],
                "summary": "Delete a session and its presence records",
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Session not found in this group"}
                }
            }
        },
        "/teacher/groups/{groupID}/sessions/{sessionID}/attendance": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Manually mark students present",
                "responses": {
                    "200": {"description": "Rows applied"},
                    "404": {"description": "Session not found in this group"}
                }
            }
        },
        "/teacher/groups/{groupID}/report": {
            "get": {
                "tags": ["Reports"],
                "summary": "Per-group attendance percentages (json, csv or pdf)",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "No teaching assignment"}
                }
            }
        },
        "/director/groups": {
            "get": {
                "tags": ["Director"],
                "summary": "List every subject and group",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/director/groups/{groupID}/report": {
            "get": {
                "tags": ["Director"],
                "summary": "Per-group attendance percentages, unrestricted",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "MarkRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "document_number": {"type": "string"}
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
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
