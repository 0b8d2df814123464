// Package docs registers the OpenAPI description served at /swagger.
// Keep it in sync with the handler annotations (swag init -g cmd/api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/calendar": {
            "post": {
                "description": "Dispatches on op (create by default). Requires the X-WC-SECRET header.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Create, update or delete a calendar event",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shared secret",
                        "name": "X-WC-SECRET",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Operation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.calendarReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "create/update", "schema": {"$ref": "#/definitions/http.eventResp"}},
                    "400": {"description": "Unknown op or malformed body", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Missing field or Calendar API error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Unauthenticated liveness check, always {\"ok\":true}",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/httpserver.statusResp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/httpserver.statusResp"}}
                }
            }
        }
    },
    "definitions": {
        "http.calendarReq": {
            "type": "object",
            "properties": {
                "op": {"type": "string", "enum": ["create", "update", "delete"]},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "tags": {"type": "object", "additionalProperties": {"type": "string"}},
                "allDay": {"type": "boolean"},
                "date": {"type": "string", "example": "2024-06-01"},
                "endDate": {"type": "string", "example": "2024-06-02"},
                "start": {"type": "string", "example": "2024-06-01T10:00:00+02:00"},
                "end": {"type": "string", "example": "2024-06-01T11:00:00+02:00"},
                "eventId": {"type": "string"},
                "patch": {"type": "object"}
            }
        },
        "http.eventResp": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "eventId": {"type": "string"},
                "htmlLink": {"type": "string"}
            }
        },
        "http.deleteResp": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "deleted": {"type": "boolean"}
            }
        },
        "httpserver.statusResp": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "status": {"type": "string"},
                "version": {"type": "string"},
                "service": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Calendar Webhook API",
	Description:      "Creates, updates and deletes Google Calendar events on behalf of a shared-secret caller.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
