package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ShiftSight API",
        "description": "Schedule solution analysis gateway: decodes solver output, resolves wish fulfillment, workload and overtime, and compares candidate schedules",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Solutions", "description": "Upload and query analyzed solver solutions"},
        {"name": "Comparisons", "description": "Side-by-side comparison of candidate schedules"},
        {"name": "Exports", "description": "Rendered schedule downloads"}
    ],
    "paths": {
        "/solutions": {
            "post": {
                "tags": ["Solutions"],
                "summary": "Upload and analyze a raw solver solution document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RawSolutionDocument"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid solution file format"}
                }
            }
        },
        "/solutions/{id}": {
            "get": {
                "tags": ["Solutions"],
                "summary": "Get a previously analyzed solution",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Solution not found"}
                }
            },
            "delete": {
                "tags": ["Solutions"],
                "summary": "Delete an analyzed solution and its rendered exports",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Solution not found"}
                }
            }
        },
        "/solutions/{id}/employees/{employeeId}/hours": {
            "get": {
                "tags": ["Solutions"],
                "summary": "Get one employee's workload stats",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "employeeId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Solution or employee not found"}
                }
            }
        },
        "/solutions/{id}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Render a schedule export and return a signed download reference",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a rendered schedule export",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "404": {"description": "Invalid or expired token"}
                }
            }
        },
        "/comparisons": {
            "post": {
                "tags": ["Comparisons"],
                "summary": "Compare N schedules side by side",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ComparisonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "One or more schedule fetches failed"}
                }
            }
        }
    },
    "definitions": {
        "RawSolutionDocument": {
            "type": "object",
            "required": ["variables", "employees", "shifts", "days"],
            "properties": {
                "variables": {
                    "type": "object",
                    "description": "Sparse decision variables keyed by \"(employeeId, 'YYYY-MM-DD', shiftId)\"",
                    "additionalProperties": {"type": "integer", "enum": [0, 1]}
                },
                "employees": {"type": "array", "items": {"type": "object"}},
                "shifts": {"type": "array", "items": {"$ref": "#/definitions/Shift"}},
                "days": {"type": "array", "items": {"type": "string", "format": "date"}},
                "stats": {"$ref": "#/definitions/SolutionStats"}
            }
        },
        "Shift": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "abbreviation": {"type": "string"},
                "color": {"type": "string"},
                "duration": {"type": "integer", "description": "minutes"},
                "is_exclusive": {"type": "boolean"}
            }
        },
        "SolutionStats": {
            "type": "object",
            "properties": {
                "forward_rotation_violations": {"type": "integer"},
                "consecutive_working_days_gt_5": {"type": "integer"},
                "no_free_weekend": {"type": "integer"},
                "consecutive_night_shifts_gt_3": {"type": "integer"},
                "total_overtime_hours": {"type": "number"},
                "no_free_days_around_weekend": {"type": "integer"},
                "not_free_after_night_shift": {"type": "integer"},
                "violated_wish_total": {"type": "integer"}
            }
        },
        "ComparisonRequest": {
            "type": "object",
            "properties": {
                "schedules": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["schedule_id"],
                        "properties": {
                            "schedule_id": {"type": "string"},
                            "seed": {"type": "integer"}
                        }
                    }
                },
                "filter": {"type": "string"}
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
