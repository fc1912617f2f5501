package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Management Dashboard API",
        "description": "Student roster, course catalog and dashboard aggregates",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student roster and table view"},
        {"name": "Courses", "description": "Read-only course catalog"},
        {"name": "Dashboard", "description": "Overview aggregates"},
        {"name": "Toasts", "description": "Notification queue"},
        {"name": "Preferences", "description": "Display preferences"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Current page of the student table",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "description": "Requires confirm=true; otherwise a 412 with a confirmation prompt is returned and nothing changes.",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "412": {"description": "Confirmation required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/view/filter": {
            "put": {
                "tags": ["Students"],
                "summary": "Replace the view filter",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterOptions"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/view/sort": {
            "put": {
                "tags": ["Students"],
                "summary": "Designate the view sort field and direction",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SortRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/view/page": {
            "put": {
                "tags": ["Students"],
                "summary": "Move to a page of the view",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the filtered, sorted roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {
                    "200": {"description": "Roster file"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Fetch the course catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Transient catalog failure, retriable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard overview aggregates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/toasts": {
            "get": {
                "tags": ["Toasts"],
                "summary": "Pending notifications in insertion order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/toasts/{id}": {
            "delete": {
                "tags": ["Toasts"],
                "summary": "Dismiss a notification",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/preferences/dark-mode": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Current dark-mode preference",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Update the dark-mode preference",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DarkModeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "profile_image": {"type": "string"},
                "course_ids": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "enrollment_date": {"type": "string"},
                "last_active": {"type": "string"}
            }
        },
        "StudentInput": {
            "type": "object",
            "required": ["name", "email", "course_ids"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "profile_image": {"type": "string"},
                "course_ids": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string", "enum": ["active", "inactive"]}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "instructor": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "category": {"type": "string"},
                "enrolled_students": {"type": "integer"},
                "max_students": {"type": "integer"}
            }
        },
        "FilterOptions": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["all", "active", "inactive"]},
                "course": {"type": "string"},
                "search": {"type": "string"}
            }
        },
        "SortRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string"},
                "direction": {"type": "string", "enum": ["asc", "desc"]}
            }
        },
        "PageRequest": {
            "type": "object",
            "required": ["page"],
            "properties": {
                "page": {"type": "integer"}
            }
        },
        "DarkModeRequest": {
            "type": "object",
            "required": ["enabled"],
            "properties": {
                "enabled": {"type": "boolean"}
            }
        },
        "Toast": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["success", "error", "warning", "info"]},
                "duration": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "DashboardStats": {
            "type": "object",
            "properties": {
                "total_students": {"type": "integer"},
                "active_courses": {"type": "integer"},
                "completion_rate": {"type": "integer"},
                "new_enrollments": {"type": "integer"},
                "breakdown": {"$ref": "#/definitions/StatusBreakdown"},
                "recent_activity": {"type": "array", "items": {"$ref": "#/definitions/RecentActivityItem"}}
            }
        },
        "StatusBreakdown": {
            "type": "object",
            "properties": {
                "active": {"type": "integer"},
                "inactive": {"type": "integer"},
                "active_percentage": {"type": "number"},
                "inactive_percentage": {"type": "number"}
            }
        },
        "RecentActivityItem": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "name": {"type": "string"},
                "course_count": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
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
