// Package docs registers the OpenAPI description of the signage admin API with swag
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
        "/api/v1/stores/{store_id}/dayparts": {
            "get": {
                "description": "Resolve the global, concept and store daypart definitions that apply to a store, ordered by sort order",
                "produces": ["application/json"],
                "tags": ["Dayparts"],
                "summary": "List Store Dayparts",
                "parameters": [
                    {"type": "integer", "description": "Store ID", "name": "store_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Store not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules": {
            "get": {
                "description": "Merge store default schedules with placement overrides and group them by daypart",
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Get Placement Schedules",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Placement group or store not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "post": {
                "description": "Create a placement override; any override for a daypart supersedes all store defaults of that daypart",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Create Placement Schedule",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"description": "Schedule", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ScheduleOverrideRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Validation error or day conflict", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Placement group not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "put": {
                "description": "Replace all placement overrides in one transaction; on failure nothing changes",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Replace Placement Schedules",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"description": "Schedules", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReplaceScheduleOverridesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Validation error or day conflict", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Replace rolled back", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules/{schedule_id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Update Placement Schedule",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Schedule ID", "name": "schedule_id", "in": "path", "required": true},
                    {"description": "Schedule", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ScheduleOverrideRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Schedule not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Delete Placement Schedule",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Schedule ID", "name": "schedule_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Schedule not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Placement Schedules"],
                "summary": "Export Placement Schedules (Excel)",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Excel file", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/active-daypart": {
            "get": {
                "description": "Resolve the daypart in force at the given instant (default now) in the store's timezone",
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Get Active Daypart",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "RFC3339 timestamp", "name": "at", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid timestamp", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules/drafts/inherited/{store_schedule_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Draft From Inherited Schedule",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Inherited store schedule ID", "name": "store_schedule_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Inherited schedule not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules/drafts/remaining-days": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "Draft Remaining Days",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Daypart name", "name": "daypart", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "No remaining days", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/v1/placement-groups/{id}/schedules/audit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Placement Schedules"],
                "summary": "List Schedule Audit Log",
                "parameters": [
                    {"type": "integer", "description": "Placement group ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page size (default 50, max 200)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid paging", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Placement group not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.ScheduleOverrideRequest": {
            "type": "object",
            "required": ["daypart_definition_id", "start_time"],
            "properties": {
                "daypart_definition_id": {"type": "integer"},
                "days_of_week": {"type": "array", "items": {"type": "integer"}},
                "start_time": {"type": "string", "example": "06:00"},
                "end_time": {"type": "string", "example": "11:00"},
                "runs_on_days": {"type": "boolean"},
                "schedule_type": {"type": "string", "enum": ["regular", "event_holiday"]},
                "schedule_name": {"type": "string"},
                "event_name": {"type": "string"},
                "event_date": {"type": "string", "example": "2026-12-25"},
                "recurrence_type": {"type": "string", "enum": ["none", "yearly"]},
                "recurrence_config": {"type": "object"},
                "priority_level": {"type": "integer"}
            }
        },
        "dto.ReplaceScheduleOverridesRequest": {
            "type": "object",
            "properties": {
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/dto.ScheduleOverrideRequest"}}
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
	Title:            "Signage Admin API",
	Description:      "Daypart resolution and placement schedule management for digital signage",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
