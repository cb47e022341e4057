// Package docs registers the OpenAPI description served under /swagger.
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
        "/api/team-members": {
            "get": {
                "tags": ["Team Members"],
                "summary": "List team members",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TeamMember"}}},
                    "500": {"description": "Store failure"}
                }
            },
            "post": {
                "tags": ["Team Members"],
                "summary": "Register a team member, or return the one registered under the same email",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "member", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterMemberRequest"}}],
                "responses": {
                    "200": {"description": "Already registered"},
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid input"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/api/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks with their comment counts",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TaskSummary"}}},
                    "500": {"description": "Store failure"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/handler.TaskRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Task"}},
                    "400": {"description": "Assignee not found or invalid body"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/api/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}},
                    "404": {"description": "Task not found"}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update the fields of a task that differ from the stored values",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/handler.TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated or unchanged task", "schema": {"$ref": "#/definitions/model.Task"}},
                    "400": {"description": "Task or assignee not found"},
                    "500": {"description": "Store failure"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task with its comments and activity log",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Task deleted successfully"},
                    "400": {"description": "Task not found"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/api/tasks/{id}/comments": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List the comments of a task, oldest first",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TaskComment"}}}
                }
            }
        },
        "/api/task-activity-log/{taskId}": {
            "get": {
                "tags": ["Activity Log"],
                "summary": "List the activity log of a task, oldest first",
                "parameters": [{"in": "path", "name": "taskId", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TaskActivityLog"}}},
                    "404": {"description": "No activity logs found for this task"}
                }
            }
        }
    },
    "definitions": {
        "handler.RegisterMemberRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.TaskRequest": {
            "type": "object",
            "properties": {
                "assignee": {"type": "string"},
                "comments": {"type": "string"},
                "description": {"type": "string"},
                "due_date": {"type": "string", "example": "2024-06-10"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "model.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "assignee": {"type": "string"},
                "assignee_id": {"type": "integer"},
                "due_date": {"type": "string"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "comments": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.TaskSummary": {
            "allOf": [
                {"$ref": "#/definitions/model.Task"},
                {"type": "object", "properties": {"comment_count": {"type": "integer"}}}
            ]
        },
        "model.TaskComment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "task_id": {"type": "integer"},
                "comment": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "model.TaskActivityLog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "task_id": {"type": "integer"},
                "activity": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "model.TeamMember": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Manager API",
	Description:      "Task tracking with team-member assignment, activity logs and Slack notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
