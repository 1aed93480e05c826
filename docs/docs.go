// Package docs 是 /swagger 使用的 OpenAPI 文件，依 handler 上的 swag 註解手動維護
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Status"}}
                }
            }
        },
        "/ping": {
            "get": {
                "description": "回傳 pong，並檢查資料庫（與快取）連線是否正常",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/users": {
            "get": {
                "description": "回傳所有使用者，沒有資料時回傳空陣列",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.View"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            },
            "post": {
                "description": "依 user_create schema 驗證後建立使用者；consent 必須為 true",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a new user",
                "parameters": [
                    {"description": "使用者資料", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by ID",
                "parameters": [
                    {"type": "integer", "description": "使用者 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "404": {"description": "使用者不存在", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            },
            "put": {
                "description": "只更新有提供的欄位；emailConfirmed=true 記錄 Email 驗證時間",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "使用者 ID", "name": "id", "in": "path", "required": true},
                    {"description": "欲更新的欄位", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.View"}},
                    "202": {"description": "撤回同意，使用者已刪除", "schema": {"$ref": "#/definitions/dto.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            },
            "patch": {
                "description": "只更新有提供的欄位；emailConfirmed=true 記錄 Email 驗證時間",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "使用者 ID", "name": "id", "in": "path", "required": true},
                    {"description": "欲更新的欄位", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.View"}},
                    "202": {"description": "撤回同意，使用者已刪除", "schema": {"$ref": "#/definitions/dto.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "使用者 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/dto.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateUserRequest": {
            "type": "object",
            "properties": {
                "consent": {"type": "boolean", "example": true},
                "email": {"type": "string", "example": "john.doe@example.com"},
                "memo": {"type": "string", "example": "VIP customer"},
                "name": {"type": "string", "example": "John Doe"},
                "password": {"type": "string", "example": "Secret123!"},
                "rememberToken": {"type": "string"}
            }
        },
        "dto.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "User not found: id: 1"}
            }
        },
        "dto.Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "User 1 deleted"}
            }
        },
        "dto.Status": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "consent": {"type": "boolean", "example": true},
                "email": {"type": "string", "example": "jane.doe@example.com"},
                "emailConfirmed": {"type": "boolean", "example": true},
                "memo": {"type": "string"},
                "name": {"type": "string", "example": "Jane Doe"},
                "password": {"type": "string"},
                "rememberToken": {"type": "string"}
            }
        },
        "model.View": {
            "type": "object",
            "properties": {
                "consent": {"type": "boolean", "example": true},
                "createdAt": {"type": "string", "example": "Mon, 02 Jan 2006 15:04:05 GMT"},
                "email": {"type": "string", "example": "john.doe@example.com"},
                "emailVerifiedAt": {"type": "string", "example": "Mon, 02 Jan 2006 15:04:05 GMT"},
                "id": {"type": "integer", "example": 1},
                "memo": {"type": "string"},
                "name": {"type": "string", "example": "John Doe"},
                "rememberToken": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "User Consent API",
	Description:      "使用者 CRUD 與同意管理；撤回同意即刪除使用者",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
