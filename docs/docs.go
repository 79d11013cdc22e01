// Package docs registers the OpenAPI description served at /swagger.
// It is maintained by hand alongside the handler annotations; the handler
// tests check its schemas against the request and response types.
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Number of users to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Maximum number of users", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/users/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/tpe": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Paginated list. Filters combine with AND.",
                "produces": ["application/json"],
                "tags": ["tpe"],
                "summary": "List terminals",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page (max 100)", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "Substring of service name or shop id", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact model", "name": "tpe_model", "in": "query"},
                    {"type": "string", "description": "ethernet or 4g5g", "name": "connection_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listTerminalsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tpe"],
                "summary": "Register a terminal",
                "parameters": [
                    {"description": "Terminal", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createTerminalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.terminalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/tpe/stats/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tpe"],
                "summary": "Inventory summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.TerminalStats"}}
                }
            }
        },
        "/api/tpe/export/excel": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["tpe"],
                "summary": "Export the inventory",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/tpe/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tpe"],
                "summary": "Get a terminal",
                "parameters": [
                    {"type": "string", "description": "Terminal ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.terminalResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tpe"],
                "summary": "Update a terminal",
                "parameters": [
                    {"type": "string", "description": "Terminal ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateTerminalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.terminalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tpe"],
                "summary": "Delete a terminal",
                "parameters": [
                    {"type": "string", "description": "Terminal ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.healthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.MerchantCard": {
            "type": "object",
            "properties": {
                "numero": {"type": "string"},
                "numero_serie_tpe": {"type": "string"}
            }
        },
        "domain.TerminalStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "desk_count": {"type": "integer"},
                "move_count": {"type": "integer"},
                "ethernet_count": {"type": "integer"},
                "mobile_count": {"type": "integer"},
                "backoffice_active_count": {"type": "integer"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "minLength": 3, "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "user"]}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "is_active": {"type": "boolean"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.merchantCardRequest": {
            "type": "object",
            "required": ["numero", "numero_serie_tpe"],
            "properties": {
                "numero": {"type": "string"},
                "numero_serie_tpe": {"type": "string"}
            }
        },
        "handler.createTerminalRequest": {
            "type": "object",
            "required": ["service_name"],
            "properties": {
                "service_name": {"type": "string", "maxLength": 200},
                "shop_id": {"type": "string", "maxLength": 50},
                "regisseur_prenom": {"type": "string", "maxLength": 100},
                "regisseur_nom": {"type": "string", "maxLength": 100},
                "regisseur_telephone": {"type": "string", "maxLength": 20},
                "regisseurs_suppleants": {"type": "string"},
                "merchant_cards": {"type": "array", "maxItems": 8, "items": {"$ref": "#/definitions/handler.merchantCardRequest"}},
                "tpe_model": {"type": "string", "enum": ["Ingenico Desk 5000", "Ingenico Move 5000"]},
                "number_of_tpe": {"type": "integer", "minimum": 1},
                "connection_ethernet": {"type": "boolean"},
                "connection_4g5g": {"type": "boolean"},
                "network_ip_address": {"type": "string"},
                "network_mask": {"type": "string"},
                "network_gateway": {"type": "string"},
                "backoffice_active": {"type": "boolean"},
                "backoffice_email": {"type": "string"}
            }
        },
        "handler.updateTerminalRequest": {
            "type": "object",
            "properties": {
                "service_name": {"type": "string", "maxLength": 200},
                "shop_id": {"type": "string", "maxLength": 50},
                "regisseur_prenom": {"type": "string", "maxLength": 100},
                "regisseur_nom": {"type": "string", "maxLength": 100},
                "regisseur_telephone": {"type": "string", "maxLength": 20},
                "regisseurs_suppleants": {"type": "string"},
                "merchant_cards": {"type": "array", "maxItems": 8, "items": {"$ref": "#/definitions/handler.merchantCardRequest"}},
                "tpe_model": {"type": "string", "enum": ["Ingenico Desk 5000", "Ingenico Move 5000"]},
                "number_of_tpe": {"type": "integer", "minimum": 1},
                "connection_ethernet": {"type": "boolean"},
                "connection_4g5g": {"type": "boolean"},
                "network_ip_address": {"type": "string"},
                "network_mask": {"type": "string"},
                "network_gateway": {"type": "string"},
                "backoffice_active": {"type": "boolean"},
                "backoffice_email": {"type": "string"}
            }
        },
        "handler.terminalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "service_name": {"type": "string"},
                "shop_id": {"type": "string"},
                "regisseur_prenom": {"type": "string"},
                "regisseur_nom": {"type": "string"},
                "regisseur_telephone": {"type": "string"},
                "regisseurs_suppleants": {"type": "string"},
                "merchant_cards": {"type": "array", "items": {"$ref": "#/definitions/domain.MerchantCard"}},
                "tpe_model": {"type": "string"},
                "number_of_tpe": {"type": "integer"},
                "connection_ethernet": {"type": "boolean"},
                "connection_4g5g": {"type": "boolean"},
                "network_ip_address": {"type": "string"},
                "network_mask": {"type": "string"},
                "network_gateway": {"type": "string"},
                "backoffice_active": {"type": "boolean"},
                "backoffice_email": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.listTerminalsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.terminalResponse"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "cache": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TPE Manager API",
	Description:      "Inventory of payment terminals with role-gated user administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
