// Package swagger holds the OpenAPI document served at /swagger.
package swagger

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
        "/catalog/icons": {
            "get": {
                "description": "Lists the curated icons, optionally filtered by style.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List Icons",
                "parameters": [
                    {"type": "string", "description": "Style directory", "name": "style", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Entry"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/catalog/icons/{style}/{file}": {
            "get": {
                "description": "Streams one SVG file of the curated output tree.",
                "produces": ["image/svg+xml"],
                "tags": ["catalog"],
                "summary": "Get Icon",
                "parameters": [
                    {"type": "string", "description": "Style directory", "name": "style", "in": "path", "required": true},
                    {"type": "string", "description": "File name", "name": "file", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/catalog/styles": {
            "get": {
                "description": "Lists the style directories of the curated output tree with their file counts.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List Styles",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.StyleSummary"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Entry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "file_name": {"type": "string"},
                "icon": {"type": "string"},
                "style": {"type": "string"},
                "size": {"type": "integer"},
                "source_path": {"type": "string"},
                "filled_from": {"type": "string"}
            }
        },
        "catalog.StyleSummary": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "files": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Icon Curator API",
	Description:      "Read-only access to a curated Fluent UI icon tree.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
