// Package swagger registers the OpenAPI document served under /docs.
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
        "/api/v1/episodes": {
            "get": {
                "description": "Returns the episodes parsed from the configured feed, in document order",
                "produces": ["application/json"],
                "tags": ["episodes"],
                "summary": "List episodes",
                "responses": {
                    "200": {
                        "description": "Catalog episodes",
                        "schema": {"$ref": "#/definitions/types.EpisodesResponse"}
                    }
                }
            }
        },
        "/api/v1/episodes/{id}": {
            "get": {
                "description": "Returns the episode at the given zero-based catalog position",
                "produces": ["application/json"],
                "tags": ["episodes"],
                "summary": "Get episode",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Catalog position",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Episode",
                        "schema": {"$ref": "#/definitions/types.SingleEpisodeResponse"}
                    },
                    "400": {
                        "description": "Invalid id",
                        "schema": {"$ref": "#/definitions/types.ErrorResponse"}
                    },
                    "404": {
                        "description": "Episode not found",
                        "schema": {"$ref": "#/definitions/types.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports catalog size and archive database status",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.HealthResponse"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/types.HealthResponse"}
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Build information of the running server",
                "produces": ["application/json"],
                "tags": ["version"],
                "summary": "Version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "types.Episode": {
            "type": "object",
            "properties": {
                "audioUrl": {"type": "string"},
                "description": {"type": "string"},
                "hasAudio": {"type": "boolean"},
                "id": {"description": "Position in the catalog", "type": "integer"},
                "title": {"type": "string"}
            }
        },
        "types.EpisodesResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "episodes": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/types.Episode"}
                },
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "types.SingleEpisodeResponse": {
            "type": "object",
            "properties": {
                "episode": {"$ref": "#/definitions/types.Episode"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "object", "additionalProperties": {}},
                "episodes": {"type": "integer"},
                "feed": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
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
	Title:            "feedcast API",
	Description:      "Serves the episode catalog parsed from a podcast feed.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
