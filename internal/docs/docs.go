// Package docs holds the OpenAPI document served under /swagger/. Keep it in
// step with the handler annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "http://github.com/tair/bikeshop"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/bikes": {
            "get": {
                "description": "Get every bike ordered by id",
                "produces": ["application/json"],
                "tags": ["Bikes"],
                "summary": "List bikes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/http.BikeResponse"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "post": {
                "description": "Create a new bike in an existing category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Bikes"],
                "summary": "Create bike",
                "parameters": [
                    {
                        "description": "Bike data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.BikeRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/http.BikeResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    },
                    "404": {
                        "description": "Category not found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            }
        },
        "/bikes/{id}": {
            "get": {
                "description": "Get a specific bike by its ID",
                "produces": ["application/json"],
                "tags": ["Bikes"],
                "summary": "Get bike by ID",
                "parameters": [
                    {"type": "integer", "description": "Bike ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.BikeResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "put": {
                "description": "Partially update a bike; omitted fields keep their values",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Bikes"],
                "summary": "Update bike",
                "parameters": [
                    {"type": "integer", "description": "Bike ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.BikeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.BikeResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "delete": {
                "description": "Delete a bike by its ID",
                "tags": ["Bikes"],
                "summary": "Delete bike",
                "parameters": [
                    {"type": "integer", "description": "Bike ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Get every category ordered by id",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.Category"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "post": {
                "description": "Create a new category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [
                    {
                        "description": "Category data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CategoryRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/domain.Category"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "description": "Get a specific category by its ID",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get category by ID",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Category"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "put": {
                "description": "Rename a category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Update category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Category data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CategoryRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Category"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            },
            "delete": {
                "description": "Delete a category that no bike references",
                "tags": ["Categories"],
                "summary": "Delete category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the database answers a ping",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/response.Envelope"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "http.BikeRequest": {
            "type": "object",
            "properties": {
                "category_id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Trek 820"},
                "price": {"type": "number", "example": 500},
                "stock": {"type": "integer", "example": 10}
            }
        },
        "http.BikeResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Горный"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Trek 820"},
                "price": {"type": "number", "example": 500},
                "stock": {"type": "integer", "example": 10}
            }
        },
        "http.CategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Горный"}
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bikeshop API",
	Description:      "Inventory API for bikes and their categories with full observability (logging, tracing, metrics)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
