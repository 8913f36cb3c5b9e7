// Package docs registers the OpenAPI description served at /swagger.
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
        "/api/reports": {
            "get": {
                "tags": ["reports"],
                "summary": "List reports, newest first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["reports"],
                "summary": "Create a report (admin)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation or duplicate slug"}
                }
            }
        },
        "/api/reports/search": {
            "get": {
                "tags": ["reports"],
                "summary": "Free-text search over title, industry and publisher",
                "parameters": [{"name": "q", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK, possibly empty"}}
            }
        },
        "/api/reports/industry/{industry}": {
            "get": {
                "tags": ["reports"],
                "summary": "Reports for one industry",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No reports for this industry"}
                }
            }
        },
        "/api/reports/slug/{slug}": {
            "get": {
                "tags": ["reports"],
                "summary": "Fetch one report by slug",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/insights/search": {
            "get": {
                "tags": ["insights"],
                "summary": "Free-text search over title, tags and category",
                "parameters": [{"name": "q", "in": "query", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing q"}
                }
            }
        },
        "/api/contacts": {
            "get": {
                "tags": ["contacts"],
                "summary": "List contacts with date range and pagination (admin)",
                "responses": {"200": {"description": "OK with meta"}}
            },
            "post": {
                "tags": ["contacts"],
                "summary": "Submit a contact message",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing or invalid fields"}
                }
            }
        },
        "/api/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["categories"],
                "summary": "Create a category (admin)",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing name/slug or duplicate"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Market Research Insights API",
	Description:      "REST backend for market-research reports, insights, categories and contact submissions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
