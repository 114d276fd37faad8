// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/tax/rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "List permitted GST rates",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/tax/items/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Calculate GST for a line item",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/gst.ItemInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid rate, state code or category", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/tax/documents/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Calculate GST for an invoice",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid or empty document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/tax/purchases/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tax"],
                "summary": "Calculate GST and input tax credit for a purchase",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid or empty document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/purchases/check-duplicate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Check a supplier invoice for duplicates",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DuplicateCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid GSTIN or request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["returns"],
                "summary": "List a business's returns, newest period first",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Limit", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}
            }
        },
        "/businesses/{id}/returns/{type}/{period}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["returns"],
                "summary": "Get a stored return",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1", "gstr3b"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Return not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns/{type}/{period}/generate": {
            "post": {
                "description": "Assemble GSTR-1 or GSTR-3B from the period's active documents and store it",
                "produces": ["application/json"],
                "tags": ["returns"],
                "summary": "Generate or regenerate a return",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1", "gstr3b"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid type, period or document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Business not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Already filed or duplicate document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns/{type}/{period}/file": {
            "post": {
                "description": "Locks the return and the period's documents against regeneration",
                "produces": ["application/json"],
                "tags": ["returns"],
                "summary": "Mark a return as filed",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1", "gstr3b"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Return not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Already filed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns/{type}/{period}/archive-url": {
            "get": {
                "produces": ["application/json"],
                "tags": ["returns"],
                "summary": "Presigned link to the archived payload",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1", "gstr3b"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Return not found or archive disabled", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns/{type}/{period}/export.xlsx": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["exports"],
                "summary": "Download GSTR-1 as a workbook",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Return not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/businesses/{id}/returns/{type}/{period}/hsn.csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["exports"],
                "summary": "Download the GSTR-1 HSN summary as CSV",
                "parameters": [
                    {"type": "string", "description": "Business ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["gstr1"], "type": "string", "description": "Return type", "name": "type", "in": "path", "required": true},
                    {"type": "string", "description": "Filing period (YYYY-MM)", "name": "period", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Return not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "gst.ItemInput": {
            "type": "object",
            "properties": {
                "taxable_amount": {"type": "number"},
                "gst_rate": {"type": "number"},
                "cess_rate": {"type": "number"},
                "seller_state_code": {"type": "string"},
                "buyer_state_code": {"type": "string"},
                "category": {"type": "string", "enum": ["b2b", "b2c_large", "b2c_small", "export", "sez", "import"]}
            }
        },
        "handler.DuplicateCheckRequest": {
            "type": "object",
            "required": ["supplier_gstin", "supplier_invoice_number"],
            "properties": {
                "supplier_gstin": {"type": "string", "example": "29AAACR4849R1ZL"},
                "supplier_invoice_number": {"type": "string", "example": "RC/2026/0042"},
                "exclude_purchase_id": {"type": "string"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {
                    "type": "object",
                    "properties": {
                        "field": {"type": "string"},
                        "value": {"type": "string"},
                        "constraint": {"type": "string"}
                    }
                }
            }
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "offset": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {},
                "meta": {"$ref": "#/definitions/handler.PagMeta"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/handler.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GST Returns API",
	Description:      "GST tax calculation and GSTR-1 / GSTR-3B return preparation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
