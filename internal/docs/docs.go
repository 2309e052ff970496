// Package docs registers the OpenAPI description served by gin-swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/asset-classes": {
            "get": {
                "description": "Get every asset class",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List asset classes",
                "responses": {
                    "200": {"description": "Asset classes", "schema": {"$ref": "#/definitions/handlers.AssetClassListResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/assets": {
            "get": {
                "description": "Get every asset with its class name, ordered by ticker",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List assets",
                "responses": {
                    "200": {"description": "Assets", "schema": {"$ref": "#/definitions/handlers.AssetListResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Add an asset; an existing ticker is left unchanged",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Add asset",
                "parameters": [
                    {"description": "Asset details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddAssetRequest"}}
                ],
                "responses": {
                    "200": {"description": "Ticker already existed", "schema": {"$ref": "#/definitions/handlers.AssetResponse"}},
                    "201": {"description": "Asset created", "schema": {"$ref": "#/definitions/handlers.AssetResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Asset class not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/assets/with-transaction": {
            "post": {
                "description": "Add (or reuse) an asset and record a transaction for it atomically",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Add asset with transaction",
                "parameters": [
                    {"description": "Asset and transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddAssetWithTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Asset and transaction recorded", "schema": {"$ref": "#/definitions/handlers.AssetWithTransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Asset class not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/assets/ticker/{ticker}": {
            "get": {
                "description": "Get the asset with the given ticker",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Get asset by ticker",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "ticker", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Asset details", "schema": {"$ref": "#/definitions/handlers.AssetResponse"}},
                    "404": {"description": "Asset not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/assets/{id}": {
            "put": {
                "description": "Change an asset's display name; an unknown id is ignored",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Rename asset",
                "parameters": [
                    {"type": "integer", "description": "Asset ID", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateAssetRequest"}}
                ],
                "responses": {
                    "200": {"description": "Asset updated", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Delete an asset together with its transactions; an unknown id is ignored",
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Delete asset",
                "parameters": [
                    {"type": "integer", "description": "Asset ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Asset deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid asset ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "description": "Get every transaction with its ticker, most recent first",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "responses": {
                    "200": {"description": "Transactions", "schema": {"$ref": "#/definitions/handlers.TransactionListResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Record a BUY, SELL or DIVIDEND against an asset",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Record a transaction",
                "parameters": [
                    {"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Transaction recorded", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Asset not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "delete": {
                "description": "Delete a transaction by ID; an unknown id is ignored",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete a transaction",
                "parameters": [
                    {"type": "integer", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Transaction deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Invalid transaction ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/value": {
            "get": {
                "description": "Sum of BUY total cost minus sum of SELL total cost; dividends are excluded",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Get portfolio value",
                "responses": {
                    "200": {"description": "Portfolio value", "schema": {"$ref": "#/definitions/handlers.PortfolioValueResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/insights": {
            "get": {
                "description": "Asset counts per class plus BUY and transaction value aggregates",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Get insights",
                "responses": {
                    "200": {"description": "Insights", "schema": {"$ref": "#/definitions/handlers.InsightsResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AddAssetRequest": {
            "type": "object",
            "required": ["asset_class_id", "name", "ticker"],
            "properties": {
                "asset_class_id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "ticker": {"type": "string"}
            }
        },
        "handlers.AddAssetWithTransactionRequest": {
            "type": "object",
            "required": ["asset_class_id", "name", "price_per_share", "quantity", "ticker", "transaction_type"],
            "properties": {
                "asset_class_id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "price_per_share": {"type": "string"},
                "quantity": {"type": "string"},
                "ticker": {"type": "string"},
                "transaction_date": {"type": "string"},
                "transaction_type": {"type": "string"}
            }
        },
        "handlers.UpdateAssetRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200, "minLength": 1}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["asset_id", "price_per_share", "quantity", "transaction_type"],
            "properties": {
                "asset_id": {"type": "integer"},
                "price_per_share": {"type": "string"},
                "quantity": {"type": "string"},
                "transaction_date": {"type": "string"},
                "transaction_type": {"type": "string"}
            }
        },
        "handlers.AssetResponse": {
            "type": "object",
            "properties": {
                "asset": {"$ref": "#/definitions/models.Asset"},
                "created": {"type": "boolean"}
            }
        },
        "handlers.AssetListResponse": {
            "type": "object",
            "properties": {
                "assets": {"type": "array", "items": {"$ref": "#/definitions/services.AssetSummary"}}
            }
        },
        "handlers.AssetClassListResponse": {
            "type": "object",
            "properties": {
                "asset_classes": {"type": "array", "items": {"$ref": "#/definitions/models.AssetClass"}}
            }
        },
        "handlers.AssetWithTransactionResponse": {
            "type": "object",
            "properties": {
                "asset": {"$ref": "#/definitions/models.Asset"},
                "transaction": {"$ref": "#/definitions/models.Transaction"}
            }
        },
        "handlers.TransactionResponse": {
            "type": "object",
            "properties": {
                "transaction": {"$ref": "#/definitions/models.Transaction"}
            }
        },
        "handlers.TransactionListResponse": {
            "type": "object",
            "properties": {
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/services.TransactionEntry"}}
            }
        },
        "handlers.PortfolioValueResponse": {
            "type": "object",
            "properties": {
                "total_value": {"type": "string"}
            }
        },
        "handlers.InsightsResponse": {
            "type": "object",
            "properties": {
                "insights": {"$ref": "#/definitions/services.Insights"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "models.AssetClass": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Asset": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "ticker": {"type": "string"},
                "asset_class_id": {"type": "integer"},
                "name": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "asset_id": {"type": "integer"},
                "transaction_date": {"type": "string"},
                "transaction_type": {"type": "string", "enum": ["BUY", "SELL", "DIVIDEND"]},
                "quantity": {"type": "string"},
                "price_per_share": {"type": "string"},
                "total_cost": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "services.AssetSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "ticker": {"type": "string"},
                "name": {"type": "string"},
                "class_name": {"type": "string"}
            }
        },
        "services.TransactionEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "ticker": {"type": "string"},
                "transaction_date": {"type": "string"},
                "transaction_type": {"type": "string", "enum": ["BUY", "SELL", "DIVIDEND"]},
                "quantity": {"type": "string"},
                "price_per_share": {"type": "string"},
                "total_cost": {"type": "string"}
            }
        },
        "services.Insights": {
            "type": "object",
            "properties": {
                "assets_by_type": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total_investment": {"type": "string"},
                "avg_cost_per_share": {"type": "string"},
                "max_transaction_value": {"type": "string"},
                "min_transaction_value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Portfolio Tracker API",
	Description:      "Track assets, their BUY/SELL/DIVIDEND transactions and portfolio-level insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
