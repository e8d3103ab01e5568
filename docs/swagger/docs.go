// Package swagger holds the OpenAPI description served at /swagger.
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
        "/api/inscrits": {
            "get": {
                "description": "Returns every slot of the calendar, one record per attendee, with ISO-8601 instants. Booking fields are null on slots without a booking.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedule"
                ],
                "summary": "List registrations",
                "responses": {
                    "200": {
                        "description": "Dataset",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/export.Record"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Dataset not exported yet",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Checks the export files, the storage bucket and the snapshot table.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {
                        "description": "Combined Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/integrity/database": {
            "get": {
                "description": "Reports whether the reconciled_slots table exists and its row count.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Database",
                "responses": {
                    "200": {
                        "description": "Database Report",
                        "schema": {
                            "$ref": "#/definitions/checks.DatabaseReport"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/integrity/exports": {
            "get": {
                "description": "Lists the expected export files with their size and modification time.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Exports",
                "responses": {
                    "200": {
                        "description": "Exports Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/integrity/storage": {
            "get": {
                "description": "Checks that the bucket exists and holds the published exports. Optionally creates the bucket.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "integrity"
                ],
                "summary": "Check Storage",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Create the missing bucket",
                        "name": "fix",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Storage Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "checks.DatabaseReport": {
            "type": "object",
            "properties": {
                "present": {
                    "type": "boolean"
                },
                "rows": {
                    "type": "integer"
                },
                "table": {
                    "type": "string"
                }
            }
        },
        "export.Record": {
            "type": "object",
            "properties": {
                "Creneau": {
                    "type": "string"
                },
                "Email": {
                    "type": "string"
                },
                "Fin": {
                    "type": "string"
                },
                "Fuseau Horaire": {
                    "type": "string"
                },
                "Nom Prenom": {
                    "type": "string"
                },
                "Occupe": {
                    "type": "boolean"
                }
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
	Title:            "Booking Sync API",
	Description:      "Read-only view of the reconciled Cal.com registrations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
