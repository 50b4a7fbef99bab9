// Package docs holds the OpenAPI document for the viewer endpoints
// The template mirrors the swag annotations on the viewer handlers; regenerate with
// swag init when the route table changes
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `
{
	"openapi": "3.0.3",
	"info": {
		"title": "{{.Title}}",
		"description": "{{.Description}}",
		"version": "{{.Version}}"
	},
	"servers": [
		{
			"url": "{{.BasePath}}"
		}
	],
	"paths": {
		"/view": {
			"get": {
				"tags": [
					"view"
				],
				"summary": "Ranked result view",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			}
		},
		"/logs": {
			"put": {
				"tags": [
					"view"
				],
				"summary": "Replace the log collection",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/LogsInput"
							}
						}
					}
				}
			}
		},
		"/filter": {
			"put": {
				"tags": [
					"view"
				],
				"summary": "Set one filter category",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/FilterInput"
							}
						}
					}
				}
			}
		},
		"/review/updated": {
			"post": {
				"tags": [
					"view"
				],
				"summary": "Report a review update",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			}
		},
		"/reapply": {
			"post": {
				"tags": [
					"view"
				],
				"summary": "Reapply the filter",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			}
		},
		"/discussions": {
			"get": {
				"tags": [
					"discussions"
				],
				"summary": "Discussion pane",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"discussions"
				],
				"summary": "Create a discussion thread",
				"responses": {
					"201": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"409": {
						"description": "already exists",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/SignatureInput"
							}
						}
					}
				}
			}
		},
		"/discussions/select": {
			"post": {
				"tags": [
					"discussions"
				],
				"summary": "Select a thread",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"404": {
						"description": "not found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/SignatureInput"
							}
						}
					}
				}
			}
		},
		"/discussions/back": {
			"post": {
				"tags": [
					"discussions"
				],
				"summary": "Return to the thread list",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			}
		},
		"/discussions/draft": {
			"put": {
				"tags": [
					"discussions"
				],
				"summary": "Store the pending comment",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/DraftInput"
							}
						}
					}
				}
			}
		},
		"/discussions/comments": {
			"post": {
				"tags": [
					"discussions"
				],
				"summary": "Post a comment to the selected thread",
				"responses": {
					"201": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"404": {
						"description": "not found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/CommentInput"
							}
						}
					}
				}
			}
		},
		"/discussions/show-all": {
			"post": {
				"tags": [
					"discussions"
				],
				"summary": "Disclose every comment",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				}
			}
		},
		"/discussions/status": {
			"put": {
				"tags": [
					"discussions"
				],
				"summary": "Set a thread status",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"404": {
						"description": "not found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/StatusInput"
							}
						}
					}
				}
			}
		},
		"/discussions/disposition": {
			"put": {
				"tags": [
					"discussions"
				],
				"summary": "Set a thread disposition",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"400": {
						"description": "invalid input",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					},
					"404": {
						"description": "not found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/Envelope"
								}
							}
						}
					}
				},
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/DispositionInput"
							}
						}
					}
				}
			}
		}
	},
	"components": {
		"schemas": {
			"Envelope": {
				"type": "object",
				"properties": {
					"status_code": {
						"type": "integer"
					},
					"status": {
						"type": "string"
					},
					"code": {
						"type": "integer"
					},
					"error": {
						"type": "string"
					},
					"field": {
						"type": "string"
					},
					"request_id": {
						"type": "string"
					},
					"data": {}
				}
			},
			"LogsInput": {
				"type": "object",
				"properties": {
					"logs": {
						"type": "array",
						"items": {
							"type": "object"
						}
					}
				}
			},
			"FilterInput": {
				"type": "object",
				"required": [
					"category"
				],
				"properties": {
					"category": {
						"type": "string",
						"enum": [
							"Keywords",
							"Discussion",
							"Baseline",
							"Suppression",
							"Level"
						]
					},
					"text": {
						"type": "string"
					},
					"set": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				}
			},
			"SignatureInput": {
				"type": "object",
				"required": [
					"signature"
				],
				"properties": {
					"signature": {
						"type": "string"
					}
				}
			},
			"DraftInput": {
				"type": "object",
				"properties": {
					"text": {
						"type": "string"
					}
				}
			},
			"CommentInput": {
				"type": "object",
				"required": [
					"author"
				],
				"properties": {
					"author": {
						"type": "string"
					},
					"text": {
						"type": "string"
					}
				}
			},
			"StatusInput": {
				"type": "object",
				"required": [
					"signature",
					"status"
				],
				"properties": {
					"signature": {
						"type": "string"
					},
					"status": {
						"type": "string",
						"enum": [
							"Open",
							"Closed"
						]
					}
				}
			},
			"DispositionInput": {
				"type": "object",
				"required": [
					"signature",
					"disposition"
				],
				"properties": {
					"signature": {
						"type": "string"
					},
					"disposition": {
						"type": "string",
						"enum": [
							"Untriaged",
							"Confirmed",
							"FalsePositive",
							"WontFix"
						]
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	BasePath:         "/v1",
	Title:            "sarifview API",
	Description:      "Ranked static analysis results, discussion threads and the reapply protocol of one viewer session",
	InfoInstanceName: "viewer",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// ReadDoc renders the document with the servers entry pointing at basePath
func ReadDoc(basePath string) string {
	spec := *SwaggerInfo
	spec.BasePath = basePath
	return spec.ReadDoc()
}
