// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/transcripts": {
            "post": {
                "description": "Fetches the captions of a YouTube video, groups them into paragraphs and stores them in the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transcript"],
                "summary": "Load transcript",
                "parameters": [
                    {
                        "description": "Video URL",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/transcript.FetchTranscriptRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/transcript.FetchTranscriptResponse"}},
                    "400": {"description": "Invalid YouTube URL", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "502": {"description": "Transcript could not be fetched", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/transcripts/stream": {
            "get": {
                "description": "Websocket. Sends one JSON message per progress stage; the done message carries the transcript, then the socket closes",
                "tags": ["Transcript"],
                "summary": "Load transcript with progress",
                "parameters": [
                    {"type": "string", "description": "YouTube URL", "name": "url", "in": "query", "required": true}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols", "schema": {"$ref": "#/definitions/transcript.StreamMessage"}}
                }
            }
        },
        "/transcripts/current": {
            "get": {
                "description": "Returns the transcript currently loaded in the caller's session",
                "produces": ["application/json"],
                "tags": ["Transcript"],
                "summary": "Current transcript",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/transcript.TranscriptResponse"}},
                    "404": {"description": "No transcript loaded", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/ai/summary/short": {
            "post": {
                "description": "One-paragraph summary of the leading part of the transcript",
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Short summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.GenerationResponse"}}
                }
            }
        },
        "/ai/summary/detailed": {
            "post": {
                "description": "Summarises the transcript chunk by chunk, then combines the partial summaries",
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Detailed summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.GenerationResponse"}}
                }
            }
        },
        "/ai/bullets": {
            "post": {
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Bullet points",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.GenerationResponse"}}
                }
            }
        },
        "/ai/chat": {
            "post": {
                "description": "Answers only from the transcript; the exchange is added to the session's chat history",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Chat with the video",
                "parameters": [
                    {
                        "description": "Question",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ai.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.ChatResponse"}},
                    "400": {"description": "Missing message", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Clear chat",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "ai.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string", "maxLength": 4000}}
        },
        "ai.ChatResponse": {
            "type": "object",
            "properties": {
                "history": {"type": "array", "items": {"$ref": "#/definitions/ai.ChatTurnResponse"}},
                "status": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "ai.ChatTurnResponse": {
            "type": "object",
            "properties": {"content": {"type": "string"}, "role": {"type": "string"}}
        },
        "ai.GenerationResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "info": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "transcript.FetchTranscriptRequest": {
            "type": "object",
            "required": ["url"],
            "properties": {"url": {"type": "string", "maxLength": 2048}}
        },
        "transcript.FetchTranscriptResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/transcript.ProgressEventResponse"}},
                "status": {"type": "string"},
                "transcript": {"$ref": "#/definitions/transcript.TranscriptResponse"}
            }
        },
        "transcript.ParagraphResponse": {
            "type": "object",
            "properties": {"start": {"type": "number"}, "text": {"type": "string"}, "timestamp": {"type": "string"}}
        },
        "transcript.ProgressEventResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "stage": {"type": "string"}}
        },
        "transcript.StreamMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "stage": {"type": "string"},
                "transcript": {"$ref": "#/definitions/transcript.TranscriptResponse"}
            }
        },
        "transcript.TranscriptResponse": {
            "type": "object",
            "properties": {
                "embed_html": {"type": "string"},
                "fetched_at": {"type": "string"},
                "paragraphs": {"type": "array", "items": {"$ref": "#/definitions/transcript.ParagraphResponse"}},
                "text": {"type": "string"},
                "title_markdown": {"type": "string"},
                "transcript_html": {"type": "string"},
                "video": {"$ref": "#/definitions/transcript.VideoResponse"}
            }
        },
        "transcript.VideoResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "url": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Video Assistant API",
	Description:      "Fetches YouTube transcripts and runs summaries, bullet points and chat over them",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
