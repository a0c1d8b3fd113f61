// Package mcp implements the MCP protocol layer: request routing, tool
// schemas and handlers, prompts, and static documentation resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quarklabs/mcp-hackernews/internal/article"
	"github.com/quarklabs/mcp-hackernews/internal/config"
	"github.com/quarklabs/mcp-hackernews/internal/hn"
	"github.com/quarklabs/mcp-hackernews/internal/logger"
)

const (
	serverName      = "hackernews-mcp"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// Server handles MCP protocol requests.
type Server struct {
	hn        *hn.Client
	extractor *article.Extractor
	limits    config.LimitsConfig
	log       logger.Logger
}

// NewServer creates a new MCP server.
func NewServer(hnClient *hn.Client, extractor *article.Extractor, limits config.LimitsConfig, log logger.Logger) *Server {
	return &Server{
		hn:        hnClient,
		extractor: extractor,
		limits:    limits,
		log:       log,
	}
}

// HandleRequest processes an MCP request and returns a response.
// Returns nil for notifications (requests without an ID) and for unknown
// notification methods - they don't get responses.
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	requestID := req.ID

	switch req.Method {
	case "initialize":
		return s.handleInitialize(requestID)
	case "ping":
		return &Response{
			JSONRPC: "2.0",
			ID:      requestID,
			Result:  json.RawMessage(`{}`),
		}
	case "tools/list":
		return s.handleToolsList(requestID)
	case "tools/call":
		return s.handleToolsCall(ctx, req, requestID)
	case "prompts/list":
		return s.handlePromptsList(requestID)
	case "prompts/get":
		return s.handlePromptsGet(req, requestID)
	case "resources/list":
		return s.handleResourcesList(requestID)
	case "resources/read":
		return s.handleResourcesRead(req, requestID)
	}

	// Notifications (no ID) never get a response, even for unknown methods.
	if requestID == nil {
		return nil
	}

	return s.errorResponse(requestID, MethodNotFound, "Method not found: "+req.Method)
}

// handleInitialize handles the initialize request.
func (s *Server) handleInitialize(id any) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
	return s.resultResponse(id, result)
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"tools": getAllTools(s.limits),
	})
}

// handleToolsCall executes a tool call.
func (s *Server) handleToolsCall(ctx context.Context, req *Request, id any) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters")
	}

	s.log.Debug("tool call", logger.String("tool", params.Name))

	return s.routeToolCall(ctx, id, params.Name, params.Arguments)
}

// routeToolCall dispatches a tool call to its handler.
func (s *Server) routeToolCall(ctx context.Context, id any, name string, arguments json.RawMessage) *Response {
	// Omitted arguments mean "all defaults", not a malformed call.
	if len(arguments) == 0 {
		arguments = json.RawMessage(`{}`)
	}

	switch name {
	case "get_stories":
		return s.handleGetStories(ctx, id, arguments)
	case "get_story_ids":
		return s.handleGetStoryIDs(ctx, id, arguments)
	case "get_item":
		return s.handleGetItem(ctx, id, arguments)
	case "get_user":
		return s.handleGetUser(ctx, id, arguments)
	case "get_comment_tree":
		return s.handleGetCommentTree(ctx, id, arguments)
	case "search_hn":
		return s.handleSearch(ctx, id, arguments)
	case "read_article":
		return s.handleReadArticle(ctx, id, arguments)
	default:
		return s.errorResponse(id, MethodNotFound, "Unknown tool: "+name)
	}
}

// handlePromptsList returns the list of prompt definitions.
func (s *Server) handlePromptsList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"prompts": getAllPrompts(),
	})
}

// handlePromptsGet expands a prompt by name.
func (s *Server) handlePromptsGet(req *Request, id any) *Response {
	name, arguments, errMsg := parsePromptsGetParams(req.Params)
	if errMsg != "" {
		return s.errorResponse(id, InvalidParams, errMsg)
	}

	messages, err := getPromptByName(name, arguments)
	if err != nil {
		return s.errorResponse(id, InvalidParams, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"messages": messages,
	})
}

// handleResourcesList returns static resource metadata.
func (s *Server) handleResourcesList(id any) *Response {
	return s.resultResponse(id, map[string]any{
		"resources": getAllResources(),
	})
}

// handleResourcesRead returns the content of a known resource URI.
func (s *Server) handleResourcesRead(req *Request, id any) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil || params.URI == "" {
		return s.errorResponse(id, InvalidParams, "uri is required")
	}

	contents, err := readResource(params.URI)
	if err != nil {
		return s.errorResponse(id, ResourceNotFound, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"contents": contents,
	})
}

// resultResponse marshals result into a JSON-RPC success response.
func (s *Server) resultResponse(id any, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

// errorResponse builds a JSON-RPC error response.
func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}

// textResult wraps text in a tool-call content result. isError marks tool
// failures that are results rather than protocol errors ("not found",
// "request failed").
func (s *Server) textResult(id any, text string, isError bool) *Response {
	return s.resultResponse(id, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": text,
			},
		},
		"isError": isError,
	})
}
