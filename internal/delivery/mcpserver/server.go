// Package mcpserver exposes the commerce engine as a single MCP tool over
// stdio, plus a health resource.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/shoplens/backend/internal/domain"
)

// Server wraps an MCP server around the commerce capability interface.
type Server struct {
	server   *mcp.Server
	commerce domain.Commerce
	logger   *zap.Logger
}

// New creates an MCP server for the given engine. The tool input schema is
// inferred from domain.ActionRequest, so the declarative validation of the
// boundary request happens in the protocol layer.
func New(commerce domain.Commerce, version string, logger *zap.Logger) *Server {
	s := &Server{commerce: commerce, logger: logger}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "shoplens-commerce",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "commerce",
		Description: "Unified commerce tool with actions: ping, echo, search, details, reviews, budget_top, sustainability",
	}, s.handleCommerce)

	srv.AddResource(&mcp.Resource{
		URI:      "status://health",
		Name:     "status",
		MIMEType: "text/plain",
	}, s.handleStatus)

	s.server = srv
	return s
}

// Run serves MCP over stdio until the context is canceled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server running on stdio, waiting for a client")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// handleCommerce forwards a tool call to the engine and renders the result
// as JSON text content, matching the envelope the original clients expect.
func (s *Server) handleCommerce(ctx context.Context, _ *mcp.CallToolRequest, input domain.ActionRequest) (*mcp.CallToolResult, any, error) {
	data, err := s.commerce.Dispatch(ctx, input)
	if err != nil {
		s.logger.Warn("dispatch failed", zap.String("action", input.Action), zap.Error(err))
		return nil, nil, err
	}

	text := ""
	if tr, ok := data.(domain.TextResponse); ok {
		text = tr.Message
	} else {
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, nil, err
		}
		text = string(raw)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// handleStatus answers the status://health resource.
func (s *Server) handleStatus(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: req.Params.URI, MIMEType: "text/plain", Text: "OK: server alive"},
		},
	}, nil
}
