// Package mcp exposes the tool operations and documentation resources
// over the Model Context Protocol's stdio transport.
package mcp

import (
	"context"
	"log/slog"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docdex"
	"docdex/tool"
)

// Server wires the operation layer into an MCP stdio server.
type Server struct {
	svc    *tool.Service
	mcp    *server.MCPServer
	logger *slog.Logger
}

// NewServer creates a Server exposing every tool operation and the
// documentation resources.
func NewServer(svc *tool.Service, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		svc: svc,
		mcp: server.NewMCPServer("docdex", version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, true),
		),
		logger: logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio preloads the pinned canonical documents and serves MCP
// over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.svc.Preload()
	s.logger.Info("mcp server started", "transport", "stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	tools := []mcpgo.Tool{
		mcpgo.NewTool(tool.OpGetGuidance,
			mcpgo.WithDescription("Get implementation guidance grounded in the official Acquia documentation"),
			mcpgo.WithString("context", mcpgo.Required(), mcpgo.Description("Project context, such as platform and stack")),
			mcpgo.WithString("requirements", mcpgo.Required(), mcpgo.Description("What needs to be implemented")),
		),
		mcpgo.NewTool(tool.OpSearchDocs,
			mcpgo.WithDescription("Search the Acquia documentation"),
			mcpgo.WithString("query", mcpgo.Required(), mcpgo.Description("Search query")),
		),
		mcpgo.NewTool(tool.OpCrawlDocs,
			mcpgo.WithDescription("Crawl the documentation site to discover and cache new pages"),
			mcpgo.WithNumber("max_depth", mcpgo.Description("Maximum crawl depth")),
		),
		mcpgo.NewTool(tool.OpRefreshDocs,
			mcpgo.WithDescription("Clear the page cache"),
		),
		mcpgo.NewTool(tool.OpListCachedURLs,
			mcpgo.WithDescription("List all currently cached documentation pages"),
		),
		mcpgo.NewTool(tool.OpCrawlStats,
			mcpgo.WithDescription("Show cached page statistics by product category"),
		),
		mcpgo.NewTool(tool.OpGetSourceLink,
			mcpgo.WithDescription("Get the official documentation source link for a topic or query"),
			mcpgo.WithString("query", mcpgo.Required(), mcpgo.Description("The topic or query to resolve")),
		),
	}
	for _, t := range tools {
		s.mcp.AddTool(t, s.handleTool(t.Name))
	}
}

func (s *Server) handleTool(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		out, err := s.svc.Call(ctx, name, request.GetArguments())
		if err != nil {
			s.logger.Warn("tool call failed", "tool", name, "code", docdex.ErrorCode(err), "err", err)
			return mcpgo.NewToolResultError(docdex.ErrorMessage(err)), nil
		}
		return mcpgo.NewToolResultText(out), nil
	}
}

func (s *Server) registerResources() {
	template := mcpgo.NewResourceTemplate(
		tool.ResourceScheme+"{+url}",
		"Documentation page",
		mcpgo.WithTemplateDescription("A documentation page rendered as plain text, fetched on demand if not cached"),
		mcpgo.WithTemplateMIMEType("text/plain"),
	)
	s.mcp.AddResourceTemplate(template, s.handleResource)

	for _, r := range s.svc.Resources() {
		resource := mcpgo.NewResource(r.URI, r.Name,
			mcpgo.WithResourceDescription(r.Description),
			mcpgo.WithMIMEType("text/plain"),
		)
		s.mcp.AddResource(resource, s.handleResource)
	}
}

func (s *Server) handleResource(ctx context.Context, request mcpgo.ReadResourceRequest) ([]mcpgo.ResourceContents, error) {
	text, err := s.svc.ReadResource(ctx, request.Params.URI)
	if err != nil {
		return nil, err
	}
	return []mcpgo.ResourceContents{
		mcpgo.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
