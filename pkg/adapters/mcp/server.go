// Package mcp exposes decoration as an MCP tool so agent clients can
// decorate HTML fragments over stdio.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	blurtext "github.com/Kornerupin/blur-text"
	"github.com/Kornerupin/blur-text/internal/logging"
	htmlhost "github.com/Kornerupin/blur-text/pkg/adapters/html"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DecorateResult is the structured output of the decorate_html tool.
type DecorateResult struct {
	HTML     string `json:"html" jsonschema_description:"The decorated HTML document"`
	Elements int    `json:"elements" jsonschema_description:"Number of elements decorated"`
	Letters  int    `json:"letters" jsonschema_description:"Number of letters wrapped"`
}

// Server exposes the decorator as an MCP server.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("blurtext-mcp", strings.TrimSpace(blurtext.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	decorateTool := mcp.NewTool("decorate_html",
		mcp.WithDescription("Wrap the text of matching elements into per-word and per-letter containers tagged with glyph categories, for per-character blur styling."),
		mcp.WithString("html", mcp.Required(), mcp.Description("The HTML document or fragment to decorate")),
		mcp.WithString("selector", mcp.Required(), mcp.Description("CSS selector of the elements to decorate")),
		mcp.WithString("options", mcp.Description("JSON object with charCategories, wordWrapperClass, letterClass (optional)")),
		mcp.WithOutputSchema[DecorateResult](),
	)
	s.mcpServer.AddTool(decorateTool, mcp.NewStructuredToolHandler(s.handleDecorate))
}

func (s *Server) handleDecorate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DecorateResult, error) {
	rawHTML, _ := args["html"].(string)
	selector, _ := args["selector"].(string)
	if selector == "" {
		return DecorateResult{}, fmt.Errorf("selector is required")
	}

	var opts []blurtext.Option
	if optStr, ok := args["options"].(string); ok && optStr != "" {
		var m map[string]any
		if err := json.Unmarshal([]byte(optStr), &m); err != nil {
			s.logger.Warn("ignoring unparsable options", "error", err)
		} else if parsed, err := blurtext.OptionsFromMap(m); err != nil {
			s.logger.Warn("ignoring malformed options", "error", err)
		} else {
			opts = parsed
		}
	}

	doc, err := htmlhost.ParseDocument(strings.NewReader(rawHTML))
	if err != nil {
		return DecorateResult{}, fmt.Errorf("parse html: %w", err)
	}
	host := htmlhost.New(doc)

	var result DecorateResult
	opts = append(opts,
		blurtext.WithLogger(s.logger),
		blurtext.WithHooks(blurtext.Hooks{
			OnElement: func() { result.Elements++ },
			OnLetter:  func(string) { result.Letters++ },
		}),
	)
	if err := blurtext.Decorate(host, selector, opts...); err != nil {
		return DecorateResult{}, fmt.Errorf("decorate failed: %w", err)
	}

	var buf bytes.Buffer
	if err := host.Render(&buf); err != nil {
		return DecorateResult{}, fmt.Errorf("render failed: %w", err)
	}
	result.HTML = buf.String()
	return result, nil
}
