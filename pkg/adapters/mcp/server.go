// Package mcp exposes the parser and player as Model Context Protocol
// tools, so agent hosts can parse and play dialogue scripts.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/aretw0/lex/pkg/player"
)

// Server wraps an MCP server with the Lex tools registered.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("lex-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

type parseResult struct {
	Dialogue *dialogue.Dialogue `json:"dialogue"`
	Warnings []string           `json:"warnings,omitempty"`
}

func (s *Server) registerTools() {
	// TOOL: parse_script
	s.mcpServer.AddTool(mcp.NewTool("parse_script",
		mcp.WithDescription("Parse a Lex dialogue script and return the structured document plus advisory warnings."),
		mcp.WithString("script", mcp.Required(), mcp.Description("The raw dialogue script text")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		script, err := request.RequireString("script")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		doc, warnings := parser.Parse(script)
		payload, err := json.Marshal(parseResult{Dialogue: doc, Warnings: warnings})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	})

	// TOOL: play_script
	s.mcpServer.AddTool(mcp.NewTool("play_script",
		mcp.WithDescription("Play a Lex dialogue script to completion and return the transcript."),
		mcp.WithString("script", mcp.Required(), mcp.Description("The raw dialogue script text")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		script, err := request.RequireString("script")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		doc, _ := parser.Parse(script)

		var out, errOut bytes.Buffer
		p := player.New(doc,
			player.WithOutput(&out),
			player.WithErrOutput(&errOut),
			player.WithDelay(0),
		)
		if err := p.Play(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("playback failed: %v", err)), nil
		}

		transcript := out.String()
		if errOut.Len() > 0 {
			transcript += "\n--- errors ---\n" + errOut.String()
		}
		return mcp.NewToolResultText(transcript), nil
	})
}
