package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/vizprefs/internal/session"
)

const defaultsURI = "vizprefs://defaults"

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Sessions *session.Manager
	Version  string
}

// NewMCPServer creates an MCP server exposing visualization sessions as tools.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer(
		"vizprefs",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("vizprefs: typed visualization settings (colors, fonts, camera, selection) per session."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("open_session",
			mcp.WithDescription("Open a visualization session initialized from the stored defaults. Returns the session id."),
		),
		mcpOpenSession(deps),
	)

	s.AddTool(
		mcp.NewTool("close_session",
			mcp.WithDescription("Close a visualization session."),
			mcp.WithString("session_id", mcp.Description("Session id returned by open_session"), mcp.Required()),
		),
		mcpCloseSession(deps),
	)

	s.AddTool(
		mcp.NewTool("list_properties",
			mcp.WithDescription("List every property of a session with its kind and text-encoded value."),
			mcp.WithString("session_id", mcp.Description("Session id returned by open_session"), mcp.Required()),
		),
		mcpListProperties(deps),
	)

	s.AddTool(
		mcp.NewTool("get_property",
			mcp.WithDescription("Read one property of a session."),
			mcp.WithString("session_id", mcp.Description("Session id returned by open_session"), mcp.Required()),
			mcp.WithString("name", mcp.Description("Property name, e.g. background_color"), mcp.Required()),
		),
		mcpGetProperty(deps),
	)

	s.AddTool(
		mcp.NewTool("set_property",
			mcp.WithDescription("Set one property of a session. Colors are RRGGBBAA hex, fonts family-style-size, float arrays [x, y, z]."),
			mcp.WithString("session_id", mcp.Description("Session id returned by open_session"), mcp.Required()),
			mcp.WithString("name", mcp.Description("Property name, e.g. background_color"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Text-encoded value"), mcp.Required()),
			mcp.WithString("kind", mcp.Description("Value kind (defaults to the property's current kind)")),
		),
		mcpSetProperty(deps),
	)

	s.AddResource(
		mcp.NewResource(
			defaultsURI,
			"Built-in Defaults",
			mcp.WithResourceDescription("Every recognized property with its built-in default value"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceDefaults,
	)

	return s
}

func mcpOpenSession(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sess, err := deps.Sessions.Open()
		if err != nil {
			return mcpError(fmt.Sprintf("failed to open session: %v", err)), nil
		}
		return mcpText(sess.ID), nil
	}
}

func mcpCloseSession(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}
		if err := deps.Sessions.Close(id); err != nil {
			return mcpError(err.Error()), nil
		}
		return mcpText(fmt.Sprintf("Closed session %s", id)), nil
	}
}

func mcpListProperties(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}
		sess, err := deps.Sessions.Get(id)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		props, err := listProperties(sess)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to list properties: %v", err)), nil
		}
		return mcpJSON(props)
	}
}

func mcpGetProperty(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}
		sess, err := deps.Sessions.Get(id)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		p, err := getProperty(sess, name)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		return mcpJSON(p)
	}
}

func mcpSetProperty(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("session_id")
		if err != nil {
			return mcpError("session_id is required"), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}
		value, err := req.RequireString("value")
		if err != nil {
			return mcpError("value is required"), nil
		}
		kind := req.GetString("kind", "")

		sess, err := deps.Sessions.Get(id)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		p, err := setProperty(sess, name, kind, value)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		return mcpText(fmt.Sprintf("Set %s = %s (%s)", p.Name, p.Value, p.Kind)), nil
	}
}

func mcpResourceDefaults(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	props, err := defaultProperties()
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	b, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal defaults: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}

func mcpJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
