// Package mcp exposes the scanner over the Model Context Protocol so agent
// tooling can query project health without parsing CLI output. The server
// speaks stdio only.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/EricBell/local-project-manager/internal/models"
	"github.com/EricBell/local-project-manager/internal/scanner"
)

// Server wraps the scan engine and exposes it as MCP tools.
type Server struct {
	defaults scanner.Options
	version  string
}

// NewServer creates the MCP server wrapper. The supplied options act as
// defaults for every scan; tool arguments may override the thresholds.
func NewServer(defaults scanner.Options, version string) *Server {
	return &Server{defaults: defaults, version: version}
}

// MCPServer returns a configured mcp-go server with all tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("lpm", s.version, server.WithToolCapabilities(true))

	srv.AddTool(s.scanTool())
	srv.AddTool(s.prunableTool())

	return srv
}

// ServeStdio starts the stdio transport, blocking until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := s.MCPServer()
	stdioServer := server.NewStdioServer(srv)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// projectOut is the JSON shape returned for each project.
type projectOut struct {
	Path           string  `json:"path"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	HasVCS         bool    `json:"has_vcs"`
	VCSRemote      string  `json:"vcs_remote,omitempty"`
	VCSStatus      string  `json:"vcs_status,omitempty"`
	ReadmePath     string  `json:"readme_path,omitempty"`
	LastModified   string  `json:"last_modified"`
	SizeMB         float64 `json:"size_mb"`
	Classification string  `json:"classification"`
	Prunable       bool    `json:"prunable"`
}

func toProjectOut(p models.Project) projectOut {
	out := projectOut{
		Path:           p.Path,
		Name:           p.Name,
		Type:           string(p.Type),
		HasVCS:         p.HasVCS,
		VCSRemote:      p.VCSRemote,
		ReadmePath:     p.ReadmePath,
		LastModified:   p.LastModified.Format(time.RFC3339),
		SizeMB:         p.SizeMB,
		Classification: string(p.Classification),
		Prunable:       p.Prunable,
	}
	if p.VCSStatus != nil {
		out.VCSStatus = string(*p.VCSStatus)
	}
	return out
}

// lpm_scan
func (s *Server) scanTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("lpm_scan",
		mcp.WithDescription("Scan a directory tree for software projects. Returns a JSON array of projects with path, type, VCS state, README presence, size, age, health classification (Active/Work-in-Progress/Dormant/Stale), and prunable flag."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Root directory to scan")),
		mcp.WithNumber("active_days", mcp.Description("Days threshold for the Active classification (default 30)")),
		mcp.WithNumber("dormant_days", mcp.Description("Days threshold for the Dormant classification (default 180)")),
	)
	return tool, s.handleScan
}

func (s *Server) handleScan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	opts := s.defaults
	if v := request.GetFloat("active_days", float64(opts.ActiveDays)); v >= 0 {
		opts.ActiveDays = int(v)
	}
	if v := request.GetFloat("dormant_days", float64(opts.DormantDays)); v >= 0 {
		opts.DormantDays = int(v)
	}

	projects, err := scanner.Scan(root, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	out := make([]projectOut, len(projects))
	for i, p := range projects {
		out[i] = toProjectOut(p)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal projects: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// lpm_prunable
func (s *Server) prunableTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("lpm_prunable",
		mcp.WithDescription("Scan a directory tree and return only removal candidates: stale projects with no remote that are either large or tiny. Includes the total reclaimable size in MB. This tool never deletes anything."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Root directory to scan")),
	)
	return tool, s.handlePrunable
}

func (s *Server) handlePrunable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	projects, err := scanner.Scan(root, s.defaults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	var out []projectOut
	var totalMB float64
	for _, p := range projects {
		if p.Prunable {
			out = append(out, toProjectOut(p))
			totalMB += p.SizeMB
		}
	}

	result := map[string]any{
		"projects":             out,
		"total_reclaimable_mb": totalMB,
	}

	data, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
