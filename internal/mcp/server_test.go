package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricBell/local-project-manager/internal/scanner"
	"github.com/EricBell/local-project-manager/internal/vcs"
)

// nullInspector reports no VCS anywhere so tests never need a git binary.
type nullInspector struct{}

func (nullInspector) Inspect(path string) vcs.Info { return vcs.Info{} }

func testServer() *Server {
	opts := scanner.DefaultOptions()
	opts.Inspector = nullInspector{}
	return NewServer(opts, "test")
}

// callToolReq builds a mcpgo.CallToolRequest with the given name and arguments.
func callToolReq(name string, args map[string]any) mcpgo.CallToolRequest {
	return mcpgo.CallToolRequest{
		Params: mcpgo.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// resultText extracts the concatenated text from a CallToolResult.
func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcpgo.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func mkScanRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	api := filepath.Join(root, "api")
	require.NoError(t, os.Mkdir(api, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(api, "go.mod"), nil, 0644))
	return root
}

func TestHandleScan(t *testing.T) {
	s := testServer()
	root := mkScanRoot(t)

	req := callToolReq("lpm_scan", map[string]any{"path": root})
	result, err := s.handleScan(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	var projects []projectOut
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "api", projects[0].Name)
	assert.Equal(t, "Go", projects[0].Type)
	assert.Equal(t, "Work-in-Progress", projects[0].Classification)
}

func TestHandleScan_MissingPath(t *testing.T) {
	s := testServer()

	result, err := s.handleScan(context.Background(), callToolReq("lpm_scan", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleScan_BadRoot(t *testing.T) {
	s := testServer()

	req := callToolReq("lpm_scan", map[string]any{"path": filepath.Join(t.TempDir(), "missing")})
	result, err := s.handleScan(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandlePrunable(t *testing.T) {
	s := testServer()
	root := mkScanRoot(t)

	req := callToolReq("lpm_prunable", map[string]any{"path": root})
	result, err := s.handlePrunable(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var out struct {
		Projects           []projectOut `json:"projects"`
		TotalReclaimableMB float64      `json:"total_reclaimable_mb"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))

	// A freshly created project is never stale, so nothing is prunable.
	assert.Empty(t, out.Projects)
	assert.Zero(t, out.TotalReclaimableMB)
}

func TestMCPServer_RegistersTools(t *testing.T) {
	srv := testServer().MCPServer()
	require.NotNil(t, srv)
}
