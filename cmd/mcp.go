package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/EricBell/local-project-manager/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP stdio server for agent integration",
	Long: `Start an MCP (Model Context Protocol) server on stdio.

This lets agent tooling scan for projects and query removal candidates
natively. Configure with:

  {
    "mcpServers": {
      "lpm": { "command": "lpm", "args": ["mcp"] }
    }
  }

Available tools: lpm_scan, lpm_prunable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		srv := mcp.NewServer(scanOptionsFromConfig(cwd), buildVersion)
		return srv.ServeStdio(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
