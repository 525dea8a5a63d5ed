package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/huangli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
	"github.com/custodia-labs/huangli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes:
  - the get_huangli tool (date, tz, lang)
  - the huangli://{date} resource (Asia/Shanghai, Chinese)

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port (or mcp.port in config.toml) to start an HTTP server instead.
In HTTP mode requests are rate limited and changes to the [defaults]
section of config.toml are applied without a restart.

Examples:
  # Stdio mode (default, for Claude Desktop)
  huangli mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  huangli mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "huangli": {
        "command": "/path/to/huangli",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use config, then stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if port <= 0 {
		port = a.config.GetInt(driven.ConfigMCPPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{Huangli: a.huangli})
	if err != nil {
		return err
	}
	server.SetRateLimit(rateLimitFromConfig(a.config))

	logger.Section("MCP Server")
	if port > 0 {
		go func() {
			if err := a.config.Watch(cmd.Context(), a.applyDefaults); err != nil {
				logger.Warn("Config reload disabled: %v", err)
			}
		}()

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// rateLimitFromConfig reads the HTTP rate limit, falling back to defaults.
func rateLimitFromConfig(config driven.ConfigStore) mcp.RateLimitConfig {
	cfg := mcp.RateLimitConfig{
		RequestsPerSecond: mcp.DefaultRateLimit,
		BurstSize:         mcp.DefaultBurst,
	}
	if _, ok := config.Get(driven.ConfigMCPRateLimit); ok {
		cfg.RequestsPerSecond = config.GetFloat(driven.ConfigMCPRateLimit)
	}
	if burst := config.GetInt(driven.ConfigMCPBurst); burst > 0 {
		cfg.BurstSize = burst
	}
	return cfg
}
