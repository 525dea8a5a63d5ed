package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/huangli/internal/adapters/driven/lunar"
	"github.com/custodia-labs/huangli/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("huangli version %s\n", version)
		cmd.Printf("  mcp server %s, provider %s\n", mcp.Version, lunar.ProviderName)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
