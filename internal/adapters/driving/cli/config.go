package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/huangli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

// configKeys lists the keys the config command accepts.
var configKeys = []string{
	driven.ConfigDefaultTimezone,
	driven.ConfigDefaultLang,
	driven.ConfigMCPPort,
	driven.ConfigMCPRateLimit,
	driven.ConfigMCPBurst,
}

var errUnknownConfigKey = errors.New("unknown config key")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Read and write values in config.toml.

Keys:
  defaults.timezone   IANA timezone for requests without one
  defaults.lang       zh or en for requests without one
  mcp.port            HTTP port for "mcp serve" (0 = stdio)
  mcp.rate_limit      HTTP requests per second (0 = unlimited)
  mcp.burst           HTTP request burst size`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Path())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !knownConfigKey(key) {
		return fmt.Errorf("%w: %s", errUnknownConfigKey, key)
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return err
	}

	val, ok := store.Get(key)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
	return nil
}

// parseConfigValue validates raw for key and converts it to the stored type.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case driven.ConfigDefaultTimezone:
		if _, err := time.LoadLocation(raw); err != nil || raw == "" {
			return nil, fmt.Errorf("invalid timezone %q", raw)
		}
		return raw, nil
	case driven.ConfigDefaultLang:
		if raw != "zh" && raw != "en" {
			return nil, fmt.Errorf("invalid language %q: must be zh or en", raw)
		}
		return raw, nil
	case driven.ConfigMCPPort, driven.ConfigMCPBurst:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid value %q for %s: must be a non-negative integer", raw, key)
		}
		return n, nil
	case driven.ConfigMCPRateLimit:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("invalid value %q for %s: must be a non-negative number", raw, key)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownConfigKey, key)
	}
}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}
