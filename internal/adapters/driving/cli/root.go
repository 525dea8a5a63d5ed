// Package cli provides the huangli command line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/huangli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/huangli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/huangli/internal/adapters/driven/locale"
	"github.com/custodia-labs/huangli/internal/adapters/driven/lunar"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
	"github.com/custodia-labs/huangli/internal/core/services"
	"github.com/custodia-labs/huangli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
	noConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "huangli",
	Short: "Chinese Huangli almanac",
	Long: `Huangli looks up the Chinese lunisolar almanac for a day: the lunar
date, stems and branches, and the day's auspicious and inauspicious
activities. It can print a day directly or serve lookups to AI
assistants over the Model Context Protocol.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.huangli)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore config.toml and use built-in defaults")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app holds the wired components for one command invocation.
type app struct {
	config  driven.ConfigStore
	huangli *services.HuangliService
}

// newApp wires the config store, provider, localizer and service.
func newApp() (*app, error) {
	store, err := openConfig()
	if err != nil {
		return nil, err
	}

	provider := lunar.NewProvider()
	logger.Debug("Using provider %s, config %s", provider.Name(), store.Path())

	a := &app{
		config:  store,
		huangli: services.NewHuangliService(provider, locale.New()),
	}
	a.applyDefaults()
	return a, nil
}

// openConfig returns the file store, or an empty in-memory store with --no-config.
func openConfig() (driven.ConfigStore, error) {
	if noConfig {
		return memory.NewConfigStore(nil), nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return store, nil
}

// applyDefaults copies request defaults from config into the service.
func (a *app) applyDefaults() {
	tz := a.config.GetString(driven.ConfigDefaultTimezone)
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			logger.Warn("Ignoring %s=%q: %v", driven.ConfigDefaultTimezone, tz, err)
			tz = ""
		}
	}
	lang := a.config.GetString(driven.ConfigDefaultLang)
	a.huangli.SetDefaults(tz, lang)

	tz, lang = a.huangli.Defaults()
	logger.Debug("Defaults: tz=%s lang=%s", tz, lang)
}
