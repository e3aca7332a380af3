package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/config"
	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/modules/math"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Graft is a typed node graph engine for generated editors",
	Long: `Graft turns declarative node type definitions into working graphs:
build them in a shell or over MCP, evaluate them in dependency order,
and generate the LiteGraph editor script that edits them in a browser.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the config file")
}

// loadConfig reads the config file named by the --config flag. A missing
// file yields the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(cfg.Log.SlogLevel(), cfg.Log.Format)
}

// newEngine builds the engine with the built-in modules installed.
func newEngine(cfg config.Config) (*graft.Engine, error) {
	return graft.New(
		graft.WithModules(math.New()),
		graft.WithLogger(newLogger(cfg)),
	)
}
