package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell [module]",
	Short: "Open the interactive graph shell",
	Long: `Opens a command loop bound to one module: create nodes, wire pins,
evaluate the graph, and print its Mermaid or LiteGraph form.

Script lines (from --script or --demo) run before the prompt, exactly
as if they had been typed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		module, _ := cmd.Flags().GetString("module")
		if module == "" && len(args) > 0 {
			module = args[0]
		}
		if module == "" {
			module = cfg.Shell.Module
		}

		engine, err := newEngine(cfg)
		if err != nil {
			fmt.Printf("Error initializing graft: %v\n", err)
			os.Exit(1)
		}

		opts := []cli.Option{
			cli.WithLogger(newLogger(cfg)),
		}

		scriptPath, _ := cmd.Flags().GetString("script")
		if scriptPath == "" {
			scriptPath = cfg.Shell.Script
		}
		if demo, _ := cmd.Flags().GetBool("demo"); demo {
			opts = append(opts, cli.WithScript(cli.SplitScript(cli.DemoScript)))
		} else if scriptPath != "" {
			data, err := os.ReadFile(scriptPath)
			if err != nil {
				fmt.Printf("Error reading script: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, cli.WithScript(cli.SplitScript(string(data))))
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(graft.Version)
			opts = append(opts, cli.WithRenderer(tui.NewRenderer()))
		}

		sh, err := cli.New(engine, module, opts...)
		if err != nil {
			fmt.Printf("Error opening shell: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := sh.Run(ctx); err != nil {
			fmt.Printf("Shell error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringP("module", "m", "", "Module to edit (defaults to the configured one)")
	shellCmd.Flags().String("script", "", "Path to a script of shell commands to run first")
	shellCmd.Flags().Bool("demo", false, "Preload the arithmetic demo graph")
}
