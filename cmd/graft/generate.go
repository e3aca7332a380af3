package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [module]",
	Short: "Print the LiteGraph editor script for a module",
	Long: `Generates the nodes.js script that registers the module's node
types with LiteGraph, the same script the editor server serves.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		module := cfg.Shell.Module
		if len(args) > 0 {
			module = args[0]
		}

		engine, err := newEngine(cfg)
		if err != nil {
			fmt.Printf("Error initializing graft: %v\n", err)
			os.Exit(1)
		}

		script, err := engine.GenerateScript(module)
		if err != nil {
			fmt.Printf("Error generating script: %v\n", err)
			os.Exit(1)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(script), 0o644); err != nil {
				fmt.Printf("Error writing %s: %v\n", out, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", out)
			return
		}
		fmt.Print(script)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Write the script to a file instead of stdout")
}
