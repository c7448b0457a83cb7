package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classvariants",
	Short: "Variant manifest checker and code generator for Go UI projects",
	Long: `Compose CSS class strings from declarative variant manifests.
Manifests describe base classes, variant axes, defaults, and compound
rules; the CLI checks them, resolves class strings, and generates
type-safe Go bindings.`,
	// Default behavior: run check when no subcommand is given.
	// loadConfig must run here because checkCmd's PreRunE is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("source", ".", "Root directory for manifest discovery")
	rootCmd.PersistentFlags().StringSlice("manifests", nil, "Manifest glob patterns")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".classvariants.yaml", "Config file path")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
