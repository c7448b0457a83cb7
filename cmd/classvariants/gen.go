package main

import (
	"fmt"

	"github.com/spf13/cobra"

	classvariants "github.com/jackardios/go-class-variants"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate type-safe Go bindings from variant manifests",
	Long: `Discover manifests, validate them, and write one Go file containing
typed option-value constants, a compiled resolver per component, and a
props struct with a ClassName method.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGen()
	},
}

func init() {
	f := genCmd.Flags()
	f.String("output", "internal/ui/variants.gen.go", "Destination Go file")
	f.String("package", "ui", "Go package name of the generated file")
}

func runGen() error {
	log := cliLogger()
	config := buildGenerateConfig()

	result, err := classvariants.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	fmt.Printf("✓ Generated %s\n", config.OutputFile)
	fmt.Printf("  Manifests loaded: %d\n", result.ManifestsLoaded)
	fmt.Printf("  Components generated: %d\n", result.ComponentsGenerated)

	for _, warning := range result.Warnings {
		log.Warn().Msg(warning)
	}

	return nil
}
