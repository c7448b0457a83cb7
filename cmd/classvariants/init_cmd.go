package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classvariants.yaml config file",
	Long:  `Create a .classvariants.yaml configuration file in the current directory with sensible defaults, plus an example manifest.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".classvariants.yaml"); err == nil && !force {
			return fmt.Errorf(".classvariants.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".classvariants.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Println("Created .classvariants.yaml")

		if _, err := os.Stat("button.variants.yaml"); os.IsNotExist(err) {
			if err := os.WriteFile("button.variants.yaml", []byte(exampleManifest), 0644); err != nil {
				return fmt.Errorf("writing example manifest: %w", err)
			}
			fmt.Println("Created button.variants.yaml")
		}

		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

const defaultConfig = `# classvariants configuration
# Docs: https://github.com/jackardios/go-class-variants

# Shared settings
source: .
manifests:
  - "**/*.variants.yaml"
  - "**/*.variants.yml"
verbose: false

# Checking settings
check:
  strict: false
  print-lines: true
  print-linter-name: true

# Generation settings
gen:
  output: internal/ui/variants.gen.go
  package: ui
`

const exampleManifest = `# Example variant manifest
version: "1"
components:
  - name: button
    base: "btn inline-flex items-center"
    variants:
      - name: color
        options:
          primary: "bg-blue-600 text-white"
          secondary: "bg-gray-200 text-gray-900"
      - name: size
        options:
          small: "h-8 px-3 text-sm"
          large: "h-11 px-8"
      - name: disabled
        options:
          "true": "opacity-50 pointer-events-none"
    defaults:
      color: primary
      size: small
    compounds:
      - when:
          color: primary
          size: large
        class: "font-bold"
`
