package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	classvariants "github.com/jackardios/go-class-variants"
)

var k = koanf.New(".")

// defaultManifestPatterns match manifest files anywhere under the source
// root unless the config or flags say otherwise.
var defaultManifestPatterns = []string{
	"**/*.variants.yaml",
	"**/*.variants.yml",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".classvariants.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLASSVARIANTS_* prefix)
	if err := k.Load(env.Provider("CLASSVARIANTS_", ".", func(s string) string {
		// CLASSVARIANTS_GEN_OUTPUT -> gen.output
		// CLASSVARIANTS_CHECK_STRICT -> check.strict
		// CLASSVARIANTS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CLASSVARIANTS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// manifestPatterns resolves the glob patterns used for manifest discovery.
func manifestPatterns() []string {
	if patterns := k.Strings("manifests"); len(patterns) > 0 {
		return patterns
	}
	if patterns := k.Strings("check.manifests"); len(patterns) > 0 {
		return patterns
	}
	return defaultManifestPatterns
}

// buildGenerateConfig constructs the library's GenerateConfig from koanf state.
func buildGenerateConfig() classvariants.GenerateConfig {
	return classvariants.GenerateConfig{
		SourceDir:   getStringWithFallback("source", "source", "."),
		Includes:    manifestPatterns(),
		OutputFile:  getStringWithFallback("output", "gen.output", "internal/ui/variants.gen.go"),
		PackageName: getStringWithFallback("package", "gen.package", "ui"),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
