package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	classvariants "github.com/jackardios/go-class-variants"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <component>",
	Short: "Resolve a component's class string from the command line",
	Long: `Resolve one component's class string against the loaded manifests.
Selections are passed as --set axis=value pairs; boolean axes accept
true/false values. The resolved string is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		selections, _ := cmd.Flags().GetStringArray("set")
		override, _ := cmd.Flags().GetString("class")
		return runResolve(args[0], selections, override)
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringArray("set", nil, "Variant selection as axis=value (repeatable)")
	f.String("class", "", "Extra classes appended after all variants")
}

func runResolve(name string, selections []string, override string) error {
	log := cliLogger()

	files, err := classvariants.DiscoverManifests(
		getStringWithFallback("source", "source", "."), manifestPatterns())
	if err != nil {
		return err
	}

	manifests, err := classvariants.LoadManifests(files)
	if err != nil {
		return err
	}

	component := findComponent(manifests, name)
	if component == nil {
		return fmt.Errorf("component %q not found in %d manifests", name, len(manifests))
	}

	props, err := buildProps(*component, selections, override)
	if err != nil {
		return err
	}
	log.Debug().Str("component", name).Interface("props", props).Msg("resolving")

	resolver := classvariants.New(component.Config())
	fmt.Println(resolver.Resolve(props))
	return nil
}

func findComponent(manifests []*classvariants.Manifest, name string) *classvariants.ComponentSpec {
	for _, manifest := range manifests {
		if component := manifest.Component(name); component != nil {
			return component
		}
	}
	return nil
}

// buildProps parses axis=value pairs into resolver props. Values for
// boolean axes are parsed as booleans; everything else stays a string.
func buildProps(component classvariants.ComponentSpec, selections []string, override string) (classvariants.Props, error) {
	boolAxes := make(map[string]bool, len(component.Variants))
	for _, axis := range component.Variants {
		_, hasTrue := axis.Options[classvariants.OptionTrue]
		_, hasFalse := axis.Options[classvariants.OptionFalse]
		boolAxes[axis.Name] = hasTrue || hasFalse
	}

	props := classvariants.Props{}
	for _, selection := range selections {
		axisName, value, found := strings.Cut(selection, "=")
		if !found {
			return nil, fmt.Errorf("invalid selection %q, expected axis=value", selection)
		}

		if boolAxes[axisName] {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("axis %q is boolean, got %q", axisName, value)
			}
			props[axisName] = parsed
		} else {
			props[axisName] = value
		}
	}

	if override != "" {
		props[classvariants.PropClass] = override
	}

	return props, nil
}
