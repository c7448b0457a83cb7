package classvariants

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// modulePath is the import path emitted into generated files.
const modulePath = "github.com/jackardios/go-class-variants"

// GenerateConfig controls manifest discovery and code generation.
type GenerateConfig struct {
	SourceDir   string   // Root directory for manifest discovery
	Includes    []string // Glob patterns relative to SourceDir (e.g. "**/*.variants.yaml")
	OutputFile  string   // Destination Go file (e.g. "internal/ui/variants.gen.go")
	PackageName string   // Package of the generated file
	Verbose     bool
}

// GenerateResult reports what a Generate run produced.
type GenerateResult struct {
	ManifestsLoaded     int
	ComponentsGenerated int
	Warnings            []string
}

// Generate is the main entry point: discover manifests, load and check
// them, and write typed Go bindings for every component. Check errors abort
// generation; warnings are carried through in the result.
func Generate(cfg GenerateConfig) (*GenerateResult, error) {
	result := &GenerateResult{}

	// 1. Discover manifest files
	files, err := DiscoverManifests(cfg.SourceDir, cfg.Includes)
	if err != nil {
		return nil, fmt.Errorf("discover failed: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifests matched %v under %s", cfg.Includes, cfg.SourceDir)
	}

	if cfg.Verbose {
		fmt.Printf("Found %d manifest files\n", len(files))
	}

	// 2. Load manifests
	manifests, err := LoadManifests(files)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	result.ManifestsLoaded = len(manifests)

	// 3. Refuse to generate from broken manifests
	for _, issue := range Check(manifests...) {
		if issue.Severity == SeverityError {
			return nil, fmt.Errorf("%s:%d: %s", issue.Pos.Filename, issue.Pos.Line, issue.Text)
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s:%d: %s", issue.Pos.Filename, issue.Pos.Line, issue.Text))
	}

	// 4. Render and gofmt
	source, count, err := renderBindings(cfg.PackageName, manifests)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	result.ComponentsGenerated = count

	if cfg.Verbose {
		fmt.Printf("Generated bindings for %d components\n", count)
	}

	// 5. Write output
	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	if err := os.WriteFile(cfg.OutputFile, source, 0o644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// renderBindings produces gofmt-clean source for every component across all
// manifests, in manifest order.
func renderBindings(packageName string, manifests []*Manifest) ([]byte, int, error) {
	var b strings.Builder
	count := 0

	fmt.Fprintf(&b, "// Code generated by classvariants. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	fmt.Fprintf(&b, "import (\n\tclassvariants %q\n)\n\n", modulePath)

	for _, manifest := range manifests {
		for _, component := range manifest.Components {
			renderComponent(&b, component)
			count++
		}
	}

	source, err := format.Source([]byte(b.String()))
	if err != nil {
		// A formatting failure means the renderer emitted invalid Go.
		return nil, 0, fmt.Errorf("formatting generated source: %w", err)
	}
	return source, count, nil
}

func renderComponent(b *strings.Builder, component ComponentSpec) {
	goName := toGoName(component.Name)

	// Typed option-value constants per enumerated axis.
	for _, axis := range component.Variants {
		if axisIsBoolean(axis) {
			continue
		}
		keys := sortedKeys(axis.Options)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(b, "// Option values for the %s %s axis.\nconst (\n", component.Name, axis.Name)
		for _, key := range keys {
			fmt.Fprintf(b, "\t%s%s%s = %q\n", goName, toGoName(axis.Name), toGoName(key), key)
		}
		fmt.Fprintf(b, ")\n\n")
	}

	// Compiled configuration, resolver, and splitter.
	fmt.Fprintf(b, "var %sConfig = classvariants.Config{\n", lowerFirst(goName))
	if component.Base.Value != nil {
		fmt.Fprintf(b, "\tBase: %s,\n", fragmentExpr(component.Base.Value))
	}
	if component.Variants != nil {
		fmt.Fprintf(b, "\tVariants: classvariants.Axes{\n")
		for _, axis := range component.Variants {
			fmt.Fprintf(b, "\t\t{Name: %q, Options: map[string]classvariants.ClassValue{\n", axis.Name)
			for _, key := range sortedKeys(axis.Options) {
				fmt.Fprintf(b, "\t\t\t%q: %s,\n", key, fragmentExpr(axis.Options[key].Value))
			}
			fmt.Fprintf(b, "\t\t}},\n")
		}
		fmt.Fprintf(b, "\t},\n")
	}
	if len(component.Defaults) > 0 {
		fmt.Fprintf(b, "\tDefaultVariants: map[string]string{\n")
		for _, key := range sortedKeys(component.Defaults) {
			fmt.Fprintf(b, "\t\t%q: %q,\n", key, component.Defaults[key])
		}
		fmt.Fprintf(b, "\t},\n")
	}
	if len(component.Compounds) > 0 {
		fmt.Fprintf(b, "\tCompoundVariants: []classvariants.CompoundVariant{\n")
		for _, compound := range component.Compounds {
			fmt.Fprintf(b, "\t\t{When: map[string][]string{\n")
			for _, key := range sortedKeys(compound.When) {
				fmt.Fprintf(b, "\t\t\t%q: %s,\n", key, stringSliceExpr(compound.When[key]))
			}
			fmt.Fprintf(b, "\t\t}, Class: %s},\n", fragmentExpr(compound.Class.Value))
		}
		fmt.Fprintf(b, "\t},\n")
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "// %sVariants resolves %s class strings.\n", goName, component.Name)
	fmt.Fprintf(b, "var %sVariants = classvariants.New(%sConfig)\n\n", goName, lowerFirst(goName))

	// Typed props struct.
	fmt.Fprintf(b, "// %sProps selects %s variants. Zero values fall back to the\n", goName, component.Name)
	fmt.Fprintf(b, "// configured defaults.\n")
	fmt.Fprintf(b, "type %sProps struct {\n", goName)
	for _, axis := range component.Variants {
		if axisIsBoolean(axis) {
			fmt.Fprintf(b, "\t%s bool\n", toGoName(axis.Name))
		} else {
			fmt.Fprintf(b, "\t%s string\n", toGoName(axis.Name))
		}
	}
	fmt.Fprintf(b, "\tClass string\n")
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "// ClassName resolves the class string for p.\n")
	fmt.Fprintf(b, "func (p %sProps) ClassName() string {\n", goName)
	fmt.Fprintf(b, "\tprops := classvariants.Props{}\n")
	for _, axis := range component.Variants {
		field := toGoName(axis.Name)
		if axisIsBoolean(axis) {
			fmt.Fprintf(b, "\tif p.%s {\n\t\tprops[%q] = true\n\t}\n", field, axis.Name)
		} else {
			fmt.Fprintf(b, "\tif p.%s != \"\" {\n\t\tprops[%q] = p.%s\n\t}\n", field, axis.Name, field)
		}
	}
	fmt.Fprintf(b, "\tif p.Class != \"\" {\n\t\tprops[classvariants.PropClass] = p.Class\n\t}\n")
	fmt.Fprintf(b, "\treturn %sVariants.Resolve(props)\n}\n\n", goName)
}

// fragmentExpr renders a ClassValue as a Go expression.
func fragmentExpr(value ClassValue) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case Class:
		return fmt.Sprintf("classvariants.Class(%q)", string(v))
	case ClassList:
		parts := make([]string, len(v))
		for i, child := range v {
			parts[i] = fragmentExpr(child)
		}
		return "classvariants.ClassList{" + strings.Join(parts, ", ") + "}"
	}
	return "nil"
}

func stringSliceExpr(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// toGoName converts a manifest name like "icon-button" to "IconButton".
func toGoName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
			upperNext = true
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
