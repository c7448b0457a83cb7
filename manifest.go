package classvariants

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest is one YAML file of named component variant configurations.
type Manifest struct {
	Version    string          `yaml:"version,omitempty"`
	Components []ComponentSpec `yaml:"components" validate:"required,min=1,dive"`

	// Path is the file the manifest was loaded from.
	Path string `yaml:"-"`
}

// ComponentSpec declares the variant configuration of one component.
type ComponentSpec struct {
	Name      string            `yaml:"name" validate:"required,variant_name"`
	Base      FragmentSpec      `yaml:"base,omitempty"`
	Variants  []AxisSpec        `yaml:"variants,omitempty" validate:"omitempty,dive"`
	Defaults  map[string]string `yaml:"defaults,omitempty"`
	Compounds []CompoundSpec    `yaml:"compounds,omitempty"`
	Forward   []string          `yaml:"forward,omitempty"`

	Line int `yaml:"-"`
}

// AxisSpec declares one variant axis. Axis order in the YAML sequence is
// declaration order and is preserved through to the resolver.
type AxisSpec struct {
	Name    string                  `yaml:"name" validate:"required,variant_name"`
	Options map[string]FragmentSpec `yaml:"options"`

	Line int `yaml:"-"`
}

// CompoundSpec declares one compound rule.
type CompoundSpec struct {
	When  map[string]StringList `yaml:"when,omitempty"`
	Class FragmentSpec          `yaml:"class"`

	Line int `yaml:"-"`
}

// FragmentSpec decodes a class fragment from YAML: a scalar string, an
// arbitrarily nested sequence, or null.
type FragmentSpec struct {
	Value ClassValue
}

// StringList decodes either a scalar or a sequence of scalars.
type StringList []string

func (c *ComponentSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain ComponentSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = ComponentSpec(p)
	c.Line = node.Line
	return nil
}

func (a *AxisSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain AxisSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = AxisSpec(p)
	a.Line = node.Line
	return nil
}

func (c *CompoundSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain CompoundSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = CompoundSpec(p)
	c.Line = node.Line
	return nil
}

func (f *FragmentSpec) UnmarshalYAML(node *yaml.Node) error {
	value, err := decodeFragment(node)
	if err != nil {
		return err
	}
	f.Value = value
	return nil
}

func decodeFragment(node *yaml.Node) (ClassValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return Class(s), nil

	case yaml.SequenceNode:
		list := make(ClassList, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := decodeFragment(child)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	}

	return nil, fmt.Errorf("line %d: class fragment must be a string or a sequence", node.Line)
}

func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := node.Decode(&many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	variantNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// validatorInstance configures the shared validator used for manifest
// schema checks. Semantic checks live in Check.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant_name", func(fl validator.FieldLevel) bool {
			return variantNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// LoadManifest reads, parses, and schema-validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := validatorInstance().Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	m.Path = path
	return &m, nil
}

// LoadManifests loads every path in order.
func LoadManifests(paths []string) ([]*Manifest, error) {
	manifests := make([]*Manifest, 0, len(paths))
	for _, path := range paths {
		m, err := LoadManifest(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// Component returns the named component spec, or nil.
func (m *Manifest) Component(name string) *ComponentSpec {
	for i := range m.Components {
		if m.Components[i].Name == name {
			return &m.Components[i]
		}
	}
	return nil
}

// Config converts the spec into a resolver configuration. Axis order
// follows the manifest's variant sequence.
func (c ComponentSpec) Config() Config {
	cfg := Config{
		Base:            c.Base.Value,
		DefaultVariants: c.Defaults,
	}

	if c.Variants != nil {
		axes := make(Axes, 0, len(c.Variants))
		for _, spec := range c.Variants {
			options := make(map[string]ClassValue, len(spec.Options))
			for key, fragment := range spec.Options {
				options[key] = fragment.Value
			}
			axes = append(axes, Axis{Name: spec.Name, Options: options})
		}
		cfg.Variants = axes
	}

	for _, compound := range c.Compounds {
		when := make(map[string][]string, len(compound.When))
		for axisName, accepted := range compound.When {
			when[axisName] = []string(accepted)
		}
		cfg.CompoundVariants = append(cfg.CompoundVariants, CompoundVariant{
			When:  when,
			Class: compound.Class.Value,
		})
	}

	return cfg
}

// SplitConfig converts the spec into a splitter configuration.
func (c ComponentSpec) SplitConfig() SplitConfig {
	return SplitConfig{
		Config:       c.Config(),
		ForwardProps: c.Forward,
	}
}
