package classvariants

import "strconv"

// Reserved option-value keys that mark an axis as boolean.
const (
	OptionTrue  = "true"
	OptionFalse = "false"
)

// PropClass is the props key carrying the caller's class override on input
// and the resolved class string on output.
const PropClass = "class"

// Props carries per-call variant selections plus arbitrary unrelated values.
// Selection values are strings for enumerated axes and bools for boolean
// axes; nil values and foreign types count as "no selection". An optional
// override fragment travels under PropClass as a string or ClassValue.
type Props map[string]any

// Axis is one named dimension of visual variation. Options maps each
// selectable option-value to its fragment; the reserved keys "true" and
// "false" make the axis boolean.
type Axis struct {
	Name    string
	Options map[string]ClassValue
}

// Axes is the ordered list of variant axes. Slice order is declaration
// order and fixes the order of fragments in resolved output.
type Axes []Axis

// CompoundVariant appends Class when every axis named in When matches the
// resolved selection. A condition value lists the acceptable effective
// values for that axis; one entry means exact equality.
type CompoundVariant struct {
	When  map[string][]string
	Class ClassValue
}

// Config is the immutable declarative description a Resolver is built from.
type Config struct {
	// Base is always included first.
	Base ClassValue

	// Variants lists the axes in declaration order. A nil slice means the
	// configuration has no variant axes at all: resolution short-circuits
	// to base plus override and compound rules never run.
	Variants Axes

	// DefaultVariants picks an option-value per axis when the caller
	// supplies none.
	DefaultVariants map[string]string

	// CompoundVariants are evaluated in order; all matching rules apply.
	CompoundVariants []CompoundVariant

	// Merge optionally post-processes the joined class string.
	Merge Merger
}

// compiledAxis is an Axis with its boolean nature and default decided once
// at construction instead of re-inspected on every Resolve call.
type compiledAxis struct {
	name       string
	options    map[string]ClassValue
	boolean    bool
	def        string
	hasDefault bool
}

// Resolver turns resolution requests into class strings for one Config.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	cfg  Config
	axes []compiledAxis
}

// New compiles a configuration into a reusable Resolver.
func New(cfg Config) *Resolver {
	r := &Resolver{cfg: cfg}

	r.axes = make([]compiledAxis, 0, len(cfg.Variants))
	for _, axis := range cfg.Variants {
		_, hasTrue := axis.Options[OptionTrue]
		_, hasFalse := axis.Options[OptionFalse]
		def, hasDefault := cfg.DefaultVariants[axis.Name]

		r.axes = append(r.axes, compiledAxis{
			name:       axis.Name,
			options:    axis.Options,
			boolean:    hasTrue || hasFalse,
			def:        def,
			hasDefault: hasDefault,
		})
	}

	return r
}

// Resolve produces the class string for one request. Identical
// (configuration, request) pairs always yield byte-identical output.
func (r *Resolver) Resolve(props Props) string {
	override := overrideFragment(props[PropClass])

	// No variants entry at all: pure static class list plus override.
	if r.cfg.Variants == nil {
		return FlattenWith(r.cfg.Merge, r.cfg.Base, override)
	}

	values := make([]ClassValue, 0, len(r.axes)+len(r.cfg.CompoundVariants)+2)
	values = append(values, r.cfg.Base)

	effective := make(map[string]string, len(r.axes))
	for _, axis := range r.axes {
		value, ok := axis.effectiveValue(props)
		if !ok {
			continue
		}
		effective[axis.name] = value
		// Unknown effective values simply contribute nothing.
		if fragment, exists := axis.options[value]; exists {
			values = append(values, fragment)
		}
	}

	for _, compound := range r.cfg.CompoundVariants {
		if matchesCondition(compound.When, effective) {
			values = append(values, compound.Class)
		}
	}

	values = append(values, override)
	return FlattenWith(r.cfg.Merge, values...)
}

// effectiveValue applies the caller selection, then the configured default,
// then the boolean-false fallback. The second result is false when the axis
// stays unresolved.
func (a compiledAxis) effectiveValue(props Props) (string, bool) {
	if raw, present := props[a.name]; present {
		if value, ok := coerceSelection(raw); ok {
			return value, true
		}
	}
	if a.hasDefault {
		return a.def, true
	}
	if a.boolean {
		return OptionFalse, true
	}
	return "", false
}

// coerceSelection normalizes a caller-supplied selection. Booleans map onto
// the reserved option keys; nil and unsupported types read as absent.
func coerceSelection(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// matchesCondition reports whether every axis named in the condition has an
// effective value in the acceptable set. An empty condition matches any
// resolution.
func matchesCondition(when map[string][]string, effective map[string]string) bool {
	for axisName, accepted := range when {
		value, resolved := effective[axisName]
		if !resolved {
			return false
		}
		found := false
		for _, candidate := range accepted {
			if candidate == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// overrideFragment accepts the caller's class override as a plain string or
// a ClassValue. Empty string, nil, and absent all mean "no override".
func overrideFragment(raw any) ClassValue {
	switch v := raw.(type) {
	case string:
		return Class(v)
	case ClassValue:
		return v
	}
	return nil
}
