package classvariants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.variants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const buttonManifest = `
version: "1"
components:
  - name: button
    base: "btn"
    variants:
      - name: color
        options:
          primary: "bg-blue"
          secondary: "bg-gray"
      - name: size
        options:
          small: "h-8"
          large: "h-11"
      - name: disabled
        options:
          "true": "opacity-50"
    defaults:
      color: primary
    compounds:
      - when:
          color: primary
          size: [large]
        class: "font-bold"
    forward:
      - disabled
`

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, buttonManifest)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, path, m.Path)
	assert.Equal(t, "1", m.Version)
	require.Len(t, m.Components, 1)

	button := m.Components[0]
	assert.Equal(t, "button", button.Name)
	assert.Equal(t, Class("btn"), button.Base.Value)
	assert.Positive(t, button.Line)

	// Axis declaration order follows the YAML sequence.
	require.Len(t, button.Variants, 3)
	assert.Equal(t, "color", button.Variants[0].Name)
	assert.Equal(t, "size", button.Variants[1].Name)
	assert.Equal(t, "disabled", button.Variants[2].Name)
	assert.Equal(t, Class("bg-blue"), button.Variants[0].Options["primary"].Value)

	assert.Equal(t, map[string]string{"color": "primary"}, button.Defaults)

	require.Len(t, button.Compounds, 1)
	compound := button.Compounds[0]
	// Scalar and sequence condition values both decode to lists.
	assert.Equal(t, StringList{"primary"}, compound.When["color"])
	assert.Equal(t, StringList{"large"}, compound.When["size"])
	assert.Equal(t, Class("font-bold"), compound.Class.Value)

	assert.Equal(t, []string{"disabled"}, button.Forward)
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no components",
			content: `version: "1"`,
		},
		{
			name: "component without name",
			content: `
components:
  - base: "btn"
`,
		},
		{
			name: "invalid component name",
			content: `
components:
  - name: "2 buttons!"
`,
		},
		{
			name: "invalid axis name",
			content: `
components:
  - name: button
    variants:
      - name: "bad axis"
        options:
          a: "x"
`,
		},
		{
			name:    "not yaml",
			content: `{{{`,
		},
		{
			name: "fragment is a mapping",
			content: `
components:
  - name: button
    base:
      nested: map
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := LoadManifest(path)
			require.Error(t, err)
		})
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFragmentSpecDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ClassValue
	}{
		{"scalar", `"btn"`, Class("btn")},
		{"null", `null`, nil},
		{"flat sequence", `["a", "b"]`, ClassList{Class("a"), Class("b")}},
		{
			name: "nested sequence with null",
			in:   `["a", null, ["b", ["c"]]]`,
			want: ClassList{Class("a"), nil, ClassList{Class("b"), ClassList{Class("c")}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FragmentSpec
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &f))
			require.Equal(t, tt.want, f.Value)
		})
	}
}

func TestStringListDecoding(t *testing.T) {
	var scalar StringList
	require.NoError(t, yaml.Unmarshal([]byte(`solo`), &scalar))
	assert.Equal(t, StringList{"solo"}, scalar)

	var many StringList
	require.NoError(t, yaml.Unmarshal([]byte(`[a, b]`), &many))
	assert.Equal(t, StringList{"a", "b"}, many)
}

func TestComponentSpecConfig(t *testing.T) {
	path := writeManifest(t, buttonManifest)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	cfg := m.Components[0].Config()
	resolver := New(cfg)

	// End-to-end: YAML manifest through the resolver.
	assert.Equal(t, "btn bg-blue h-11 font-bold", resolver.Resolve(Props{"size": "large"}))
	assert.Equal(t, "btn bg-gray h-8", resolver.Resolve(Props{"color": "secondary", "size": "small"}))
	assert.Equal(t, "btn bg-blue opacity-50", resolver.Resolve(Props{"disabled": true}))
}

func TestComponentSpecConfigNoVariants(t *testing.T) {
	path := writeManifest(t, `
components:
  - name: divider
    base: "hr border-t"
`)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	cfg := m.Components[0].Config()
	// Absent variants stays nil so the resolver takes the static fast path.
	assert.Nil(t, cfg.Variants)
	assert.Equal(t, "hr border-t", New(cfg).Resolve(Props{}))
}

func TestComponentSpecSplitConfig(t *testing.T) {
	path := writeManifest(t, buttonManifest)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	splitter := NewSplitter(m.Components[0].SplitConfig())
	out := splitter.Split(Props{"color": "secondary", "disabled": true, "id": "save"})

	assert.Equal(t, "save", out["id"])
	assert.Equal(t, true, out["disabled"]) // forwarded
	assert.NotContains(t, out, "color")
	assert.Equal(t, "btn bg-gray opacity-50", out[PropClass])
}

func TestManifestComponentLookup(t *testing.T) {
	path := writeManifest(t, buttonManifest)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	require.NotNil(t, m.Component("button"))
	require.Nil(t, m.Component("missing"))
}
