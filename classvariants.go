// Package classvariants composes CSS class strings from declarative variant
// configurations, in the style of Tailwind-oriented variant libraries.
//
// # Resolving
//
// Describe a component once, then resolve class strings from typed options
// instead of hand-written conditionals:
//
//	button := classvariants.New(classvariants.Config{
//		Base: classvariants.Class("btn"),
//		Variants: classvariants.Axes{
//			{Name: "color", Options: map[string]classvariants.ClassValue{
//				"primary":   classvariants.Class("bg-blue-600 text-white"),
//				"secondary": classvariants.Class("bg-gray-200"),
//			}},
//			{Name: "disabled", Options: map[string]classvariants.ClassValue{
//				"true": classvariants.Class("opacity-50 pointer-events-none"),
//			}},
//		},
//		DefaultVariants: map[string]string{"color": "primary"},
//	})
//
//	button.Resolve(classvariants.Props{"color": "secondary"})
//	// "btn bg-gray-200"
//
// # Splitting
//
// NewSplitter separates variant selections from unrelated props and stores
// the resolved string under the "class" key, ready to spread onto an
// element.
//
// # Manifests
//
// LoadManifest reads YAML manifests of named component configurations;
// Check validates them and Generate emits type-safe Go bindings. The CLI in
// cmd/classvariants wraps all three. Install with:
//
//	go install github.com/jackardios/go-class-variants/cmd/classvariants@latest
package classvariants
