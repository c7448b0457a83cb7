package classvariants

import "strings"

// Dedupe is a ready-made Merger that removes exact duplicate class tokens,
// keeping the first occurrence. It performs no conflict resolution between
// different utility classes; integrators wanting tailwind-merge semantics
// can plug in their own Merger instead.
func Dedupe(joined string) string {
	fields := strings.Fields(joined)
	if len(fields) < 2 {
		return joined
	}

	seen := make(map[string]bool, len(fields))
	kept := fields[:0]
	for _, field := range fields {
		if !seen[field] {
			seen[field] = true
			kept = append(kept, field)
		}
	}
	return strings.Join(kept, " ")
}
