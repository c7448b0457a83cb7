package classvariants

import "strings"

// ClassValue is a single piece of class-name material: a Class scalar, a
// ClassList grouping, or nil for "nothing". Nesting is arbitrary so
// configuration authors can group related fragments.
type ClassValue interface {
	classValue()
}

// Class is an atomic class-name fragment, e.g. "bg-blue-500 text-white".
type Class string

func (Class) classValue() {}

// ClassList groups fragments. Lists may nest to any depth.
type ClassList []ClassValue

func (ClassList) classValue() {}

// Classes builds a ClassList from plain strings.
func Classes(names ...string) ClassList {
	list := make(ClassList, len(names))
	for i, name := range names {
		list[i] = Class(name)
	}
	return list
}

// Merger post-processes a joined class string, typically to resolve
// conflicting utility classes. A panicking merger propagates to the caller
// unchanged; the flattener performs no recovery.
type Merger func(string) string

// Flatten joins a sequence of fragments into a single space-separated
// string. Nested lists are walked in order, nil markers and empty strings
// are dropped, and every other atom is preserved verbatim (including
// whitespace-only strings). Flatten never fails.
func Flatten(values ...ClassValue) string {
	return strings.Join(appendAtoms(nil, values), " ")
}

// FlattenWith is Flatten with an optional merge hook applied to the joined
// result. A nil merger is equivalent to Flatten.
func FlattenWith(merge Merger, values ...ClassValue) string {
	joined := Flatten(values...)
	if merge != nil {
		return merge(joined)
	}
	return joined
}

// appendAtoms collects non-empty atoms in left-to-right order. The walk uses
// an explicit stack so deeply nested lists cannot exhaust the call stack.
func appendAtoms(atoms []string, values []ClassValue) []string {
	stack := make([]ClassValue, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		stack = append(stack, values[i])
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := top.(type) {
		case nil:
			// Empty marker contributes nothing.
		case Class:
			if v != "" {
				atoms = append(atoms, string(v))
			}
		case ClassList:
			// Push in reverse so list elements pop in declaration order.
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, v[i])
			}
		}
	}

	return atoms
}
