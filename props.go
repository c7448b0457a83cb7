package classvariants

// SplitConfig extends a variant configuration with the axis names whose
// values should survive splitting.
type SplitConfig struct {
	Config

	// ForwardProps names declared axes that are kept in the split output in
	// addition to being consumed for resolution. Every other declared axis
	// key is removed.
	ForwardProps []string
}

// Splitter separates variant selections from unrelated props and attaches
// the resolved class string. Like Resolver it is immutable and safe for
// concurrent use.
type Splitter struct {
	resolver *Resolver
	forward  map[string]bool
}

// NewSplitter compiles a split configuration. The resolver it constructs
// follows the same rules as New.
func NewSplitter(cfg SplitConfig) *Splitter {
	forward := make(map[string]bool, len(cfg.ForwardProps))
	for _, name := range cfg.ForwardProps {
		forward[name] = true
	}
	return &Splitter{
		resolver: New(cfg.Config),
		forward:  forward,
	}
}

// Split returns a copy of props with declared axis keys consumed (forwarded
// axes excepted) and PropClass set to the resolved class string. The
// caller's raw PropClass value feeds resolution as the override and is then
// replaced; the input map is never mutated.
func (s *Splitter) Split(props Props) Props {
	out := make(Props, len(props)+1)
	for key, value := range props {
		out[key] = value
	}

	for _, axis := range s.resolver.axes {
		if _, present := props[axis.name]; present && !s.forward[axis.name] {
			delete(out, axis.name)
		}
	}

	out[PropClass] = s.resolver.Resolve(props)
	return out
}
