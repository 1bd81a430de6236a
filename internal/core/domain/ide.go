package domain

// IDEScopeMapping groups the project's dependency declarations into the four
// fixed IDE scope categories. Runtime excludes compile's contribution and
// test excludes runtime's, mirroring the scope inheritance graph.
type IDEScopeMapping struct {
	Provided []Dependency
	Compile  []Dependency
	Runtime  []Dependency
	Test     []Dependency
}

// NewIDEScopeMapping derives the four categories from the scope graph.
func NewIDEScopeMapping(g *ScopeGraph) IDEScopeMapping {
	bootstrap := g.GetOrCreate(ScopeBootstrap).EffectiveDependencies()
	compile := g.GetOrCreate(ScopeCompile).EffectiveDependencies()
	runtime := g.GetOrCreate(ScopeRuntime).EffectiveDependencies()
	test := g.GetOrCreate(ScopeTest).EffectiveDependencies()

	return IDEScopeMapping{
		Provided: bootstrap,
		Compile:  compile,
		Runtime:  subtract(runtime, compile),
		Test:     subtract(test, runtime),
	}
}

// subtract returns the dependencies of a that are not in b, preserving order.
func subtract(a, b []Dependency) []Dependency {
	exclude := make(map[string]bool, len(b))
	for _, d := range b {
		exclude[d.Coordinate()] = true
	}
	var out []Dependency
	for _, d := range a {
		if !exclude[d.Coordinate()] {
			out = append(out, d)
		}
	}
	return out
}
