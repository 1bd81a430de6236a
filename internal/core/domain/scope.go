// Package domain contains the core domain model for the grails build extension:
// dependency scopes, the build extension, convention-mapped tasks, and the
// lazy property resolution that ties them together.
package domain

// Well-known scope names created by the plugin bootstrap.
const (
	ScopeBootstrap    = "bootstrap"
	ScopeCompile      = "compile"
	ScopeRuntime      = "runtime"
	ScopeTest         = "test"
	ScopeResources    = "resources"
	ScopeSpringloaded = "springloaded"
)

// Scope is a named, inheritable set of dependency declarations.
// Its effective dependency set is its own declarations plus those of every
// ancestor reached through inheritance edges.
type Scope struct {
	name     string
	declared []Dependency
	parents  []*Scope
}

// Name returns the scope's unique name.
func (s *Scope) Name() string {
	return s.name
}

// Declare appends a dependency declaration to the scope.
func (s *Scope) Declare(dep Dependency) {
	s.declared = append(s.declared, dep)
}

// Declared returns a copy of the scope's own declarations, in declaration order.
func (s *Scope) Declared() []Dependency {
	out := make([]Dependency, len(s.declared))
	copy(out, s.declared)
	return out
}

// EffectiveDependencies returns the scope's full dependency set: ancestors
// first, then its own declarations, deduplicated by coordinate. The walk is
// performed on every call so declarations added to a parent after the edge was
// created are visible without re-registration.
func (s *Scope) EffectiveDependencies() []Dependency {
	seen := make(map[string]bool)
	visited := make(map[string]bool)
	var out []Dependency

	var walk func(sc *Scope)
	walk = func(sc *Scope) {
		if visited[sc.name] {
			return
		}
		visited[sc.name] = true
		for _, p := range sc.parents {
			walk(p)
		}
		for _, d := range sc.declared {
			if !seen[d.Coordinate()] {
				seen[d.Coordinate()] = true
				out = append(out, d)
			}
		}
	}
	walk(s)
	return out
}

// ScopeGraph holds every named scope of a project and their inheritance edges.
type ScopeGraph struct {
	scopes map[string]*Scope
}

// NewScopeGraph creates a new empty ScopeGraph.
func NewScopeGraph() *ScopeGraph {
	return &ScopeGraph{
		scopes: make(map[string]*Scope),
	}
}

// GetOrCreate returns the scope registered under name, creating and
// registering a new empty scope on first request. Creation is idempotent:
// re-requesting an existing name returns the same instance.
func (g *ScopeGraph) GetOrCreate(name string) *Scope {
	if s, ok := g.scopes[name]; ok {
		return s
	}
	s := &Scope{name: name}
	g.scopes[name] = s
	return s
}

// Get returns the scope registered under name, if any.
func (g *ScopeGraph) Get(name string) (*Scope, bool) {
	s, ok := g.scopes[name]
	return s, ok
}

// Extend adds an inheritance edge so that child inherits parent's
// declarations. It returns ErrScopeCycle if the edge would close a cycle.
func (g *ScopeGraph) Extend(child, parent string) error {
	c := g.GetOrCreate(child)
	p := g.GetOrCreate(parent)

	if path, found := g.findPath(p, c); found {
		cycle := child
		for _, name := range path {
			cycle += " -> " + name
		}
		return Detail(ErrScopeCycle, "cycle", cycle)
	}

	c.parents = append(c.parents, p)
	return nil
}

// findPath reports whether target is reachable from start through inheritance
// edges, returning the visited names along the discovered path.
func (g *ScopeGraph) findPath(start, target *Scope) ([]string, bool) {
	if start == target {
		return []string{start.name}, true
	}
	for _, p := range start.parents {
		if path, found := g.findPath(p, target); found {
			return append([]string{start.name}, path...), true
		}
	}
	return nil, false
}
