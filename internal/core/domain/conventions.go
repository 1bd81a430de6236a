package domain

import "go.trai.ch/zerr"

// Supplier computes a convention property value on demand.
type Supplier func() (any, error)

// Conventions is a per-task bag of lazily resolved properties. A property's
// value is computed by whichever supplier is currently registered for its
// name; registering again for the same name shadows the earlier supplier
// (last registration wins). Nothing is evaluated before the first Resolve
// call, and the bag itself never caches: a supplier runs on every read.
type Conventions struct {
	suppliers map[string]Supplier
}

// NewConventions creates an empty property bag.
func NewConventions() *Conventions {
	return &Conventions{
		suppliers: make(map[string]Supplier),
	}
}

// MapProperty registers or overwrites the supplier for name.
func (c *Conventions) MapProperty(name string, s Supplier) {
	c.suppliers[name] = s
}

// Has reports whether a supplier is registered for name.
func (c *Conventions) Has(name string) bool {
	_, ok := c.suppliers[name]
	return ok
}

// Resolve invokes the supplier currently registered for name and returns its
// result. It returns ErrUnknownProperty when no supplier is registered.
func (c *Conventions) Resolve(name string) (any, error) {
	s, ok := c.suppliers[name]
	if !ok {
		return nil, Detail(ErrUnknownProperty, "property", name)
	}
	return s()
}

// ResolveAs resolves name and asserts the value to T.
func ResolveAs[T any](c *Conventions, name string) (T, error) {
	var zero T
	v, err := c.Resolve(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, zerr.With(zerr.New("convention property has unexpected type"), "property", name)
	}
	return t, nil
}
