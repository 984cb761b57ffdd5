package settings

// Accessor is the read/write surface a prefixed view projects over. Settings
// satisfies it; so does any other settings-like value, including another
// Prefixed.
type Accessor interface {
	Get(name string) (any, error)
	Set(name string, value any)
}

// Prefixed is a namespaced read/write projection over an Accessor via a fixed
// string prefix. It holds no state beyond the prefix and the wrapped
// reference; it never duplicates the layer stack.
type Prefixed struct {
	accessor Accessor
	prefix   string
}

// NewPrefixed wraps accessor so every key passes through as prefix+local.
func NewPrefixed(accessor Accessor, prefix string) *Prefixed {
	return &Prefixed{
		accessor: accessor,
		prefix:   prefix,
	}
}

// Prefix returns the fixed prefix chosen at construction.
func (p *Prefixed) Prefix() string {
	return p.prefix
}

// Get reads prefix+name from the wrapped accessor. A miss propagates the
// wrapped accessor's error unmodified in kind, reported against the
// fully-prefixed key.
func (p *Prefixed) Get(name string) (any, error) {
	return p.accessor.Get(p.prefix + name)
}

// Set writes value under prefix+name in the wrapped accessor.
func (p *Prefixed) Set(name string, value any) {
	p.accessor.Set(p.prefix+name, value)
}
