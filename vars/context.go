// Package vars holds the variable bindings that instantiate naming
// conventions: an ordered name → value mapping where each binding
// remembers whether the caller supplied it or a path match captured it.
package vars

import (
	"fmt"
	"sort"
)

// Source identifies where a binding came from.
type Source uint8

const (
	// SourceCaller marks bindings supplied directly by the caller.
	SourceCaller Source = iota
	// SourceCapture marks bindings recovered from a literal path.
	SourceCapture
)

func (s Source) String() string {
	switch s {
	case SourceCaller:
		return "caller"
	case SourceCapture:
		return "capture"
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// Binding is one variable assignment.
type Binding struct {
	Name   string
	Value  string
	Source Source
}

// Context is an ordered set of variable bindings. Insertion order is
// preserved; re-setting a name updates its value and source in place.
// A Context is not safe for concurrent mutation.
type Context struct {
	bindings []Binding
	index    map[string]int
}

// New returns an empty context.
func New() *Context {
	return &Context{index: make(map[string]int)}
}

// FromMap builds a caller-sourced context. Names are inserted in sorted
// order so identical maps always build identical contexts.
func FromMap(m map[string]string) *Context {
	c := New()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.Set(name, m[name])
	}
	return c
}

// Set binds name to value with caller provenance.
func (c *Context) Set(name, value string) *Context {
	return c.put(name, value, SourceCaller)
}

// Capture binds name to value with capture provenance.
func (c *Context) Capture(name, value string) *Context {
	return c.put(name, value, SourceCapture)
}

func (c *Context) put(name, value string, src Source) *Context {
	if i, ok := c.index[name]; ok {
		c.bindings[i].Value = value
		c.bindings[i].Source = src
		return c
	}
	c.index[name] = len(c.bindings)
	c.bindings = append(c.bindings, Binding{Name: name, Value: value, Source: src})
	return c
}

// Get returns the value bound to name. Safe on a nil context.
func (c *Context) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	i, ok := c.index[name]
	if !ok {
		return "", false
	}
	return c.bindings[i].Value, true
}

// Lookup returns the full binding for name. Safe on a nil context.
func (c *Context) Lookup(name string) (Binding, bool) {
	if c == nil {
		return Binding{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Binding{}, false
	}
	return c.bindings[i], true
}

// Len returns the number of bindings. Safe on a nil context.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bindings)
}

// Names returns the bound names in insertion order.
func (c *Context) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		names[i] = b.Name
	}
	return names
}

// Bindings returns a copy of the bindings in insertion order.
func (c *Context) Bindings() []Binding {
	if c == nil {
		return nil
	}
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// Map flattens the context to a plain name → value map.
func (c *Context) Map() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	m := make(map[string]string, len(c.bindings))
	for _, b := range c.bindings {
		m[b.Name] = b.Value
	}
	return m
}

// Clone returns an independent copy.
func (c *Context) Clone() *Context {
	out := New()
	if c == nil {
		return out
	}
	out.bindings = make([]Binding, len(c.bindings))
	copy(out.bindings, c.bindings)
	for name, i := range c.index {
		out.index[name] = i
	}
	return out
}
