package markup

import "strings"

// ClassSet is the ordered, duplicate-free value of a class attribute.
type ClassSet struct {
	names []string
	index map[string]struct{}
}

// NewClassSet creates a class set from whitespace-separated class names.
func NewClassSet(value string) *ClassSet {
	c := &ClassSet{}
	c.Add(strings.Fields(value)...)
	return c
}

// ClassSetOf creates a class set from individual class names.
func ClassSetOf(names ...string) *ClassSet {
	c := &ClassSet{}
	c.Add(names...)
	return c
}

// Add appends class names that are not already present. Empty names are ignored.
func (c *ClassSet) Add(names ...string) {
	if c.index == nil {
		c.index = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := c.index[name]; ok {
			continue
		}
		c.index[name] = struct{}{}
		c.names = append(c.names, name)
	}
}

// Remove deletes class names. Absent names are ignored.
func (c *ClassSet) Remove(names ...string) {
	for _, name := range names {
		if _, ok := c.index[name]; !ok {
			continue
		}
		delete(c.index, name)
		for i, n := range c.names {
			if n == name {
				c.names = append(c.names[:i], c.names[i+1:]...)
				break
			}
		}
	}
}

// Clear removes all class names.
func (c *ClassSet) Clear() {
	c.names = nil
	c.index = nil
}

// Has reports whether the set contains name.
func (c *ClassSet) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len returns the number of class names.
func (c *ClassSet) Len() int {
	return len(c.names)
}

// Names returns a copy of the class names in insertion order.
func (c *ClassSet) Names() []string {
	return append([]string(nil), c.names...)
}

// Selector returns the set as a selector suffix (".a.b"), or "" when empty.
func (c *ClassSet) Selector() string {
	if len(c.names) == 0 {
		return ""
	}
	return "." + strings.Join(c.names, ".")
}

// String returns the attribute value ("a b").
func (c *ClassSet) String() string {
	return strings.Join(c.names, " ")
}

// Clone returns an independent copy.
func (c *ClassSet) Clone() *ClassSet {
	return ClassSetOf(c.names...)
}
