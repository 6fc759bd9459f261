package markup

import (
	"sort"
	"strings"
)

// StyleMap is the ordered set of declarations of a style attribute.
type StyleMap struct {
	names  []string
	values map[string]string
}

// NewStyleMap parses declaration text such as "color: red; font-size: 12px;".
// Declarations with an empty name or value are skipped.
func NewStyleMap(declarations string) *StyleMap {
	s := &StyleMap{}
	for _, rule := range strings.Split(declarations, ";") {
		name, value, _ := strings.Cut(rule, ":")
		s.Set(name, value)
	}
	return s
}

// StyleMapOf creates a style map from a key-value map. Properties are added
// in sorted order since Go maps carry no order of their own.
func StyleMapOf(properties map[string]string) *StyleMap {
	s := &StyleMap{}
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.Set(name, properties[name])
	}
	return s
}

// Set trims and stores a property. It does nothing when either the name or
// the value is empty after trimming.
func (s *StyleMap) Set(name, value string) {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the value of a property.
func (s *StyleMap) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether the property is set.
func (s *StyleMap) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Remove deletes a property and reports whether it was present.
func (s *StyleMap) Remove(name string) bool {
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all properties.
func (s *StyleMap) Clear() {
	s.names = nil
	s.values = nil
}

// Len returns the number of properties.
func (s *StyleMap) Len() int {
	return len(s.names)
}

// String renders "name: value;" pairs joined by spaces, or "" when empty.
func (s *StyleMap) String() string {
	parts := make([]string, 0, len(s.names))
	for _, name := range s.names {
		parts = append(parts, name+": "+s.values[name]+";")
	}
	return strings.Join(parts, " ")
}

// Clone returns an independent copy.
func (s *StyleMap) Clone() *StyleMap {
	c := &StyleMap{}
	for _, name := range s.names {
		c.Set(name, s.values[name])
	}
	return c
}
