package markup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Attr is a single caller-supplied attribute. Value is a string, a bool, a
// number, a fmt.Stringer, or for class/style one of their structured forms.
type Attr struct {
	Name  string
	Value any
}

// A creates an Attr.
func A(name string, value any) Attr { return Attr{Name: name, Value: value} }

// Pairs implements AttrSource.
func (a Attr) Pairs() []Attr { return []Attr{a} }

// AttrList is an ordered list of attributes.
type AttrList []Attr

// Pairs implements AttrSource.
func (l AttrList) Pairs() []Attr { return l }

// Attrs is an attribute map. Its entries are applied in sorted key order.
type Attrs map[string]any

// Pairs implements AttrSource.
func (m Attrs) Pairs() []Attr {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]Attr, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, Attr{Name: name, Value: m[name]})
	}
	return pairs
}

// AttrSource supplies attributes to element constructors.
type AttrSource interface {
	Pairs() []Attr
}

// Names of the attributes projected onto an element's selector and style.
const (
	attrClass = "class"
	attrStyle = "style"
	attrID    = "id"
)

// virtualAttrs are always listed first, in this order.
var virtualAttrs = [...]string{attrClass, attrStyle, attrID}

func isVirtual(name string) bool {
	return name == attrClass || name == attrStyle || name == attrID
}

// Attributes is the attribute bag of an element. The class, style and id
// entries are not stored here: they read and write through to the element's
// class set, style map and selector id.
type Attributes struct {
	owner  *Element
	names  []string
	values map[string]any
}

func newAttributes(owner *Element) *Attributes {
	return &Attributes{owner: owner, values: make(map[string]any)}
}

// Get returns the value of an attribute. Stored values are a string or the
// boolean true; class, style and id always report their string projection.
func (a *Attributes) Get(name string) (any, bool) {
	switch name {
	case attrClass:
		s := a.owner.Class().String()
		return s, s != ""
	case attrStyle:
		s := a.owner.Style().String()
		return s, s != ""
	case attrID:
		return a.owner.Selector.ID, a.owner.Selector.ID != ""
	}
	v, ok := a.values[name]
	return v, ok
}

// Value returns the string value of an attribute, "" when absent and the
// attribute name itself for boolean attributes.
func (a *Attributes) Value(name string) string {
	v, ok := a.Get(name)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return name
}

// Has reports whether an attribute has a value that would be rendered.
func (a *Attributes) Has(name string) bool {
	v, ok := a.Get(name)
	return ok && !isEmptyValue(v)
}

// Set assigns an attribute.
//
// class accepts a whitespace-separated string, []string or *ClassSet and
// replaces the whole class set. style accepts declaration text,
// map[string]string or *StyleMap and replaces the whole style map. id
// accepts a string; "" clears it. Any other attribute accepts a string, a
// bool (false removes it, true renders the bare name), an integer or float,
// or a fmt.Stringer. nil removes the attribute.
func (a *Attributes) Set(name string, value any) error {
	switch name {
	case attrClass:
		return a.setClass(value)
	case attrStyle:
		return a.setStyle(value)
	case attrID:
		if value == nil || value == false {
			a.owner.Selector.ID = ""
			return nil
		}
		s, err := stringify(name, value)
		if err != nil {
			return err
		}
		a.owner.Selector.ID = s
		return nil
	}

	if value == nil || value == false {
		a.Remove(name)
		return nil
	}

	var stored any
	if value == true {
		stored = true
	} else {
		s, err := stringify(name, value)
		if err != nil {
			return err
		}
		stored = s
	}

	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = stored
	return nil
}

func (a *Attributes) setClass(value any) error {
	switch v := value.(type) {
	case nil:
		a.owner.SetClass(&ClassSet{})
	case bool:
		if v {
			return fmt.Errorf("%w: class cannot be true", ErrInvalidAttribute)
		}
		a.owner.SetClass(&ClassSet{})
	case string:
		a.owner.SetClass(NewClassSet(v))
	case []string:
		a.owner.SetClass(ClassSetOf(v...))
	case *ClassSet:
		a.owner.SetClass(v)
	default:
		return fmt.Errorf("%w: class cannot be %T", ErrInvalidAttribute, value)
	}
	return nil
}

func (a *Attributes) setStyle(value any) error {
	switch v := value.(type) {
	case nil:
		a.owner.SetStyle(&StyleMap{})
	case bool:
		if v {
			return fmt.Errorf("%w: style cannot be true", ErrInvalidAttribute)
		}
		a.owner.SetStyle(&StyleMap{})
	case string:
		a.owner.SetStyle(NewStyleMap(v))
	case map[string]string:
		a.owner.SetStyle(StyleMapOf(v))
	case map[string]any:
		props := make(map[string]string, len(v))
		for k, pv := range v {
			s, err := stringify(attrStyle, pv)
			if err != nil {
				return err
			}
			props[k] = s
		}
		a.owner.SetStyle(StyleMapOf(props))
	case *StyleMap:
		a.owner.SetStyle(v)
	default:
		return fmt.Errorf("%w: style cannot be %T", ErrInvalidAttribute, value)
	}
	return nil
}

// Remove deletes an attribute. Removing class or style empties them.
func (a *Attributes) Remove(name string) {
	switch name {
	case attrClass:
		a.owner.Class().Clear()
		return
	case attrStyle:
		a.owner.Style().Clear()
		return
	case attrID:
		a.owner.Selector.ID = ""
		return
	}
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
}

// Names returns every attribute name in render order: class, style and id
// first, then the others in insertion order.
func (a *Attributes) Names() []string {
	names := make([]string, 0, len(virtualAttrs)+len(a.names))
	names = append(names, virtualAttrs[:]...)
	return append(names, a.names...)
}

// Len returns the number of attributes that would be rendered.
func (a *Attributes) Len() int {
	n := 0
	for _, name := range a.Names() {
		if a.Has(name) {
			n++
		}
	}
	return n
}

// List returns a value copy of the attributes that would be rendered, in
// render order.
func (a *Attributes) List() AttrList {
	list := make(AttrList, 0, len(virtualAttrs)+len(a.names))
	for _, name := range a.Names() {
		v, ok := a.Get(name)
		if !ok || isEmptyValue(v) {
			continue
		}
		list = append(list, Attr{Name: name, Value: v})
	}
	return list
}

// Pairs implements AttrSource, so one element's attributes can seed another.
func (a *Attributes) Pairs() []Attr {
	return a.List()
}

// HTML renders the attributes as they appear inside an open tag, with one
// leading space, or "" when there are none.
func (a *Attributes) HTML() string {
	var b strings.Builder
	for _, attr := range a.List() {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		if s, ok := attr.Value.(string); ok {
			b.WriteString(`="`)
			b.WriteString(EncodeEntities(s))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// clone copies the non-virtual attributes into a bag owned by owner.
func (a *Attributes) clone(owner *Element) *Attributes {
	c := newAttributes(owner)
	c.names = append(c.names, a.names...)
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

func isEmptyValue(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	}
	return false
}

func stringify(name string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %s cannot be %T", ErrInvalidAttribute, name, value)
	}
}
