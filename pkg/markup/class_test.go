package markup

import (
	"reflect"
	"testing"
)

func TestClassSet(t *testing.T) {
	c := NewClassSet("a b")
	if got := c.String(); got != "a b" {
		t.Errorf("String() = %q, want %q", got, "a b")
	}
	if got := c.Selector(); got != ".a.b" {
		t.Errorf("Selector() = %q, want %q", got, ".a.b")
	}

	c.Add("b", "c")
	if got := c.String(); got != "a b c" {
		t.Errorf("after Add: %q, want %q", got, "a b c")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	c.Remove("nothing")
	if got := c.String(); got != "a b c" {
		t.Errorf("Remove of missing class changed set: %q", got)
	}

	c.Remove("b")
	if got := c.String(); got != "a c" {
		t.Errorf("after Remove: %q, want %q", got, "a c")
	}
	if !c.Has("a") || c.Has("b") {
		t.Errorf("Has: a=%v b=%v, want true false", c.Has("a"), c.Has("b"))
	}

	c.Clear()
	if c.String() != "" || c.Selector() != "" || c.Len() != 0 {
		t.Errorf("after Clear: String=%q Selector=%q Len=%d", c.String(), c.Selector(), c.Len())
	}

	c.Add("d")
	if got := c.String(); got != "d" {
		t.Errorf("Add after Clear = %q, want %q", got, "d")
	}
}

func TestClassSetFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  a \n b\tc a ", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NewClassSet(tt.input).String(); got != tt.expected {
			t.Errorf("NewClassSet(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestClassSetOf(t *testing.T) {
	got := ClassSetOf("x", "", "y", "x").Names()
	if want := []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestClassSetZeroValue(t *testing.T) {
	var c ClassSet
	if c.Has("a") {
		t.Error("zero ClassSet should be empty")
	}
	c.Remove("a")
	c.Add("a")
	if got := c.String(); got != "a" {
		t.Errorf("String() = %q, want %q", got, "a")
	}
}

func TestClassSetClone(t *testing.T) {
	c := NewClassSet("a b")
	clone := c.Clone()
	clone.Add("c")
	if c.String() != "a b" {
		t.Errorf("original changed: %q", c.String())
	}
	if clone.String() != "a b c" {
		t.Errorf("clone = %q, want %q", clone.String(), "a b c")
	}
}
