package markup

import "testing"

func TestStyleMapParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"declarations", "color: red; font-size: 12px;", "color: red; font-size: 12px;"},
		{"skips empty entries", " ; color:; : red; background :  #000 ;;", "background: #000;"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStyleMap(tt.input).String(); got != tt.expected {
				t.Errorf("NewStyleMap(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	s := NewStyleMap("color: red; font-size: 12px;")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if v, ok := s.Get("font-size"); !ok || v != "12px" {
		t.Errorf("Get(font-size) = %q, %v", v, ok)
	}
}

func TestStyleMapSet(t *testing.T) {
	s := &StyleMap{}
	s.Set("color", "red")
	if got := s.String(); got != "color: red;" {
		t.Errorf("String() = %q", got)
	}
	if !s.Has("color") || s.Has("font-size") {
		t.Error("Has reports wrong membership")
	}

	s.Set("font-size", "12px")
	s.Set("color", "blue")
	if got, want := s.String(), "color: blue; font-size: 12px;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s.Set("margin", "   ")
	s.Set(" ", "1px")
	if s.Len() != 2 {
		t.Errorf("blank name or value should be ignored, Len() = %d", s.Len())
	}

	if !s.Remove("color") {
		t.Error("Remove(color) = false, want true")
	}
	if s.Remove("color") {
		t.Error("second Remove(color) = true, want false")
	}
	if got := s.String(); got != "font-size: 12px;" {
		t.Errorf("after Remove: %q", got)
	}
	if _, ok := s.Get("color"); ok {
		t.Error("Get(color) found a removed entry")
	}

	s.Clear()
	if s.String() != "" || s.Len() != 0 {
		t.Errorf("after Clear: %q, Len %d", s.String(), s.Len())
	}
}

func TestStyleMapOf(t *testing.T) {
	s := StyleMapOf(map[string]string{"font-size": "20px", "color": "yellow"})
	if got, want := s.String(), "color: yellow; font-size: 20px;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStyleMapClone(t *testing.T) {
	s := NewStyleMap("color: red;")
	c := s.Clone()
	c.Set("color", "blue")
	if s.String() != "color: red;" {
		t.Errorf("original changed: %q", s.String())
	}
	if c.String() != "color: blue;" {
		t.Errorf("clone = %q", c.String())
	}
}
