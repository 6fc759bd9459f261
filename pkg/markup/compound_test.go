package markup

import "testing"

func TestNewCompound(t *testing.T) {
	c := MustCompound(NewCompound([]string{"div#foo", "span.bar", "a"}, Attrs{"href": "#"}, "Link"))
	expectHTML(t, c, `<div id="foo"><span class="bar"><a href="#">Link</a></span></div>`)
	if c.String() != c.HTML() {
		t.Errorf("String() = %q, want HTML()", c.String())
	}

	elements := c.Elements()
	if len(elements) != 3 {
		t.Fatalf("len(Elements()) = %d, want 3", len(elements))
	}
	if c.Outer() != elements[0] || c.Inner() != elements[2] {
		t.Error("Outer/Inner do not match the element list")
	}
	for i := 0; i < len(elements)-1; i++ {
		if elements[i].Len() != 1 || elements[i].Child(0).Element != elements[i+1] {
			t.Errorf("element %d should have element %d as its only child", i, i+1)
		}
	}
}

func TestNewCompoundErrors(t *testing.T) {
	tests := []struct {
		name      string
		selectors []string
		children  []any
		want      error
	}{
		{"one selector", []string{"div"}, nil, ErrCompoundSelectors},
		{"no selectors", nil, nil, ErrCompoundSelectors},
		{"void inner with children", []string{"p", "img"}, []any{"child"}, ErrVoidChildren},
		{"void outer", []string{"br", "span"}, nil, ErrVoidChildren},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompound(tt.selectors, nil, tt.children...)
			expectErr(t, err, tt.want)
			if !IsConstructionError(err) {
				t.Errorf("IsConstructionError(%v) = false", err)
			}
		})
	}
}

func TestNewCompoundVoidInner(t *testing.T) {
	expectHTML(t, MustCompound(NewCompound([]string{"p", "br"}, nil)), "<p><br></p>")
}

func TestCompoundAsChild(t *testing.T) {
	c := MustCompound(NewCompound([]string{"div", "span.foo"}, nil, "Hello, world!"))
	e := Must(New("div", nil, c))
	if e.Child(0).Kind != KindCompound {
		t.Errorf("child kind = %v, want Compound", e.Child(0).Kind)
	}
	expectHTML(t, e, `<div><div><span class="foo">Hello, world!</span></div></div>`)
}

func TestCompoundInnerMutation(t *testing.T) {
	c := MustCompound(NewCompound([]string{"ul", "li"}, nil, "one"))
	mustOK(t, c.Inner().Append(" two"))
	c.Outer().Class().Add("list")
	expectHTML(t, c, `<ul class="list"><li>one two</li></ul>`)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		selectors []string
		kind      Kind
		expected  string
	}{
		{[]string{"p"}, KindElement, "<p>x</p>"},
		{[]string{"p", "em"}, KindCompound, "<p><em>x</em></p>"},
	}
	for _, tt := range tests {
		n, err := Build(tt.selectors, nil, "x")
		mustOK(t, err)
		if n.Kind != tt.kind {
			t.Errorf("Build(%v).Kind = %v, want %v", tt.selectors, n.Kind, tt.kind)
		}
		expectHTML(t, n, tt.expected)
	}

	_, err := Build(nil, nil)
	expectErr(t, err, ErrCompoundSelectors)
}
