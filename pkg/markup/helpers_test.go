package markup

import (
	"fmt"
	"testing"
)

func TestComment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"This is a comment.", "<!-- This is a comment. -->"},
		{"a > b", "<!-- a  b -->"},
	}
	for _, tt := range tests {
		if got := Comment(tt.input).Text(); got != tt.expected {
			t.Errorf("Comment(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestScript(t *testing.T) {
	s := Script(`
			const message = 'Hello, world!';
			console.log(message);
		`)
	expectHTML(t, s, "<script>\nconst message = 'Hello, world!';\nconsole.log(message);\n</script>")

	mod := Script("import x from './x.js';", Attrs{"type": "module"})
	expectHTML(t, mod, `<script type="module">import x from './x.js';</script>`)
}

func TestStyleSheet(t *testing.T) {
	s := StyleSheet(`
			body {
				background-color: #000;
			}
		`)
	expectHTML(t, s, "<style>\nbody {\n\tbackground-color: #000;\n}\n</style>")
}

func TestDedentWithoutIndent(t *testing.T) {
	for _, s := range []string{"a\n  b", ""} {
		if got := NewRaw(s).Dedent().Text(); got != s {
			t.Errorf("Dedent(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestLoop(t *testing.T) {
	ul := Must(New("ul", nil, Loop(3, func(i int) any {
		return Must(New("li", nil, fmt.Sprintf("Item %d", i)))
	})))
	expectHTML(t, ul, "<ul><li>Item 0</li><li>Item 1</li><li>Item 2</li></ul>")

	for _, n := range []int{0, -1} {
		if got := Loop(n, func(int) any { return "x" }); len(got) != 0 {
			t.Errorf("Loop(%d) = %v, want empty", n, got)
		}
	}
}

func TestEach(t *testing.T) {
	names := []string{"ann", "bo"}
	ol := Must(New("ol", nil, Each(names, func(name string, i int) any {
		return Must(New("li", nil, Textf("%d:%s", i, name)))
	})))
	expectHTML(t, ol, "<ol><li>0:ann</li><li>1:bo</li></ol>")
}

func TestIf(t *testing.T) {
	if got := If(true, "x"); got != "x" {
		t.Errorf("If(true) = %v", got)
	}
	if got := If(false, "x"); got != nil {
		t.Errorf("If(false) = %v, want nil", got)
	}
}
