package markup

import (
	"testing"

	"golang.org/x/net/html"
)

func TestEncodeEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, world!", "Hello, world!"},
		{"tags", "Hello, <b>world</b>!", "Hello, &lt;b&gt;world&lt;/b&gt;!"},
		{"ampersand", "Hello, & <b>world</b>!", "Hello, &amp; &lt;b&gt;world&lt;/b&gt;!"},
		{"double quote", `"Hello"`, "&quot;Hello&quot;"},
		{"copyright", "©", "&copy;"},
		{"registered", "®", "&reg;"},
		{"trademark", "™", "&trade;"},
		{"bmp symbol", "☺", "&#9786;"},
		{"astral symbol", "𝄞", "&#119070;"},
		{"latin accent", "café", "caf&#233;"},
		{"control characters", "a\tb\nc", "a&#9;b&#10;c"},
		{"pipe and bang kept", "a | b !", "a | b !"},
		{"single quote kept", "it's", "it's"},
		{
			"mixed sentence",
			`Hello, & <b>world</b>! "quote" ☺`,
			"Hello, &amp; &lt;b&gt;world&lt;/b&gt;! &quot;quote&quot; &#9786;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeEntities(tt.input); got != tt.expected {
				t.Errorf("EncodeEntities(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeEntitiesRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`Hello, & <b>world</b>! "quote" ☺`,
		"© ® ™ 𝄞 日本語",
		"&amp; already encoded",
		"tab\tand\nnewline",
	}

	for _, input := range inputs {
		if got := html.UnescapeString(EncodeEntities(input)); got != input {
			t.Errorf("round trip of %q gave %q", input, got)
		}
	}
}

func TestEncodeEntitiesIdempotentOnSafeText(t *testing.T) {
	for _, s := range []string{"Hello, world!", "a-b_c.d/e?f=g#h", "x | y ! z ~"} {
		once := EncodeEntities(s)
		if once != s {
			t.Errorf("EncodeEntities(%q) = %q, want unchanged", s, once)
		}
		if twice := EncodeEntities(once); twice != once {
			t.Errorf("second encode of %q gave %q", once, twice)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"runs of spaces", "a   b", "a b"},
		{"tabs", "a\t\tb", "a b"},
		{"single line keeps edges", "  a  ", " a "},
		{"blank but non-empty", " ", " "},
		{"multi-line literal", "\n    Hello,\n    world\n  ", "Hello, world"},
		{"crlf", "line1\r\nline2", "line1 line2"},
		{"no whitespace", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseWhitespace(tt.input); got != tt.expected {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Escaped   text <>", "Escaped text &lt;&gt;"},
		{"a\n\tb", "a b"},
	}
	for _, tt := range tests {
		if got := EncodeText(tt.input); got != tt.expected {
			t.Errorf("EncodeText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
