package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromRegistry(t *testing.T) {
	err := New(CodeDocumentContract)

	assert.Equal(t, "W203", err.Code)
	assert.Equal(t, CategoryDocument, err.Category)
	assert.Equal(t, "Unsupported document content", err.Message)
	assert.NotEmpty(t, err.Suggestion)
}

func TestNewUnknownCode(t *testing.T) {
	err := New("W999")

	assert.Equal(t, "W999", err.Code)
	assert.Equal(t, "Unknown error", err.Message)
}

func TestErrorString(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name string
		err  *WhitsError
		want string
	}{
		{"code only", New(CodeRenderFailed), "W301: Render failed"},
		{"no code", Newf(CategoryCLI, "bad flag %q", "x"), `bad flag "x"`},
		{"file", New(CodeDocumentRead).WithFile("a.yaml"), "a.yaml: W201: Cannot read document"},
		{
			"file and path",
			New(CodeDocumentContract).WithFile("a.yaml").WithPath("content[1]"),
			"a.yaml: content[1]: W203: Unsupported document content",
		},
		{"wrapped", New(CodeOutputWrite).Wrap(cause), "W401: Failed to write output: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New(CodeRenderFailed).Wrap(fmt.Errorf("template page: %w", sentinel))

	assert.ErrorIs(t, err, sentinel)

	var we *WhitsError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &we)
	assert.Equal(t, CodeRenderFailed, we.Code)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, CodeRenderFailed))

	plain := stderrors.New("plain")
	we := FromError(plain, CodeOutputWrite)
	assert.Equal(t, CodeOutputWrite, we.Code)
	assert.Same(t, plain, we.Wrapped)

	existing := New(CodeDocumentDecode)
	assert.Same(t, existing, FromError(fmt.Errorf("ctx: %w", existing), CodeRenderFailed))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(stderrors.New("x")))
	assert.Equal(t, CodeConfigLoad, Code(fmt.Errorf("wrap: %w", New(CodeConfigLoad))))
}

func TestRegistryComplete(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, ok := GetTemplate(code)
		require.True(t, ok, code)
		assert.NotEmpty(t, tmpl.Message, code)
		assert.NotEmpty(t, tmpl.Category, code)
		assert.Regexp(t, `^W[1-6]\d\d$`, code)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeDocumentContract).
		WithFile("pages/index.html.yaml").
		WithPath("content[2]").
		Wrap(stderrors.New("unexpected map key \"foo\""))

	out := err.Format()

	assert.Contains(t, out, "ERROR W203: Unsupported document content")
	assert.Contains(t, out, "pages/index.html.yaml: content[2]")
	assert.Contains(t, out, `Cause: unexpected map key "foo"`)
	assert.Contains(t, out, "Hint: Each entry must be")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeOutputWrite).WithFile("out/index.html").Wrap(stderrors.New("disk full"))

	assert.Equal(t, "out/index.html: W401: Failed to write output: disk full", err.FormatCompact())
}

func TestFormatJSON(t *testing.T) {
	err := New(CodeDocumentDecode).WithFile("a.json").Wrap(stderrors.New("eof"))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(err.FormatJSON()), &decoded))

	assert.Equal(t, "W202", decoded["code"])
	assert.Equal(t, "document", decoded["category"])
	assert.Equal(t, "a.json", decoded["file"])
	assert.Equal(t, "eof", decoded["cause"])
	_, hasPath := decoded["path"]
	assert.False(t, hasPath)
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"))
	assert.Equal(t, "\nERROR: plain failure\n\n", buf.String())

	buf.Reset()
	Fprint(&buf, fmt.Errorf("wrapped: %w", New(CodeBuildFailed)))
	assert.Contains(t, buf.String(), "ERROR W601: Build finished with errors")
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"short"}, wrapText("short", 10))

	lines := wrapText(strings.Repeat("word ", 30), 20)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
}
