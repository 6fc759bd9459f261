package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevensolutions/whits/pkg/markup"
)

func TestMarkdown(t *testing.T) {
	raw, err := Markdown(`
		# Title

		Hello *world* & friends.

		- one
		- two
	`)
	require.NoError(t, err)

	out := raw.Text()
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<p>Hello <em>world</em> &amp; friends.</p>")
	assert.Contains(t, out, "<li>one</li>")
	assert.NotContains(t, out, "<pre>")
}

func TestMarkdownTables(t *testing.T) {
	raw, err := Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, raw.Text(), "<table>")
	assert.Contains(t, raw.Text(), "<td>1</td>")
}

func TestMarkdownRawHTML(t *testing.T) {
	src := "before\n\n<div class=\"x\">inline</div>\n\nafter\n"

	safe, err := Markdown(src)
	require.NoError(t, err)
	assert.NotContains(t, safe.Text(), `<div class="x">`)

	unsafe, err := Markdown(src, WithUnsafeHTML())
	require.NoError(t, err)
	assert.Contains(t, unsafe.Text(), `<div class="x">inline</div>`)
}

func TestMarkdownSanitize(t *testing.T) {
	raw, err := Markdown("<script>alert(1)</script>\n\n**ok**\n", WithUnsafeHTML(), WithSanitize())
	require.NoError(t, err)
	assert.NotContains(t, raw.Text(), "<script>")
	assert.Contains(t, raw.Text(), "<strong>ok</strong>")
}

func TestMarkdownHardWraps(t *testing.T) {
	raw, err := Markdown("a\nb\n", WithHardWraps())
	require.NoError(t, err)
	assert.True(t, strings.Contains(raw.Text(), "<br>") || strings.Contains(raw.Text(), "<br />"))
}

func TestMarkdownAsChild(t *testing.T) {
	raw, err := Markdown("*hi*")
	require.NoError(t, err)
	article := markup.Must(markup.New("article", nil, raw))
	assert.Equal(t, "<article><p><em>hi</em></p>\n</article>", article.HTML())
}
