package content

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	raw := Sanitize(`<p onclick="steal()">Hi <a href="javascript:alert(1)">x</a><script>alert(1)</script></p>`)
	out := raw.Text()
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "<p>Hi ")
}

func TestSanitizeKeepsSafeMarkup(t *testing.T) {
	assert.Equal(t, "<p><strong>ok</strong></p>", Sanitize("<p><strong>ok</strong></p>").Text())
}

func TestSanitizeWith(t *testing.T) {
	out := SanitizeWith(bluemonday.StrictPolicy(), "<b>bold</b> text").Text()
	assert.Equal(t, "bold text", out)
}
