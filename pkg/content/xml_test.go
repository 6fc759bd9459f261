package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 10 10">
  <!-- icon -->
  <circle cx="5" cy="5" r="4" class="dot"/>
  <use xlink:href="#dot"/>
  <text>A &amp; B</text>
  <script><![CDATA[let a = 1 < 2;]]></script>
</svg>`

func TestFromXML(t *testing.T) {
	nodes, err := FromXML(sampleSVG)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	svg := nodes[0].Element
	require.NotNil(t, svg)
	assert.Equal(t, "svg", svg.Tag())
	assert.Equal(t, "0 0 10 10", svg.Attr("viewBox"))
	assert.Equal(t, "http://www.w3.org/1999/xlink", svg.Attr("xmlns:xlink"))

	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 10 10">`+
			`<!-- icon -->`+
			`<circle class="dot" cx="5" cy="5" r="4"></circle>`+
			`<use xlink:href="#dot"></use>`+
			`<text>A &amp; B</text>`+
			`<script><![CDATA[let a = 1 < 2;]]></script>`+
			`</svg>`,
		svg.HTML())
}

func TestXMLRoot(t *testing.T) {
	root, err := XMLRoot(`<?xml version="1.0"?><g id="layer"><rect width="1"/></g>`)
	require.NoError(t, err)
	assert.Equal(t, `<g id="layer"><rect width="1"></rect></g>`, root.HTML())

	_, err = XMLRoot(`<?xml version="1.0"?><!-- only a comment -->`)
	assert.ErrorIs(t, err, ErrNoRootElement)
}

func TestFromXMLInvalid(t *testing.T) {
	_, err := FromXML(`<svg><g></svg>`)
	assert.Error(t, err)
}
