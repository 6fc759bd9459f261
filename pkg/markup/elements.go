package markup

// DefaultTag is the tag used when a selector names no tag.
const DefaultTag = "div"

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// preformattedElements keep their text children's whitespace as written.
var preformattedElements = map[string]bool{
	"listing":   true,
	"plaintext": true,
	"pre":       true,
	"textarea":  true,
	"xmp":       true,
}

// PreservesWhitespace returns true if text inside the tag is rendered
// without whitespace collapsing.
func PreservesWhitespace(tag string) bool {
	return preformattedElements[tag]
}
