package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

var (
	_ templ.Component = (*Element)(nil)
	_ templ.Component = (*Compound)(nil)
)

// Render writes the element's markup. It makes an Element a templ.Component,
// so trees built here can be embedded in templ templates and handlers.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.WriteHTML(w)
}

// FromComponent renders a templ component into raw content so it can be
// used as a child.
func FromComponent(ctx context.Context, c templ.Component) (*Raw, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return nil, err
	}
	return NewRaw(b.String()), nil
}
