// Package template renders markup trees produced on demand.
//
// A Template holds static content or a producer function that builds content
// from parameters. Rendering resolves the content, normalises it with
// markup.Normalize and concatenates each child's markup in order:
//
//	page := template.NewFunc(func(ctx context.Context, p Page) (any, error) {
//		return tags.Main(tags.H1(p.Title)), nil
//	})
//	out, err := page.RenderString(ctx, Page{Title: "Hello"})
//
// A RootTemplate additionally wraps the rendered content in a root element
// (html by default) and prefixes a doctype line.
//
// Producers block until their content is ready and may render nested
// templates before returning. Rendering never mutates the tree, so a
// template may be rendered from several goroutines at once as long as
// nothing mutates the shared content in the meantime.
package template
