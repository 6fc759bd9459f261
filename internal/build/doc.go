// Package build renders a directory of documents and publishes the pages.
//
// Every document below [source] dir is rendered on its own. A document
// that fails is reported in the Result and the build moves on; Build
// returns a W601 error listing every failure at the end.
//
// # Usage
//
//	sink := publish.FromConfig(cfg)
//	builder := build.New(cfg, sink, build.Options{Clean: true, Manifest: true})
//	result, err := builder.Build(ctx)
//	for _, page := range result.Failed() {
//	    fmt.Println(page.Source, page.Err)
//	}
//
// # Output Structure
//
//	dist/
//	├── index.html          # from pages/index.html.yaml
//	├── blog/post.html      # from pages/blog/post.json
//	└── manifest.json       # output name -> SHA-256
package build
