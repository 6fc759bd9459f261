package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elevensolutions/whits/internal/errors"
)

// Format identifies the encoding of a source document.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
	FormatXML     Format = "xml"
)

var extensions = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".toml":    FormatTOML,
	".msgpack": FormatMsgpack,
	".xml":     FormatXML,
}

// FormatOf returns the format for a file name based on its extension.
func FormatOf(name string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// IsDocument reports whether name has a supported document extension.
func IsDocument(name string) bool {
	_, ok := FormatOf(name)
	return ok
}

// OutputName maps a source name to the name of the rendered file by
// dropping the source extension. Names left without an extension get
// ".html".
//
//	index.html.yaml -> index.html
//	about.toml      -> about.html
//	logo.svg.xml    -> logo.svg
func OutputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if filepath.Ext(base) == "" {
		base += ".html"
	}
	return base
}

// Document is a decoded source file.
type Document struct {
	// Source is the path the document was read from.
	Source string

	Format Format

	// Doctype overrides the configured doctype when non-nil. An empty
	// string omits the doctype line.
	Doctype *string

	// Root overrides the configured root tag when non-nil. An empty string
	// renders the content as a fragment.
	Root *string

	// RootAttributes are merged over the configured root attributes.
	RootAttributes map[string]any

	// Content holds the undecoded content entries.
	Content []any

	// xml is the source of an XML document, which is imported as a whole.
	xml string
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).WithFile(path).Wrap(err)
	}
	return Decode(path, data)
}

// Find returns the documents below dir as slash-separated paths relative
// to dir, sorted.
func Find(dir string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsDocument(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.New(errors.CodeDocumentRead).WithFile(dir).Wrap(err)
	}
	sort.Strings(names)
	return names, nil
}
