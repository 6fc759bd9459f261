package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/elevensolutions/whits/internal/errors"
)

// Top-level document keys.
const (
	keyDoctype        = "doctype"
	keyRoot           = "root"
	keyRootAttributes = "rootAttributes"
	keyContent        = "content"
)

// Decode parses data in the format implied by name.
func Decode(name string, data []byte) (*Document, error) {
	format, ok := FormatOf(name)
	if !ok {
		return nil, errors.New(errors.CodeDocumentFormat).WithFile(name)
	}

	doc := &Document{Source: name, Format: format}
	if format == FormatXML {
		doc.xml = string(data)
		return doc, nil
	}

	var raw map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.New(errors.CodeDocumentDecode).WithFile(name).Wrap(err)
	}

	if err := doc.fill(raw); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) fill(raw map[string]any) error {
	for key, value := range raw {
		switch key {
		case keyDoctype:
			switch v := value.(type) {
			case string:
				d.Doctype = &v
			case bool:
				if v {
					return d.contractError(key, fmt.Errorf("doctype must be a string or false"))
				}
				empty := ""
				d.Doctype = &empty
			default:
				return d.contractError(key, fmt.Errorf("doctype must be a string or false, got %T", value))
			}

		case keyRoot:
			s, ok := value.(string)
			if !ok {
				return d.contractError(key, fmt.Errorf("root must be a string, got %T", value))
			}
			d.Root = &s

		case keyRootAttributes:
			m, ok := asMap(value)
			if !ok {
				return d.contractError(key, fmt.Errorf("rootAttributes must be a map, got %T", value))
			}
			d.RootAttributes = m

		case keyContent:
			switch v := value.(type) {
			case []any:
				d.Content = v
			case nil:
			default:
				d.Content = []any{v}
			}

		default:
			return d.contractError(key, fmt.Errorf("unknown key %q", key))
		}
	}
	return nil
}

func (d *Document) contractError(path string, err error) *errors.WhitsError {
	return errors.New(errors.CodeDocumentContract).WithFile(d.Source).WithPath(path).Wrap(err)
}

// asMap accepts the map shapes produced by the decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}
