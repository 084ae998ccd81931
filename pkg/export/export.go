// Package export encodes a parsed dialogue into interchange formats.
// The document model itself stays serialization-neutral; this package
// is the collaborator that performs the actual encoding.
package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/lex/pkg/dialogue"
)

// Format identifies a supported output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is wrapped into errors returned for formats this
// package does not encode.
var ErrUnsupportedFormat = fmt.Errorf("unsupported format")

// Formats lists the supported format names.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML}
}

// Encode serializes the document in the requested format.
func Encode(doc *dialogue.Dialogue, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reverses Encode, for collaborators that round-trip documents.
func Decode(data []byte, format Format) (*dialogue.Dialogue, error) {
	doc := dialogue.New()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}
