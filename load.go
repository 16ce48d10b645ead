package oasdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.yaml.in/yaml/v4"
)

// Format identifies the serialization format of a document on disk.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// ownerReadWrite is the permission mode for written documents, which may
// describe non-public API surfaces.
const ownerReadWrite os.FileMode = 0o600

// jsonIndent matches the original two-space output of the 3.1 toolchain.
const jsonIndent = "  "

// DetectFormat detects the document format from the path extension, falling
// back to sniffing the content when the extension is not conclusive. JSON
// documents start with '{' or '['; anything else is assumed YAML. With
// neither an extension nor content to go on it returns FormatUnknown.
func DetectFormat(path string, data []byte) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads the document at path and decodes it into a D. The format is
// chosen by DetectFormat. Failures map onto the package sentinels:
// ErrSourceNotFound for read failures, ErrMalformedSource for text that does
// not parse, ErrNotDocument when the parsed root is not an object.
func Load(path string) (D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}

	var root any
	switch DetectFormat(path, data) {
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSource, path, err)
		}
		if node.Kind == 0 {
			return nil, fmt.Errorf("%w: %s: empty document", ErrMalformedSource, path)
		}
		if root, err = fromYAMLNode(&node); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSource, path, err)
		}
	default:
		if err := json.Unmarshal(data, &root, json.WithUnmarshalers(Unmarshalers())); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSource, path, err)
		}
	}

	doc, ok := root.(D)
	if !ok {
		return nil, fmt.Errorf("%w: %s: got %T", ErrNotDocument, path, root)
	}
	return doc, nil
}

// Write serializes doc to path with stable indentation. The output format is
// chosen from the destination extension, defaulting to JSON. Write failures
// wrap ErrDestinationWrite; the write is best effort, not an atomic replace.
func Write(doc D, path string) error {
	var data []byte
	var err error
	switch DetectFormat(path, nil) {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.Marshal(doc,
			json.WithMarshalers(Marshalers()),
			jsontext.WithIndent(jsonIndent))
	}
	if err != nil {
		return fmt.Errorf("marshal document for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, ownerReadWrite); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDestinationWrite, path, err)
	}
	return nil
}
