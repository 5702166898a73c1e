package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Extension returns the file suffix for YAML documents
func (c *YAMLCodec) Extension() string {
	return ".yaml"
}

// Encode writes v as a YAML document
func (c *YAMLCodec) Encode(w io.Writer, v any) error {
	var doc yaml.Node
	if err := doc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	keepNegativeZero(&doc)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// keepNegativeZero rewrites plain "-0" scalars as "-0.0". Only a negative
// zero float encodes that way, and "-0" would decode as the integer 0.
func keepNegativeZero(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Style == 0 && n.Value == "-0" {
		n.Value = "-0.0"
		n.Tag = "!!float"
	}
	for _, child := range n.Content {
		keepNegativeZero(child)
	}
}

// Decode reads a YAML document into v
func (c *YAMLCodec) Decode(r io.Reader, v any) error {
	t, err := requireStructPtr(v)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := checkDocument(c.Format(), t, tree, "yaml"); err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}
