package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLCodec handles the canonical TOML document format
type TOMLCodec struct{}

// NewTOMLCodec creates a new TOML codec
func NewTOMLCodec() *TOMLCodec {
	return &TOMLCodec{}
}

// Format returns the codec format identifier
func (c *TOMLCodec) Format() string {
	return "toml"
}

// Extension returns the file suffix for TOML documents
func (c *TOMLCodec) Extension() string {
	return ".toml"
}

// Encode writes v as a TOML document
func (c *TOMLCodec) Encode(w io.Writer, v any) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}

// Decode reads a TOML document into v
func (c *TOMLCodec) Decode(r io.Reader, v any) error {
	t, err := requireStructPtr(v)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var tree map[string]any
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := checkDocument(c.Format(), t, tree, "toml"); err != nil {
		return err
	}

	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	return nil
}
