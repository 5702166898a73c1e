package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/feonix-uav/configuranator/internal/logging"
)

// Codec reads and writes one textual document format.
type Codec interface {
	// Format returns the codec format identifier ("toml", "yaml", "json").
	Format() string
	// Extension returns the file suffix for the format, including the dot.
	Extension() string
	// Encode writes v to w.
	Encode(w io.Writer, v any) error
	// Decode reads one document from r into v, which must be a pointer to a struct.
	Decode(r io.Reader, v any) error
}

// ErrUnknownFormat is returned by ByFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown document format")

// MissingKeyError reports a struct field that has no key in the document.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key %q", e.Key)
}

// Codecs returns every supported codec, canonical format first.
func Codecs() []Codec {
	return []Codec{NewTOMLCodec(), NewYAMLCodec(), NewJSONCodec()}
}

// ByFormat returns the codec for a format name such as "toml" or "yml".
func ByFormat(name string) (Codec, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if name == "yml" {
		name = "yaml"
	}
	for _, c := range Codecs() {
		if c.Format() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (must be toml, yaml, or json)", ErrUnknownFormat, name)
}

// ForPath picks a codec from the file extension. Files without a
// recognised extension are treated as TOML.
func ForPath(path string) Codec {
	if ext := filepath.Ext(path); ext != "" {
		if c, err := ByFormat(ext); err == nil {
			return c
		}
	}
	return NewTOMLCodec()
}

// checkDocument verifies a decoded generic tree against the target type
// t. A missing key is an error; keys t does not declare are logged and
// left for the typed decode to ignore.
func checkDocument(format string, t reflect.Type, tree map[string]any, tag string) error {
	var unknown []string
	if err := checkKeys(t, tree, tag, nil, &unknown); err != nil {
		return err
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		logging.Warn("ignoring unknown keys", "format", format, "keys", strings.Join(unknown, ", "))
	}
	return nil
}

// checkKeys walks node alongside t. It returns the first struct field
// whose key is absent and appends the dotted path of every undeclared
// key to unknown. Type mismatches are left to the typed decode.
func checkKeys(t reflect.Type, node any, tag string, path []string, unknown *[]string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		nv := reflect.ValueOf(node)
		if nv.Kind() != reflect.Map || nv.Type().Key().Kind() != reflect.String {
			return nil
		}
		known := make(map[string]bool, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			key := fieldKey(f, tag)
			if key == "-" {
				continue
			}
			known[key] = true
			childPath := appendPath(path, key)
			child := nv.MapIndex(reflect.ValueOf(key))
			if !child.IsValid() {
				return &MissingKeyError{Key: strings.Join(childPath, ".")}
			}
			if err := checkKeys(f.Type, child.Interface(), tag, childPath, unknown); err != nil {
				return err
			}
		}
		for _, k := range nv.MapKeys() {
			if !known[k.String()] {
				*unknown = append(*unknown, strings.Join(appendPath(path, k.String()), "."))
			}
		}
	case reflect.Slice:
		nv := reflect.ValueOf(node)
		if nv.Kind() != reflect.Slice {
			return nil
		}
		for i := 0; i < nv.Len(); i++ {
			if err := checkKeys(t.Elem(), nv.Index(i).Interface(), tag, appendPath(path, strconv.Itoa(i)), unknown); err != nil {
				return err
			}
		}
	}
	return nil
}

func appendPath(path []string, key string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, key)
}

// fieldKey returns the document key for a struct field under the given tag.
func fieldKey(f reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
	if name == "" {
		return f.Name
	}
	return name
}

// requireStructPtr rejects targets checkKeys cannot walk.
func requireStructPtr(v any) (reflect.Type, error) {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("decode target must be a pointer to a struct, got %T", v)
	}
	return t.Elem(), nil
}
