package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses data and stores the result in the struct pointed to by v.
// Keys with no matching field are ignored; fields with no key keep their value.
func Unmarshal(data []byte, v any) error {
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(tree, v)
}

// Decode maps a parsed tree onto v using `toml` struct tags, falling back to
// field names. Supported field kinds: struct, slice, string, bool and
// unsigned integers.
func Decode(tree map[string]any, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("toml: decode target must be a non-nil pointer, got %T", v)
	}
	return decodeInto(tree, rv.Elem(), "")
}

func decodeInto(data any, dst reflect.Value, path string) error {
	mismatch := func() error {
		return fmt.Errorf("toml: %s: cannot assign %T to %s", displayPath(path), data, dst.Type())
	}

	switch dst.Kind() {
	case reflect.Struct:
		table, ok := data.(map[string]any)
		if !ok {
			return mismatch()
		}
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			key := sf.Name
			if tag, _, _ := strings.Cut(sf.Tag.Get("toml"), ","); tag != "" {
				if tag == "-" {
					continue
				}
				key = tag
			}
			val, ok := table[key]
			if !ok {
				continue
			}
			if err := decodeInto(val, dst.Field(i), joinPath(path, key)); err != nil {
				return err
			}
		}

	case reflect.Slice:
		arr, ok := data.([]any)
		if !ok {
			return mismatch()
		}
		s := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, val := range arr {
			if err := decodeInto(val, s.Index(i), fmt.Sprintf("%s[%d]", displayPath(path), i)); err != nil {
				return err
			}
		}
		dst.Set(s)

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return mismatch()
		}
		dst.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return mismatch()
		}
		dst.SetBool(b)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int)
		if !ok || n < 0 {
			return mismatch()
		}
		if dst.OverflowUint(uint64(n)) {
			return fmt.Errorf("toml: %s: %d overflows %s", displayPath(path), n, dst.Type())
		}
		dst.SetUint(uint64(n))

	default:
		return fmt.Errorf("toml: %s: unsupported field type %s", displayPath(path), dst.Type())
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
