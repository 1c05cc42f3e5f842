// Package toml reads the subset of TOML used by configuration files:
// comments, [table] and [dotted.table] headers, bare or quoted keys, and
// string, integer, float, boolean and single-line array values.
//
// Inline tables, arrays of tables, multi-line strings and date-times are
// rejected with an error instead of being misread.
package toml

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseError locates a syntax error
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("toml: line %d: %s", e.Line, e.Msg)
}

// Parse reads data into nested map[string]any tables.
// Values are string, int, float64, bool or []any.
func Parse(data []byte) (map[string]any, error) {
	root := make(map[string]any)
	table := root

	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(stripComment(sc.Text()))
		if text == "" {
			continue
		}

		fail := func(format string, args ...any) error {
			return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
		}

		if strings.HasPrefix(text, "[") {
			if strings.HasPrefix(text, "[[") {
				return nil, fail("arrays of tables are not supported")
			}
			if !strings.HasSuffix(text, "]") {
				return nil, fail("unterminated table header %q", text)
			}
			path, err := splitKey(strings.TrimSpace(text[1 : len(text)-1]))
			if err != nil {
				return nil, fail("%v", err)
			}
			t, err := descend(root, path)
			if err != nil {
				return nil, fail("%v", err)
			}
			table = t
			continue
		}

		eq := indexOutsideQuotes(text, '=')
		if eq < 0 {
			return nil, fail("expected key = value, got %q", text)
		}
		path, err := splitKey(strings.TrimSpace(text[:eq]))
		if err != nil {
			return nil, fail("%v", err)
		}
		val, err := parseValue(strings.TrimSpace(text[eq+1:]))
		if err != nil {
			return nil, fail("%v", err)
		}

		parent, err := descend(table, path[:len(path)-1])
		if err != nil {
			return nil, fail("%v", err)
		}
		key := path[len(path)-1]
		if _, dup := parent[key]; dup {
			return nil, fail("duplicate key %q", key)
		}
		parent[key] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return root, nil
}

// descend walks or creates the tables named by path under t
func descend(t map[string]any, path []string) (map[string]any, error) {
	for _, k := range path {
		next, ok := t[k]
		if !ok {
			m := make(map[string]any)
			t[k] = m
			t = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q is a value, not a table", k)
		}
		t = m
	}
	return t, nil
}

// splitKey splits a dotted key, honouring quoted parts
func splitKey(s string) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("empty key")
	}
	var parts []string
	for s != "" {
		var part string
		if s[0] == '"' {
			end := closingQuote(s)
			if end < 0 {
				return nil, fmt.Errorf("unterminated quoted key")
			}
			unq, err := strconv.Unquote(s[:end+1])
			if err != nil {
				return nil, fmt.Errorf("bad quoted key %s", s[:end+1])
			}
			part, s = unq, strings.TrimSpace(s[end+1:])
		} else {
			i := strings.IndexByte(s, '.')
			if i < 0 {
				i = len(s)
			}
			part = strings.TrimSpace(s[:i])
			if !isBareKey(part) {
				return nil, fmt.Errorf("invalid bare key %q", part)
			}
			s = s[i:]
		}
		parts = append(parts, part)

		if s == "" {
			break
		}
		if s[0] != '.' {
			return nil, fmt.Errorf("unexpected %q in key", s)
		}
		s = strings.TrimSpace(s[1:])
		if s == "" {
			return nil, fmt.Errorf("key ends with '.'")
		}
	}
	return parts, nil
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

func parseValue(s string) (any, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing value")
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case strings.HasPrefix(s, `"""`) || strings.HasPrefix(s, "'''"):
		return nil, fmt.Errorf("multi-line strings are not supported")
	case s[0] == '"':
		end := closingQuote(s)
		if end != len(s)-1 {
			return nil, fmt.Errorf("malformed string %s", s)
		}
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("malformed string %s", s)
		}
		return v, nil
	case s[0] == '\'':
		if len(s) < 2 || s[len(s)-1] != '\'' || strings.Contains(s[1:len(s)-1], "'") {
			return nil, fmt.Errorf("malformed literal string %s", s)
		}
		return s[1 : len(s)-1], nil
	case s[0] == '[':
		return parseArray(s)
	case s[0] == '{':
		return nil, fmt.Errorf("inline tables are not supported")
	}
	return parseNumber(s)
}

func parseArray(s string) ([]any, error) {
	if s[len(s)-1] != ']' {
		return nil, fmt.Errorf("unterminated array")
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	arr := make([]any, 0)
	for body != "" {
		comma := indexOutsideQuotes(body, ',')
		if comma < 0 {
			comma = len(body)
		}
		elem := strings.TrimSpace(body[:comma])
		if elem == "" {
			return nil, fmt.Errorf("empty array element")
		}
		if elem[0] == '[' {
			return nil, fmt.Errorf("nested arrays are not supported")
		}
		v, err := parseValue(elem)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		if comma == len(body) {
			break
		}
		body = strings.TrimSpace(body[comma+1:]) // trailing comma allowed
	}
	return arr, nil
}

func parseNumber(s string) (any, error) {
	clean := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return int(i), nil
	}
	if strings.ContainsAny(clean, ".eE") || clean == "inf" || clean == "+inf" || clean == "-inf" || clean == "nan" {
		if f, err := strconv.ParseFloat(clean, 64); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("invalid value %q", s)
}

// closingQuote returns the index of the quote ending the basic string that
// starts at s[0], or -1
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// indexOutsideQuotes finds c outside of basic and literal strings
func indexOutsideQuotes(s string, c byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote == '"' && ch == '\\':
			i++
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == c:
			return i
		}
	}
	return -1
}

// stripComment drops a '#' comment that is not inside a string
func stripComment(line string) string {
	if i := indexOutsideQuotes(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
