// Package jsoncase decodes JSON whose object keys arrive in mixed casing
// conventions. Browser clients of this API historically sent PascalCase,
// camelCase, or snake_case interchangeably; every key is rewritten to
// snake_case once, so typed request structs only ever see canonical names.
package jsoncase

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Unmarshal normalizes all object keys in data to snake_case and decodes the
// result into dst.
func Unmarshal(data []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep integers exact through the re-encode
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	normalized, err := json.Marshal(normalize(raw))
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, dst)
}

func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[Snake(k)] = normalize(val)
		}
		return out
	case []interface{}:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	default:
		return v
	}
}

// Snake converts PascalCase or camelCase to snake_case. Keys already in
// snake_case pass through unchanged, and acronym runs collapse ("UserID"
// becomes "user_id").
func Snake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
