// Package naming isolates the rest of the service from field-naming drift at
// the persistence boundary. The legacy backend accepted both camelCase and
// snake_case column names for the same logical fields; outbound records are
// normalized here so no other package hard-codes either convention.
package naming

import (
	"regexp"
	"strings"
	"unicode"
)

var snakePattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// IsSnakeCase reports whether key already follows snake_case.
func IsSnakeCase(key string) bool {
	return snakePattern.MatchString(key)
}

// ToSnake converts a camelCase key to snake_case. Keys already in snake_case
// pass through unchanged.
func ToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a snake_case key to camelCase. Keys without underscores
// pass through unchanged.
func ToCamel(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Normalize returns a copy of record with every key converted to the
// canonical snake_case form. When both spellings of a key are present the
// snake_case value wins.
func Normalize(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		snake := ToSnake(key)
		if _, exists := out[snake]; exists && !IsSnakeCase(key) {
			continue
		}
		out[snake] = value
	}
	return out
}

// Dual returns a copy of record carrying each field under both spellings.
// Used for writes against the legacy backend, whose schema may recognize
// either convention for a given column.
func Dual(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record)*2)
	for key, value := range record {
		snake := ToSnake(key)
		out[snake] = value
		if camel := ToCamel(snake); camel != snake {
			out[camel] = value
		}
	}
	return out
}

// FilterSnake returns the subset of record whose keys are already valid
// snake_case identifiers.
func FilterSnake(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		if IsSnakeCase(key) {
			out[key] = value
		}
	}
	return out
}
