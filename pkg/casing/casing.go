// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package casing converts JSON document keys between snake_case and camelCase.

The API stores every field in snake_case. Older clients send and read snake_case,
the admin panel sends and reads camelCase. Two passes bridge them:

  - Normalize runs on responses and adds a camelCase alias next to every
    snake_case key, so either spelling can be read back.
  - Canonicalize runs on requests and resolves every key to snake_case.

Keys starting with an underscore are store-internal and are dropped by both.
*/
package casing

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InternalPrefix marks keys that never leave the storage layer.
const InternalPrefix = "_"

// ToCamel converts a snake_case key to camelCase.
//
// Keys without an underscore are returned unchanged. The first segment is
// lower-cased and every following segment is title-cased ("hero_title_highlight"
// becomes "heroTitleHighlight"). Empty segments from repeated underscores are skipped.
func ToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	segments := strings.Split(key, "_")

	var builder strings.Builder
	builder.Grow(len(key))
	builder.WriteString(strings.ToLower(segments[0]))

	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		builder.WriteRune(unicode.ToUpper(first))
		builder.WriteString(strings.ToLower(segment[size:]))
	}

	return builder.String()
}

// ToSnake converts a camelCase (or PascalCase) key to snake_case.
//
// Acronym runs stay together ("logoURL" becomes "logo_url"). Keys that are
// already snake_case are returned unchanged.
func ToSnake(key string) string {
	runes := []rune(key)

	var builder strings.Builder
	builder.Grow(len(key) + 4)

	for index, current := range runes {
		if unicode.IsUpper(current) {
			if index > 0 && runes[index-1] != '_' {
				previous := runes[index-1]
				nextIsLower := index+1 < len(runes) && unicode.IsLower(runes[index+1])
				if unicode.IsLower(previous) || unicode.IsDigit(previous) || (unicode.IsUpper(previous) && nextIsLower) {
					builder.WriteByte('_')
				}
			}
			builder.WriteRune(unicode.ToLower(current))
			continue
		}
		builder.WriteRune(current)
	}

	return builder.String()
}

// IsSnake reports whether key contains no upper-case letters.
func IsSnake(key string) bool {
	for _, r := range key {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Normalize returns a copy of value in which every snake_case key also appears
// under its camelCase spelling.
//
// Mappings are rebuilt key by key in sorted order. When two source keys map to the
// same spelling the one visited last wins, which makes the result deterministic and
// lets the snake_case key override a stale camelCase twin ("fooBar" sorts before
// "foo_bar"). Normalize is idempotent and never fails; values that are not
// mappings or sequences pass through unchanged.
func Normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return normalizeMap(typed)
	case []any:
		result := make([]any, len(typed))
		for index, element := range typed {
			result[index] = Normalize(element)
		}
		return result
	case []map[string]any:
		result := make([]any, len(typed))
		for index, element := range typed {
			result[index] = normalizeMap(element)
		}
		return result
	default:
		return value
	}
}

// NormalizeDocument is [Normalize] specialised to a single mapping.
func NormalizeDocument(document map[string]any) map[string]any {
	if document == nil {
		return nil
	}
	return normalizeMap(document)
}

func normalizeMap(source map[string]any) map[string]any {
	result := make(map[string]any, len(source)*2)

	for _, key := range sortedKeys(source) {
		if strings.HasPrefix(key, InternalPrefix) {
			continue
		}

		normalized := Normalize(source[key])
		result[key] = normalized

		if alias := ToCamel(key); alias != key {
			result[alias] = normalized
		}
	}

	return result
}

// Canonicalize returns a copy of value in which every mapping key is spelled in
// snake_case.
//
// When a payload carries both spellings of one field, the snake_case key wins
// regardless of order. Internal keys are dropped.
func Canonicalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return canonicalizeMap(typed)
	case []any:
		result := make([]any, len(typed))
		for index, element := range typed {
			result[index] = Canonicalize(element)
		}
		return result
	default:
		return value
	}
}

// CanonicalizeDocument is [Canonicalize] specialised to a single mapping.
func CanonicalizeDocument(document map[string]any) map[string]any {
	if document == nil {
		return nil
	}
	return canonicalizeMap(document)
}

func canonicalizeMap(source map[string]any) map[string]any {
	result := make(map[string]any, len(source))
	explicit := make(map[string]bool, len(source))

	for _, key := range sortedKeys(source) {
		if strings.HasPrefix(key, InternalPrefix) {
			continue
		}

		canonical := ToSnake(key)
		isExplicit := IsSnake(key)

		// A camelCase spelling never overrides a field given in snake_case.
		if explicit[canonical] && !isExplicit {
			continue
		}

		result[canonical] = Canonicalize(source[key])
		if isExplicit {
			explicit[canonical] = true
		}
	}

	return result
}

func sortedKeys(source map[string]any) []string {
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
