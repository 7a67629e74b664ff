// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package patch turns partial admin payloads into store updates.

Every admin write goes through a [Policy]: the payload (already canonicalized
to snake_case) is filtered to the entity's fields, nulls and empty values are
resolved, sticky fields are carried over and updated_at is stamped. The
result is either a $set-style patch against an existing document or, when
nothing is stored yet, a complete new document.

Publish transitions for draft/published entities live in publish.go.
*/
package patch

import (
	"reflect"
	"strings"
	"time"

	"github.com/taibuivan/legaldesign/pkg/uuid"
)

// Base field names shared by every entity.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Policy describes how a payload is merged onto one kind of document.
type Policy struct {
	// Fields is the allow-list of writable fields. Anything else is ignored.
	Fields []string

	// Lists are list-typed fields. A null value for them becomes [].
	Lists []string

	// Sticky fields absent from the payload are copied from the existing
	// document (or set to [] when there is none).
	Sticky []string

	// ClearOnEmpty fields apply an explicit empty value even when
	// EmptyIsOmission is set.
	ClearOnEmpty []string

	// EmptyIsOmission treats "", [] and {} as "not supplied".
	EmptyIsOmission bool
}

/*
Merge applies payload to existing under the policy.

Description: With an existing document the result is the set of fields to
write, always including updated_at. Without one the result is a complete
document: defaults overlaid with the allowed payload fields, a fresh id and
both timestamps.

Parameters:
  - existing: map[string]any (nil when nothing is stored yet)
  - payload: map[string]any (snake_case keys)
  - defaults: map[string]any (only used when existing is nil)
  - now: time.Time

Returns:
  - map[string]any: the patch or the new document
*/
func (p Policy) Merge(existing, payload, defaults map[string]any, now time.Time) map[string]any {
	set := make(map[string]any)

	for _, field := range p.Fields {
		value, present := payload[field]
		if !present {
			continue
		}

		if value == nil {
			if contains(p.Lists, field) {
				set[field] = []any{}
			}
			continue
		}

		if p.EmptyIsOmission && isEmpty(value) && !contains(p.ClearOnEmpty, field) {
			continue
		}

		set[field] = value
	}

	for _, field := range p.Sticky {
		if _, mentioned := payload[field]; mentioned {
			continue
		}
		if previous, ok := existing[field]; ok && previous != nil {
			set[field] = previous
			continue
		}
		set[field] = []any{}
	}

	set[FieldUpdatedAt] = now

	if existing != nil {
		return set
	}

	document := make(map[string]any, len(defaults)+len(set)+2)
	for key, value := range defaults {
		document[key] = value
	}
	for key, value := range set {
		document[key] = value
	}
	document[FieldID] = uuid.New()
	document[FieldCreatedAt] = now

	return document
}

// Create builds a new document from payload. A non-empty string id supplied
// by the caller is kept, so seeded and hand-picked ids survive.
func (p Policy) Create(payload, defaults map[string]any, now time.Time) map[string]any {
	document := p.Merge(nil, payload, defaults, now)
	if id, ok := payload[FieldID].(string); ok && strings.TrimSpace(id) != "" {
		document[FieldID] = strings.TrimSpace(id)
	}
	return document
}

// Without returns a copy of the policy that no longer writes the named
// fields. Entities use it for fields that are fixed after creation.
func (p Policy) Without(fields ...string) Policy {
	kept := make([]string, 0, len(p.Fields))
	for _, field := range p.Fields {
		if !contains(fields, field) {
			kept = append(kept, field)
		}
	}
	p.Fields = kept
	return p
}

// Apply returns existing overlaid with set, without touching either map.
func Apply(existing, set map[string]any) map[string]any {
	merged := make(map[string]any, len(existing)+len(set))
	for key, value := range existing {
		merged[key] = value
	}
	for key, value := range set {
		merged[key] = value
	}
	return merged
}

// FieldsOf lists the JSON field names of a struct, excluding the base fields
// that no payload may write.
func FieldsOf(entity any) []string {
	entityType := reflect.TypeOf(entity)
	for entityType.Kind() == reflect.Pointer {
		entityType = entityType.Elem()
	}

	var fields []string
	for index := 0; index < entityType.NumField(); index++ {
		structField := entityType.Field(index)
		if !structField.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(structField.Tag.Get("json"), ",")
		switch name {
		case "", "-", FieldID, FieldCreatedAt, FieldUpdatedAt:
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

// ListsOf lists the JSON field names of the slice-typed fields of a struct.
func ListsOf(entity any) []string {
	entityType := reflect.TypeOf(entity)
	for entityType.Kind() == reflect.Pointer {
		entityType = entityType.Elem()
	}

	var lists []string
	for index := 0; index < entityType.NumField(); index++ {
		structField := entityType.Field(index)
		if !structField.IsExported() || structField.Type.Kind() != reflect.Slice {
			continue
		}
		if name, _, _ := strings.Cut(structField.Tag.Get("json"), ","); name != "" && name != "-" {
			lists = append(lists, name)
		}
	}
	return lists
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case string:
		return typed == ""
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	}
	return false
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
