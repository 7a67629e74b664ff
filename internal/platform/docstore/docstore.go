// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package docstore is the document store adapter used by every domain repository.

Documents are schemaless JSON objects grouped in named collections. The store
offers the handful of primitives the domain needs: find one, find many with a
filter, sort and limit, insert, partial update of the first match, delete and
count.

Drivers:

  - Postgres: one JSONB row per document in the content.document table (pgx).
  - Memory: process-local maps, used by tests and by DOCUMENT_STORE=memory.

Every document returned by a driver carries the store-internal key under
[KeyField]. Internal keys start with an underscore and are stripped by the
response encoder, so they never reach clients.
*/
package docstore

import (
	"context"
	"errors"
	"time"
)

// KeyField is the internal, driver-assigned key of a stored document.
const KeyField = "_key"

// ErrNotFound is returned when no document matches a filter.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a single JSON object.
type Document = map[string]any

// # Filtering

// Filter selects documents. All populated clauses must hold (logical AND).
type Filter struct {
	// Equal matches top-level fields by exact JSON value.
	Equal map[string]any

	// AnyOf matches a top-level string field against a set of values.
	AnyOf map[string][]string

	// TrueOrMissing matches boolean fields that are true or absent.
	TrueOrMissing []string

	// Missing matches fields that are absent or null.
	Missing []string

	// Search matches a case-insensitive substring in any of its fields.
	Search *Search

	// Key matches the internal document key.
	Key string
}

// Search is a case-insensitive substring match over several fields. String
// fields match directly; array fields match when any string element does.
type Search struct {
	Term   string
	Fields []string
}

// All matches every document of a collection.
func All() Filter {
	return Filter{}
}

// Where returns a filter matching a single field value.
func Where(field string, value any) Filter {
	return Filter{Equal: map[string]any{field: value}}
}

// ByKey returns a filter matching a store-internal key.
func ByKey(key string) Filter {
	return Filter{Key: key}
}

// And adds an equality clause.
func (f Filter) And(field string, value any) Filter {
	equal := make(map[string]any, len(f.Equal)+1)
	for existingField, existingValue := range f.Equal {
		equal[existingField] = existingValue
	}
	equal[field] = value
	f.Equal = equal
	return f
}

// In adds a set-membership clause on a string field.
func (f Filter) In(field string, values ...string) Filter {
	anyOf := make(map[string][]string, len(f.AnyOf)+1)
	for existingField, existingValues := range f.AnyOf {
		anyOf[existingField] = existingValues
	}
	anyOf[field] = values
	f.AnyOf = anyOf
	return f
}

// AndTrueOrMissing adds a clause accepting true or absent boolean fields.
func (f Filter) AndTrueOrMissing(field string) Filter {
	f.TrueOrMissing = append(append([]string{}, f.TrueOrMissing...), field)
	return f
}

// AndMissing adds a clause accepting absent or null fields.
func (f Filter) AndMissing(field string) Filter {
	f.Missing = append(append([]string{}, f.Missing...), field)
	return f
}

// Matching adds a case-insensitive substring clause.
func (f Filter) Matching(term string, fields ...string) Filter {
	f.Search = &Search{Term: term, Fields: fields}
	return f
}

// # Querying

// Sort orders results by one field.
type Sort struct {
	Field string
	Desc  bool

	// Time compares values as RFC 3339 timestamps rather than raw JSON.
	Time bool
}

// Newest orders by a timestamp field, most recent first, missing values last.
func Newest(field string) Sort {
	return Sort{Field: field, Desc: true, Time: true}
}

// Query combines a filter with ordering and a result cap.
type Query struct {
	Filter Filter
	Sort   []Sort

	// Limit caps the number of results. Zero means no cap.
	Limit int
}

// # Store Contract

// Store is implemented by every document store driver.
//
// Without a sort, results come back in insertion order. Update merges set into
// the first matching document (top-level keys are replaced) and returns
// [ErrNotFound] when nothing matches. Delete removes the first match.
type Store interface {
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	Find(ctx context.Context, collection string, query Query) ([]Document, error)
	Insert(ctx context.Context, collection string, document Document) error
	Update(ctx context.Context, collection string, filter Filter, set Document) error
	Delete(ctx context.Context, collection string, filter Filter) error
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
	Count(ctx context.Context, collection string, filter Filter) (int, error)
	Ping(ctx context.Context) error
}

// Now returns the current UTC time at the microsecond precision both drivers keep.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
