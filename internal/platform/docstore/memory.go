// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process [Store]. Documents are copied on the way in and on
// the way out, so callers never share maps with the store.
type Memory struct {
	mu          sync.RWMutex
	sequence    int64
	collections map[string][]*memoryRow
}

type memoryRow struct {
	key      int64
	document Document
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]*memoryRow)}
}

// FindOne implements [Store].
func (store *Memory) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	documents, err := store.Find(ctx, collection, Query{Filter: filter, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, ErrNotFound
	}
	return documents[0], nil
}

// Find implements [Store].
func (store *Memory) Find(ctx context.Context, collection string, query Query) ([]Document, error) {
	matcher, err := newMemoryMatcher(query.Filter)
	if err != nil {
		return nil, err
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	var matched []*memoryRow
	for _, row := range store.collections[collection] {
		if matcher.matches(row) {
			matched = append(matched, row)
		}
	}

	if len(query.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessBySort(matched[i].document, matched[j].document, query.Sort)
		})
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	results := make([]Document, 0, len(matched))
	for _, row := range matched {
		copied, err := Clone(row.document)
		if err != nil {
			return nil, err
		}
		copied[KeyField] = strconv.FormatInt(row.key, 10)
		results = append(results, copied)
	}

	return results, nil
}

// Insert implements [Store].
func (store *Memory) Insert(ctx context.Context, collection string, document Document) error {
	copied, err := Clone(StripInternal(shallowCopy(document)))
	if err != nil {
		return err
	}
	if copied == nil {
		copied = Document{}
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.sequence++
	store.collections[collection] = append(store.collections[collection], &memoryRow{key: store.sequence, document: copied})
	return nil
}

// Update implements [Store].
func (store *Memory) Update(ctx context.Context, collection string, filter Filter, set Document) error {
	matcher, err := newMemoryMatcher(filter)
	if err != nil {
		return err
	}

	patch, err := Clone(StripInternal(shallowCopy(set)))
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	for _, row := range store.collections[collection] {
		if !matcher.matches(row) {
			continue
		}
		for key, value := range patch {
			row.document[key] = value
		}
		return nil
	}

	return ErrNotFound
}

// Delete implements [Store].
func (store *Memory) Delete(ctx context.Context, collection string, filter Filter) error {
	matcher, err := newMemoryMatcher(filter)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	rows := store.collections[collection]
	for index, row := range rows {
		if matcher.matches(row) {
			store.collections[collection] = append(rows[:index:index], rows[index+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

// DeleteMany implements [Store].
func (store *Memory) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	matcher, err := newMemoryMatcher(filter)
	if err != nil {
		return 0, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	var kept []*memoryRow
	var deleted int64
	for _, row := range store.collections[collection] {
		if matcher.matches(row) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	store.collections[collection] = kept

	return deleted, nil
}

// Count implements [Store].
func (store *Memory) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	documents, err := store.Find(ctx, collection, Query{Filter: filter})
	if err != nil {
		return 0, err
	}
	return len(documents), nil
}

// Ping implements [Store]. The memory store is always reachable.
func (store *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// # Matching

type memoryMatcher struct {
	filter Filter
	equal  Document
}

func newMemoryMatcher(filter Filter) (*memoryMatcher, error) {
	// Filter values go through the same JSON reduction as stored documents so
	// that 1 and 1.0 or a time.Time and its string form compare equal.
	equal, err := Clone(filter.Equal)
	if err != nil {
		return nil, err
	}
	return &memoryMatcher{filter: filter, equal: equal}, nil
}

func (matcher *memoryMatcher) matches(row *memoryRow) bool {
	filter := matcher.filter
	document := row.document

	if filter.Key != "" && filter.Key != strconv.FormatInt(row.key, 10) {
		return false
	}

	for field, want := range matcher.equal {
		got, ok := document[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}

	for field, values := range filter.AnyOf {
		got, ok := document[field].(string)
		if !ok || !containsString(values, got) {
			return false
		}
	}

	for _, field := range filter.TrueOrMissing {
		if value, ok := document[field]; ok && value != true {
			return false
		}
	}

	for _, field := range filter.Missing {
		if value, ok := document[field]; ok && value != nil {
			return false
		}
	}

	if filter.Search != nil && !searchMatches(document, filter.Search) {
		return false
	}

	return true
}

func searchMatches(document Document, search *Search) bool {
	term := strings.ToLower(search.Term)
	for _, field := range search.Fields {
		switch value := document[field].(type) {
		case string:
			if strings.Contains(strings.ToLower(value), term) {
				return true
			}
		case []any:
			for _, element := range value {
				if text, ok := element.(string); ok && strings.Contains(strings.ToLower(text), term) {
					return true
				}
			}
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// # Ordering

func lessBySort(left, right Document, sorts []Sort) bool {
	for _, order := range sorts {
		comparison := compareField(left[order.Field], right[order.Field], order)
		if comparison == 0 {
			continue
		}
		return comparison < 0
	}
	return false
}

// compareField returns the position of left relative to right under order.
// Missing values always sort last, matching NULLS LAST in the Postgres driver.
func compareField(left, right any, order Sort) int {
	leftMissing, rightMissing := left == nil, right == nil
	switch {
	case leftMissing && rightMissing:
		return 0
	case leftMissing:
		return 1
	case rightMissing:
		return -1
	}

	var comparison int
	if order.Time {
		comparison = compareTimes(left, right)
	} else {
		comparison = compareValues(left, right)
	}

	if order.Desc {
		return -comparison
	}
	return comparison
}

func compareTimes(left, right any) int {
	leftTime, leftErr := parseTime(left)
	rightTime, rightErr := parseTime(right)
	switch {
	case leftErr != nil && rightErr != nil:
		return 0
	case leftErr != nil:
		return -1
	case rightErr != nil:
		return 1
	}
	return leftTime.Compare(rightTime)
}

func parseTime(value any) (time.Time, error) {
	text, _ := value.(string)
	return time.Parse(time.RFC3339Nano, text)
}

func compareValues(left, right any) int {
	switch leftValue := left.(type) {
	case float64:
		if rightValue, ok := right.(float64); ok {
			switch {
			case leftValue < rightValue:
				return -1
			case leftValue > rightValue:
				return 1
			}
			return 0
		}
	case string:
		if rightValue, ok := right.(string); ok {
			return strings.Compare(leftValue, rightValue)
		}
	}
	return 0
}

func shallowCopy(document Document) Document {
	if document == nil {
		return nil
	}
	copied := make(Document, len(document))
	for key, value := range document {
		copied[key] = value
	}
	return copied
}
