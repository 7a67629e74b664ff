// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"fmt"
)

// Collection is a typed view over one named collection of a [Store].
//
// The optional prototype supplies the zero value each document is decoded
// into, so fields a legacy document lacks keep their entity defaults.
type Collection[T any] struct {
	store     Store
	name      string
	prototype func() T
}

// NewCollection binds a collection name to an entity type.
func NewCollection[T any](store Store, name string, prototype func() T) *Collection[T] {
	return &Collection[T]{store: store, name: name, prototype: prototype}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Store returns the underlying driver.
func (c *Collection[T]) Store() Store {
	return c.store
}

// FindOne returns the first matching entity or [ErrNotFound].
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	document, err := c.store.FindOne(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	return c.decode(document)
}

// Find returns every matching entity.
func (c *Collection[T]) Find(ctx context.Context, query Query) ([]T, error) {
	documents, err := c.store.Find(ctx, c.name, query)
	if err != nil {
		return nil, err
	}

	entities := make([]T, 0, len(documents))
	for _, document := range documents {
		entity, err := c.decode(document)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// FindDocument returns the first matching raw document, internal key included.
func (c *Collection[T]) FindDocument(ctx context.Context, filter Filter) (Document, error) {
	return c.store.FindOne(ctx, c.name, filter)
}

// FindDocuments returns every matching raw document.
func (c *Collection[T]) FindDocuments(ctx context.Context, query Query) ([]Document, error) {
	return c.store.Find(ctx, c.name, query)
}

// Insert stores entity as a new document.
func (c *Collection[T]) Insert(ctx context.Context, entity *T) error {
	document, err := Encode(entity)
	if err != nil {
		return err
	}
	return c.store.Insert(ctx, c.name, document)
}

// InsertDocument stores a raw document.
func (c *Collection[T]) InsertDocument(ctx context.Context, document Document) error {
	return c.store.Insert(ctx, c.name, document)
}

// Update merges set into the first matching document.
func (c *Collection[T]) Update(ctx context.Context, filter Filter, set Document) error {
	return c.store.Update(ctx, c.name, filter, set)
}

// Delete removes the first matching document.
func (c *Collection[T]) Delete(ctx context.Context, filter Filter) error {
	return c.store.Delete(ctx, c.name, filter)
}

// Count returns the number of matching documents.
func (c *Collection[T]) Count(ctx context.Context, filter Filter) (int, error) {
	return c.store.Count(ctx, c.name, filter)
}

// Decode converts a raw document of this collection into an entity.
func (c *Collection[T]) Decode(document Document) (*T, error) {
	return c.decode(document)
}

func (c *Collection[T]) decode(document Document) (*T, error) {
	var entity T
	if c.prototype != nil {
		entity = c.prototype()
	}

	if err := Decode(StripInternal(shallowCopy(document)), &entity); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return &entity, nil
}
