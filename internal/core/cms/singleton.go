// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// # Repository

// Repository reads and writes singleton documents. Find returns (nil, nil)
// when the collection is empty.
type Repository interface {
	Find(context context.Context, collection string) (map[string]any, error)
	Insert(context context.Context, collection string, document map[string]any) error
	Update(context context.Context, collection, key string, set map[string]any) error
}

// DocumentRepository implements [Repository] on a document store.
type DocumentRepository struct {
	store docstore.Store
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (repository *DocumentRepository) Find(context context.Context, collection string) (map[string]any, error) {
	document, err := repository.store.FindOne(context, collection, docstore.All())
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return document, nil
}

func (repository *DocumentRepository) Insert(context context.Context, collection string, document map[string]any) error {
	return dberr.Wrap(repository.store.Insert(context, collection, document), collection)
}

func (repository *DocumentRepository) Update(context context.Context, collection, key string, set map[string]any) error {
	return dberr.Wrap(repository.store.Update(context, collection, docstore.ByKey(key), set), collection)
}

// # Singleton

// Singleton manages a collection that holds at most one document of type T.
type Singleton[T any] struct {
	collection string
	repo       Repository
	policy     patch.Policy
	prototype  func() T
	defaults   func() (map[string]any, error)
	validate   func(*T) error
	logger     *slog.Logger
	now        func() time.Time
}

/*
Get returns the stored document, creating it from the defaults when the
collection is empty.

Returns:
  - *T: The stored document
  - error: Storage failures
*/
func (singleton *Singleton[T]) Get(context context.Context) (*T, error) {
	existing, err := singleton.repo.Find(context, singleton.collection)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return patch.Decode(existing, singleton.prototype)
	}

	defaults, err := singleton.defaults()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return singleton.insert(context, patch.Policy{}.Create(nil, defaults, singleton.now()))
}

// Peek returns the stored document or, when there is none, the defaults
// without persisting them.
func (singleton *Singleton[T]) Peek(context context.Context) (*T, error) {
	existing, err := singleton.repo.Find(context, singleton.collection)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return patch.Decode(existing, singleton.prototype)
	}

	defaults, err := singleton.defaults()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return patch.Decode(defaults, singleton.prototype)
}

/*
Update merges payload into the stored document.

Description: When nothing is stored yet, the payload is laid over the
defaults and the result is created.

Parameters:
  - context: context.Context
  - payload: map[string]any (snake_case keys)

Returns:
  - *T: The document after the update
  - error: Validation, payload shape or storage errors
*/
func (singleton *Singleton[T]) Update(context context.Context, payload map[string]any) (*T, error) {
	existing, err := singleton.repo.Find(context, singleton.collection)
	if err != nil {
		return nil, err
	}

	now := singleton.now()
	if existing == nil {
		defaults, err := singleton.defaults()
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return singleton.insert(context, singleton.policy.Merge(nil, payload, defaults, now))
	}

	set := singleton.policy.Merge(existing, payload, nil, now)
	entity, err := singleton.decode(patch.Apply(existing, set))
	if err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, entity)
	if err != nil {
		return nil, err
	}

	if err := singleton.repo.Update(context, singleton.collection, docstore.InternalKey(existing), set); err != nil {
		return nil, err
	}

	singleton.logger.Info("cms_singleton_updated",
		slog.String("collection", singleton.collection),
		slog.Int("fields", len(set)),
	)
	return entity, nil
}

func (singleton *Singleton[T]) insert(context context.Context, document map[string]any) (*T, error) {
	entity, err := singleton.decode(document)
	if err != nil {
		return nil, err
	}

	encoded, err := docstore.Encode(entity)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := singleton.repo.Insert(context, singleton.collection, encoded); err != nil {
		return nil, err
	}

	singleton.logger.Info("cms_singleton_created", slog.String("collection", singleton.collection))
	return entity, nil
}

func (singleton *Singleton[T]) decode(document map[string]any) (*T, error) {
	entity, err := patch.Decode(document, singleton.prototype)
	if err != nil {
		return nil, err
	}
	if singleton.validate != nil {
		if err := singleton.validate(entity); err != nil {
			return nil, err
		}
	}
	return entity, nil
}
