// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"errors"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

const resourceName = "Content page"

// DocumentRepository stores pages in the content_pages collection.
type DocumentRepository struct {
	collection *docstore.Collection[Page]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionContentPages, newPage),
	}
}

func (repository *DocumentRepository) List(context context.Context, publishedOnly bool) ([]*Page, error) {
	filter := docstore.All()
	if publishedOnly {
		filter = docstore.Where(patch.FieldIsPublished, true)
	}

	pages, err := repository.collection.Find(context, docstore.Query{Filter: filter})
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	result := make([]*Page, 0, len(pages))
	for index := range pages {
		result = append(result, &pages[index])
	}
	return result, nil
}

func (repository *DocumentRepository) Resolve(context context.Context, identifier string) (map[string]any, error) {
	document, err := repository.collection.FindDocument(context, docstore.Where("id", identifier))
	if errors.Is(err, docstore.ErrNotFound) {
		document, err = repository.collection.FindDocument(context, docstore.Where(FieldSlug, identifier))
	}
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return document, nil
}

func (repository *DocumentRepository) FindPublishedBySlug(context context.Context, slug string) (*Page, error) {
	page, err := repository.collection.FindOne(context, docstore.Where(FieldSlug, slug).And(patch.FieldIsPublished, true))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return page, nil
}

func (repository *DocumentRepository) SlugExists(context context.Context, slug string) (bool, error) {
	count, err := repository.collection.Count(context, docstore.Where(FieldSlug, slug))
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}
	return count > 0, nil
}

func (repository *DocumentRepository) Create(context context.Context, page *Page) error {
	return dberr.Wrap(repository.collection.Insert(context, page), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, key string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.ByKey(key), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, key string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.ByKey(key)), resourceName)
}
