// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

const resourceName = "Blog post"

// DocumentRepository stores posts in the blog_posts collection.
type DocumentRepository struct {
	collection *docstore.Collection[Post]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionBlogPosts, newPost),
	}
}

func (repository *DocumentRepository) ListPublished(context context.Context, filter Filter) ([]*Post, error) {
	query := docstore.Where(patch.FieldIsPublished, true)
	if filter.Category != "" {
		query = query.And(FieldCategory, filter.Category)
	}

	return repository.find(context, docstore.Query{
		Filter: query,
		Sort:   []docstore.Sort{docstore.Newest(patch.FieldPublishedAt)},
		Limit:  filter.Limit,
	})
}

func (repository *DocumentRepository) ListAll(context context.Context) ([]*Post, error) {
	return repository.find(context, docstore.Query{
		Filter: docstore.All(),
		Sort:   []docstore.Sort{docstore.Newest(patch.FieldCreatedAt)},
	})
}

func (repository *DocumentRepository) find(context context.Context, query docstore.Query) ([]*Post, error) {
	posts, err := repository.collection.Find(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	result := make([]*Post, 0, len(posts))
	for index := range posts {
		result = append(result, &posts[index])
	}
	return result, nil
}

func (repository *DocumentRepository) FindByID(context context.Context, id string) (*Post, error) {
	post, err := repository.collection.FindOne(context, docstore.Where(patch.FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return post, nil
}

func (repository *DocumentRepository) FindDocument(context context.Context, id string) (map[string]any, error) {
	document, err := repository.collection.FindDocument(context, docstore.Where(patch.FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return document, nil
}

func (repository *DocumentRepository) FindPublishedBySlug(context context.Context, slug string) (*Post, error) {
	post, err := repository.collection.FindOne(context, docstore.Where(FieldSlug, slug).And(patch.FieldIsPublished, true))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return post, nil
}

func (repository *DocumentRepository) SlugExists(context context.Context, slug string) (bool, error) {
	count, err := repository.collection.Count(context, docstore.Where(FieldSlug, slug))
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}
	return count > 0, nil
}

func (repository *DocumentRepository) Create(context context.Context, post *Post) error {
	return dberr.Wrap(repository.collection.Insert(context, post), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, id string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.Where(patch.FieldID, id), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, id string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.Where(patch.FieldID, id)), resourceName)
}
