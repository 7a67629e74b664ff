// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// # Repository Interface

// Repository defines the persistence operations for the glossary.
type Repository interface {
	List(context context.Context) ([]*DocumentDescription, error)
	FindDocument(context context.Context, id string) (map[string]any, error)

	// NameTaken reports whether another entry (not exceptID) uses name.
	NameTaken(context context.Context, name, exceptID string) (bool, error)

	Create(context context.Context, description *DocumentDescription) error
	Update(context context.Context, id string, set map[string]any) error
	Delete(context context.Context, id string) error
}

// # Document Store Implementation

const resourceName = "Document description"

// DocumentRepository stores entries in the document_descriptions collection.
type DocumentRepository struct {
	collection *docstore.Collection[DocumentDescription]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionDocumentDescriptions, newDocumentDescription),
	}
}

func (repository *DocumentRepository) List(context context.Context) ([]*DocumentDescription, error) {
	entries, err := repository.collection.Find(context, docstore.Query{Filter: docstore.All()})
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	result := make([]*DocumentDescription, 0, len(entries))
	for index := range entries {
		result = append(result, &entries[index])
	}
	return result, nil
}

func (repository *DocumentRepository) FindDocument(context context.Context, id string) (map[string]any, error) {
	document, err := repository.collection.FindDocument(context, docstore.Where(patch.FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return document, nil
}

func (repository *DocumentRepository) NameTaken(context context.Context, name, exceptID string) (bool, error) {
	documents, err := repository.collection.FindDocuments(context, docstore.Query{
		Filter: docstore.Where(FieldDocumentName, name),
	})
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}

	for _, document := range documents {
		if document[patch.FieldID] != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (repository *DocumentRepository) Create(context context.Context, description *DocumentDescription) error {
	return dberr.Wrap(repository.collection.Insert(context, description), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, id string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.Where(patch.FieldID, id), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, id string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.Where(patch.FieldID, id)), resourceName)
}
