// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

const resourceName = "Calculator parameter"

// DocumentRepository stores parameters in the calculator_parameters collection.
type DocumentRepository struct {
	collection *docstore.Collection[Parameter]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionCalculatorParameters, newParameter),
	}
}

func (repository *DocumentRepository) List(context context.Context, filter Filter) ([]Stored, error) {
	query := docstore.All()
	if filter.Category != "" {
		query = query.And(FieldCategory, filter.Category)
	}
	if filter.ActiveOnly {
		query = query.And(FieldIsActive, true)
	}

	documents, err := repository.collection.FindDocuments(context, docstore.Query{Filter: query})
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	stored := make([]Stored, 0, len(documents))
	for _, document := range documents {
		entry, err := repository.stored(document)
		if err != nil {
			return nil, err
		}
		stored = append(stored, entry)
	}
	return stored, nil
}

func (repository *DocumentRepository) FindByID(context context.Context, id string) (Stored, error) {
	return repository.findOne(context, docstore.Where("id", id))
}

func (repository *DocumentRepository) FindByName(context context.Context, name string) (Stored, error) {
	return repository.findOne(context, docstore.Where(FieldName, name))
}

func (repository *DocumentRepository) ExistsInCategory(context context.Context, name string, category Category) (bool, error) {
	count, err := repository.collection.Count(context, docstore.Where(FieldName, name).And(FieldCategory, string(category)))
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}
	return count > 0, nil
}

func (repository *DocumentRepository) Create(context context.Context, parameter *Parameter) error {
	return dberr.Wrap(repository.collection.Insert(context, parameter), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, key string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.ByKey(key), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, id string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.Where("id", id)), resourceName)
}

func (repository *DocumentRepository) DeleteAll(context context.Context) (int64, error) {
	deleted, err := repository.collection.Store().DeleteMany(context, repository.collection.Name(), docstore.All())
	if err != nil {
		return 0, dberr.Wrap(err, resourceName)
	}
	return deleted, nil
}

func (repository *DocumentRepository) findOne(context context.Context, filter docstore.Filter) (Stored, error) {
	document, err := repository.collection.FindDocument(context, filter)
	if err != nil {
		return Stored{}, dberr.Wrap(err, resourceName)
	}
	return repository.stored(document)
}

func (repository *DocumentRepository) stored(document docstore.Document) (Stored, error) {
	parameter, err := repository.collection.Decode(document)
	if err != nil {
		return Stored{}, dberr.Wrap(err, resourceName)
	}
	return Stored{Parameter: parameter, Document: document, Key: docstore.InternalKey(document)}, nil
}
