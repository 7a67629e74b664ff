// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package process

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

const resourceName = "Legal process"

// DocumentRepository stores processes in the legal_processes collection.
type DocumentRepository struct {
	collection *docstore.Collection[Process]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionLegalProcesses, newProcess),
	}
}

func (repository *DocumentRepository) List(context context.Context, filter Filter) ([]*Process, error) {
	query := docstore.All()
	if filter.Category != "" {
		query = query.And(FieldCategory, filter.Category)
	}
	if filter.Search != "" {
		query = query.Matching(filter.Search, FieldTitle, "description", FieldTags)
	}

	processes, err := repository.collection.Find(context, docstore.Query{Filter: query})
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	result := make([]*Process, 0, len(processes))
	for index := range processes {
		result = append(result, &processes[index])
	}
	return result, nil
}

func (repository *DocumentRepository) FindByID(context context.Context, id string) (*Process, error) {
	process, err := repository.collection.FindOne(context, docstore.Where("id", id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return process, nil
}

func (repository *DocumentRepository) FindDocument(context context.Context, id string) (map[string]any, error) {
	document, err := repository.collection.FindDocument(context, docstore.Where("id", id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return document, nil
}

func (repository *DocumentRepository) Create(context context.Context, process *Process) error {
	return dberr.Wrap(repository.collection.Insert(context, process), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, id string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.Where("id", id), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, id string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.Where("id", id)), resourceName)
}
