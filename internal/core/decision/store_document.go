// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package decision

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

const resourceName = "Supreme court decision"

// DocumentRepository stores decisions in the supreme_court_decisions collection.
type DocumentRepository struct {
	collection *docstore.Collection[Decision]
}

// NewDocumentRepository binds the repository to a document store.
func NewDocumentRepository(store docstore.Store) *DocumentRepository {
	return &DocumentRepository{
		collection: docstore.NewCollection(store, schema.CollectionDecisions, newDecision),
	}
}

func (repository *DocumentRepository) ListVisible(context context.Context, filter Filter) ([]*Decision, error) {
	query := docstore.All().AndTrueOrMissing(patch.FieldIsPublished)
	if filter.Category != "" {
		query = query.And(FieldCategory, filter.Category)
	}
	if filter.Importance != "" {
		query = query.And(FieldImportance, filter.Importance)
	}

	return repository.find(context, docstore.Query{
		Filter: query,
		Sort: []docstore.Sort{
			docstore.Newest(patch.FieldPublishedAt),
			docstore.Newest(patch.FieldCreatedAt),
		},
		Limit: filter.Limit,
	})
}

func (repository *DocumentRepository) ListAll(context context.Context) ([]*Decision, error) {
	return repository.find(context, docstore.Query{
		Filter: docstore.All(),
		Sort:   []docstore.Sort{docstore.Newest(patch.FieldCreatedAt)},
	})
}

func (repository *DocumentRepository) find(context context.Context, query docstore.Query) ([]*Decision, error) {
	decisions, err := repository.collection.Find(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}

	result := make([]*Decision, 0, len(decisions))
	for index := range decisions {
		result = append(result, &decisions[index])
	}
	return result, nil
}

func (repository *DocumentRepository) FindByID(context context.Context, id string) (*Decision, error) {
	decision, err := repository.collection.FindOne(context, docstore.Where(patch.FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return decision, nil
}

func (repository *DocumentRepository) FindDocument(context context.Context, id string) (map[string]any, error) {
	document, err := repository.collection.FindDocument(context, docstore.Where(patch.FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return document, nil
}

func (repository *DocumentRepository) Create(context context.Context, decision *Decision) error {
	return dberr.Wrap(repository.collection.Insert(context, decision), resourceName)
}

func (repository *DocumentRepository) Update(context context.Context, id string, set map[string]any) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.Where(patch.FieldID, id), set), resourceName)
}

func (repository *DocumentRepository) Delete(context context.Context, id string) error {
	return dberr.Wrap(repository.collection.Delete(context, docstore.Where(patch.FieldID, id)), resourceName)
}
