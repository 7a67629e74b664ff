// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package decision

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/core/search"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
)

var (
	policy = patch.Policy{
		Fields: patch.FieldsOf(Decision{}),
		Lists:  []string{FieldKeywords},
	}

	defaults = map[string]any{
		patch.FieldIsPublished: true,
		FieldImportance:        string(ImportanceMedium),
	}
)

// # Service Layer

// Service implements the Supreme Court decision archive.
type Service struct {
	repo    Repository
	indexer search.Indexer
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a decision [Service].
func NewService(repo Repository, indexer search.Indexer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
		now:     docstore.Now,
	}
}

// ListVisible returns the public listing.
func (service *Service) ListVisible(context context.Context, filter Filter) ([]*Decision, error) {
	return service.repo.ListVisible(context, filter)
}

// ListAll returns every decision for the admin panel.
func (service *Service) ListAll(context context.Context) ([]*Decision, error) {
	return service.repo.ListAll(context)
}

// Get returns any decision by id.
func (service *Service) Get(context context.Context, id string) (*Decision, error) {
	return service.repo.FindByID(context, id)
}

/*
Create stores a new decision.

Description: Decisions are published with medium importance unless the
payload says otherwise.

Returns:
  - *Decision: The stored decision
  - error: Validation or payload shape errors
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*Decision, error) {
	now := service.now()
	document := policy.Create(payload, defaults, now)
	patch.StampOnCreate(document, now)

	decision, err := patch.Decode(document, newDecision)
	if err != nil {
		return nil, err
	}

	if decision.ImportanceLevel == "" {
		decision.ImportanceLevel = ImportanceMedium
	}

	if err := validateDecision(decision); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, decision); err != nil {
		return nil, err
	}

	service.index(decision)
	service.logger.Info("decision_created",
		slog.String("decision_id", decision.ID),
		slog.String("decision_number", decision.DecisionNumber),
	)

	return decision, nil
}

// Update merges an admin payload into a stored decision. Publish
// transitions follow the blog rules.
func (service *Service) Update(context context.Context, id string, payload map[string]any) (*Decision, error) {
	existing, err := service.repo.FindDocument(context, id)
	if err != nil {
		return nil, err
	}

	now := service.now()
	set := policy.Merge(existing, payload, nil, now)
	patch.StampOnUpdate(existing, set, now)

	decision, err := patch.Decode(patch.Apply(existing, set), newDecision)
	if err != nil {
		return nil, err
	}

	if err := validateDecision(decision); err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, decision)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, id, set); err != nil {
		return nil, err
	}

	service.index(decision)
	service.logger.Info("decision_updated", slog.String("decision_id", id))

	return decision, nil
}

// Delete removes a decision.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.indexer.Remove(schema.CollectionDecisions, id)
	service.logger.Info("decision_deleted", slog.String("decision_id", id))
	return nil
}

func (service *Service) index(decision *Decision) {
	document, err := docstore.Encode(decision)
	if err != nil {
		return
	}
	service.indexer.Index(schema.CollectionDecisions, document)
}

func validateDecision(decision *Decision) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, decision.Title).MaxLen(FieldTitle, decision.Title, 500)
	validator.OneOf(FieldImportance, string(decision.ImportanceLevel),
		string(ImportanceHigh), string(ImportanceMedium), string(ImportanceLow))
	return validator.Err()
}
