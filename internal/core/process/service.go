// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/core/search"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
)

// policy lists the writable process fields. Null tags or steps become empty lists.
var policy = patch.Policy{
	Fields: patch.FieldsOf(Process{}),
	Lists:  []string{FieldTags, FieldSteps},
}

// # Service Layer

// Service implements the legal process guides.
type Service struct {
	repo    Repository
	indexer search.Indexer
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a process [Service].
func NewService(repo Repository, indexer search.Indexer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
		now:     docstore.Now,
	}
}

// List returns the processes matching filter.
func (service *Service) List(context context.Context, filter Filter) ([]*Process, error) {
	return service.repo.List(context, filter)
}

// Get returns one process or apperr.NotFound.
func (service *Service) Get(context context.Context, id string) (*Process, error) {
	return service.repo.FindByID(context, id)
}

/*
Create stores a new process built from an admin payload.

Description: A caller-supplied id is kept (the seeded guides use readable
ids such as "bosanma-sureci"); otherwise a UUID v7 is assigned. When
total_steps is not given it is derived from the steps.

Parameters:
  - context: context.Context
  - payload: map[string]any (snake_case keys)

Returns:
  - *Process: The stored process
  - error: Validation, payload shape or persistence errors
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*Process, error) {
	document := policy.Create(payload, nil, service.now())

	process, err := patch.Decode(document, newProcess)
	if err != nil {
		return nil, err
	}

	if _, given := payload[FieldTotalSteps]; !given {
		process.TotalSteps = len(process.Steps)
	}

	if err := validateProcess(process); err != nil {
		return nil, err
	}

	// Uniqueness of the id
	switch _, err := service.repo.FindByID(context, process.ID); {
	case err == nil:
		return nil, apperr.Conflict("Legal process with this id already exists")
	case !dberr.IsNotFound(err):
		return nil, err
	}

	if err := service.repo.Create(context, process); err != nil {
		return nil, err
	}

	service.index(process)
	service.logger.Info("legal_process_created",
		slog.String("process_id", process.ID),
		slog.String("title", process.Title),
	)

	return process, nil
}

/*
Update merges an admin payload into a stored process.

Description: Only the fields present in the payload change. When steps are
replaced without an explicit total_steps, the count follows the new steps.

Returns:
  - *Process: The process after the update
  - error: apperr.NotFound, validation or payload shape errors
*/
func (service *Service) Update(context context.Context, id string, payload map[string]any) (*Process, error) {
	existing, err := service.repo.FindDocument(context, id)
	if err != nil {
		return nil, err
	}

	set := policy.Merge(existing, payload, nil, service.now())

	process, err := patch.Decode(patch.Apply(existing, set), newProcess)
	if err != nil {
		return nil, err
	}

	_, stepsGiven := set[FieldSteps]
	if _, totalGiven := payload[FieldTotalSteps]; stepsGiven && !totalGiven {
		process.TotalSteps = len(process.Steps)
		set[FieldTotalSteps] = process.TotalSteps
	}

	if err := validateProcess(process); err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, process)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, id, set); err != nil {
		return nil, err
	}

	service.index(process)
	service.logger.Info("legal_process_updated", slog.String("process_id", id))

	return process, nil
}

// Delete removes a process.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.indexer.Remove(schema.CollectionLegalProcesses, id)
	service.logger.Info("legal_process_deleted", slog.String("process_id", id))
	return nil
}

func (service *Service) index(process *Process) {
	document, err := docstore.Encode(process)
	if err != nil {
		return
	}
	service.indexer.Index(schema.CollectionLegalProcesses, document)
}

func validateProcess(process *Process) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, process.Title).MaxLen(FieldTitle, process.Title, 300)
	validator.OneOf(FieldCategory, string(process.Category), string(CategoryCivil), string(CategoryCriminal))
	validator.Custom(FieldTotalSteps, process.TotalSteps < 0, "Must not be negative")
	return validator.Err()
}
