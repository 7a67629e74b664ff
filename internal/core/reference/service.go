// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
)

var policy = patch.Policy{Fields: patch.FieldsOf(DocumentDescription{})}

// # Service Layer

// Service orchestrates the document glossary.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a reference [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: docstore.Now}
}

/*
List returns the whole glossary.

Parameters:
  - context: context.Context

Returns:
  - []*DocumentDescription: Entries in storage order
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context) ([]*DocumentDescription, error) {
	return service.repo.List(context)
}

/*
Create adds an entry to the glossary.

Returns:
  - *DocumentDescription: The stored entry
  - error: Conflict when the document name is taken, validation errors
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*DocumentDescription, error) {
	entry, err := patch.Decode(policy.Create(payload, nil, service.now()), newDocumentDescription)
	if err != nil {
		return nil, err
	}
	entry.DocumentName = strings.TrimSpace(entry.DocumentName)

	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if err := service.ensureUniqueName(context, entry.DocumentName, ""); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.logger.Info("document_description_created",
		slog.String("id", entry.ID),
		slog.String("document_name", entry.DocumentName),
	)
	return entry, nil
}

// Update merges an admin payload into an entry. Renaming onto an existing
// document name is rejected.
func (service *Service) Update(context context.Context, id string, payload map[string]any) (*DocumentDescription, error) {
	existing, err := service.repo.FindDocument(context, id)
	if err != nil {
		return nil, err
	}

	set := policy.Merge(existing, payload, nil, service.now())
	entry, err := patch.Decode(patch.Apply(existing, set), newDocumentDescription)
	if err != nil {
		return nil, err
	}

	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if _, renamed := set[FieldDocumentName]; renamed {
		if err := service.ensureUniqueName(context, entry.DocumentName, id); err != nil {
			return nil, err
		}
	}

	set, err = patch.Canonical(set, entry)
	if err != nil {
		return nil, err
	}
	if err := service.repo.Update(context, id, set); err != nil {
		return nil, err
	}

	service.logger.Info("document_description_updated", slog.String("id", id))
	return entry, nil
}

// Delete removes an entry.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("document_description_deleted", slog.String("id", id))
	return nil
}

func (service *Service) ensureUniqueName(context context.Context, name, exceptID string) error {
	taken, err := service.repo.NameTaken(context, name, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Document description with this name already exists")
	}
	return nil
}

func validateEntry(entry *DocumentDescription) error {
	validator := &validate.Validator{}
	validator.Required(FieldDocumentName, entry.DocumentName).MaxLen(FieldDocumentName, entry.DocumentName, 200)
	validator.MaxLen(FieldDescription, entry.Description, 2000)
	return validator.Err()
}
