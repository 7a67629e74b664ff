// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
	"github.com/taibuivan/legaldesign/pkg/slug"
)

var (
	policy = patch.Policy{
		Fields: patch.FieldsOf(Page{}),
		Lists:  []string{"sections"},
	}

	// updatePolicy keeps the slug fixed once the page exists.
	updatePolicy = policy.Without(FieldSlug)

	// New pages are published unless the payload says otherwise.
	defaults = map[string]any{patch.FieldIsPublished: true}
)

// # Service Layer

// Service implements the CMS pages.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a content [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: docstore.Now}
}

// ListPublished returns the pages visitors may read.
func (service *Service) ListPublished(context context.Context) ([]*Page, error) {
	return service.repo.List(context, true)
}

// ListAll returns every page, drafts included.
func (service *Service) ListAll(context context.Context) ([]*Page, error) {
	return service.repo.List(context, false)
}

// GetPublished returns a published page by slug.
func (service *Service) GetPublished(context context.Context, slug string) (*Page, error) {
	return service.repo.FindPublishedBySlug(context, slug)
}

// Get returns a page by id or slug, drafts included.
func (service *Service) Get(context context.Context, identifier string) (*Page, error) {
	document, err := service.repo.Resolve(context, identifier)
	if err != nil {
		return nil, err
	}
	return patch.Decode(document, newPage)
}

/*
Create stores a new page.

Description: The slug is derived from the title when omitted. A published
page without published_at is stamped with the current time.

Parameters:
  - context: context.Context
  - payload: map[string]any (snake_case keys)

Returns:
  - *Page: The stored page
  - error: Conflict when the slug is taken, validation or payload shape errors
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*Page, error) {
	now := service.now()
	document := policy.Create(payload, defaults, now)
	patch.StampOnCreate(document, now)

	page, err := patch.Decode(document, newPage)
	if err != nil {
		return nil, err
	}

	if page.Slug == "" {
		page.Slug = slug.From(page.Title)
	}

	if err := validatePage(page); err != nil {
		return nil, err
	}

	exists, err := service.repo.SlugExists(context, page.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Page with this slug already exists")
	}

	if err := service.repo.Create(context, page); err != nil {
		return nil, err
	}

	service.logger.Info("content_page_created",
		slog.String("page_id", page.ID),
		slog.String("slug", page.Slug),
	)

	return page, nil
}

/*
Update merges an admin payload into a page found by id or slug.

Description: A slug in the payload is ignored. Publishing stamps
published_at once, unpublishing clears it.
*/
func (service *Service) Update(context context.Context, identifier string, payload map[string]any) (*Page, error) {
	existing, err := service.repo.Resolve(context, identifier)
	if err != nil {
		return nil, err
	}

	now := service.now()
	set := updatePolicy.Merge(existing, payload, nil, now)
	patch.StampOnUpdate(existing, set, now)

	page, err := patch.Decode(patch.Apply(existing, set), newPage)
	if err != nil {
		return nil, err
	}

	if err := validatePage(page); err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, page)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, docstore.InternalKey(existing), set); err != nil {
		return nil, err
	}

	service.logger.Info("content_page_updated", slog.String("page_id", page.ID))
	return page, nil
}

// Delete removes a page found by id or slug.
func (service *Service) Delete(context context.Context, identifier string) error {
	existing, err := service.repo.Resolve(context, identifier)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, docstore.InternalKey(existing)); err != nil {
		return err
	}

	service.logger.Info("content_page_deleted", slog.String("identifier", identifier))
	return nil
}

func validatePage(page *Page) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, page.Title).MaxLen(FieldTitle, page.Title, 300)
	validator.Required(FieldSlug, page.Slug).Slug(FieldSlug, page.Slug)
	return validator.Err()
}
