// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/core/search"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
	"github.com/taibuivan/legaldesign/pkg/slug"
)

var (
	policy = patch.Policy{
		Fields: patch.FieldsOf(Post{}),
		Lists:  []string{FieldTags},
	}

	updatePolicy = policy.Without(FieldSlug)

	defaults = map[string]any{patch.FieldIsPublished: true}
)

// # Service Layer

// Service implements the blog.
type Service struct {
	repo    Repository
	indexer search.Indexer
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a blog [Service].
func NewService(repo Repository, indexer search.Indexer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		indexer: indexer,
		logger:  logger,
		now:     docstore.Now,
	}
}

// ListPublished returns the posts visitors may read, newest publication first.
func (service *Service) ListPublished(context context.Context, filter Filter) ([]*Post, error) {
	return service.repo.ListPublished(context, filter)
}

// ListAll returns every post for the admin panel, newest first.
func (service *Service) ListAll(context context.Context) ([]*Post, error) {
	return service.repo.ListAll(context)
}

// GetPublished returns a published post by slug. Drafts are reported as missing.
func (service *Service) GetPublished(context context.Context, slug string) (*Post, error) {
	return service.repo.FindPublishedBySlug(context, slug)
}

// Get returns a post by id, drafts included.
func (service *Service) Get(context context.Context, id string) (*Post, error) {
	return service.repo.FindByID(context, id)
}

/*
Create stores a new post.

Description: The slug is derived from the title when omitted and must be
unique. Posts are published by default; a published post gets published_at
unless the payload carries one.

Parameters:
  - context: context.Context
  - payload: map[string]any (snake_case keys)

Returns:
  - *Post: The stored post
  - error: Conflict on a taken slug, validation or payload shape errors
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*Post, error) {
	now := service.now()
	document := policy.Create(payload, defaults, now)
	patch.StampOnCreate(document, now)

	post, err := patch.Decode(document, newPost)
	if err != nil {
		return nil, err
	}

	if post.Slug == "" {
		post.Slug = slug.From(post.Title)
	}

	if err := validatePost(post); err != nil {
		return nil, err
	}

	exists, err := service.repo.SlugExists(context, post.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Blog post with this slug already exists")
	}

	if err := service.repo.Create(context, post); err != nil {
		return nil, err
	}

	service.index(post)
	service.logger.Info("blog_post_created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.Bool("is_published", post.IsPublished),
	)

	return post, nil
}

/*
Update merges an admin payload into a stored post.

Description: The slug never changes. Publishing a post that was never
published stamps published_at; unpublishing clears it.

Returns:
  - *Post: The post after the update
  - error: apperr.NotFound, validation or payload shape errors
*/
func (service *Service) Update(context context.Context, id string, payload map[string]any) (*Post, error) {
	existing, err := service.repo.FindDocument(context, id)
	if err != nil {
		return nil, err
	}

	now := service.now()
	set := updatePolicy.Merge(existing, payload, nil, now)
	patch.StampOnUpdate(existing, set, now)

	post, err := patch.Decode(patch.Apply(existing, set), newPost)
	if err != nil {
		return nil, err
	}

	if err := validatePost(post); err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, post)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, id, set); err != nil {
		return nil, err
	}

	service.index(post)
	service.logger.Info("blog_post_updated",
		slog.String("post_id", id),
		slog.Bool("is_published", post.IsPublished),
	)

	return post, nil
}

// Delete removes a post.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.indexer.Remove(schema.CollectionBlogPosts, id)
	service.logger.Info("blog_post_deleted", slog.String("post_id", id))
	return nil
}

func (service *Service) index(post *Post) {
	document, err := docstore.Encode(post)
	if err != nil {
		return
	}
	service.indexer.Index(schema.CollectionBlogPosts, document)
}

func validatePost(post *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title).MaxLen(FieldTitle, post.Title, 300)
	validator.Required(FieldSlug, post.Slug).Slug(FieldSlug, post.Slug)
	validator.URL("featured_image", post.FeaturedImage)
	return validator.Err()
}
