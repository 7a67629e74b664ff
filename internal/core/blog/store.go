// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import "context"

// Repository defines the persistence operations for blog posts.
type Repository interface {

	// ListPublished returns published posts, newest publication first.
	ListPublished(context context.Context, filter Filter) ([]*Post, error)

	// ListAll returns every post, newest first.
	ListAll(context context.Context) ([]*Post, error)

	// FindByID returns a post, drafts included.
	FindByID(context context.Context, id string) (*Post, error)

	// FindDocument returns the stored document of a post.
	FindDocument(context context.Context, id string) (map[string]any, error)

	// FindPublishedBySlug returns a published post.
	FindPublishedBySlug(context context.Context, slug string) (*Post, error)

	// SlugExists reports whether any post uses slug.
	SlugExists(context context.Context, slug string) (bool, error)

	Create(context context.Context, post *Post) error
	Update(context context.Context, id string, set map[string]any) error
	Delete(context context.Context, id string) error
}
