// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// Repository defines the persistence operations for content pages.
type Repository interface {

	// List returns the pages in storage order, optionally published ones only.
	List(context context.Context, publishedOnly bool) ([]*Page, error)

	/*
		Resolve finds a page by id, then by slug.

		Returns:
		  - map[string]any: The stored document, storage key included
		  - error: apperr.NotFound if neither matches
	*/
	Resolve(context context.Context, identifier string) (map[string]any, error)

	// FindPublishedBySlug returns a published page.
	FindPublishedBySlug(context context.Context, slug string) (*Page, error)

	// SlugExists reports whether any page uses slug.
	SlugExists(context context.Context, slug string) (bool, error)

	// Create persists a new page.
	Create(context context.Context, page *Page) error

	// Update merges set into the page stored under key.
	Update(context context.Context, key string, set map[string]any) error

	// Delete removes the page stored under key.
	Delete(context context.Context, key string) error
}
