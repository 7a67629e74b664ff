// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package decision

import "context"

// Repository defines the persistence operations for decisions.
type Repository interface {

	/*
		ListVisible returns the decisions public readers may see.

		Description: Ordered by published_at, then created_at, newest first.
		Rows without is_published are included.
	*/
	ListVisible(context context.Context, filter Filter) ([]*Decision, error)

	// ListAll returns every decision, newest first.
	ListAll(context context.Context) ([]*Decision, error)

	FindByID(context context.Context, id string) (*Decision, error)
	FindDocument(context context.Context, id string) (map[string]any, error)
	Create(context context.Context, decision *Decision) error
	Update(context context.Context, id string, set map[string]any) error
	Delete(context context.Context, id string) error
}
