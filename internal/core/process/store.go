// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package process

import "context"

// Filter narrows the public process listing.
type Filter struct {
	Category string

	// Search is a case-insensitive substring over title, description and tags.
	Search string
}

// Repository defines the persistence operations for legal processes.
type Repository interface {

	/*
		List returns the processes matching filter in storage order.

		Returns:
		  - []*Process: Possibly empty list
		  - error: Storage failures
	*/
	List(context context.Context, filter Filter) ([]*Process, error)

	/*
		FindByID returns a single process.

		Returns:
		  - *Process: The process
		  - error: apperr.NotFound if absent
	*/
	FindByID(context context.Context, id string) (*Process, error)

	// FindDocument returns the stored document of a process for merging.
	FindDocument(context context.Context, id string) (map[string]any, error)

	// Create persists a new process.
	Create(context context.Context, process *Process) error

	// Update merges set into the stored process.
	Update(context context.Context, id string, set map[string]any) error

	// Delete removes a process. Missing processes yield apperr.NotFound.
	Delete(context context.Context, id string) error
}
