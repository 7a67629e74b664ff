// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import "context"

// Filter narrows a parameter listing.
type Filter struct {
	Category   string
	ActiveOnly bool
}

// Repository defines the persistence operations for calculator parameters.
//
// Parameters are addressed by their internal storage key where a row may
// still lack an id.
type Repository interface {

	// List returns the parameters matching filter together with their storage keys.
	List(context context.Context, filter Filter) ([]Stored, error)

	/*
		FindByID returns a parameter by id.

		Returns:
		  - Stored: The parameter and its storage key
		  - error: apperr.NotFound if absent
	*/
	FindByID(context context.Context, id string) (Stored, error)

	// FindByName returns the first parameter with the given name in any category.
	FindByName(context context.Context, name string) (Stored, error)

	// ExistsInCategory reports whether a name is taken within a category.
	ExistsInCategory(context context.Context, name string, category Category) (bool, error)

	// Create persists a new parameter.
	Create(context context.Context, parameter *Parameter) error

	// Update merges set into the parameter stored under key.
	Update(context context.Context, key string, set map[string]any) error

	// Delete removes a parameter by id.
	Delete(context context.Context, id string) error

	// DeleteAll removes every parameter and returns how many were removed.
	DeleteAll(context context.Context) (int64, error)
}

// Stored pairs a parameter with its raw document and storage key.
type Stored struct {
	Parameter *Parameter
	Document  map[string]any
	Key       string
}
