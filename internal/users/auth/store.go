// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// # User Data Access

// UserRepository defines the data access contract for admin accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *AdminUser: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*AdminUser, error)

	/*
		FindByUsername returns the account with the given username.

		Returns:
		  - *AdminUser: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*AdminUser, error)

	// Create persists a new account.
	Create(context context.Context, user *AdminUser) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(context context.Context, id string, at time.Time) error
}

// # Volatile Data Access

// RevocationRepository holds the ids of access tokens that were logged out.
type RevocationRepository interface {

	/*
		Revoke blocks a token id for ttl, the remaining lifetime of the token.

		Parameters:
		  - context: context.Context
		  - tokenID: string ("jti" claim)
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether the token id was revoked.
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// # Document Store Implementation

const resourceName = "Admin user"

// DocumentUserRepository stores accounts in the admin_users collection.
type DocumentUserRepository struct {
	collection *docstore.Collection[AdminUser]
}

// NewUserRepository binds the repository to a document store.
func NewUserRepository(store docstore.Store) *DocumentUserRepository {
	return &DocumentUserRepository{
		collection: docstore.NewCollection(store, schema.CollectionAdminUsers, newAdminUser),
	}
}

func (repository *DocumentUserRepository) FindByID(context context.Context, id string) (*AdminUser, error) {
	user, err := repository.collection.FindOne(context, docstore.Where(FieldID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return user, nil
}

func (repository *DocumentUserRepository) FindByUsername(context context.Context, username string) (*AdminUser, error) {
	user, err := repository.collection.FindOne(context, docstore.Where(FieldUsername, username))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return user, nil
}

func (repository *DocumentUserRepository) Create(context context.Context, user *AdminUser) error {
	return dberr.Wrap(repository.collection.Insert(context, user), resourceName)
}

func (repository *DocumentUserRepository) TouchLastLogin(context context.Context, id string, at time.Time) error {
	return dberr.Wrap(repository.collection.Update(context, docstore.Where(FieldID, id), docstore.Document{
		FieldLastLogin: at,
		FieldUpdatedAt: at,
	}), resourceName)
}
