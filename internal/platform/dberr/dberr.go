// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level storage errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// Wrap inspects a storage error and converts it into an [apperr.AppError].
//
// Missing documents become NotFound for the named resource, unique violations
// become Conflict, and anything else is an internal error. Errors that are
// already an [apperr.AppError] pass through unchanged.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique constraint violations
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == uniqueViolation {
		conflict := apperr.Conflict(resource + " already exists")
		conflict.Cause = err
		return conflict
	}

	return apperr.Internal(err)
}

// IsNotFound reports whether err means that no document matched.
func IsNotFound(err error) bool {
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	appError := apperr.As(err)
	return appError != nil && appError.Code == "NOT_FOUND"
}
