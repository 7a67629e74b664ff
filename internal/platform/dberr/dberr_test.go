// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

/*
TestWrap maps storage failures onto the application error taxonomy.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"DocumentMissing", fmt.Errorf("find: %w", docstore.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"RowMissing", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"UniqueViolation", &pgconn.PgError{Code: "23505"}, http.StatusBadRequest, "CONFLICT"},
		{"OtherPgError", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"AlreadyApp", apperr.Conflict("taken"), http.StatusBadRequest, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appError := apperr.As(dberr.Wrap(tt.err, "Blog post"))
			require.NotNil(t, appError)
			assert.Equal(t, tt.wantStatus, appError.HTTPStatus)
			assert.Equal(t, tt.wantCode, appError.Code)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "Blog post"))
	assert.Equal(t, "Blog post not found", dberr.Wrap(docstore.ErrNotFound, "Blog post").Error())
}

/*
TestIsNotFound recognises both raw and translated not-found errors.
*/
func TestIsNotFound(t *testing.T) {
	assert.True(t, dberr.IsNotFound(docstore.ErrNotFound))
	assert.True(t, dberr.IsNotFound(apperr.NotFound("Page")))
	assert.False(t, dberr.IsNotFound(errors.New("boom")))
	assert.False(t, dberr.IsNotFound(nil))
}
