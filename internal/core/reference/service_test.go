// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(NewDocumentRepository(docstore.NewMemory()), logger)
}

func statusOf(err error) int {
	if appError := apperr.As(err); appError != nil {
		return appError.HTTPStatus
	}
	return 0
}

/*
TestGlossary_Lifecycle covers create, rename, uniqueness and delete.
*/
func TestGlossary_Lifecycle(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	identity, err := service.Create(ctx, map[string]any{"document_name": " Kimlik belgesi ", "description": "Nüfus cüzdanı"})
	require.NoError(t, err)
	assert.Equal(t, "Kimlik belgesi", identity.DocumentName)

	deed, err := service.Create(ctx, map[string]any{"document_name": "Tapu senedi"})
	require.NoError(t, err)

	_, err = service.Create(ctx, map[string]any{"document_name": "Kimlik belgesi"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	// Keeping the own name is not a conflict.
	updated, err := service.Update(ctx, identity.ID, map[string]any{"document_name": "Kimlik belgesi", "description": "T.C. kimlik kartı"})
	require.NoError(t, err)
	assert.Equal(t, "T.C. kimlik kartı", updated.Description)

	_, err = service.Update(ctx, deed.ID, map[string]any{"document_name": "Kimlik belgesi"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	entries, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, service.Delete(ctx, deed.ID))
	err = service.Delete(ctx, deed.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Document description not found", apperr.As(err).Message)
}

/*
TestCreate_RequiresName rejects an empty document name.
*/
func TestCreate_RequiresName(t *testing.T) {
	_, err := newTestService(t).Create(context.Background(), map[string]any{"description": "x"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}
