// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

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
TestCreate_DerivesSlugAndStampsPublication covers the create defaults.
*/
func TestCreate_DerivesSlugAndStampsPublication(t *testing.T) {
	service := newTestService(t)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	page, err := service.Create(context.Background(), map[string]any{
		"title":   "Hakkımızda Sayfası",
		"content": "<p>Merhaba</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "hakkimizda-sayfasi", page.Slug)
	assert.True(t, page.IsPublished)
	require.NotNil(t, page.PublishedAt)
	assert.True(t, fixed.Equal(*page.PublishedAt))
	assert.Equal(t, []map[string]any{}, page.Sections)
	assert.NotEmpty(t, page.ID)
}

/*
TestCreate_DuplicateSlug rejects a second page with the same slug.
*/
func TestCreate_DuplicateSlug(t *testing.T) {
	service := newTestService(t)

	_, err := service.Create(context.Background(), map[string]any{"title": "KVKK", "slug": "kvkk"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), map[string]any{"title": "Başka", "slug": "kvkk"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "Page with this slug already exists", apperr.As(err).Message)
}

/*
TestCreate_Rejects covers the validation and payload shape errors.
*/
func TestCreate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		status  int
	}{
		{"MissingTitle", map[string]any{"content": "x"}, http.StatusBadRequest},
		{"InvalidSlug", map[string]any{"title": "A", "slug": "Not A Slug"}, http.StatusBadRequest},
		{"WrongType", map[string]any{"title": "A", "is_published": "yes"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(t).Create(context.Background(), tt.payload)
			require.Error(t, err)
			assert.Equal(t, tt.status, statusOf(err))
		})
	}
}

/*
TestUpdate_SlugIsImmutableAndPublishTransitions covers updates addressed by slug.
*/
func TestUpdate_SlugIsImmutableAndPublishTransitions(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, map[string]any{"title": "KVKK", "slug": "kvkk", "is_published": false})
	require.NoError(t, err)
	assert.Nil(t, created.PublishedAt)

	updated, err := service.Update(ctx, "kvkk", map[string]any{"slug": "yeni", "title": "KVKK Metni", "is_published": true})
	require.NoError(t, err)
	assert.Equal(t, "kvkk", updated.Slug)
	assert.Equal(t, "KVKK Metni", updated.Title)
	assert.NotNil(t, updated.PublishedAt)

	public, err := service.GetPublished(ctx, "kvkk")
	require.NoError(t, err)
	assert.Equal(t, created.ID, public.ID)

	unpublished, err := service.Update(ctx, created.ID, map[string]any{"is_published": false})
	require.NoError(t, err)
	assert.Nil(t, unpublished.PublishedAt)

	_, err = service.GetPublished(ctx, "kvkk")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Content page not found", apperr.As(err).Message)
}

/*
TestList_PublishedOnly verifies drafts are hidden from visitors.
*/
func TestList_PublishedOnly(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, map[string]any{"title": "Açık"})
	require.NoError(t, err)
	_, err = service.Create(ctx, map[string]any{"title": "Taslak", "is_published": false})
	require.NoError(t, err)

	published, err := service.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "acik", published[0].Slug)

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

/*
TestDelete_BySlug removes the page and reports missing ones.
*/
func TestDelete_BySlug(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, map[string]any{"title": "Gizlilik"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "gizlilik"))

	_, err = service.Get(ctx, "gizlilik")
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	err = service.Delete(ctx, "gizlilik")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}
