// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

type fakeEngine struct {
	mu      sync.Mutex
	healthy bool
	ids     map[string][]string
	err     error
	upserts map[string][]Record
}

func (engine *fakeEngine) Healthy() bool { return engine.healthy }

func (engine *fakeEngine) Query(_ context.Context, _ string, collections []string, _ int) (map[string][]string, error) {
	if engine.err != nil {
		return nil, engine.err
	}
	return engine.ids, nil
}

func (engine *fakeEngine) Upsert(_ context.Context, collection string, records []Record) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.upserts == nil {
		engine.upserts = make(map[string][]Record)
	}
	engine.upserts[collection] = append(engine.upserts[collection], records...)
	return nil
}

func (engine *fakeEngine) Remove(context.Context, string, string) error { return nil }

func newTestStore(t *testing.T) docstore.Store {
	t.Helper()
	store := docstore.NewMemory()
	ctx := context.Background()

	documents := map[string][]docstore.Document{
		schema.CollectionLegalProcesses: {
			{"id": "bosanma-sureci", "title": "Boşanma Süreci", "description": "Boşanma davası", "tags": []any{"aile hukuku"}},
			{"id": "is-davasi-sureci", "title": "İş Davası", "description": "Kıdem tazminatı", "tags": []any{"tazminat"}},
		},
		schema.CollectionBlogPosts: {
			{"id": "p1", "title": "Tazminat Rehberi", "is_published": true},
			{"id": "p2", "title": "Tazminat Taslağı", "is_published": false},
		},
		schema.CollectionDecisions: {
			{"id": "d1", "title": "Tazminat kararı", "is_published": true},
			{"id": "d2", "title": "Eski tazminat kararı"},
			{"id": "d3", "title": "Gizli tazminat kararı", "is_published": false},
		},
	}
	for collection, list := range documents {
		for _, document := range list {
			require.NoError(t, store.Insert(ctx, collection, document))
		}
	}
	return store
}

func newTestService(t *testing.T, engine Engine) *Service {
	t.Helper()
	return NewService(newTestStore(t), engine, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ids(documents []docstore.Document) []string {
	out := make([]string, 0, len(documents))
	for _, document := range documents {
		out = append(out, fmt.Sprint(document["id"]))
	}
	return out
}

/*
TestSearch_RejectsShortQueries covers the minimum query length.
*/
func TestSearch_RejectsShortQueries(t *testing.T) {
	service := newTestService(t, nil)

	tests := []struct {
		name string
		text string
		kind string
	}{
		{"ShortQuery", "a", ""},
		{"BlankQuery", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Search(context.Background(), tt.text, tt.kind)
			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, apperr.As(err).HTTPStatus)
		})
	}
}

/*
TestSearch_UnknownKind answers an unrecognized type with no result groups.
*/
func TestSearch_UnknownKind(t *testing.T) {
	engine := &fakeEngine{healthy: true, err: errors.New("must not be queried")}
	service := newTestService(t, engine)

	results, err := service.Search(context.Background(), "tazminat", "videos")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

/*
TestSearch_StoreFallback verifies the store answers with visibility rules applied.
*/
func TestSearch_StoreFallback(t *testing.T) {
	service := newTestService(t, nil)

	results, err := service.Search(context.Background(), "TAZMINAT", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"is-davasi-sureci"}, ids(results["processes"]))
	assert.Equal(t, []string{"p1"}, ids(results["blog_posts"]))
	assert.Equal(t, []string{"d1", "d2"}, ids(results["decisions"]))

	for _, document := range results["processes"] {
		assert.NotContains(t, document, docstore.KeyField)
	}
}

/*
TestSearch_SingleKind verifies that the type parameter limits the response keys.
*/
func TestSearch_SingleKind(t *testing.T) {
	service := newTestService(t, nil)

	results, err := service.Search(context.Background(), "tazminat", "blog")
	require.NoError(t, err)

	assert.Len(t, results, 1)
	assert.Contains(t, results, "blog_posts")
}

/*
TestSearch_EngineHitsAreHydrated verifies engine order is kept and hidden hits are dropped.
*/
func TestSearch_EngineHitsAreHydrated(t *testing.T) {
	engine := &fakeEngine{
		healthy: true,
		ids: map[string][]string{
			schema.CollectionBlogPosts: {"p2", "p1", "missing"},
			schema.CollectionDecisions: {"d3", "d2", "d1"},
		},
	}
	service := newTestService(t, engine)

	results, err := service.Search(context.Background(), "tazminat", "")
	require.NoError(t, err)

	assert.Empty(t, results["processes"])
	assert.Equal(t, []string{"p1"}, ids(results["blog_posts"]))
	assert.Equal(t, []string{"d2", "d1"}, ids(results["decisions"]))
	assert.Equal(t, "Tazminat Rehberi", results["blog_posts"][0]["title"])
}

/*
TestSearch_EngineErrorFallsBack verifies an engine failure is served by the store.
*/
func TestSearch_EngineErrorFallsBack(t *testing.T) {
	engine := &fakeEngine{healthy: true, err: errors.New("connection refused")}
	service := newTestService(t, engine)

	results, err := service.Search(context.Background(), "boşanma", "processes")
	require.NoError(t, err)
	assert.Equal(t, []string{"bosanma-sureci"}, ids(results["processes"]))
}

/*
TestReindex covers the unavailable engine and the per-collection counts.
*/
func TestReindex(t *testing.T) {
	t.Run("NoEngine", func(t *testing.T) {
		_, err := newTestService(t, nil).Reindex(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, apperr.As(err).HTTPStatus)
	})

	t.Run("Healthy", func(t *testing.T) {
		engine := &fakeEngine{healthy: true}
		indexed, err := newTestService(t, engine).Reindex(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]int{
			schema.CollectionLegalProcesses: 2,
			schema.CollectionBlogPosts:      2,
			schema.CollectionDecisions:      3,
		}, indexed)

		visible := map[any]any{}
		for _, record := range engine.upserts[schema.CollectionDecisions] {
			visible[record["id"]] = record["visible"]
		}
		assert.Equal(t, map[any]any{"d1": true, "d2": true, "d3": false}, visible)
	})
}

/*
TestProject keeps only the searchable fields.
*/
func TestProject(t *testing.T) {
	target, ok := targetFor(schema.CollectionBlogPosts)
	require.True(t, ok)

	record := target.project(docstore.Document{
		"id": "p1", "title": "Başlık", "author": "Ayşe", "is_published": false, "tags": []any{"a"},
	})

	assert.Equal(t, Record{"id": "p1", "title": "Başlık", "tags": []any{"a"}, "visible": false}, record)

	_, ok = targetFor(schema.CollectionContentPages)
	assert.False(t, ok)
}
