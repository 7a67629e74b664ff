// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// ErrEngineUnavailable is reported by readiness checks when a configured
// engine cannot be reached.
var ErrEngineUnavailable = errors.New("search: engine unavailable")

// # Service Layer

// Service answers searches and keeps the engine in sync with the store.
// It implements [Indexer].
type Service struct {
	store  docstore.Store
	engine Engine
	logger *slog.Logger
}

// NewService builds the search facade. engine may be nil, in which case every
// query is answered by the document store.
func NewService(store docstore.Store, engine Engine, logger *slog.Logger) *Service {
	return &Service{store: store, engine: engine, logger: logger}
}

/*
Search looks up text across the requested content kinds.

Description: The engine is tried first when it is healthy. Any engine error
falls back to the document store, so a search never fails because the
engine is down. Each kind yields at most [HitsPerKind] full documents.

Parameters:
  - context: context.Context
  - text: string (at least [MinQueryLength] characters)
  - kind: string (processes, blog, decisions or empty for all)

Returns:
  - Results: hits keyed by processes, blog_posts and decisions, empty for an
    unknown kind
  - error: Unprocessable for a short query
*/
func (service *Service) Search(context context.Context, text, kind string) (Results, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinQueryLength {
		return nil, apperr.Unprocessable(fmt.Sprintf("Query parameter \"q\" must be at least %d characters", MinQueryLength))
	}

	selected := selectTargets(kind)
	if len(selected) == 0 {
		return Results{}, nil
	}

	if service.engine != nil && service.engine.Healthy() {
		results, err := service.searchEngine(context, text, selected)
		if err == nil {
			return results, nil
		}
		service.logger.Warn("search_engine_failed_fallback", slog.Any("error", err))
	}

	return service.searchStore(context, text, selected)
}

// selectTargets returns every target for an empty kind and none for an
// unknown one.
func selectTargets(kind string) []target {
	if kind == "" {
		return targets
	}
	for _, candidate := range targets {
		if string(candidate.kind) == kind {
			return []target{candidate}
		}
	}
	return nil
}

// searchEngine queries the engine and hydrates the hits from the store.
// Hits that vanished or are no longer visible are dropped.
func (service *Service) searchEngine(context context.Context, text string, selected []target) (Results, error) {
	collections := make([]string, 0, len(selected))
	for _, target := range selected {
		collections = append(collections, target.collection)
	}

	ids, err := service.engine.Query(context, text, collections, HitsPerKind)
	if err != nil {
		return nil, err
	}

	results := make(Results, len(selected))
	for _, target := range selected {
		hits := make([]docstore.Document, 0, len(ids[target.collection]))
		for _, id := range ids[target.collection] {
			document, err := service.store.FindOne(context, target.collection, target.visible.And("id", id))
			if errors.Is(err, docstore.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			hits = append(hits, docstore.StripInternal(document))
		}
		results[target.responseKey] = hits
	}

	return results, nil
}

// searchStore answers with a substring match in the document store.
func (service *Service) searchStore(context context.Context, text string, selected []target) (Results, error) {
	results := make(Results, len(selected))
	for _, target := range selected {
		documents, err := service.store.Find(context, target.collection, docstore.Query{
			Filter: target.visible.Matching(text, target.fields...),
			Limit:  HitsPerKind,
		})
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("search_failed: %w", err))
		}

		for _, document := range documents {
			docstore.StripInternal(document)
		}
		results[target.responseKey] = documents
	}
	return results, nil
}

// # Indexing

// Index implements [Indexer]. Collections that are not searchable are ignored.
func (service *Service) Index(collection string, document docstore.Document) {
	target, ok := targetFor(collection)
	if !ok || !service.engineReady() {
		return
	}

	record := target.project(document)
	go func() {
		if err := service.engine.Upsert(context.Background(), collection, []Record{record}); err != nil {
			service.logger.Warn("search_index_failed",
				slog.String("collection", collection),
				slog.Any("id", record["id"]),
				slog.Any("error", err),
			)
		}
	}()
}

// Remove implements [Indexer].
func (service *Service) Remove(collection, id string) {
	if _, ok := targetFor(collection); !ok || !service.engineReady() {
		return
	}

	go func() {
		if err := service.engine.Remove(context.Background(), collection, id); err != nil {
			service.logger.Warn("search_remove_failed",
				slog.String("collection", collection),
				slog.String("id", id),
				slog.Any("error", err),
			)
		}
	}()
}

/*
Reindex pushes every searchable document from the store to the engine.

Returns:
  - map[string]int: number of records sent per collection
  - error: ServiceUnavailable when no healthy engine is configured
*/
func (service *Service) Reindex(context context.Context) (map[string]int, error) {
	if !service.engineReady() {
		return nil, apperr.ServiceUnavailable("Search engine is not available")
	}

	indexed := make(map[string]int, len(targets))
	for _, target := range targets {
		documents, err := service.store.Find(context, target.collection, docstore.Query{})
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("reindex_failed: %w", err))
		}

		records := make([]Record, 0, len(documents))
		for _, document := range documents {
			if id, ok := document["id"].(string); !ok || id == "" {
				continue
			}
			records = append(records, target.project(document))
		}

		if err := service.engine.Upsert(context, target.collection, records); err != nil {
			return nil, apperr.Internal(fmt.Errorf("reindex_failed: %s: %w", target.collection, err))
		}
		indexed[target.collection] = len(records)
	}

	service.logger.Info("search_reindexed", slog.Any("indexed", indexed))
	return indexed, nil
}

// Ping reports whether a configured engine is reachable. Without an engine
// the store answers searches and Ping always succeeds.
func (service *Service) Ping() error {
	if service.engine != nil && !service.engine.Healthy() {
		return ErrEngineUnavailable
	}
	return nil
}

// Enabled reports whether an engine is configured.
func (service *Service) Enabled() bool {
	return service.engine != nil
}

func (service *Service) engineReady() bool {
	return service.engine != nil && service.engine.Healthy()
}
