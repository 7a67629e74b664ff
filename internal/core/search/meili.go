// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

// indexPrefix namespaces the indexes of this service in a shared instance.
const indexPrefix = "legaldesign_"

// healthInterval is how often the background monitor probes the engine.
const healthInterval = 10 * time.Second

// Meili implements [Engine] on top of Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	logger  *slog.Logger
}

/*
NewMeili connects to Meilisearch and configures one index per target.

Description: An unreachable instance is not fatal. The engine starts as
unhealthy and a background monitor, bound to ctx, reconfigures the indexes
once it recovers.

Parameters:
  - ctx: context.Context (stops the health monitor)
  - url: string
  - apiKey: string
  - logger: *slog.Logger
*/
func NewMeili(ctx context.Context, url, apiKey string, logger *slog.Logger) *Meili {
	engine := &Meili{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		logger: logger,
	}

	if _, err := engine.client.Health(); err != nil {
		logger.Warn("search_engine_unavailable", slog.String("url", url), slog.Any("error", err))
		engine.healthy.Store(false)
	} else {
		engine.healthy.Store(true)
		engine.configureIndexes()
	}

	go engine.healthLoop(ctx)
	return engine
}

func indexUID(collection string) string {
	return indexPrefix + collection
}

func (engine *Meili) configureIndexes() {
	filterable := []interface{}{"visible"}

	for _, target := range targets {
		uid := indexUID(target.collection)
		if _, err := engine.client.CreateIndex(&meili.IndexConfig{Uid: uid, PrimaryKey: "id"}); err != nil {
			engine.logger.Debug("search_index_create_skipped", slog.String("index", uid), slog.Any("error", err))
		}

		index := engine.client.Index(uid)
		if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
			engine.logger.Warn("search_index_filterable_failed", slog.String("index", uid), slog.Any("error", err))
		}

		searchable := append([]string{}, target.fields...)
		if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
			engine.logger.Warn("search_index_searchable_failed", slog.String("index", uid), slog.Any("error", err))
		}
	}
}

func (engine *Meili) healthLoop(ctx context.Context) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := engine.client.Health()
			wasHealthy := engine.healthy.Load()
			engine.healthy.Store(err == nil)

			if err == nil && !wasHealthy {
				engine.logger.Info("search_engine_recovered")
				engine.configureIndexes()
			}
		}
	}
}

// Healthy implements [Engine].
func (engine *Meili) Healthy() bool {
	return engine.healthy.Load()
}

// Query implements [Engine] with a single multi-search request.
func (engine *Meili) Query(ctx context.Context, text string, collections []string, limit int) (map[string][]string, error) {
	if !engine.healthy.Load() {
		return nil, fmt.Errorf("search: meilisearch unhealthy")
	}

	queries := make([]*meili.SearchRequest, 0, len(collections))
	for _, collection := range collections {
		queries = append(queries, &meili.SearchRequest{
			IndexUID: indexUID(collection),
			Query:    text,
			Limit:    int64(limit),
			Filter:   "visible = true",
		})
	}

	response, err := engine.client.MultiSearch(&meili.MultiSearchRequest{Queries: queries})
	if err != nil {
		engine.healthy.Store(false)
		return nil, fmt.Errorf("search: multi-search: %w", err)
	}

	ids := make(map[string][]string, len(collections))
	for _, result := range response.Results {
		collection := strings.TrimPrefix(result.IndexUID, indexPrefix)
		for _, hit := range result.Hits {
			if id := decodeString(hit, "id"); id != "" {
				ids[collection] = append(ids[collection], id)
			}
		}
	}

	return ids, nil
}

// Upsert implements [Engine].
func (engine *Meili) Upsert(ctx context.Context, collection string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := engine.client.Index(indexUID(collection)).AddDocuments(records, nil)
	return err
}

// Remove implements [Engine].
func (engine *Meili) Remove(ctx context.Context, collection, id string) error {
	_, err := engine.client.Index(indexUID(collection)).DeleteDocument(id, nil)
	return err
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}
	return ""
}
