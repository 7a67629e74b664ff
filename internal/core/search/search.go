// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search answers the public site-wide search.

Three kinds of content are searchable: legal processes, blog posts and
Supreme Court decisions. Each kind is a [target] naming its collection, its
searchable fields and the visibility rule public readers are held to.

# Engines

When Meilisearch is configured and healthy, queries go to it and the hits
are hydrated from the document store by id. Otherwise the store itself
answers with a case-insensitive substring match. Domain services keep the
index current through the [Indexer] they are given.
*/
package search

import (
	"context"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// HitsPerKind caps the results returned for each content kind.
const HitsPerKind = 5

// MinQueryLength is the shortest accepted search term, in characters.
const MinQueryLength = 2

// Kind is a searchable content type as named by the "type" query parameter.
type Kind string

const (
	KindProcesses Kind = "processes"
	KindBlog      Kind = "blog"
	KindDecisions Kind = "decisions"
)

// Record is the projection of a stored document pushed to the engine.
type Record map[string]any

// Results maps a response key (processes, blog_posts, decisions) to its hits.
type Results map[string][]docstore.Document

// Indexer receives write notifications from the domain services.
//
// Both calls return immediately. Indexing failures are logged, never surfaced
// to the writer.
type Indexer interface {
	Index(collection string, document docstore.Document)
	Remove(collection, id string)
}

// Engine is a full-text search backend.
type Engine interface {
	// Healthy reports whether the engine can take queries right now.
	Healthy() bool

	// Query returns the matching ids per collection, best match first.
	Query(ctx context.Context, text string, collections []string, limit int) (map[string][]string, error)

	// Upsert adds or replaces records of one collection.
	Upsert(ctx context.Context, collection string, records []Record) error

	// Remove deletes one record of a collection.
	Remove(ctx context.Context, collection, id string) error
}

// NoopIndexer discards every notification.
type NoopIndexer struct{}

func (NoopIndexer) Index(string, docstore.Document) {}
func (NoopIndexer) Remove(string, string)           {}

// # Targets

// target describes one searchable collection.
type target struct {
	kind        Kind
	collection  string
	responseKey string
	fields      []string

	// visible restricts hits to what public readers may see.
	visible docstore.Filter
}

var targets = []target{
	{
		kind:        KindProcesses,
		collection:  schema.CollectionLegalProcesses,
		responseKey: "processes",
		fields:      []string{"title", "description", "tags"},
		visible:     docstore.All(),
	},
	{
		kind:        KindBlog,
		collection:  schema.CollectionBlogPosts,
		responseKey: "blog_posts",
		fields:      []string{"title", "excerpt", "content", "tags"},
		visible:     docstore.Where("is_published", true),
	},
	{
		kind:        KindDecisions,
		collection:  schema.CollectionDecisions,
		responseKey: "decisions",
		fields:      []string{"title", "summary", "keywords"},
		visible:     docstore.All().AndTrueOrMissing("is_published"),
	},
}

func targetFor(collection string) (target, bool) {
	for _, candidate := range targets {
		if candidate.collection == collection {
			return candidate, true
		}
	}
	return target{}, false
}

// project builds the engine record of a stored document. The visible flag
// mirrors the target's visibility rule so the engine can filter on it.
func (t target) project(document docstore.Document) Record {
	record := Record{"id": document["id"]}
	for _, field := range t.fields {
		if value, ok := document[field]; ok {
			record[field] = value
		}
	}

	published, present := document["is_published"]
	switch t.kind {
	case KindBlog:
		record["visible"] = published == true
	case KindDecisions:
		record["visible"] = !present || published == nil || published == true
	default:
		record["visible"] = true
	}

	return record
}
