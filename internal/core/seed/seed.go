// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the shipped catalog into the store.

Two entry points exist. [Seeder.Startup] fills collections that are still
empty when the service boots. [Seeder.MigrateFrontendData] is the admin
operation that inserts every catalog entry whose natural key is not stored
yet. Entries always go through their domain service, so they are validated,
stamped and indexed like an admin write.
*/
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taibuivan/legaldesign/internal/core/catalog"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// Creator stores one catalog entry through its domain service.
type Creator func(context context.Context, payload map[string]any) error

// Create adapts a domain service Create method to a [Creator].
func Create[T any](create func(context.Context, map[string]any) (T, error)) Creator {
	return func(ctx context.Context, payload map[string]any) error {
		_, err := create(ctx, payload)
		return err
	}
}

// Writers are the domain operations the seeder drives.
type Writers struct {
	Processes            Creator
	CalculatorParameters Creator
	DocumentDescriptions Creator
	BlogPosts            Creator

	// LegalAid stores the default legal aid page when none exists.
	LegalAid Ensurer

	// DefaultAdmin creates the initial admin account when none exists.
	DefaultAdmin Ensurer
}

// Ensurer creates a record when it is missing.
type Ensurer func(context.Context) error

// catalogSource is one catalog list and where it goes. Entries are matched
// on key and named by display in error reports.
type catalogSource struct {
	label      string
	collection string
	key        string
	display    string
	load       func() ([]map[string]any, error)
	create     Creator
}

// Seeder loads the catalog.
type Seeder struct {
	store   docstore.Store
	writers Writers
	logger  *slog.Logger
}

// NewSeeder constructs a [Seeder].
func NewSeeder(store docstore.Store, writers Writers, logger *slog.Logger) *Seeder {
	return &Seeder{store: store, writers: writers, logger: logger}
}

func (seeder *Seeder) processes() catalogSource {
	return catalogSource{"Legal process", schema.CollectionLegalProcesses, "title", "title", catalog.LegalProcesses, seeder.writers.Processes}
}

func (seeder *Seeder) parameters() catalogSource {
	return catalogSource{"Calculator parameter", schema.CollectionCalculatorParameters, "name", "name", catalog.CalculatorParameters, seeder.writers.CalculatorParameters}
}

func (seeder *Seeder) descriptions() catalogSource {
	return catalogSource{"Document description", schema.CollectionDocumentDescriptions, "document_name", "document_name", catalog.DocumentDescriptions, seeder.writers.DocumentDescriptions}
}

func (seeder *Seeder) blogPosts() catalogSource {
	return catalogSource{"Blog post", schema.CollectionBlogPosts, "slug", "title", catalog.BlogPosts, seeder.writers.BlogPosts}
}

/*
Startup seeds the processes and calculator parameters when their
collections are empty, then makes sure the legal aid page and the default
admin exist.

Description: Failures are logged and collected; the service starts anyway.

Returns:
  - error: Every failure joined, or nil
*/
func (seeder *Seeder) Startup(context context.Context) error {
	var failures []error

	for _, source := range []catalogSource{seeder.processes(), seeder.parameters()} {
		count, err := seeder.store.Count(context, source.collection, docstore.All())
		if err != nil {
			failures = append(failures, fmt.Errorf("seed_count_failed: %s: %w", source.collection, err))
			continue
		}
		if count > 0 {
			continue
		}

		inserted, errs := seeder.insertMissing(context, source, false)
		failures = append(failures, errs...)
		seeder.logger.Info("seed_collection_inserted",
			slog.String("collection", source.collection),
			slog.Int("inserted", inserted),
		)
	}

	for _, ensure := range []Ensurer{seeder.writers.LegalAid, seeder.writers.DefaultAdmin} {
		if ensure == nil {
			continue
		}
		if err := ensure(context); err != nil {
			failures = append(failures, err)
		}
	}

	for _, failure := range failures {
		seeder.logger.Warn("seed_failed", slog.Any("error", failure))
	}
	return errors.Join(failures...)
}

// MigrationResults counts the inserted entries per collection.
type MigrationResults struct {
	LegalProcesses       int      `json:"legal_processes"`
	CalculatorParameters int      `json:"calculator_parameters"`
	DocumentDescriptions int      `json:"document_descriptions"`
	BlogPosts            int      `json:"blog_posts"`
	Errors               []string `json:"errors"`
}

// MigrationReport is the response of the migrate-frontend-data operation.
type MigrationReport struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Results MigrationResults `json:"results"`
}

/*
MigrateFrontendData inserts every catalog entry whose natural key (title,
name, document_name, slug) is not stored yet.

Description: An entry that fails is reported in the errors list and the run
goes on. Only a failure that stops the whole run (unreadable catalog,
unreachable store) is returned as an error.

Returns:
  - *MigrationReport: Per-collection insert counts and entry errors
  - error: 500 "Migration failed" when the run was aborted
*/
func (seeder *Seeder) MigrateFrontendData(context context.Context) (*MigrationReport, error) {
	results := MigrationResults{Errors: []string{}}
	counters := []*int{
		&results.LegalProcesses,
		&results.CalculatorParameters,
		&results.DocumentDescriptions,
		&results.BlogPosts,
	}

	for index, source := range []catalogSource{seeder.processes(), seeder.parameters(), seeder.descriptions(), seeder.blogPosts()} {
		inserted, errs := seeder.insertMissing(context, source, true)
		for _, err := range errs {
			var aborted *abortError
			if errors.As(err, &aborted) {
				return nil, &apperr.AppError{
					Code:       "INTERNAL_ERROR",
					Message:    "Migration failed",
					HTTPStatus: http.StatusInternalServerError,
					Cause:      aborted.err,
				}
			}
			results.Errors = append(results.Errors, err.Error())
		}
		*counters[index] = inserted
	}

	seeder.logger.Info("frontend_data_migrated",
		slog.Int("legal_processes", results.LegalProcesses),
		slog.Int("calculator_parameters", results.CalculatorParameters),
		slog.Int("document_descriptions", results.DocumentDescriptions),
		slog.Int("blog_posts", results.BlogPosts),
		slog.Int("errors", len(results.Errors)),
	)

	return &MigrationReport{Success: true, Message: "Migration completed", Results: results}, nil
}

// abortError marks a failure that stops the whole load.
type abortError struct{ err error }

func (e *abortError) Error() string { return e.err.Error() }

// insertMissing creates the entries of source. With checkKey, entries whose
// natural key is already stored are skipped.
func (seeder *Seeder) insertMissing(context context.Context, source catalogSource, checkKey bool) (int, []error) {
	if source.create == nil {
		return 0, nil
	}

	entries, err := source.load()
	if err != nil {
		return 0, []error{&abortError{err: err}}
	}

	inserted := 0
	var failures []error
	for _, entry := range entries {
		name := fmt.Sprint(entry[source.display])

		if checkKey {
			count, err := seeder.store.Count(context, source.collection, docstore.Where(source.key, entry[source.key]))
			if err != nil {
				return inserted, append(failures, &abortError{err: err})
			}
			if count > 0 {
				continue
			}
		}

		if err := source.create(context, entry); err != nil {
			failures = append(failures, fmt.Errorf("%s '%s': %w", source.label, name, err))
			continue
		}
		inserted++
	}

	return inserted, failures
}
