// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
)

// Postgres stores documents as JSONB rows in the content.document table.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres wraps an open pool. The table is created by the migrations.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// FindOne implements [Store].
func (store *Postgres) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	documents, err := store.Find(ctx, collection, Query{Filter: filter, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, ErrNotFound
	}
	return documents[0], nil
}

// Find implements [Store].
func (store *Postgres) Find(ctx context.Context, collection string, query Query) ([]Document, error) {
	statement, args, err := buildSelect(collection, query)
	if err != nil {
		return nil, err
	}

	rows, err := store.db.Query(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("docstore: find %s: %w", collection, err)
	}
	defer rows.Close()

	documents := make([]Document, 0)
	for rows.Next() {
		var key int64
		var body []byte
		if err := rows.Scan(&key, &body); err != nil {
			return nil, fmt.Errorf("docstore: scan %s: %w", collection, err)
		}

		var document Document
		if err := json.Unmarshal(body, &document); err != nil {
			return nil, fmt.Errorf("docstore: decode %s/%d: %w", collection, key, err)
		}
		if document == nil {
			document = Document{}
		}
		document[KeyField] = strconv.FormatInt(key, 10)
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("docstore: iterate %s: %w", collection, err)
	}

	return documents, nil
}

// Insert implements [Store].
func (store *Postgres) Insert(ctx context.Context, collection string, document Document) error {
	body, err := json.Marshal(StripInternal(shallowCopy(document)))
	if err != nil {
		return fmt.Errorf("docstore: encode %s: %w", collection, err)
	}

	table := schema.ContentDocument
	statement := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2::jsonb)`,
		table.Table, table.Collection, table.Body,
	)

	if _, err := store.db.Exec(ctx, statement, collection, string(body)); err != nil {
		return fmt.Errorf("docstore: insert %s: %w", collection, err)
	}
	return nil
}

// Update implements [Store].
func (store *Postgres) Update(ctx context.Context, collection string, filter Filter, set Document) error {
	statement, args, err := buildUpdate(collection, filter, set)
	if err != nil {
		return err
	}

	tag, err := store.db.Exec(ctx, statement, args...)
	if err != nil {
		return fmt.Errorf("docstore: update %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements [Store].
func (store *Postgres) Delete(ctx context.Context, collection string, filter Filter) error {
	builder := &sqlBuilder{}
	where := builder.where(collection, filter)

	table := schema.ContentDocument
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = (SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT 1)`,
		table.Table, table.Key, table.Key, table.Table, where, table.Key,
	)

	tag, err := store.db.Exec(ctx, statement, builder.args...)
	if err != nil {
		return fmt.Errorf("docstore: delete %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany implements [Store].
func (store *Postgres) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	builder := &sqlBuilder{}
	where := builder.where(collection, filter)

	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s`, schema.ContentDocument.Table, where)

	tag, err := store.db.Exec(ctx, statement, builder.args...)
	if err != nil {
		return 0, fmt.Errorf("docstore: delete many %s: %w", collection, err)
	}
	return tag.RowsAffected(), nil
}

// Count implements [Store].
func (store *Postgres) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	builder := &sqlBuilder{}
	where := builder.where(collection, filter)

	statement := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.ContentDocument.Table, where)

	var total int
	if err := store.db.QueryRow(ctx, statement, builder.args...).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("docstore: count %s: %w", collection, err)
	}
	return total, nil
}

// Ping implements [Store].
func (store *Postgres) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

// # SQL Building

// sqlBuilder accumulates positional arguments while clauses are rendered.
type sqlBuilder struct {
	args []any
}

// bind appends value and returns its placeholder.
func (builder *sqlBuilder) bind(value any) string {
	builder.args = append(builder.args, value)
	return "$" + strconv.Itoa(len(builder.args))
}

// field renders a top-level JSON field accessor. The explicit text cast keeps
// the jsonb -> operator from being ambiguous with the integer overload.
func (builder *sqlBuilder) field(name string, asText bool) string {
	operator := "->"
	if asText {
		operator = "->>"
	}
	return fmt.Sprintf("%s%s(%s::text)", schema.ContentDocument.Body, operator, builder.bind(name))
}

func (builder *sqlBuilder) where(collection string, filter Filter) string {
	table := schema.ContentDocument
	clauses := []string{fmt.Sprintf("%s = %s", table.Collection, builder.bind(collection))}

	if filter.Key != "" {
		key, err := strconv.ParseInt(filter.Key, 10, 64)
		if err != nil {
			clauses = append(clauses, "FALSE")
		} else {
			clauses = append(clauses, fmt.Sprintf("%s = %s", table.Key, builder.bind(key)))
		}
	}

	if len(filter.Equal) > 0 {
		// json.Marshal sorts map keys, so the rendered argument is stable.
		containment, _ := json.Marshal(filter.Equal)
		clauses = append(clauses, fmt.Sprintf("%s @> %s::jsonb", table.Body, builder.bind(string(containment))))
	}

	for _, name := range sortedFieldNames(filter.AnyOf) {
		accessor := builder.field(name, true)
		clauses = append(clauses, fmt.Sprintf("%s = ANY(%s::text[])", accessor, builder.bind(filter.AnyOf[name])))
	}

	for _, name := range filter.TrueOrMissing {
		clauses = append(clauses, fmt.Sprintf("COALESCE(%s, 'true'::jsonb) = 'true'::jsonb", builder.field(name, false)))
	}

	for _, name := range filter.Missing {
		clauses = append(clauses, fmt.Sprintf("COALESCE(jsonb_typeof(%s), 'null') = 'null'", builder.field(name, false)))
	}

	if filter.Search != nil && len(filter.Search.Fields) > 0 {
		pattern := builder.bind("%" + escapeLike(filter.Search.Term) + "%")

		alternatives := make([]string, 0, len(filter.Search.Fields))
		for _, name := range filter.Search.Fields {
			placeholder := builder.bind(name)
			alternatives = append(alternatives, fmt.Sprintf(
				"(CASE jsonb_typeof(%[1]s->(%[2]s::text)) "+
					"WHEN 'array' THEN EXISTS (SELECT 1 FROM jsonb_array_elements_text(%[1]s->(%[2]s::text)) AS element(value) WHERE element.value ILIKE %[3]s) "+
					"ELSE COALESCE(%[1]s->>(%[2]s::text), '') ILIKE %[3]s END)",
				table.Body, placeholder, pattern,
			))
		}
		clauses = append(clauses, "("+strings.Join(alternatives, " OR ")+")")
	}

	return strings.Join(clauses, " AND ")
}

func (builder *sqlBuilder) orderBy(sorts []Sort) string {
	terms := make([]string, 0, len(sorts)+1)
	for _, order := range sorts {
		var expression string
		if order.Time {
			expression = fmt.Sprintf("(%s)::timestamptz", builder.field(order.Field, true))
		} else {
			expression = builder.field(order.Field, false)
		}

		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		terms = append(terms, fmt.Sprintf("%s %s NULLS LAST", expression, direction))
	}
	terms = append(terms, schema.ContentDocument.Key+" ASC")
	return strings.Join(terms, ", ")
}

func buildSelect(collection string, query Query) (string, []any, error) {
	table := schema.ContentDocument
	builder := &sqlBuilder{}

	where := builder.where(collection, query.Filter)
	order := builder.orderBy(query.Sort)

	statement := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s ORDER BY %s`,
		table.Key, table.Body, table.Table, where, order,
	)

	if query.Limit < 0 {
		return "", nil, fmt.Errorf("docstore: negative limit %d", query.Limit)
	}
	if query.Limit > 0 {
		statement += " LIMIT " + builder.bind(query.Limit)
	}

	return statement, builder.args, nil
}

func buildUpdate(collection string, filter Filter, set Document) (string, []any, error) {
	table := schema.ContentDocument
	builder := &sqlBuilder{}

	patch, err := json.Marshal(StripInternal(shallowCopy(set)))
	if err != nil {
		return "", nil, fmt.Errorf("docstore: encode patch %s: %w", collection, err)
	}
	patchPlaceholder := builder.bind(string(patch))

	where := builder.where(collection, filter)

	statement := fmt.Sprintf(
		`UPDATE %[1]s SET %[2]s = %[2]s || %[3]s::jsonb, %[4]s = NOW() WHERE %[5]s = (SELECT %[5]s FROM %[1]s WHERE %[6]s ORDER BY %[5]s LIMIT 1)`,
		table.Table, table.Body, patchPlaceholder, table.UpdatedAt, table.Key, where,
	)

	return statement, builder.args, nil
}

// escapeLike escapes the LIKE wildcards so the search term matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func sortedFieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
