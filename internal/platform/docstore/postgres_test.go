// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestBuildSelect_Clauses checks the rendered SQL and argument order for each
filter clause.
*/
func TestBuildSelect_Clauses(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "All",
			query:    Query{},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 ORDER BY key ASC`,
			wantArgs: []any{"blog_posts"},
		},
		{
			name:     "Equality",
			query:    Query{Filter: Where("is_published", true).And("category", "İş Hukuku")},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND body @> $2::jsonb ORDER BY key ASC`,
			wantArgs: []any{"blog_posts", `{"category":"İş Hukuku","is_published":true}`},
		},
		{
			name:     "Key",
			query:    Query{Filter: ByKey("17")},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND key = $2 ORDER BY key ASC`,
			wantArgs: []any{"blog_posts", int64(17)},
		},
		{
			name:     "MalformedKey",
			query:    Query{Filter: ByKey("abc")},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND FALSE ORDER BY key ASC`,
			wantArgs: []any{"blog_posts"},
		},
		{
			name:     "MembershipAndLimit",
			query:    Query{Filter: All().In("category", "hukuk", "ceza"), Limit: 5},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND body->>($2::text) = ANY($3::text[]) ORDER BY key ASC LIMIT $4`,
			wantArgs: []any{"blog_posts", "category", []string{"hukuk", "ceza"}, 5},
		},
		{
			name:     "TrueOrMissing",
			query:    Query{Filter: All().AndTrueOrMissing("is_published")},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND COALESCE(body->($2::text), 'true'::jsonb) = 'true'::jsonb ORDER BY key ASC`,
			wantArgs: []any{"blog_posts", "is_published"},
		},
		{
			name:     "Missing",
			query:    Query{Filter: All().AndMissing("id")},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 AND COALESCE(jsonb_typeof(body->($2::text)), 'null') = 'null' ORDER BY key ASC`,
			wantArgs: []any{"blog_posts", "id"},
		},
		{
			name:     "NewestFirst",
			query:    Query{Sort: []Sort{Newest("published_at")}},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 ORDER BY (body->>($2::text))::timestamptz DESC NULLS LAST, key ASC`,
			wantArgs: []any{"blog_posts", "published_at"},
		},
		{
			name:     "PlainSort",
			query:    Query{Sort: []Sort{{Field: "order"}}},
			wantSQL:  `SELECT key, body FROM content.document WHERE collection = $1 ORDER BY body->($2::text) ASC NULLS LAST, key ASC`,
			wantArgs: []any{"blog_posts", "order"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, args, err := buildSelect("blog_posts", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, statement)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

/*
TestBuildSelect_EveryArgumentIsReferenced verifies each bound value has a
placeholder in the statement, including time-ordered listings.
*/
func TestBuildSelect_EveryArgumentIsReferenced(t *testing.T) {
	queries := map[string]Query{
		"PublishedBlogPosts": {Filter: Where("is_published", true), Sort: []Sort{Newest("published_at")}, Limit: 10},
		"VisibleDecisions":   {Filter: All().AndTrueOrMissing("is_published"), Sort: []Sort{Newest("published_at"), Newest("created_at")}, Limit: 20},
		"PlainAndTime":       {Sort: []Sort{{Field: "order"}, Newest("created_at")}},
	}

	for name, query := range queries {
		t.Run(name, func(t *testing.T) {
			statement, args, err := buildSelect("blog_posts", query)
			require.NoError(t, err)

			for index := range args {
				placeholder := regexp.MustCompile(fmt.Sprintf(`\$%d\b`, index+1))
				assert.True(t, placeholder.MatchString(statement), "$%d (%v) is not referenced in %s", index+1, args[index], statement)
			}
		})
	}
}

/*
TestBuildSelect_Search verifies the search pattern is bound once and escaped.
*/
func TestBuildSelect_Search(t *testing.T) {
	statement, args, err := buildSelect("decisions", Query{
		Filter: All().Matching("100%_kesin", "title", "keywords"),
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"decisions", `%100\%\_kesin%`, "title", "keywords"}, args)
	assert.Contains(t, statement, "jsonb_array_elements_text(body->($3::text))")
	assert.Contains(t, statement, "COALESCE(body->>($4::text), '') ILIKE $2")
	assert.Contains(t, statement, " OR ")
}

/*
TestBuildSelect_NegativeLimit rejects a negative cap.
*/
func TestBuildSelect_NegativeLimit(t *testing.T) {
	_, _, err := buildSelect("blog_posts", Query{Limit: -1})
	assert.Error(t, err)
}

/*
TestBuildUpdate_TargetsFirstMatch verifies updates merge into a single row.
*/
func TestBuildUpdate_TargetsFirstMatch(t *testing.T) {
	statement, args, err := buildUpdate("content_pages", Where("slug", "hakkimizda"), Document{"title": "Hakkımızda", "_key": "3"})
	require.NoError(t, err)

	assert.Equal(t,
		`UPDATE content.document SET body = body || $1::jsonb, updatedat = NOW() WHERE key = (SELECT key FROM content.document WHERE collection = $2 AND body @> $3::jsonb ORDER BY key LIMIT 1)`,
		statement,
	)
	assert.Equal(t, []any{`{"title":"Hakkımızda"}`, "content_pages", `{"slug":"hakkimizda"}`}, args)
}

/*
TestEscapeLike covers the LIKE wildcard escaping.
*/
func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
