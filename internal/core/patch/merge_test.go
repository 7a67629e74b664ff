// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package patch_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var legalAid = patch.Policy{
	Fields: []string{
		"title", "description", "sections", "helplines", "baro_contacts",
		"required_documents", "important_notes", "eligibility_criteria",
		"application_process", "contact_info", "is_active",
	},
	Lists:           []string{"baro_contacts", "helplines", "sections", "required_documents", "important_notes"},
	Sticky:          []string{"important_notes"},
	ClearOnEmpty:    []string{"baro_contacts", "helplines", "sections", "required_documents", "important_notes"},
	EmptyIsOmission: true,
}

/*
TestMerge_IgnoresUnknownAndBaseFields verifies the allow-list.
*/
func TestMerge_IgnoresUnknownAndBaseFields(t *testing.T) {
	existing := map[string]any{"id": "aid", "title": "Adli Yardım"}
	set := legalAid.Merge(existing, map[string]any{
		"id":         "hijack",
		"created_at": "1999-01-01T00:00:00Z",
		"unknown":    1,
		"title":      "Yeni",
	}, nil, now)

	assert.Equal(t, "Yeni", set["title"])
	assert.NotContains(t, set, "id")
	assert.NotContains(t, set, "created_at")
	assert.NotContains(t, set, "unknown")
	assert.Equal(t, now, set["updated_at"])
}

/*
TestMerge_NullHandling covers null for list and scalar fields.
*/
func TestMerge_NullHandling(t *testing.T) {
	set := legalAid.Merge(map[string]any{"id": "aid"}, map[string]any{
		"helplines":   nil,
		"description": nil,
	}, nil, now)

	assert.Equal(t, []any{}, set["helplines"])
	assert.NotContains(t, set, "description")
}

/*
TestMerge_StickyAndClearOnEmpty covers the omission rules of the legal-aid
policy: an omitted sticky field keeps its stored value, an explicit empty list
clears it and an empty string is treated as not supplied.
*/
func TestMerge_StickyAndClearOnEmpty(t *testing.T) {
	existing := map[string]any{
		"id":              "aid",
		"important_notes": []any{"Başvuru ücretsizdir"},
		"baro_contacts":   []any{map[string]any{"city": "İstanbul"}},
		"description":     "Eski",
	}

	tests := []struct {
		name    string
		payload map[string]any
		check   func(t *testing.T, set map[string]any)
	}{
		{
			name:    "StickyOmitted",
			payload: map[string]any{"title": "Adli Yardım"},
			check: func(t *testing.T, set map[string]any) {
				assert.Equal(t, []any{"Başvuru ücretsizdir"}, set["important_notes"])
				assert.NotContains(t, set, "baro_contacts")
			},
		},
		{
			name:    "StickyCleared",
			payload: map[string]any{"important_notes": []any{}},
			check: func(t *testing.T, set map[string]any) {
				assert.Equal(t, []any{}, set["important_notes"])
			},
		},
		{
			name:    "ListCleared",
			payload: map[string]any{"baro_contacts": []any{}},
			check: func(t *testing.T, set map[string]any) {
				assert.Equal(t, []any{}, set["baro_contacts"])
			},
		},
		{
			name:    "EmptyStringOmitted",
			payload: map[string]any{"description": "", "contact_info": map[string]any{}},
			check: func(t *testing.T, set map[string]any) {
				assert.NotContains(t, set, "description")
				assert.NotContains(t, set, "contact_info")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, legalAid.Merge(existing, tt.payload, nil, now))
		})
	}
}

/*
TestMerge_WithoutEmptyIsOmission applies empty values as given.
*/
func TestMerge_WithoutEmptyIsOmission(t *testing.T) {
	policy := patch.Policy{Fields: []string{"summary", "keywords"}}

	set := policy.Merge(map[string]any{"id": "d"}, map[string]any{"summary": "", "keywords": []any{}}, nil, now)

	assert.Equal(t, "", set["summary"])
	assert.Equal(t, []any{}, set["keywords"])
}

/*
TestMerge_NewDocument builds a complete document when nothing is stored.
*/
func TestMerge_NewDocument(t *testing.T) {
	defaults := map[string]any{"title": "Adli Yardım", "is_active": true, "helplines": []any{}}

	document := legalAid.Merge(nil, map[string]any{"title": "Ücretsiz Hukuki Yardım", "hacker": true}, defaults, now)

	assert.Equal(t, "Ücretsiz Hukuki Yardım", document["title"])
	assert.Equal(t, true, document["is_active"])
	assert.Equal(t, []any{}, document["important_notes"])
	assert.NotContains(t, document, "hacker")
	assert.NotEmpty(t, document["id"])
	assert.Equal(t, now, document["created_at"])
	assert.Equal(t, now, document["updated_at"])

	again := legalAid.Merge(nil, map[string]any{}, defaults, now)
	assert.NotEqual(t, document["id"], again["id"])
}

/*
TestCreate keeps a caller-supplied id.
*/
func TestCreate(t *testing.T) {
	policy := patch.Policy{Fields: []string{"title"}}

	withID := policy.Create(map[string]any{"id": "bosanma-sureci", "title": "Boşanma"}, nil, now)
	assert.Equal(t, "bosanma-sureci", withID["id"])

	generated := policy.Create(map[string]any{"id": "  ", "title": "Boşanma"}, nil, now)
	assert.NotEqual(t, "  ", generated["id"])
	assert.NotEmpty(t, generated["id"])
}

type sampleEntity struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Internal  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	hidden    string
}

/*
TestFieldsOf lists writable JSON fields in declaration order.
*/
func TestFieldsOf(t *testing.T) {
	assert.Equal(t, []string{"title", "tags"}, patch.FieldsOf(sampleEntity{}))
	assert.Equal(t, []string{"title", "tags"}, patch.FieldsOf(&sampleEntity{}))
}

/*
TestListsOf lists only the slice-typed fields.
*/
func TestListsOf(t *testing.T) {
	assert.Equal(t, []string{"tags"}, patch.ListsOf(sampleEntity{}))
}

/*
TestDecode reports type mismatches as unprocessable and keeps defaults.
*/
func TestDecode(t *testing.T) {
	entity, err := patch.Decode(map[string]any{"title": "Boşanma", "_key": "4", "updated_at": now}, func() sampleEntity {
		return sampleEntity{Tags: []string{"default"}}
	})
	require.NoError(t, err)
	assert.Equal(t, "Boşanma", entity.Title)
	assert.Equal(t, []string{"default"}, entity.Tags)
	assert.True(t, now.Equal(entity.UpdatedAt))

	_, err = patch.Decode[sampleEntity](map[string]any{"tags": "aile"}, nil)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusUnprocessableEntity, appError.HTTPStatus)
}

/*
TestApply overlays a patch without mutating its inputs.
*/
func TestApply(t *testing.T) {
	existing := map[string]any{"title": "A", "slug": "a"}
	set := map[string]any{"title": "B"}

	merged := patch.Apply(existing, set)

	assert.Equal(t, map[string]any{"title": "B", "slug": "a"}, merged)
	assert.Equal(t, "A", existing["title"])
}

/*
TestPolicy_Without drops fields from the allow-list only.
*/
func TestPolicy_Without(t *testing.T) {
	base := patch.Policy{Fields: []string{"title", "slug", "content"}, Lists: []string{"tags"}}
	frozen := base.Without("slug")

	set := frozen.Merge(map[string]any{"id": "1"}, map[string]any{"slug": "yeni", "title": "Yeni"}, nil, now)

	assert.NotContains(t, set, "slug")
	assert.Equal(t, "Yeni", set["title"])
	assert.Equal(t, []string{"title", "slug", "content"}, base.Fields)
	assert.Equal(t, []string{"tags"}, frozen.Lists)
}
