// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "time"

const (
	FieldSlug    = "slug"
	FieldTitle   = "title"
	FieldContent = "content"
)

// Page is a CMS-managed page addressed by its slug ("hakkimizda", "kvkk").
//
// The slug is fixed once the page exists. Sections hold the free-form blocks
// the page editor produces.
type Page struct {
	ID              string           `json:"id"`
	Slug            string           `json:"slug"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	MetaDescription string           `json:"meta_description"`
	Author          string           `json:"author"`
	Sections        []map[string]any `json:"sections"`
	IsPublished     bool             `json:"is_published"`
	PublishedAt     *time.Time       `json:"published_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func newPage() Page {
	return Page{Sections: []map[string]any{}, IsPublished: true}
}
