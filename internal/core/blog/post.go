// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import "time"

const (
	FieldTitle    = "title"
	FieldSlug     = "slug"
	FieldCategory = "category"
	FieldTags     = "tags"
)

// Post is a blog article. Drafts have is_published false and no published_at.
type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Author          string     `json:"author"`
	FeaturedImage   string     `json:"featured_image"`
	Tags            []string   `json:"tags"`
	Category        string     `json:"category"`
	IsPublished     bool       `json:"is_published"`
	PublishedAt     *time.Time `json:"published_at"`
	MetaDescription string     `json:"meta_description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newPost() Post {
	return Post{Tags: []string{}, IsPublished: true}
}

// Filter narrows the public listing.
type Filter struct {
	Category string

	// Limit caps the result. Zero means no cap.
	Limit int
}
