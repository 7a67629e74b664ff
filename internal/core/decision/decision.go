// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package decision

import "time"

// Importance ranks a decision for the public listing badges.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

const (
	FieldTitle      = "title"
	FieldCategory   = "category"
	FieldKeywords   = "keywords"
	FieldImportance = "importance_level"
)

// Decision is a summarized Supreme Court (Yargıtay) decision.
//
// Rows stored before publication existed have no is_published field and are
// treated as published.
type Decision struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DecisionNumber  string     `json:"decision_number"`
	Date            string     `json:"date"`
	Court           string     `json:"court"`
	Summary         string     `json:"summary"`
	FullText        string     `json:"full_text"`
	Category        string     `json:"category"`
	Keywords        []string   `json:"keywords"`
	ImportanceLevel Importance `json:"importance_level"`
	IsPublished     bool       `json:"is_published"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newDecision() Decision {
	return Decision{
		Keywords:        []string{},
		ImportanceLevel: ImportanceMedium,
		IsPublished:     true,
	}
}

// Filter narrows the public listing.
type Filter struct {
	Category   string
	Importance string
	Limit      int
}
