// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names used by hand-written SQL.
package schema

// ContentDocumentTable represents the 'content.document' table
type ContentDocumentTable struct {
	Table      string
	Key        string
	Collection string
	Body       string
	CreatedAt  string
	UpdatedAt  string
}

// ContentDocument is the schema definition for content.document
var ContentDocument = ContentDocumentTable{
	Table:      "content.document",
	Key:        "key",
	Collection: "collection",
	Body:       "body",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}
