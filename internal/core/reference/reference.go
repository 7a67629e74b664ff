// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the glossary of documents that legal processes ask
for ("Kimlik belgesi", "Tapu senedi", ...).

Each entry pairs a document name, unique across the glossary, with a short
description shown next to the process steps.
*/
package reference

import "time"

const (
	FieldDocumentName = "document_name"
	FieldDescription  = "description"
)

// DocumentDescription explains one required document.
type DocumentDescription struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"document_name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newDocumentDescription() DocumentDescription {
	return DocumentDescription{}
}
