// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode converts a typed entity into a [Document] using its JSON field names.
// Internal keys are removed from the result.
func Encode(value any) (Document, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}

	var document Document
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}

	return StripInternal(document), nil
}

// Decode fills target from a [Document]. Fields absent from the document keep
// the values target already holds, which is how entity defaults survive.
func Decode(document Document, target any) error {
	raw, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}

	return nil
}

// Clone returns a deep copy of document with every value reduced to its JSON
// form (numbers become float64, timestamps become RFC 3339 strings).
func Clone(document Document) (Document, error) {
	if document == nil {
		return nil, nil
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("docstore: clone: %w", err)
	}

	var copied Document
	if err := json.Unmarshal(raw, &copied); err != nil {
		return nil, fmt.Errorf("docstore: clone: %w", err)
	}

	return copied, nil
}

// StripInternal removes underscore-prefixed keys from the top level of document.
func StripInternal(document Document) Document {
	for key := range document {
		if strings.HasPrefix(key, "_") {
			delete(document, key)
		}
	}
	return document
}

// InternalKey returns the driver-assigned key of a stored document.
func InternalKey(document Document) string {
	key, _ := document[KeyField].(string)
	return key
}
