// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package patch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

// Decode reads a merged document into a typed entity. The prototype supplies
// defaults for fields the document lacks. A value of the wrong JSON type is
// reported as an Unprocessable error naming the field.
func Decode[T any](document map[string]any, prototype func() T) (*T, error) {
	var entity T
	if prototype != nil {
		entity = prototype()
	}

	err := docstore.Decode(docstore.StripInternal(shallowCopy(document)), &entity)
	if err == nil {
		return &entity, nil
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) && typeError.Field != "" {
		return nil, apperr.Unprocessable(fmt.Sprintf("Field %q has an invalid type", typeError.Field))
	}
	return nil, apperr.Unprocessable("Payload does not match the expected shape")
}

func shallowCopy(document map[string]any) map[string]any {
	copied := make(map[string]any, len(document))
	for key, value := range document {
		copied[key] = value
	}
	return copied
}

// Canonical replaces every value of set with its encoding in entity, so a
// patch stores exactly what the typed entity holds (legacy shapes upgraded,
// unknown nested keys dropped). Keys outside set are not added.
func Canonical(set map[string]any, entity any) (map[string]any, error) {
	encoded, err := docstore.Encode(entity)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	canonical := make(map[string]any, len(set))
	for key := range set {
		canonical[key] = encoded[key]
	}
	return canonical, nil
}
