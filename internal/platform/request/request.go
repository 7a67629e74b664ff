// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

Bodies destined for the document store are decoded as generic documents and
canonicalized to snake_case keys, so handlers accept either spelling.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/ctxutil"
	"github.com/taibuivan/legaldesign/internal/platform/sec"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
	"github.com/taibuivan/legaldesign/pkg/casing"
	"github.com/taibuivan/legaldesign/pkg/pagination"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON for malformed bodies, an Unprocessable
    error when a field has the wrong JSON type, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	raw, err := readBody(request)
	if err != nil {
		return err
	}
	return unmarshal(raw, target)
}

/*
DecodeDocument reads a JSON object body and canonicalizes its keys to snake_case.

An empty body decodes to an empty document.
*/
func DecodeDocument(request *http.Request) (map[string]any, error) {
	raw, err := readBody(request)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return map[string]any{}, nil
	}

	var document map[string]any
	if err := unmarshal(raw, &document); err != nil {
		return nil, err
	}
	if document == nil {
		document = map[string]any{}
	}

	return casing.CanonicalizeDocument(document), nil
}

/*
DecodeLenientDocument behaves like [DecodeDocument] but also accepts a body
that is a JSON string holding the encoded object. Some admin clients
serialize the settings form twice.
*/
func DecodeLenientDocument(request *http.Request) (map[string]any, error) {
	raw, err := readBody(request)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	if encoded, ok := value.(string); ok {
		if err := json.Unmarshal([]byte(encoded), &value); err != nil {
			return nil, validate.ErrInvalidJSON
		}
	}

	document, ok := value.(map[string]any)
	if !ok {
		return nil, apperr.Unprocessable("Request body must be a JSON object")
	}

	return casing.CanonicalizeDocument(document), nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query returns a trimmed query string value.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
Limit parses an integer query parameter bounded by window.

Returns:
  - int: window.Default when the parameter is absent
  - error: apperr.Unprocessable when it is not an integer or out of range
*/
func Limit(request *http.Request, name string, window pagination.Window) (int, error) {
	value, err := window.Parse(Query(request, name))
	switch {
	case errors.Is(err, pagination.ErrNotInteger):
		return 0, apperr.Unprocessable(fmt.Sprintf("Query parameter %q must be an integer", name))
	case errors.Is(err, pagination.ErrOutOfRange):
		return 0, apperr.Unprocessable(fmt.Sprintf("Query parameter %q must be between %d and %d", name, window.Min, window.Max))
	}
	return value, nil
}

/*
Claims extracts the authenticated admin claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The authenticated admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	return claims, nil
}

// BearerToken returns the raw token of an "Authorization: Bearer" header.
func BearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get(constants.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// # Helpers

func readBody(request *http.Request) ([]byte, error) {
	if request.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(io.LimitReader(request.Body, constants.MaxRequestBodyBytes+1))
	if err != nil {
		return nil, validate.ErrInvalidJSON
	}
	if len(raw) > constants.MaxRequestBodyBytes {
		return nil, apperr.ValidationError("Request body too large")
	}
	return raw, nil
}

func unmarshal(raw []byte, target any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	err := json.Unmarshal(raw, target)
	if err == nil {
		return nil
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		field := typeError.Field
		if field == "" {
			return apperr.Unprocessable("Request body has an unexpected shape")
		}
		return apperr.Unprocessable(fmt.Sprintf("Field %q has an invalid type", field))
	}

	return validate.ErrInvalidJSON
}
