// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// Successful responses are written as bare JSON documents, the shape the
// existing admin panel and public site already consume. Error responses use a
// single envelope so clients can read the failure from the "detail" key.
//
// Responses that must be readable under both snake_case and camelCase keys go
// through [Dual], which runs the payload through the key normalizer.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/constants"
	"github.com/taibuivan/legaldesign/internal/platform/ctxkey"
	"github.com/taibuivan/legaldesign/pkg/casing"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Detail  string              `json:"detail"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data as the whole body.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, data)
}

// Dual writes a 200 OK response whose keys are readable in both snake_case
// and camelCase. Internal keys (leading underscore) are dropped.
func Dual(writer http.ResponseWriter, request *http.Request, data any) {
	generic, err := toGeneric(data)
	if err != nil {
		Error(writer, request, apperr.Internal(err))
		return
	}
	JSON(writer, http.StatusOK, casing.Normalize(generic))
}

// Message writes a 200 OK response of the form {"message": text}.
func Message(writer http.ResponseWriter, text string) {
	JSON(writer, http.StatusOK, map[string]string{constants.FieldMessage: text})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", getRequestIDFromContext(request)),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := getLoggerFromContext(request)
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", getRequestIDFromContext(request)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Detail:  appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// toGeneric reduces a typed value to maps, slices and scalars.
func toGeneric(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}

// getLoggerFromContext extracts the per-request logger.
func getLoggerFromContext(request *http.Request) *slog.Logger {
	if logger, ok := request.Context().Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// getRequestIDFromContext extracts the X-Request-ID for log correlation.
func getRequestIDFromContext(request *http.Request) string {
	if id, ok := request.Context().Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
