// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Handler exposes the search endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the visitor-facing endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/search", handler.search)
}

// AdminRoutes mounts the maintenance endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Post("/search/reindex", handler.reindex)
}

/*
GET /api/search.

Description: Searches legal processes, published blog posts and decisions.

Request:
  - q: string (at least 2 characters)
  - type: string (processes, blog, decisions)

Response:
  - 200: Results: up to 5 documents per kind, {} for an unknown type
  - 422: UNPROCESSABLE: Short query
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.Search(request.Context(),
		requestutil.Query(request, "q"),
		requestutil.Query(request, "type"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, results)
}

/*
POST /api/admin/search/reindex.

Description: Rebuilds the search indexes from the document store.

Response:
  - 200: {message, indexed}
  - 503: SERVICE_UNAVAILABLE: No reachable search engine
*/
func (handler *Handler) reindex(writer http.ResponseWriter, request *http.Request) {
	indexed, err := handler.service.Reindex(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Reindex completed",
		"indexed": indexed,
	})
}
