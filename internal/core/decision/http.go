// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package decision manages the archive of Supreme Court (Yargıtay) decisions.

Public readers see decisions that are published or predate the publish flag.
Admins see and edit everything.
*/
package decision

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/pkg/pagination"
)

// Handler implements the HTTP layer for decisions.
type Handler struct {
	service *Service
}

// NewHandler constructs a decision [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the read-only endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/supreme-court-decisions", handler.listVisible)
	router.Get("/supreme-court-decisions/{id}", handler.getPublic)
}

// AdminRoutes mounts the management endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/supreme-court-decisions", func(decisions chi.Router) {
		decisions.Get("/", handler.listAll)
		decisions.Post("/", handler.create)
		decisions.Get("/{id}", handler.get)
		decisions.Put("/{id}", handler.update)
		decisions.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/supreme-court-decisions.

Request:
  - category: string
  - importance: string (high, medium, low)
  - limit: int (1-100, default 20)

Response:
  - 200: []Decision: Newest publication first
  - 422: UNPROCESSABLE: Invalid limit
*/
func (handler *Handler) listVisible(writer http.ResponseWriter, request *http.Request) {
	limit, err := requestutil.Limit(request, "limit", pagination.Decisions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	decisions, err := handler.service.ListVisible(request.Context(), Filter{
		Category:   requestutil.Query(request, "category"),
		Importance: requestutil.Query(request, "importance"),
		Limit:      limit,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, decisions)
}

/*
GET /api/supreme-court-decisions/{id}.

Description: Direct links resolve regardless of is_published. Only the
listing applies the visibility rule.

Response:
  - 200: Decision
  - 404: NOT_FOUND: Supreme court decision not found
*/
func (handler *Handler) getPublic(writer http.ResponseWriter, request *http.Request) {
	decision, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, decision)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	decisions, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, decisions)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	decision, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, decision)
}

/*
POST /api/admin/supreme-court-decisions.

Request:
  - body: Decision (title required)

Response:
  - 200: Decision
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	decision, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, decision)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	decision, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, decision)
}

/*
DELETE /api/admin/supreme-court-decisions/{id}.

Response:
  - 200: {"message": "Supreme court decision deleted successfully"}
  - 404: NOT_FOUND
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Supreme court decision deleted successfully")
}
