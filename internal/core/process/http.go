// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package process manages the legal process guides.

A process is an ordered list of steps with the documents, participants and
notes of each, plus an estimate of the costs involved.

# Routing Strategy

  - Public: listing with category and text filters, lookup by id.
  - Admin: full CRUD. Bodies may use snake_case or camelCase keys and every
    response carries both spellings.
*/
package process

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Handler implements the HTTP layer for legal processes.
type Handler struct {
	service *Service
}

// NewHandler constructs a process [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the read-only endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/legal-processes", handler.listPublic)
	router.Get("/legal-processes/{id}", handler.get)
}

// AdminRoutes mounts the management endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/legal-processes", func(processes chi.Router) {
		processes.Get("/", handler.listAll)
		processes.Post("/", handler.create)
		processes.Get("/{id}", handler.get)
		processes.Put("/{id}", handler.update)
		processes.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/legal-processes.

Description: Lists the guides, optionally narrowed down.

Request:
  - category: string (hukuk, ceza)
  - search: string (matches title, description and tags)

Response:
  - 200: []Process
*/
func (handler *Handler) listPublic(writer http.ResponseWriter, request *http.Request) {
	processes, err := handler.service.List(request.Context(), Filter{
		Category: requestutil.Query(request, "category"),
		Search:   requestutil.Query(request, "search"),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, processes)
}

/*
GET /api/admin/legal-processes.

Response:
  - 200: []Process: Every stored guide
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	processes, err := handler.service.List(request.Context(), Filter{})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, processes)
}

/*
GET /api/legal-processes/{id}.

Response:
  - 200: Process
  - 404: NOT_FOUND: Legal process not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	process, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, process)
}

/*
POST /api/admin/legal-processes.

Request:
  - body: Process (any subset; title and category required)

Response:
  - 200: Process: The created guide
  - 400: VALIDATION_ERROR
  - 422: UNPROCESSABLE: Malformed body
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	process, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, process)
}

/*
PUT /api/admin/legal-processes/{id}.

Description: Partial update. Fields absent from the body keep their value.

Response:
  - 200: Process
  - 404: NOT_FOUND: Legal process not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	process, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, process)
}

/*
DELETE /api/admin/legal-processes/{id}.

Response:
  - 200: {"message": "Legal process deleted successfully"}
  - 404: NOT_FOUND: Legal process not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Legal process deleted successfully")
}
