// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// # HTTP Handler

// Handler implements the HTTP layer for the document glossary.
type Handler struct {
	service *Service
}

// NewHandler constructs a reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the read-only glossary.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/document-descriptions", handler.listPublic)
}

// AdminRoutes mounts the management endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/document-descriptions", func(entries chi.Router) {
		entries.Get("/", handler.listAdmin)
		entries.Post("/", handler.create)
		entries.Put("/{id}", handler.update)
		entries.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/document-descriptions.

Response:
  - 200: []DocumentDescription
*/
func (handler *Handler) listPublic(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) listAdmin(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, entries)
}

/*
POST /api/admin/document-descriptions.

Request:
  - body: {document_name, description}

Response:
  - 200: DocumentDescription
  - 400: CONFLICT: Document description with this name already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, entry)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, entry)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Document description deleted successfully")
}
