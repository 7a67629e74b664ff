// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content manages the CMS pages ("hakkimizda", "kvkk", ...).

Visitors see published pages by slug. Admins address a page by id or slug.
*/
package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Handler implements the HTTP layer for content pages.
type Handler struct {
	service *Service
}

// NewHandler constructs a content [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the read-only endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/content-pages", handler.listPublished)
	router.Get("/content-pages/{slug}", handler.getPublished)
}

// AdminRoutes mounts the management endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/content-pages", func(pages chi.Router) {
		pages.Get("/", handler.listAll)
		pages.Post("/", handler.create)
		pages.Get("/{id}", handler.get)
		pages.Put("/{id}", handler.update)
		pages.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/content-pages.

Response:
  - 200: []Page: Published pages only
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	pages, err := handler.service.ListPublished(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pages)
}

/*
GET /api/content-pages/{slug}.

Response:
  - 200: Page
  - 404: NOT_FOUND: Content page not found (also for drafts)
*/
func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.GetPublished(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	pages, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, pages)
}

// GET /api/admin/content-pages/{id}. The id may also be the slug.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, page)
}

/*
POST /api/admin/content-pages.

Request:
  - body: Page (title required; slug derived from it when omitted)

Response:
  - 200: Page
  - 400: CONFLICT: Page with this slug already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, page)
}

/*
PUT /api/admin/content-pages/{id}.

Description: Partial update. The slug cannot be changed.
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, page)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Content page deleted successfully")
}
