// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blog manages the blog posts.

# Routing Strategy

  - Public: published posts only, by category and by slug, newest
    publication first.
  - Admin: full CRUD by id, including drafts.
*/
package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
	"github.com/taibuivan/legaldesign/pkg/pagination"
)

// Handler implements the HTTP layer for blog posts.
type Handler struct {
	service *Service
}

// NewHandler constructs a blog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the read-only endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/blog-posts", handler.listPublished)
	router.Get("/blog-posts/{slug}", handler.getPublished)
}

// AdminRoutes mounts the management endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/blog-posts", func(posts chi.Router) {
		posts.Get("/", handler.listAll)
		posts.Post("/", handler.create)
		posts.Get("/{id}", handler.get)
		posts.Put("/{id}", handler.update)
		posts.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/blog-posts.

Request:
  - category: string
  - limit: int (1-50, default 10)

Response:
  - 200: []Post: Published posts, newest publication first
  - 422: UNPROCESSABLE: Invalid limit
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	limit, err := requestutil.Limit(request, "limit", pagination.BlogPosts)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	posts, err := handler.service.ListPublished(request.Context(), Filter{
		Category: requestutil.Query(request, "category"),
		Limit:    limit,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

/*
GET /api/blog-posts/{slug}.

Response:
  - 200: Post
  - 404: NOT_FOUND: Blog post not found (also for drafts)
*/
func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetPublished(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

// GET /api/admin/blog-posts. Newest first, drafts included.
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, posts)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, post)
}

/*
POST /api/admin/blog-posts.

Request:
  - body: Post (title required)

Response:
  - 200: Post
  - 400: CONFLICT: Blog post with this slug already exists
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, post)
}

/*
PUT /api/admin/blog-posts/{id}.

Description: Partial update. Toggling is_published moves published_at.

Response:
  - 200: Post
  - 404: NOT_FOUND: Blog post not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, post)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Blog post deleted successfully")
}
