// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cms serves the singleton documents that drive the public site: the
legal aid page, ad snippets, site settings, menu, footer and the home, about
and contact page sections.

# Lifecycle

Each collection holds at most one document. The admin side creates it from
the shipped defaults on first read. The public side answers with the
defaults while nothing is stored, without writing them.
*/
package cms

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// binding exposes one singleton over HTTP.
type binding struct {
	path   string
	get    func(context.Context) (any, error)
	peek   func(context.Context) (any, error)
	update func(context.Context, map[string]any) (any, error)

	// decode reads the PUT body.
	decode func(*http.Request) (map[string]any, error)
}

func bind[T any](path string, singleton *Singleton[T]) binding {
	return binding{
		path:   path,
		get:    func(ctx context.Context) (any, error) { return singleton.Get(ctx) },
		peek:   func(ctx context.Context) (any, error) { return singleton.Peek(ctx) },
		update: func(ctx context.Context, payload map[string]any) (any, error) { return singleton.Update(ctx, payload) },
		decode: requestutil.DecodeDocument,
	}
}

// Handler implements the HTTP layer for the CMS singletons.
type Handler struct {
	bindings []binding
}

// NewHandler constructs a cms [Handler].
func NewHandler(service *Service) *Handler {
	ads := bind("/ad-settings", service.ads)
	ads.decode = requestutil.DecodeLenientDocument
	ads.peek = func(ctx context.Context) (any, error) { return service.AdSettingsPublic(ctx) }

	return &Handler{
		bindings: []binding{
			bind("/legal-aid-info", service.legalAid),
			ads,
			bind("/site-settings", service.site),
			bind("/menu-config", service.menu),
			bind("/footer-config", service.footer),
			bind("/home-page-content", service.home),
			bind("/about-page-content", service.about),
			bind("/contact-page-content", service.contact),
		},
	}
}

/*
PublicRoutes mounts GET for every singleton.

Response:
  - 200: The stored document, or the defaults when none is stored
*/
func (handler *Handler) PublicRoutes(router chi.Router) {
	for _, binding := range handler.bindings {
		router.Get(binding.path, handler.read(binding.peek, false))
	}
}

/*
AdminRoutes mounts GET and PUT for every singleton.

Description: GET creates the document from the defaults when missing. PUT is
a partial update. The ad settings PUT also accepts a body that is a JSON
string holding the object.
*/
func (handler *Handler) AdminRoutes(router chi.Router) {
	for _, binding := range handler.bindings {
		router.Get(binding.path, handler.read(binding.get, true))
		router.Put(binding.path, handler.write(binding))
	}
}

func (handler *Handler) read(load func(context.Context) (any, error), dual bool) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		document, err := load(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		if dual {
			respond.Dual(writer, request, document)
			return
		}
		respond.OK(writer, document)
	}
}

func (handler *Handler) write(binding binding) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		payload, err := binding.decode(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		document, err := binding.update(request.Context(), payload)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Dual(writer, request, document)
	}
}
