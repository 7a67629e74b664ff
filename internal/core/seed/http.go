// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Handler exposes the catalog migration.
type Handler struct {
	seeder *Seeder
}

// NewHandler constructs a seed [Handler].
func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

// AdminRoutes mounts the migration endpoint.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Post("/migrate-frontend-data", handler.migrate)
}

/*
POST /api/admin/migrate-frontend-data.

Description: Inserts the bundled processes, calculator parameters, document
descriptions and blog posts that are not stored yet.

Response:
  - 200: {success, message, results}
  - 500: INTERNAL_ERROR: Migration failed
*/
func (handler *Handler) migrate(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.seeder.MigrateFrontendData(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}
