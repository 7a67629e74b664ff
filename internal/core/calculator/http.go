// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package calculator provides the severance and sentence execution calculators
and the parameters they read.

The calculators are flat formulas over the active parameters of their
category. Missing parameters fall back to built-in defaults, so a fresh
install answers sensibly before any parameter is configured.
*/
package calculator

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/legaldesign/internal/core/patch"
	requestutil "github.com/taibuivan/legaldesign/internal/platform/request"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Handler implements the HTTP layer for parameters and calculations.
type Handler struct {
	service *Service
}

// NewHandler constructs a calculator [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the calculators and the active parameter listing.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/calculator-parameters", handler.listActive)
	router.Post("/calculate-compensation", handler.calculateCompensation)
	router.Post("/calculate-execution", handler.calculateExecution)
}

// AdminRoutes mounts parameter management.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Route("/calculator-parameters", func(parameters chi.Router) {
		parameters.Get("/", handler.listAll)
		parameters.Post("/", handler.create)
		parameters.Post("/reset", handler.reset)
		parameters.Put("/{id}", handler.update)
		parameters.Delete("/{id}", handler.delete)
	})
}

/*
GET /api/calculator-parameters.

Request:
  - category: string (compensation, execution)

Response:
  - 200: []Parameter: Active parameters only
*/
func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	parameters, err := handler.service.ListActive(request.Context(), requestutil.Query(request, "category"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, parameters)
}

/*
POST /api/calculate-compensation.

Request:
  - body: {monthly_salary, years_worked, days_worked, overtime_hours}

Response:
  - 200: CompensationResult
  - 400: VALIDATION_ERROR: Negative input
  - 422: UNPROCESSABLE: Non-numeric input
*/
func (handler *Handler) calculateCompensation(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := patch.Decode[CompensationInput](payload, nil)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CalculateCompensation(request.Context(), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/calculate-execution.

Request:
  - body: {sentence_months, good_behavior_reduction (0-100)}

Response:
  - 200: ExecutionResult
  - 400: VALIDATION_ERROR: Negative input or reduction out of range
  - 422: UNPROCESSABLE: Non-numeric input
*/
func (handler *Handler) calculateExecution(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := patch.Decode[ExecutionInput](payload, nil)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CalculateExecution(request.Context(), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
GET /api/admin/calculator-parameters.

Description: Lists every parameter, assigning ids to rows that lack one.
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	parameters, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, parameters)
}

/*
POST /api/admin/calculator-parameters.

Response:
  - 200: Parameter
  - 400: CONFLICT: Name already used in the category
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parameter, err := handler.service.Create(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, parameter)
}

/*
PUT /api/admin/calculator-parameters/{id}.

Description: Partial update. Falls back to the "name" in the body when no
parameter has the id.

Response:
  - 200: Parameter
  - 404: NOT_FOUND: Calculator parameter not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := requestutil.DecodeDocument(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parameter, err := handler.service.Update(request.Context(), requestutil.Param(request, "id"), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, parameter)
}

/*
DELETE /api/admin/calculator-parameters/{id}.

Response:
  - 200: {"message": "Calculator parameter deleted successfully"}
  - 404: NOT_FOUND: Calculator parameter not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Calculator parameter deleted successfully")
}

/*
POST /api/admin/calculator-parameters/reset.

Response:
  - 200: ResetReport: {success, inserted, errors}
*/
func (handler *Handler) reset(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.Reset(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}
