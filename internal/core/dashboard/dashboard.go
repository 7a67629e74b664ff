// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard serves the admin landing statistics.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/respond"
)

// Usage figures shown until visit tracking exists.
// TODO: replace with counters recorded by the calculate-* endpoints.
const (
	totalVisits              = 1250
	calculatorUsage          = 342
	compensationCalculations = 198
	sentenceCalculations     = 144
)

// Statistics is the dashboard payload.
type Statistics struct {
	TotalProcesses           int       `json:"total_processes"`
	TotalBlogPosts           int       `json:"total_blog_posts"`
	TotalDecisions           int       `json:"total_decisions"`
	TotalVisits              int       `json:"total_visits"`
	CalculatorUsage          int       `json:"calculator_usage"`
	CompensationCalculations int       `json:"compensation_calculations"`
	SentenceCalculations     int       `json:"sentence_calculations"`
	LastUpdated              time.Time `json:"last_updated"`
}

// Service computes the statistics.
type Service struct {
	store docstore.Store
	now   func() time.Time
}

// NewService constructs a dashboard [Service].
func NewService(store docstore.Store) *Service {
	return &Service{store: store, now: docstore.Now}
}

// Statistics counts the content collections and adds the usage figures.
func (service *Service) Statistics(context context.Context) (*Statistics, error) {
	counts := make(map[string]int, 3)
	for _, collection := range []string{schema.CollectionLegalProcesses, schema.CollectionBlogPosts, schema.CollectionDecisions} {
		n, err := service.store.Count(context, collection, docstore.All())
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("dashboard_count_failed: %s: %w", collection, err))
		}
		counts[collection] = n
	}

	return &Statistics{
		TotalProcesses:           counts[schema.CollectionLegalProcesses],
		TotalBlogPosts:           counts[schema.CollectionBlogPosts],
		TotalDecisions:           counts[schema.CollectionDecisions],
		TotalVisits:              totalVisits,
		CalculatorUsage:          calculatorUsage,
		CompensationCalculations: compensationCalculations,
		SentenceCalculations:     sentenceCalculations,
		LastUpdated:              service.now(),
	}, nil
}

// Handler exposes the dashboard.
type Handler struct {
	service *Service
}

// NewHandler constructs a dashboard [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts GET /dashboard.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/dashboard", handler.statistics)
}

func (handler *Handler) statistics(writer http.ResponseWriter, request *http.Request) {
	statistics, err := handler.service.Statistics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Dual(writer, request, statistics)
}
