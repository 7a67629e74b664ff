// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

func newTestService(t *testing.T) (*Service, docstore.Store) {
	t.Helper()
	store := docstore.NewMemory()
	return NewService(NewDocumentRepository(store), slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func statusOf(err error) int {
	if appError := apperr.As(err); appError != nil {
		return appError.HTTPStatus
	}
	return 0
}

/*
TestListAll_BackfillsMissingIDs verifies legacy rows receive a persisted id.
*/
func TestListAll_BackfillsMissingIDs(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, schema.CollectionCalculatorParameters, docstore.Document{
		"name": "severance_multiplier", "value": 1.0, "category": "compensation", "unit": "x",
	}))

	first, err := service.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotEmpty(t, first[0].ID)
	assert.True(t, first[0].IsActive)

	second, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
}

/*
TestCreate_ConflictWithinCategory allows the same name in another category only.
*/
func TestCreate_ConflictWithinCategory(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, map[string]any{"name": "rate", "value": 1.0, "category": "compensation"})
	require.NoError(t, err)

	_, err = service.Create(ctx, map[string]any{"name": "rate", "value": 2.0, "category": "compensation"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	_, err = service.Create(ctx, map[string]any{"name": "rate", "value": 2.0, "category": "execution"})
	assert.NoError(t, err)

	_, err = service.Create(ctx, map[string]any{"name": "rate", "category": "tax"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = service.Create(ctx, map[string]any{"name": "rate", "value": "yüksek", "category": "execution"})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(err))
}

/*
TestUpdate_FallsBackToName covers lookups by name for rows without an id.
*/
func TestUpdate_FallsBackToName(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, schema.CollectionCalculatorParameters, docstore.Document{
		"name": "overtime_hourly_rate", "value": 50.0, "category": "compensation", "is_active": true,
	}))

	updated, err := service.Update(ctx, "unknown-id", map[string]any{"name": "overtime_hourly_rate", "value": 75.0})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.Value)
	assert.NotEmpty(t, updated.ID)

	active, err := service.ListActive(ctx, "compensation")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 75.0, active[0].Value)
	assert.Equal(t, updated.ID, active[0].ID)

	_, err = service.Update(ctx, "unknown-id", map[string]any{"value": 1.0})
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.EqualError(t, err, "Calculator parameter not found")
}

/*
TestReset replaces the stored parameters with the reference set.
*/
func TestReset(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, map[string]any{"name": "custom", "value": 9.0, "category": "execution"})
	require.NoError(t, err)

	report, err := service.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 17, report.Inserted)
	assert.Empty(t, report.Errors)

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 17)

	ids := make(map[string]bool)
	for _, parameter := range all {
		assert.NotEqual(t, "custom", parameter.Name)
		ids[parameter.ID] = true
	}
	assert.Len(t, ids, 17)
}

/*
TestCalculate_UsesActiveParameters verifies stored values override the defaults.
*/
func TestCalculate_UsesActiveParameters(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, map[string]any{"name": ParamOvertimeHourlyRate, "value": 100.0, "category": "compensation"})
	require.NoError(t, err)
	_, err = service.Create(ctx, map[string]any{"name": ParamSeveranceMultiplier, "value": 3.0, "category": "compensation", "is_active": false})
	require.NoError(t, err)

	result, err := service.CalculateCompensation(ctx, CompensationInput{MonthlySalary: 10000, YearsWorked: 5, OvertimeHours: 20})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, result.SeverancePay)
	assert.Equal(t, 2000.0, result.OvertimePay)
	assert.Equal(t, 62000.0, result.Total)
}

/*
TestCalculate_RejectsInvalidInput covers negative values and out-of-range percentages.
*/
func TestCalculate_RejectsInvalidInput(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CalculateCompensation(ctx, CompensationInput{MonthlySalary: -1})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = service.CalculateExecution(ctx, ExecutionInput{SentenceMonths: 12, GoodBehaviorReduction: 120})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = service.CalculateExecution(ctx, ExecutionInput{SentenceMonths: -3})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	result, err := service.CalculateExecution(ctx, ExecutionInput{SentenceMonths: 12, GoodBehaviorReduction: 30})
	require.NoError(t, err)
	assert.Equal(t, 10.8, result.ActualExecutionMonths)
}
