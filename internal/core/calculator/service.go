// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/legaldesign/internal/core/catalog"
	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/apperr"
	"github.com/taibuivan/legaldesign/internal/platform/dberr"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
	"github.com/taibuivan/legaldesign/pkg/uuid"
)

var policy = patch.Policy{Fields: patch.FieldsOf(Parameter{})}

// ResetReport is the outcome of [Service.Reset].
type ResetReport struct {
	Success  bool     `json:"success"`
	Inserted int      `json:"inserted"`
	Errors   []string `json:"errors"`
}

// # Service Layer

// Service manages calculator parameters and runs the calculators.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a calculator [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: docstore.Now}
}

// # Parameter Lookups

// ListActive returns the active parameters, optionally of one category.
func (service *Service) ListActive(context context.Context, category string) ([]*Parameter, error) {
	stored, err := service.repo.List(context, Filter{Category: category, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return parameters(stored), nil
}

/*
ListAll returns every parameter for the admin panel.

Description: Rows written without an id receive one here, and the id is
persisted so later edits can address the row.
*/
func (service *Service) ListAll(context context.Context) ([]*Parameter, error) {
	stored, err := service.repo.List(context, Filter{})
	if err != nil {
		return nil, err
	}

	for _, entry := range stored {
		if strings.TrimSpace(entry.Parameter.ID) != "" {
			continue
		}

		id := uuid.New()
		if err := service.repo.Update(context, entry.Key, map[string]any{"id": id}); err != nil {
			return nil, err
		}
		entry.Parameter.ID = id

		service.logger.Info("calculator_parameter_id_backfilled",
			slog.String("parameter_id", id),
			slog.String("name", entry.Parameter.Name),
		)
	}

	return parameters(stored), nil
}

// # Parameter Management

/*
Create stores a new parameter.

Returns:
  - *Parameter: The stored parameter
  - error: Conflict when the name is taken within the category
*/
func (service *Service) Create(context context.Context, payload map[string]any) (*Parameter, error) {
	parameter, err := patch.Decode(policy.Create(payload, nil, service.now()), newParameter)
	if err != nil {
		return nil, err
	}

	if err := validateParameter(parameter); err != nil {
		return nil, err
	}

	taken, err := service.repo.ExistsInCategory(context, parameter.Name, parameter.Category)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Calculator parameter with this name already exists")
	}

	if err := service.repo.Create(context, parameter); err != nil {
		return nil, err
	}

	service.logger.Info("calculator_parameter_created",
		slog.String("parameter_id", parameter.ID),
		slog.String("name", parameter.Name),
	)
	return parameter, nil
}

/*
Update merges a payload into a parameter.

Description: The parameter is looked up by id first. When no row has that
id and the payload names a parameter, the row with that name is updated
instead; older admin clients address parameters by name. A row without an
id receives one as part of the update.

Returns:
  - *Parameter: The parameter after the update
  - error: apperr.NotFound when neither lookup matches
*/
func (service *Service) Update(context context.Context, id string, payload map[string]any) (*Parameter, error) {
	entry, err := service.repo.FindByID(context, id)
	if dberr.IsNotFound(err) {
		if name, ok := payload[FieldName].(string); ok && strings.TrimSpace(name) != "" {
			entry, err = service.repo.FindByName(context, name)
		}
	}
	if err != nil {
		return nil, err
	}

	set := policy.Merge(entry.Document, payload, nil, service.now())
	if strings.TrimSpace(entry.Parameter.ID) == "" {
		set["id"] = uuid.New()
	}

	parameter, err := patch.Decode(patch.Apply(entry.Document, set), newParameter)
	if err != nil {
		return nil, err
	}

	if err := validateParameter(parameter); err != nil {
		return nil, err
	}

	set, err = patch.Canonical(set, parameter)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, entry.Key, set); err != nil {
		return nil, err
	}

	service.logger.Info("calculator_parameter_updated", slog.String("parameter_id", parameter.ID))
	return parameter, nil
}

// Delete removes a parameter by id.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Info("calculator_parameter_deleted", slog.String("parameter_id", id))
	return nil
}

/*
Reset replaces every parameter with the reference set.

Description: All rows are removed, then each reference parameter is
inserted with a fresh id. A parameter that fails is reported as
"name: reason" and the rest continue.

Returns:
  - ResetReport: success flag, inserted count and per-item errors
  - error: Only when the purge or the reference data fails
*/
func (service *Service) Reset(context context.Context) (ResetReport, error) {
	reference, err := catalog.CalculatorParameters()
	if err != nil {
		return ResetReport{}, apperr.Internal(err)
	}

	if _, err := service.repo.DeleteAll(context); err != nil {
		return ResetReport{}, err
	}

	report := ResetReport{Success: true, Errors: []string{}}
	now := service.now()

	for _, document := range reference {
		name, _ := document[FieldName].(string)
		if name == "" {
			name = "unknown"
		}

		parameter, err := patch.Decode(policy.Merge(nil, document, nil, now), newParameter)
		if err == nil {
			err = validateParameter(parameter)
		}
		if err == nil {
			err = service.repo.Create(context, parameter)
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		report.Inserted++
	}

	service.logger.Info("calculator_parameters_reset",
		slog.Int("inserted", report.Inserted),
		slog.Int("errors", len(report.Errors)),
	)
	return report, nil
}

// # Calculations

// CalculateCompensation runs the compensation calculator on the active parameters.
func (service *Service) CalculateCompensation(context context.Context, input CompensationInput) (CompensationResult, error) {
	validator := &validate.Validator{}
	validator.NonNegative("monthly_salary", input.MonthlySalary)
	validator.NonNegative("years_worked", input.YearsWorked)
	validator.NonNegative("days_worked", input.DaysWorked)
	validator.NonNegative("overtime_hours", input.OvertimeHours)
	if err := validator.Err(); err != nil {
		return CompensationResult{}, err
	}

	values, err := service.values(context, CategoryCompensation)
	if err != nil {
		return CompensationResult{}, err
	}
	return Compensation(values, input), nil
}

// CalculateExecution runs the execution calculator on the active parameters.
func (service *Service) CalculateExecution(context context.Context, input ExecutionInput) (ExecutionResult, error) {
	validator := &validate.Validator{}
	validator.NonNegative("sentence_months", input.SentenceMonths)
	validator.Between("good_behavior_reduction", input.GoodBehaviorReduction, 0, 100)
	if err := validator.Err(); err != nil {
		return ExecutionResult{}, err
	}

	values, err := service.values(context, CategoryExecution)
	if err != nil {
		return ExecutionResult{}, err
	}
	return Execution(values, input), nil
}

func (service *Service) values(context context.Context, category Category) (Values, error) {
	stored, err := service.repo.List(context, Filter{Category: string(category), ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	values := make(Values, len(stored))
	for _, entry := range stored {
		values[entry.Parameter.Name] = entry.Parameter.Value
	}
	return values, nil
}

func validateParameter(parameter *Parameter) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, parameter.Name).MaxLen(FieldName, parameter.Name, 200)
	validator.OneOf(FieldCategory, string(parameter.Category), string(CategoryCompensation), string(CategoryExecution))
	return validator.Err()
}

func parameters(stored []Stored) []*Parameter {
	result := make([]*Parameter, 0, len(stored))
	for _, entry := range stored {
		result = append(result, entry.Parameter)
	}
	return result
}
