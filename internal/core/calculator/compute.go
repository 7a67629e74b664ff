// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import "math"

// Parameter names read by the calculators, with the value used when the
// parameter is missing or inactive.
const (
	ParamSeveranceMultiplier    = "severance_multiplier"
	ParamNoticePeriodMonths     = "notice_period_months"
	ParamOvertimeHourlyRate     = "overtime_hourly_rate"
	ParamGoodBehaviorMultiplier = "good_behavior_multiplier"

	DefaultSeveranceMultiplier    = 1.0
	DefaultNoticePeriodMonths     = 1.0
	DefaultOvertimeHourlyRate     = 50.0
	DefaultGoodBehaviorMultiplier = 0.33
)

// Values maps parameter names to their values.
type Values map[string]float64

func (values Values) get(name string, fallback float64) float64 {
	if value, ok := values[name]; ok {
		return value
	}
	return fallback
}

// # Compensation

// CompensationInput is the body of a compensation calculation. Missing
// fields count as zero.
type CompensationInput struct {
	MonthlySalary float64 `json:"monthly_salary"`
	YearsWorked   float64 `json:"years_worked"`
	DaysWorked    float64 `json:"days_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// CompensationResult holds the amounts in TL, rounded to kuruş.
type CompensationResult struct {
	SeverancePay float64           `json:"severance_pay"`
	NoticePay    float64           `json:"notice_pay"`
	OvertimePay  float64           `json:"overtime_pay"`
	Total        float64           `json:"total"`
	Breakdown    CompensationInput `json:"breakdown"`
}

// Compensation estimates severance, notice and overtime pay.
//
// Days worked are echoed in the breakdown but do not enter the formula.
func Compensation(values Values, input CompensationInput) CompensationResult {
	severance := input.MonthlySalary * input.YearsWorked * values.get(ParamSeveranceMultiplier, DefaultSeveranceMultiplier)
	notice := input.MonthlySalary * values.get(ParamNoticePeriodMonths, DefaultNoticePeriodMonths)
	overtime := input.OvertimeHours * values.get(ParamOvertimeHourlyRate, DefaultOvertimeHourlyRate)

	return CompensationResult{
		SeverancePay: round(severance, 2),
		NoticePay:    round(notice, 2),
		OvertimePay:  round(overtime, 2),
		Total:        round(severance+notice+overtime, 2),
		Breakdown:    input,
	}
}

// # Execution

// ExecutionInput is the body of a sentence execution estimate.
type ExecutionInput struct {
	SentenceMonths float64 `json:"sentence_months"`

	// GoodBehaviorReduction is a percentage between 0 and 100.
	GoodBehaviorReduction float64 `json:"good_behavior_reduction"`
}

// ExecutionResult is rounded to one decimal, except the echoed sentence.
type ExecutionResult struct {
	OriginalSentenceMonths      float64            `json:"original_sentence_months"`
	GoodBehaviorReductionMonths float64            `json:"good_behavior_reduction_months"`
	ActualExecutionMonths       float64            `json:"actual_execution_months"`
	ActualExecutionYears        float64            `json:"actual_execution_years"`
	Breakdown                   ExecutionBreakdown `json:"breakdown"`
}

// ExecutionBreakdown repeats the inputs next to the computed reduction.
type ExecutionBreakdown struct {
	SentenceMonths         float64 `json:"sentence_months"`
	GoodBehaviorPercentage float64 `json:"good_behavior_percentage"`
	GoodBehaviorMonths     float64 `json:"good_behavior_months"`
}

// Execution estimates the time actually served after the good behaviour
// reduction. Rounding is applied to the outputs only.
func Execution(values Values, input ExecutionInput) ExecutionResult {
	reduction := (input.GoodBehaviorReduction / 100) * input.SentenceMonths *
		values.get(ParamGoodBehaviorMultiplier, DefaultGoodBehaviorMultiplier)
	actual := input.SentenceMonths - reduction

	return ExecutionResult{
		OriginalSentenceMonths:      input.SentenceMonths,
		GoodBehaviorReductionMonths: round(reduction, 1),
		ActualExecutionMonths:       round(actual, 1),
		ActualExecutionYears:        round(actual/12, 1),
		Breakdown: ExecutionBreakdown{
			SentenceMonths:         input.SentenceMonths,
			GoodBehaviorPercentage: input.GoodBehaviorReduction,
			GoodBehaviorMonths:     round(reduction, 1),
		},
	}
}

func round(value float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(value*scale) / scale
}
