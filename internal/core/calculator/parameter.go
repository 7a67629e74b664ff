// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calculator

import "time"

// Category groups the parameters of one calculator.
type Category string

const (
	CategoryCompensation Category = "compensation"
	CategoryExecution    Category = "execution"
)

const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldValue    = "value"
	FieldIsActive = "is_active"
)

// Parameter is a named constant a calculator reads at request time.
//
// Names are unique within a category. Rows written by older releases may
// lack an id; the admin listing assigns one on first read.
type Parameter struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Unit        string    `json:"unit"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newParameter() Parameter {
	return Parameter{IsActive: true}
}
