// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package process

import (
	"encoding/json"
	"time"
)

// # Categories

// Category separates civil from criminal procedures.
type Category string

const (
	CategoryCivil    Category = "hukuk"
	CategoryCriminal Category = "ceza"
)

// # Field Names

const (
	FieldTitle      = "title"
	FieldCategory   = "category"
	FieldSteps      = "steps"
	FieldTotalSteps = "total_steps"
	FieldTags       = "tags"
)

// # Domain Entities

// Process is a step-by-step guide through one legal procedure.
type Process struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Gradient       string          `json:"gradient"`
	Duration       string          `json:"duration"`
	Difficulty     string          `json:"difficulty"`
	TotalSteps     int             `json:"total_steps"`
	HasCalculator  bool            `json:"has_calculator"`
	CalculatorType string          `json:"calculator_type"`
	Category       Category        `json:"category"`
	Tags           []string        `json:"tags"`
	EstimatedCosts *EstimatedCosts `json:"estimated_costs"`
	Steps          []Step          `json:"steps"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Step is one stage of a process, positioned on the flow diagram.
//
// Connections name the ids of the steps that follow. The graph is not
// checked for cycles.
type Step struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	ShortTitle        string             `json:"short_title"`
	Description       string             `json:"description"`
	Duration          string             `json:"duration"`
	Participants      []string           `json:"participants"`
	RequiredDocuments []RequiredDocument `json:"required_documents"`
	ImportantNotes    []string           `json:"important_notes"`
	Position          Position           `json:"position"`
	Connections       []string           `json:"connections"`
	Status            string             `json:"status"`
}

// Position places a step on the diagram canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RequiredDocument is a document the applicant brings to a step.
type RequiredDocument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnmarshalJSON also accepts the older plain-string form, which carries the
// name only.
func (document *RequiredDocument) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		*document = RequiredDocument{Name: name}
		return nil
	}

	type plain RequiredDocument
	var decoded plain
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*document = RequiredDocument(decoded)
	return nil
}

// EstimatedCosts summarizes what a procedure usually costs.
type EstimatedCosts struct {
	Title       string     `json:"title"`
	Items       []CostItem `json:"items"`
	TotalRange  string     `json:"total_range"`
	FreeOptions []string   `json:"free_options"`
}

// CostItem is a single expense with its expected range in TL.
type CostItem struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Note string  `json:"note"`
}

// newProcess returns the zero process with empty lists instead of nulls.
func newProcess() Process {
	return Process{Tags: []string{}, Steps: []Step{}}
}
