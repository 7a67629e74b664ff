// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the reference content shipped with the service.

The data seeds an empty store at startup, backs the admin "migrate frontend
data" and "reset calculator parameters" operations, and supplies the
legal-aid defaults. Every call decodes a fresh copy, so callers may mutate
the result.
*/
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json data/defaults/*.json
var files embed.FS

// LegalProcesses returns the built-in legal process guides.
func LegalProcesses() ([]map[string]any, error) {
	return loadList("legal_processes.json")
}

// CalculatorParameters returns the reference calculator parameters.
func CalculatorParameters() ([]map[string]any, error) {
	return loadList("calculator_parameters.json")
}

// DocumentDescriptions returns the glossary of commonly required documents.
func DocumentDescriptions() ([]map[string]any, error) {
	return loadList("document_descriptions.json")
}

// BlogPosts returns the launch blog posts.
func BlogPosts() ([]map[string]any, error) {
	return loadList("blog_posts.json")
}

// LegalAid returns the legal-aid information page.
func LegalAid() (map[string]any, error) {
	var document map[string]any
	if err := load("legal_aid.json", &document); err != nil {
		return nil, err
	}
	return document, nil
}

// Defaults returns the initial content of a CMS singleton, looked up by its
// collection name.
func Defaults(collection string) (map[string]any, error) {
	var document map[string]any
	if err := load("defaults/"+collection+".json", &document); err != nil {
		return nil, err
	}
	return document, nil
}

func loadList(name string) ([]map[string]any, error) {
	var documents []map[string]any
	if err := load(name, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func load(name string, target any) error {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	return nil
}
