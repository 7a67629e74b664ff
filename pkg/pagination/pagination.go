// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared limits for API list endpoints.
//
// # Overview
//
// Public listings accept a "limit" query parameter bounded by a [Window].
// Values outside the window are rejected rather than clamped, so a client
// asking for too much learns about it.
package pagination

import (
	"errors"
	"strconv"
)

var (
	// ErrNotInteger is returned when the raw limit is not a base-10 integer.
	ErrNotInteger = errors.New("pagination: limit must be an integer")
	// ErrOutOfRange is returned when the limit falls outside its window.
	ErrOutOfRange = errors.New("pagination: limit out of range")
)

// Window bounds a limit parameter (inclusive) and supplies its default.
type Window struct {
	Default int
	Min     int
	Max     int
}

var (
	// BlogPosts bounds the public blog listing.
	BlogPosts = Window{Default: 10, Min: 1, Max: 50}
	// Decisions bounds the public Supreme Court decision listing.
	Decisions = Window{Default: 20, Min: 1, Max: 100}
)

// Parse converts a raw query value. An empty value yields the default.
func (w Window) Parse(raw string) (int, error) {
	if raw == "" {
		return w.Default, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotInteger
	}

	if n < w.Min || n > w.Max {
		return 0, ErrOutOfRange
	}

	return n, nil
}
