// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the public address of blog posts and content pages
// (e.g., "kidem-tazminati-nasil-hesaplanir"). This package handles normalization,
// accent removal, Turkish letter folding and character sanitization.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)

	// turkishFold maps letters that have no decomposed ASCII base.
	turkishFold = strings.NewReplacer("ı", "i", "İ", "I")
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Folds the dotless and dotted Turkish I (ı → i, İ → I).
// 2. Normalizes to NFD (decomposes accented chars: ş → s + combining cedilla).
// 3. Removes combining marks (accents).
// 4. Converts to lowercase.
// 5. Replaces non-alphanumeric characters with hyphens.
// 6. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Fold, normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, turkishFold.Replace(s))

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
