// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/legaldesign/pkg/pagination"
)

/*
TestWindow_Parse covers defaults, bounds and malformed values.
*/
func TestWindow_Parse(t *testing.T) {
	tests := []struct {
		name    string
		window  pagination.Window
		raw     string
		want    int
		wantErr error
	}{
		{"BlogDefault", pagination.BlogPosts, "", 10, nil},
		{"BlogMax", pagination.BlogPosts, "50", 50, nil},
		{"BlogTooLarge", pagination.BlogPosts, "51", 0, pagination.ErrOutOfRange},
		{"DecisionsDefault", pagination.Decisions, "", 20, nil},
		{"DecisionsMin", pagination.Decisions, "1", 1, nil},
		{"Zero", pagination.Decisions, "0", 0, pagination.ErrOutOfRange},
		{"NotANumber", pagination.Decisions, "ten", 0, pagination.ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.window.Parse(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
