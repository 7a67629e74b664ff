// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/legaldesign/pkg/slug"
)

/*
TestFrom covers Turkish titles and punctuation cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Boşanma Sürecinde Bilinmesi Gerekenler", "bosanma-surecinde-bilinmesi-gerekenler"},
		{"Kıdem Tazminatı Nasıl Hesaplanır?", "kidem-tazminati-nasil-hesaplanir"},
		{"İŞÇİ HAKLARI", "isci-haklari"},
		{"  Çocuk   Velayeti -- Rehber  ", "cocuk-velayeti-rehber"},
		{"Ağır Ceza 2024", "agir-ceza-2024"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
