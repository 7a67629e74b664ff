// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/core/catalog"
)

/*
TestCatalog_Contents checks the shipped data is complete and decodable.
*/
func TestCatalog_Contents(t *testing.T) {
	processes, err := catalog.LegalProcesses()
	require.NoError(t, err)
	require.Len(t, processes, 3)
	assert.Equal(t, "bosanma-sureci", processes[0]["id"])
	assert.Equal(t, "ceza", processes[2]["category"])

	parameters, err := catalog.CalculatorParameters()
	require.NoError(t, err)
	assert.Len(t, parameters, 17)

	names := make(map[string]bool)
	for _, parameter := range parameters {
		names[parameter["name"].(string)] = true
		assert.Contains(t, []string{"compensation", "execution"}, parameter["category"])
	}
	for _, required := range []string{"severance_multiplier", "notice_period_months", "overtime_hourly_rate", "good_behavior_multiplier"} {
		assert.True(t, names[required], required)
	}

	descriptions, err := catalog.DocumentDescriptions()
	require.NoError(t, err)
	assert.Len(t, descriptions, 14)

	posts, err := catalog.BlogPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	aid, err := catalog.LegalAid()
	require.NoError(t, err)
	assert.Equal(t, "Ücretsiz Adli Yardım Hizmetleri", aid["title"])
	assert.Len(t, aid["baro_contacts"], 3)
}

/*
TestCatalog_Defaults checks every CMS singleton ships a default document.
*/
func TestCatalog_Defaults(t *testing.T) {
	collections := []string{
		"ad_settings", "site_settings", "menu_config", "footer_config",
		"home_page_content", "about_page_content", "contact_page_content",
	}

	for _, collection := range collections {
		t.Run(collection, func(t *testing.T) {
			document, err := catalog.Defaults(collection)
			require.NoError(t, err)
			assert.Contains(t, document, "is_active")
		})
	}

	_, err := catalog.Defaults("unknown")
	assert.Error(t, err)
}

/*
TestCatalog_FreshCopies verifies callers cannot corrupt the shipped data.
*/
func TestCatalog_FreshCopies(t *testing.T) {
	first, err := catalog.BlogPosts()
	require.NoError(t, err)
	first[0]["title"] = "mutated"

	second, err := catalog.BlogPosts()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0]["title"])
}
