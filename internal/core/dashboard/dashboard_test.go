// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
)

/*
TestStatistics counts each content collection.
*/
func TestStatistics(t *testing.T) {
	store := docstore.NewMemory()
	ctx := context.Background()

	for collection, n := range map[string]int{
		schema.CollectionLegalProcesses: 3,
		schema.CollectionBlogPosts:      2,
	} {
		for i := 0; i < n; i++ {
			require.NoError(t, store.Insert(ctx, collection, docstore.Document{"id": collection + string(rune('a'+i))}))
		}
	}

	statistics, err := NewService(store).Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, statistics.TotalProcesses)
	assert.Equal(t, 2, statistics.TotalBlogPosts)
	assert.Zero(t, statistics.TotalDecisions)
	assert.Equal(t, 1250, statistics.TotalVisits)
	assert.Equal(t, 342, statistics.CalculatorUsage)
	assert.False(t, statistics.LastUpdated.IsZero())
}
