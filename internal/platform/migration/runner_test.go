// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestConvertToPgx5DSN rewrites postgres schemes for the pgx5 migrate driver.
*/
func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@db:5432/legal", "pgx5://u:p@db:5432/legal"},
		{"postgresql://db/legal", "pgx5://db/legal"},
		{"pgx5://db/legal", "pgx5://db/legal"},
		{"host=db dbname=legal", "host=db dbname=legal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.dsn), tt.dsn)
	}
}
