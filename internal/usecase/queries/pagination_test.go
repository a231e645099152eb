//go:build unit

package queries_test

import (
	"testing"

	"parkspace-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name   string
		limit  int
		offset int
		want   queries.Page
	}{
		{name: "zero limit uses default", limit: 0, offset: 0, want: queries.Page{Limit: queries.DefaultListLimit}},
		{name: "limit is capped", limit: 1000, offset: 10, want: queries.Page{Limit: queries.MaxListLimit, Offset: 10}},
		{name: "negative offset is reset", limit: 20, offset: -5, want: queries.Page{Limit: 20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, queries.NewPage(tc.limit, tc.offset))
		})
	}
}

func TestNewAuditPage(t *testing.T) {
	assert.Equal(t, queries.Page{Limit: queries.DefaultAuditLimit}, queries.NewAuditPage(0, 0))
	assert.Equal(t, queries.Page{Limit: 25, Offset: 50}, queries.NewAuditPage(25, 50))
	assert.Equal(t, queries.Page{Limit: queries.MaxListLimit}, queries.NewAuditPage(500, 0))
}
