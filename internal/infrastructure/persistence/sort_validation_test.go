package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	fields := sortable("name")

	tests := []struct {
		orderBy, orderDir string
		want              string
	}{
		{"name", "asc", "name ASC"},
		{"name", "ASC", "name ASC"},
		{"  name ", " asc ", "name ASC"},
		{"name", "desc", "name DESC"},
		{"name", "", "name DESC"},
		{"name", "sideways", "name DESC"},
		{"id", "asc", "id ASC"},
		{"updated_at", "desc", "updated_at DESC"},
		{"", "asc", defaultOrder},
		{"NAME", "asc", defaultOrder},
		{"unknown", "asc", defaultOrder},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fields.orderClause(tt.orderBy, tt.orderDir), "%q %q", tt.orderBy, tt.orderDir)
	}
}

func TestOrderClause_RejectsInjection(t *testing.T) {
	payloads := []string{
		"id; DROP TABLE users;--",
		"id' OR '1'='1",
		"id UNION SELECT * FROM users",
		"id, (SELECT password_hash FROM users)",
		"CASE WHEN 1=1 THEN id ELSE name END",
		"id/**/;DROP TABLE users",
		"id\n; DROP TABLE users",
	}
	for _, p := range payloads {
		assert.Equal(t, defaultOrder, supplierSort.orderClause(p, "asc"), p)
		assert.Equal(t, "rating DESC", supplierSort.orderClause("rating", p), p)
	}
}

func TestSortable_IncludesBaseColumns(t *testing.T) {
	for name, fields := range map[string]sortFields{
		"saved dashboards":  savedDashboardSort,
		"suppliers":         supplierSort,
		"purchase orders":   purchaseOrderSort,
		"production orders": productionOrderSort,
		"deliveries":        deliverySort,
		"support tickets":   supportTicketSort,
		"forecasts":         forecastSort,
		"conversations":     conversationSort,
	} {
		for _, col := range []string{"id", "created_at", "updated_at"} {
			assert.True(t, fields[col], "%s missing %s", name, col)
		}
	}
}
