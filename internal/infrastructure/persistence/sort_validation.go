package persistence

import "strings"

const defaultOrder = "created_at DESC"

// sortFields is a whitelist of columns a list endpoint may order by
type sortFields map[string]bool

// sortable whitelists the base columns plus the given entity columns
func sortable(columns ...string) sortFields {
	fields := sortFields{"id": true, "created_at": true, "updated_at": true}
	for _, c := range columns {
		fields[c] = true
	}
	return fields
}

// orderClause builds "<column> ASC|DESC". Unknown or empty columns fall back to
// newest first, anything but "asc" sorts descending.
func (f sortFields) orderClause(orderBy, orderDir string) string {
	column := strings.TrimSpace(orderBy)
	if !f[column] {
		return defaultOrder
	}
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return column + " ASC"
	}
	return column + " DESC"
}

var (
	savedDashboardSort  = sortable("title", "is_shared", "last_viewed")
	supplierSort        = sortable("name", "category", "rating", "on_time_rate", "quality_score", "status", "total_orders", "total_spent", "lead_time_days")
	purchaseOrderSort   = sortable("order_number", "status", "total_amount", "expected_delivery", "actual_delivery")
	productionOrderSort = sortable("order_number", "product_name", "quantity", "status", "priority", "production_line", "start_date", "end_date", "defect_rate")
	deliverySort        = sortable("tracking_code", "order_number", "customer_name", "carrier", "status", "estimated_delivery", "actual_delivery", "cost")
	supportTicketSort   = sortable("ticket_number", "customer_name", "category", "priority", "status", "sla_deadline")
	forecastSort        = sortable("period", "channel", "product_category", "predicted_revenue", "predicted_units")
	conversationSort    = sortable("title")
)
