// Package analytics holds the read-only business dataset behind the dashboards,
// the agent and the report export, plus the report sections built from it.
package analytics

// Trend is the direction of a KPI against the previous period
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// KPI is a single headline indicator
type KPI struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  Trend   `json:"trend"`
	Icon   string  `json:"icon"`
}

// SalesChannel is the monthly performance of one marketplace or channel
type SalesChannel struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Revenue    float64 `json:"revenue"`
	Orders     int     `json:"orders"`
	AvgTicket  float64 `json:"avg_ticket"`
	Conversion float64 `json:"conversion"`
	Change     float64 `json:"change"`
}

// WorkOrder is a production order as shown on the factory board
type WorkOrder struct {
	ID        string `json:"id"`
	Product   string `json:"product"`
	Line      string `json:"line"`
	Quantity  int    `json:"quantity"`
	Completed int    `json:"completed"`
	Status    string `json:"status"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
}

// Progress returns the rounded completion percentage
func (w WorkOrder) Progress() int {
	if w.Quantity == 0 {
		return 0
	}
	return int(float64(w.Completed)/float64(w.Quantity)*100 + 0.5)
}

// SupplierScore is one row of the supplier scorecard
type SupplierScore struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	LeadTime      int     `json:"lead_time"`
	OnTimeRate    float64 `json:"on_time_rate"`
	QualityScore  int     `json:"quality_score"`
	Status        string  `json:"status"`
	LastOrder     string  `json:"last_order"`
	PendingOrders int     `json:"pending_orders"`
}

// Shipment is a tracked customer delivery
type Shipment struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	Customer      string `json:"customer"`
	City          string `json:"city"`
	State         string `json:"state"`
	Carrier       string `json:"carrier"`
	Status        string `json:"status"`
	EstimatedDate string `json:"estimated_date"`
	Channel       string `json:"channel"`
}

// TicketSummary is a support ticket as listed on the support board
type TicketSummary struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	Subject   string `json:"subject"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	Channel   string `json:"channel"`
	SLA       string `json:"sla"`
}

// MonthlyRevenue is revenue and order volume for one month
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// ForecastPoint is a predicted month; Actual is nil for months not closed yet
type ForecastPoint struct {
	Month      string   `json:"month"`
	Predicted  float64  `json:"predicted"`
	Actual     *float64 `json:"actual"`
	LowerBound float64  `json:"lower_bound"`
	UpperBound float64  `json:"upper_bound"`
}

// Accuracy returns 1 - |actual-predicted|/predicted as a percentage
func (f ForecastPoint) Accuracy() (float64, bool) {
	if f.Actual == nil || f.Predicted == 0 {
		return 0, false
	}
	diff := *f.Actual - f.Predicted
	if diff < 0 {
		diff = -diff
	}
	return (1 - diff/f.Predicted) * 100, true
}

// ProductionLine is the live utilization of a factory line
type ProductionLine struct {
	Name        string  `json:"name"`
	Utilization int     `json:"utilization"`
	Capacity    int     `json:"capacity"`
	Producing   int     `json:"producing"`
	Efficiency  float64 `json:"efficiency"`
}

// TopProduct is a best-selling product
type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Margin  float64 `json:"margin"`
}

// InventoryAlert flags a material below its minimum stock
type InventoryAlert struct {
	Material       string `json:"material"`
	Current        int    `json:"current"`
	Minimum        int    `json:"minimum"`
	Unit           string `json:"unit"`
	DaysToStockout int    `json:"days_to_stockout"`
}

// Dataset is the complete business snapshot
type Dataset struct {
	ExecutiveKPIs   []KPI
	RetailKPIs      []KPI
	IndustryKPIs    []KPI
	SalesChannels   []SalesChannel
	WorkOrders      []WorkOrder
	Suppliers       []SupplierScore
	Shipments       []Shipment
	Tickets         []TicketSummary
	MonthlyRevenue  []MonthlyRevenue
	Forecast        []ForecastPoint
	ProductionLines []ProductionLine
	TopProducts     []TopProduct
	InventoryAlerts []InventoryAlert
}

// Source provides the current dataset
type Source interface {
	Dataset() *Dataset
}

// CountWorkOrders counts work orders with the given status
func (d *Dataset) CountWorkOrders(status string) int {
	n := 0
	for _, o := range d.WorkOrders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// CountSuppliers counts suppliers with the given status
func (d *Dataset) CountSuppliers(status string) int {
	n := 0
	for _, s := range d.Suppliers {
		if s.Status == status {
			n++
		}
	}
	return n
}

// AverageOnTimeRate is the mean supplier on-time rate
func (d *Dataset) AverageOnTimeRate() float64 {
	if len(d.Suppliers) == 0 {
		return 0
	}
	var sum float64
	for _, s := range d.Suppliers {
		sum += s.OnTimeRate
	}
	return sum / float64(len(d.Suppliers))
}

// CountShipments counts shipments with the given status
func (d *Dataset) CountShipments(status string) int {
	n := 0
	for _, s := range d.Shipments {
		if s.Status == status {
			n++
		}
	}
	return n
}

// OpenTickets counts tickets not yet resolved
func (d *Dataset) OpenTickets() int {
	n := 0
	for _, t := range d.Tickets {
		if t.Status != "resolvido" {
			n++
		}
	}
	return n
}

// CountTickets counts tickets matching pred
func (d *Dataset) CountTickets(pred func(TicketSummary) bool) int {
	n := 0
	for _, t := range d.Tickets {
		if pred(t) {
			n++
		}
	}
	return n
}

// MostUrgentAlert returns the alert closest to stockout
func (d *Dataset) MostUrgentAlert() (InventoryAlert, bool) {
	if len(d.InventoryAlerts) == 0 {
		return InventoryAlert{}, false
	}
	best := d.InventoryAlerts[0]
	for _, a := range d.InventoryAlerts[1:] {
		if a.DaysToStockout < best.DaysToStockout {
			best = a
		}
	}
	return best, true
}

// HighestMarginProduct returns the product with the best margin
func (d *Dataset) HighestMarginProduct() (TopProduct, bool) {
	if len(d.TopProducts) == 0 {
		return TopProduct{}, false
	}
	best := d.TopProducts[0]
	for _, p := range d.TopProducts[1:] {
		if p.Margin > best.Margin {
			best = p
		}
	}
	return best, true
}

// FindKPI looks a KPI up by label across the executive, retail and industry lists
func (d *Dataset) FindKPI(label string) (KPI, bool) {
	for _, list := range [][]KPI{d.ExecutiveKPIs, d.RetailKPIs, d.IndustryKPIs} {
		for _, k := range list {
			if k.Label == label {
				return k, true
			}
		}
	}
	return KPI{}, false
}
