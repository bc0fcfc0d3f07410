package agent

// WidgetType selects how the frontend renders a widget
type WidgetType string

const (
	WidgetKPI              WidgetType = "kpi"
	WidgetBarChart         WidgetType = "bar_chart"
	WidgetProgressRing     WidgetType = "progress_ring"
	WidgetHorizontalBars   WidgetType = "horizontal_bars"
	WidgetSparkline        WidgetType = "sparkline"
	WidgetTable            WidgetType = "table"
	WidgetStatusList       WidgetType = "status_list"
	WidgetPieChart         WidgetType = "pie_chart"
	WidgetMetricComparison WidgetType = "metric_comparison"
	WidgetAlertList        WidgetType = "alert_list"
)

// Widget is one panel of a generated dashboard. Span is the number of grid columns (1-4).
type Widget struct {
	ID       string     `json:"id"`
	Type     WidgetType `json:"type"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Span     int        `json:"span"`
	Data     any        `json:"data"`
}

// KPIData is the payload of a kpi widget
type KPIData struct {
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
	Icon   string  `json:"icon"`
}

// ChartPoint is one bar of a bar_chart widget
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Bar is one row of a horizontal_bars widget
type Bar struct {
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	MaxValue     float64 `json:"max_value"`
	Color        string  `json:"color"`
	Suffix       string  `json:"suffix"`
	DisplayValue string  `json:"display_value,omitempty"`
}

// TableData is the payload of a table widget
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Ring is one gauge of a progress_ring widget
type Ring struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
	Detail string  `json:"detail"`
}

// StatusItem is one entry of a status_list widget
type StatusItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Sublabel string `json:"sublabel"`
	Status   string `json:"status"`
	Priority string `json:"priority,omitempty"`
	Progress *int   `json:"progress,omitempty"`
	Detail   string `json:"detail"`
}

// Comparison is one entry of a metric_comparison widget
type Comparison struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Icon  string  `json:"icon"`
}

// AlertItem is one entry of an alert_list widget
type AlertItem struct {
	Label          string `json:"label"`
	Current        int    `json:"current"`
	Minimum        int    `json:"minimum"`
	Unit           string `json:"unit"`
	DaysToStockout int    `json:"days_to_stockout"`
	Severity       string `json:"severity"` // critical, warning or info
}
