package agent

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/argos/backend/internal/domain/analytics"
)

// GeneratedDashboard is the dashboard the agent builds for a query
type GeneratedDashboard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Widgets     []Widget `json:"widgets"`
	Query       string   `json:"query"`
	Timestamp   int64    `json:"timestamp"` // unix milliseconds
}

// Response is the agent's answer to a query
type Response struct {
	Message   string             `json:"message"`
	Dashboard GeneratedDashboard `json:"dashboard"`
	Domains   []Domain           `json:"domains"`
}

// Generate answers query from the dataset. d is only read.
func Generate(d *analytics.Dataset, query string, now time.Time) Response {
	domains := DetectDomains(query)
	return Response{
		Message: composeMessage(d, domains),
		Dashboard: GeneratedDashboard{
			Title:       DashboardTitle(domains),
			Description: query,
			Widgets:     GenerateWidgets(d, domains),
			Query:       query,
			Timestamp:   now.UnixMilli(),
		},
		Domains: domains,
	}
}

type widgetBuilder struct {
	d       *analytics.Dataset
	widgets []Widget
}

func (b *widgetBuilder) add(t WidgetType, title, subtitle string, span int, data any) {
	b.widgets = append(b.widgets, Widget{
		ID:       "w-" + strconv.Itoa(len(b.widgets)+1),
		Type:     t,
		Title:    title,
		Subtitle: subtitle,
		Span:     span,
		Data:     data,
	})
}

// kpi adds a kpi widget for a dataset KPI, skipping labels the dataset lacks
func (b *widgetBuilder) kpi(label string) {
	if k, ok := b.d.FindKPI(label); ok {
		b.add(WidgetKPI, k.Label, "", 1, kpiData(k))
	}
}

func kpiData(k analytics.KPI) KPIData {
	return KPIData{Value: k.Value, Change: k.Change, Trend: string(k.Trend), Icon: k.Icon}
}

// counter adds a kpi widget carrying a live count and no trend
func (b *widgetBuilder) counter(title string, n int, icon string) {
	b.add(WidgetKPI, title, "", 1, KPIData{Value: strconv.Itoa(n), Trend: string(analytics.TrendStable), Icon: icon})
}

// GenerateWidgets builds the widget bundles of domains, in order, numbering widgets w-1, w-2...
func GenerateWidgets(d *analytics.Dataset, domains []Domain) []Widget {
	b := &widgetBuilder{d: d, widgets: []Widget{}}
	for _, domain := range domains {
		switch domain {
		case DomainFaturamento:
			b.kpi("Faturamento Mensal")
			b.add(WidgetBarChart, "Faturamento Mensal", "Últimos 12 meses", 4, revenuePoints(d))
			b.kpi("Ticket Médio")
		case DomainPedidos:
			b.kpi("Pedidos Totais")
			b.kpi("Pedidos Hoje")
			points := make([]ChartPoint, len(d.MonthlyRevenue))
			for i, m := range d.MonthlyRevenue {
				points[i] = ChartPoint{Label: m.Month, Value: float64(m.Orders)}
			}
			b.add(WidgetBarChart, "Pedidos por Mês", "Últimos 12 meses", 4, points)
		case DomainCanais:
			channelWidgets(b)
		case DomainProducao:
			productionWidgets(b)
		case DomainFornecedores:
			supplierWidgets(b)
		case DomainLogistica:
			logisticsWidgets(b)
		case DomainSuporte:
			supportWidgets(b)
		case DomainEstoque:
			b.counter("Alertas de Estoque", len(d.InventoryAlerts), "📦")
			alerts := make([]AlertItem, len(d.InventoryAlerts))
			for i, a := range d.InventoryAlerts {
				alerts[i] = AlertItem{
					Label:          a.Material,
					Current:        a.Current,
					Minimum:        a.Minimum,
					Unit:           a.Unit,
					DaysToStockout: a.DaysToStockout,
					Severity:       stockoutSeverity(a.DaysToStockout),
				}
			}
			b.add(WidgetAlertList, "Materiais em Risco de Ruptura", "Abaixo do estoque mínimo", 4, alerts)
		case DomainForecast:
			forecastWidgets(b)
		case DomainProdutos:
			productWidgets(b)
		case DomainMargem:
			b.kpi("Margem Bruta")
			bars := make([]Bar, len(d.TopProducts))
			for i, p := range d.TopProducts {
				bars[i] = Bar{Label: p.Name, Value: p.Margin, MaxValue: 50, Color: marginColor(p.Margin), Suffix: "%"}
			}
			b.add(WidgetHorizontalBars, "Margem por Produto", "", 2, bars)
		default:
			for i, k := range d.ExecutiveKPIs {
				if i == 4 {
					break
				}
				b.add(WidgetKPI, k.Label, "", 1, kpiData(k))
			}
			b.add(WidgetBarChart, "Faturamento Mensal", "Últimos 12 meses", 4, revenuePoints(d))
		}
	}
	return b.widgets
}

func revenuePoints(d *analytics.Dataset) []ChartPoint {
	points := make([]ChartPoint, len(d.MonthlyRevenue))
	for i, m := range d.MonthlyRevenue {
		points[i] = ChartPoint{Label: m.Month, Value: m.Revenue}
	}
	return points
}

func channelWidgets(b *widgetBuilder) {
	d := b.d
	b.add(WidgetKPI, "Canais Ativos", "", 1, KPIData{
		Value: strconv.Itoa(len(d.SalesChannels)),
		Trend: string(analytics.TrendStable),
		Icon:  "🛒",
	})

	var maxRevenue float64
	for _, ch := range d.SalesChannels {
		maxRevenue = math.Max(maxRevenue, ch.Revenue)
	}
	bars := make([]Bar, len(d.SalesChannels))
	rows := make([][]string, len(d.SalesChannels))
	comparisons := make([]Comparison, len(d.SalesChannels))
	for i, ch := range d.SalesChannels {
		label := ch.Icon + " " + ch.Name
		bars[i] = Bar{
			Label:        label,
			Value:        ch.Revenue,
			MaxValue:     maxRevenue,
			Color:        ch.Color,
			DisplayValue: analytics.FormatCurrency(ch.Revenue),
		}
		rows[i] = []string{
			label,
			analytics.FormatCurrency(ch.Revenue),
			analytics.FormatNumber(float64(ch.Orders)),
			analytics.FormatCurrency(ch.AvgTicket),
			plainPercent(ch.Conversion),
			signedPlainPercent(ch.Change),
		}
		comparisons[i] = Comparison{Label: ch.Name, Value: ch.Change, Icon: ch.Icon}
	}
	b.add(WidgetHorizontalBars, "Receita por Canal", "Participação no faturamento", 2, bars)
	b.add(WidgetTable, "Performance por Canal", "Comparativo detalhado", 4, TableData{
		Headers: []string{"Canal", "Receita", "Pedidos", "Ticket Médio", "Conversão", "Variação"},
		Rows:    rows,
	})
	b.add(WidgetMetricComparison, "Crescimento por Canal", "", 2, comparisons)
}

func productionWidgets(b *widgetBuilder) {
	d := b.d
	b.kpi("OEE Geral")
	b.kpi("Produção Mensal")
	b.kpi("Refugo")

	rings := make([]Ring, len(d.ProductionLines))
	for i, line := range d.ProductionLines {
		rings[i] = Ring{
			Label:  lineShortName(line.Name),
			Value:  float64(line.Utilization),
			Color:  utilizationColor(line.Utilization),
			Detail: fmt.Sprintf("%d/%d un/dia", line.Producing, line.Capacity),
		}
	}
	b.add(WidgetProgressRing, "Utilização das Linhas", "Capacidade em tempo real", 2, rings)

	orders := d.WorkOrders
	if len(orders) > 6 {
		orders = orders[:6]
	}
	items := make([]StatusItem, len(orders))
	for i, op := range orders {
		progress := op.Progress()
		items[i] = StatusItem{
			ID:       op.ID,
			Label:    op.Product,
			Sublabel: op.Line,
			Status:   op.Status,
			Progress: &progress,
			Detail:   fmt.Sprintf("%d/%d un", op.Completed, op.Quantity),
		}
	}
	subtitle := fmt.Sprintf("%d em produção", d.CountWorkOrders("em_producao"))
	b.add(WidgetStatusList, "Ordens de Produção", subtitle, 2, items)
}

func supplierWidgets(b *widgetBuilder) {
	d := b.d
	b.counter("Fornecedores Ativos", d.CountSuppliers("ativo"), "🤝")
	b.add(WidgetKPI, "On-Time Rate Médio", "", 1, KPIData{
		Value:  strconv.FormatFloat(d.AverageOnTimeRate(), 'f', 1, 64) + "%",
		Change: 2.1,
		Trend:  string(analytics.TrendUp),
		Icon:   "⏱️",
	})

	bars := make([]Bar, len(d.Suppliers))
	rows := make([][]string, len(d.Suppliers))
	for i, s := range d.Suppliers {
		bars[i] = Bar{
			Label:    s.Name,
			Value:    float64(s.QualityScore),
			MaxValue: 100,
			Color:    qualityColor(s.QualityScore),
			Suffix:   "%",
		}
		rows[i] = []string{
			s.Name,
			s.Category,
			fmt.Sprintf("%d dias", s.LeadTime),
			plainPercent(s.OnTimeRate),
			fmt.Sprintf("%d/100", s.QualityScore),
			supplierStatusLabel(s.Status),
		}
	}
	b.add(WidgetHorizontalBars, "Quality Score por Fornecedor", "", 2, bars)
	b.add(WidgetTable, "Scorecard de Fornecedores", "", 4, TableData{
		Headers: []string{"Fornecedor", "Categoria", "Lead Time", "On-Time", "Qualidade", "Status"},
		Rows:    rows,
	})
}

var shipmentStages = []struct {
	status, label, color string
}{
	{"preparando", "Preparando", "#a855f7"},
	{"coletado", "Coletado", "#3b82f6"},
	{"em_transito", "Em Trânsito", "#f59e0b"},
	{"entregue", "Entregue", "#10b981"},
	{"devolvido", "Devolvido", "#ef4444"},
}

func logisticsWidgets(b *widgetBuilder) {
	d := b.d
	b.kpi("OTD (On-Time Delivery)")
	b.counter("Em Trânsito", d.CountShipments("em_transito"), "📍")

	total := float64(len(d.Shipments))
	bars := make([]Bar, len(shipmentStages))
	for i, stage := range shipmentStages {
		bars[i] = Bar{
			Label:    stage.label,
			Value:    float64(d.CountShipments(stage.status)),
			MaxValue: total,
			Color:    stage.color,
		}
	}
	b.add(WidgetHorizontalBars, "Pipeline de Entregas", "", 2, bars)

	rows := make([][]string, len(d.Shipments))
	for i, l := range d.Shipments {
		rows[i] = []string{l.ID, l.Customer, l.City + "/" + l.State, l.Carrier, l.Channel, shipmentStatusLabel(l.Status)}
	}
	b.add(WidgetTable, "Rastreamento de Entregas", "", 4, TableData{
		Headers: []string{"Código", "Cliente", "Destino", "Transportadora", "Canal", "Status"},
		Rows:    rows,
	})
}

func supportWidgets(b *widgetBuilder) {
	d := b.d
	open := d.OpenTickets()
	if k, ok := d.FindKPI("Tickets Abertos"); ok {
		b.add(WidgetKPI, k.Label, "", 1, KPIData{Value: strconv.Itoa(open), Change: k.Change, Trend: string(k.Trend), Icon: k.Icon})
	}
	b.counter("SLA Estourado", d.CountTickets(slaBreached), "⚠️")
	b.kpi("NPS Score")

	items := make([]StatusItem, len(d.Tickets))
	for i, t := range d.Tickets {
		items[i] = StatusItem{
			ID:       t.ID,
			Label:    t.Subject,
			Sublabel: t.Customer + " · " + t.Channel,
			Status:   t.Status,
			Priority: t.Priority,
			Detail:   slaLabel(t.SLA),
		}
	}
	b.add(WidgetStatusList, "Tickets Recentes", fmt.Sprintf("%d abertos", open), 4, items)
}

func forecastWidgets(b *widgetBuilder) {
	d := b.d
	points := make([]ChartPoint, len(d.Forecast))
	rows := make([][]string, len(d.Forecast))
	for i, f := range d.Forecast {
		p := ChartPoint{Label: f.Month, Value: f.Predicted, Color: "rgb(59 130 246 / 0.4)"}
		actual, accuracy := "—", "—"
		if f.Actual != nil {
			p.Value = *f.Actual
			p.Color = "rgb(59 130 246)"
			actual = analytics.FormatCurrency(*f.Actual)
		}
		if acc, ok := f.Accuracy(); ok {
			accuracy = strconv.FormatFloat(acc, 'f', 1, 64) + "%"
		}
		points[i] = p
		rows[i] = []string{
			f.Month,
			analytics.FormatCurrency(f.Predicted),
			actual,
			analytics.FormatCurrency(f.LowerBound),
			analytics.FormatCurrency(f.UpperBound),
			accuracy,
		}
	}
	b.add(WidgetBarChart, "Previsão de Faturamento", "Realizado vs Previsto", 4, points)
	b.add(WidgetTable, "Detalhamento do Forecast", "", 4, TableData{
		Headers: []string{"Mês", "Previsto", "Realizado", "Limite Inferior", "Limite Superior", "Acurácia"},
		Rows:    rows,
	})
}

func productWidgets(b *widgetBuilder) {
	d := b.d
	var maxRevenue float64
	for _, p := range d.TopProducts {
		maxRevenue = math.Max(maxRevenue, p.Revenue)
	}
	bars := make([]Bar, len(d.TopProducts))
	rows := make([][]string, len(d.TopProducts))
	for i, p := range d.TopProducts {
		bars[i] = Bar{
			Label:        p.Name,
			Value:        p.Revenue,
			MaxValue:     maxRevenue,
			Color:        "#3b82f6",
			DisplayValue: analytics.FormatCurrency(p.Revenue),
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			p.Name,
			analytics.FormatNumber(float64(p.Sales)),
			analytics.FormatCurrency(p.Revenue),
			plainPercent(p.Margin),
		}
	}
	b.add(WidgetHorizontalBars, "Top Produtos por Receita", "Mais vendidos no período", 2, bars)
	b.add(WidgetTable, "Ranking de Produtos", "", 2, TableData{
		Headers: []string{"#", "Produto", "Vendas", "Receita", "Margem"},
		Rows:    rows,
	})
}

func lineShortName(name string) string {
	if _, short, ok := strings.Cut(name, " - "); ok {
		return short
	}
	return name
}

func utilizationColor(u int) string {
	switch {
	case u > 90:
		return "#ef4444"
	case u > 75:
		return "#3b82f6"
	default:
		return "#10b981"
	}
}

func qualityColor(score int) string {
	switch {
	case score >= 90:
		return "#10b981"
	case score >= 80:
		return "#3b82f6"
	default:
		return "#ef4444"
	}
}

func marginColor(margin float64) string {
	switch {
	case margin >= 40:
		return "#10b981"
	case margin >= 35:
		return "#3b82f6"
	default:
		return "#f59e0b"
	}
}

func stockoutSeverity(days int) string {
	switch {
	case days <= 3:
		return "critical"
	case days <= 5:
		return "warning"
	default:
		return "info"
	}
}

func supplierStatusLabel(status string) string {
	switch status {
	case "ativo":
		return "✅ Ativo"
	case "em_avaliacao":
		return "⚠️ Em Avaliação"
	default:
		return "🚫 Bloqueado"
	}
}

func shipmentStatusLabel(status string) string {
	switch status {
	case "entregue":
		return "✅ Entregue"
	case "em_transito":
		return "🚛 Em Trânsito"
	case "coletado":
		return "📦 Coletado"
	case "devolvido":
		return "↩️ Devolvido"
	default:
		return "⏳ Preparando"
	}
}

func slaLabel(sla string) string {
	switch sla {
	case "estourado":
		return "🔴 SLA Estourado"
	case "proximo":
		return "🟡 SLA Próximo"
	default:
		return "🟢 Dentro do SLA"
	}
}

func slaBreached(t analytics.TicketSummary) bool { return t.SLA == "estourado" }

func plainPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func signedPlainPercent(v float64) string {
	if v >= 0 {
		return "+" + plainPercent(v)
	}
	return plainPercent(v)
}

// channelsByGrowth returns a copy of the channels ordered by change, fastest first
func channelsByGrowth(channels []analytics.SalesChannel) []analytics.SalesChannel {
	sorted := slices.Clone(channels)
	slices.SortStableFunc(sorted, func(a, b analytics.SalesChannel) int {
		switch {
		case a.Change > b.Change:
			return -1
		case a.Change < b.Change:
			return 1
		}
		return 0
	})
	return sorted
}
