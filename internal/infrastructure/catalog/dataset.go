// Package catalog serves the static business snapshot and integration panel
// that back the analytics, agent and export features.
package catalog

import (
	"github.com/argos/backend/internal/domain/analytics"
)

// StaticDataset is an analytics.Source over a fixed snapshot
type StaticDataset struct {
	data *analytics.Dataset
}

// NewStaticDataset returns the built-in snapshot
func NewStaticDataset() *StaticDataset {
	return &StaticDataset{data: snapshot()}
}

// Dataset returns the snapshot. Callers must treat it as read-only.
func (s *StaticDataset) Dataset() *analytics.Dataset {
	return s.data
}

var _ analytics.Source = (*StaticDataset)(nil)

func ptr(v float64) *float64 { return &v }

func snapshot() *analytics.Dataset {
	return &analytics.Dataset{
		ExecutiveKPIs: []analytics.KPI{
			{Label: "Faturamento Mensal", Value: "R$ 2.847.500", Change: 12.3, Trend: analytics.TrendUp, Icon: "💰"},
			{Label: "Pedidos Totais", Value: "1.842", Change: 8.7, Trend: analytics.TrendUp, Icon: "📦"},
			{Label: "Ticket Médio", Value: "R$ 1.546", Change: 3.2, Trend: analytics.TrendUp, Icon: "🎯"},
			{Label: "Margem Bruta", Value: "38,4%", Change: -1.2, Trend: analytics.TrendDown, Icon: "📊"},
			{Label: "Produção Diária", Value: "127 un", Change: 5.1, Trend: analytics.TrendUp, Icon: "🏭"},
			{Label: "OTD (On-Time Delivery)", Value: "94,2%", Change: 2.8, Trend: analytics.TrendUp, Icon: "🚚"},
			{Label: "NPS Score", Value: "72", Change: 4.0, Trend: analytics.TrendUp, Icon: "⭐"},
			{Label: "Tickets Abertos", Value: "47", Change: -15.3, Trend: analytics.TrendDown, Icon: "🎧"},
		},
		RetailKPIs: []analytics.KPI{
			{Label: "GMV Total", Value: "R$ 3.215.800", Change: 15.2, Trend: analytics.TrendUp, Icon: "💳"},
			{Label: "Pedidos Hoje", Value: "89", Change: 22.1, Trend: analytics.TrendUp, Icon: "📋"},
			{Label: "Taxa de Conversão", Value: "3,8%", Change: 0.4, Trend: analytics.TrendUp, Icon: "🎯"},
			{Label: "CAC Médio", Value: "R$ 42,30", Change: -8.5, Trend: analytics.TrendDown, Icon: "📉"},
			{Label: "LTV Médio", Value: "R$ 2.180", Change: 6.3, Trend: analytics.TrendUp, Icon: "💎"},
			{Label: "Devoluções", Value: "2,1%", Change: -0.3, Trend: analytics.TrendDown, Icon: "↩️"},
			{Label: "Avaliação Média", Value: "4,6 ★", Change: 0.2, Trend: analytics.TrendUp, Icon: "⭐"},
			{Label: "Estoque Disponível", Value: "4.230 un", Change: -3.1, Trend: analytics.TrendDown, Icon: "📦"},
		},
		IndustryKPIs: []analytics.KPI{
			{Label: "OEE Geral", Value: "78,5%", Change: 3.2, Trend: analytics.TrendUp, Icon: "⚙️"},
			{Label: "Produção Mensal", Value: "3.420 un", Change: 7.8, Trend: analytics.TrendUp, Icon: "🏭"},
			{Label: "Refugo", Value: "1,8%", Change: -0.5, Trend: analytics.TrendDown, Icon: "🗑️"},
			{Label: "Lead Time Produção", Value: "8,2 dias", Change: -1.3, Trend: analytics.TrendDown, Icon: "⏱️"},
			{Label: "Utilização Máquinas", Value: "82,3%", Change: 2.1, Trend: analytics.TrendUp, Icon: "🔧"},
			{Label: "Custo por Unidade", Value: "R$ 487", Change: -2.4, Trend: analytics.TrendDown, Icon: "💰"},
			{Label: "Ordens em Produção", Value: "34", Change: 12.0, Trend: analytics.TrendUp, Icon: "📋"},
			{Label: "Manutenções Pendentes", Value: "3", Change: -2.0, Trend: analytics.TrendDown, Icon: "🔩"},
		},
		SalesChannels: []analytics.SalesChannel{
			{ID: "ml", Name: "Mercado Livre", Icon: "🟡", Color: "#FFE600", Revenue: 892400, Orders: 612, AvgTicket: 1458, Conversion: 4.2, Change: 18.3},
			{ID: "amazon", Name: "Amazon", Icon: "🟠", Color: "#FF9900", Revenue: 634200, Orders: 398, AvgTicket: 1594, Conversion: 3.8, Change: 24.1},
			{ID: "magalu", Name: "Magazine Luiza", Icon: "🔵", Color: "#0086FF", Revenue: 521800, Orders: 347, AvgTicket: 1504, Conversion: 3.5, Change: 9.7},
			{ID: "shopee", Name: "Shopee", Icon: "🔴", Color: "#EE4D2D", Revenue: 312500, Orders: 285, AvgTicket: 1096, Conversion: 2.9, Change: 31.2},
			{ID: "site", Name: "Site Próprio", Icon: "🟣", Color: "#8B5CF6", Revenue: 298600, Orders: 124, AvgTicket: 2408, Conversion: 5.1, Change: 7.4},
			{ID: "b2b", Name: "B2B / Atacado", Icon: "🟢", Color: "#10B981", Revenue: 188000, Orders: 76, AvgTicket: 2474, Conversion: 12.8, Change: -3.2},
		},
		WorkOrders: []analytics.WorkOrder{
			{ID: "OP-2024-0891", Product: "Sofá Retrátil 3 Lugares", Line: "Linha A - Estofados", Quantity: 45, Completed: 32, Status: "em_producao", DueDate: "2024-02-15", Priority: "alta"},
			{ID: "OP-2024-0892", Product: "Mesa de Jantar 6 Lugares", Line: "Linha B - Madeira", Quantity: 30, Completed: 30, Status: "concluido", DueDate: "2024-02-12", Priority: "media"},
			{ID: "OP-2024-0893", Product: "Rack para TV 180cm", Line: "Linha C - MDF", Quantity: 80, Completed: 54, Status: "em_producao", DueDate: "2024-02-18", Priority: "media"},
			{ID: "OP-2024-0894", Product: "Guarda-Roupa 6 Portas", Line: "Linha C - MDF", Quantity: 25, Completed: 8, Status: "atrasado", DueDate: "2024-02-10", Priority: "alta"},
			{ID: "OP-2024-0895", Product: "Cama Box Queen", Line: "Linha A - Estofados", Quantity: 60, Completed: 0, Status: "aguardando", DueDate: "2024-02-22", Priority: "baixa"},
			{ID: "OP-2024-0896", Product: "Escrivaninha Home Office", Line: "Linha B - Madeira", Quantity: 100, Completed: 67, Status: "em_producao", DueDate: "2024-02-16", Priority: "alta"},
			{ID: "OP-2024-0897", Product: "Painel para TV 220cm", Line: "Linha C - MDF", Quantity: 50, Completed: 50, Status: "concluido", DueDate: "2024-02-14", Priority: "media"},
			{ID: "OP-2024-0898", Product: "Poltrona Decorativa", Line: "Linha A - Estofados", Quantity: 35, Completed: 12, Status: "em_producao", DueDate: "2024-02-20", Priority: "baixa"},
		},
		Suppliers: []analytics.SupplierScore{
			{ID: "SUP-001", Name: "MadeiraTech Ltda", Category: "Madeira / MDF", LeadTime: 7, OnTimeRate: 96.2, QualityScore: 94, Status: "ativo", LastOrder: "2024-02-08", PendingOrders: 3},
			{ID: "SUP-002", Name: "TecidosBR S.A.", Category: "Tecidos / Espumas", LeadTime: 5, OnTimeRate: 91.8, QualityScore: 88, Status: "ativo", LastOrder: "2024-02-10", PendingOrders: 2},
			{ID: "SUP-003", Name: "Ferragens Premium", Category: "Ferragens / Acessórios", LeadTime: 3, OnTimeRate: 98.5, QualityScore: 97, Status: "ativo", LastOrder: "2024-02-11", PendingOrders: 1},
			{ID: "SUP-004", Name: "Cola & Acabamento", Category: "Químicos / Acabamento", LeadTime: 4, OnTimeRate: 85.3, QualityScore: 82, Status: "em_avaliacao", LastOrder: "2024-02-05", PendingOrders: 4},
			{ID: "SUP-005", Name: "Vidros Especiais", Category: "Vidro / Espelhos", LeadTime: 10, OnTimeRate: 78.9, QualityScore: 90, Status: "em_avaliacao", LastOrder: "2024-01-28", PendingOrders: 2},
			{ID: "SUP-006", Name: "EcoFoam Indústria", Category: "Tecidos / Espumas", LeadTime: 6, OnTimeRate: 93.1, QualityScore: 91, Status: "ativo", LastOrder: "2024-02-09", PendingOrders: 1},
		},
		Shipments: []analytics.Shipment{
			{ID: "LOG-4521", OrderID: "PED-89012", Customer: "Maria Silva", City: "São Paulo", State: "SP", Carrier: "Jadlog", Status: "em_transito", EstimatedDate: "2024-02-14", Channel: "Mercado Livre"},
			{ID: "LOG-4522", OrderID: "PED-89013", Customer: "João Santos", City: "Rio de Janeiro", State: "RJ", Carrier: "Correios", Status: "coletado", EstimatedDate: "2024-02-16", Channel: "Amazon"},
			{ID: "LOG-4523", OrderID: "PED-89014", Customer: "Ana Oliveira", City: "Belo Horizonte", State: "MG", Carrier: "Transportadora XYZ", Status: "entregue", EstimatedDate: "2024-02-12", Channel: "Magazine Luiza"},
			{ID: "LOG-4524", OrderID: "PED-89015", Customer: "Carlos Souza", City: "Curitiba", State: "PR", Carrier: "Jadlog", Status: "preparando", EstimatedDate: "2024-02-18", Channel: "Shopee"},
			{ID: "LOG-4525", OrderID: "PED-89016", Customer: "Fernanda Lima", City: "Porto Alegre", State: "RS", Carrier: "Correios", Status: "em_transito", EstimatedDate: "2024-02-15", Channel: "Site Próprio"},
			{ID: "LOG-4526", OrderID: "PED-89017", Customer: "Roberto Alves", City: "Salvador", State: "BA", Carrier: "Transportadora XYZ", Status: "devolvido", EstimatedDate: "2024-02-11", Channel: "Mercado Livre"},
			{ID: "LOG-4527", OrderID: "PED-89018", Customer: "Loja Decor Plus", City: "Campinas", State: "SP", Carrier: "Jadlog", Status: "em_transito", EstimatedDate: "2024-02-13", Channel: "B2B / Atacado"},
			{ID: "LOG-4528", OrderID: "PED-89019", Customer: "Patricia Costa", City: "Recife", State: "PE", Carrier: "Correios", Status: "coletado", EstimatedDate: "2024-02-17", Channel: "Amazon"},
		},
		Tickets: []analytics.TicketSummary{
			{ID: "TK-3201", Customer: "Maria Silva", Subject: "Sofá com defeito no mecanismo retrátil", Category: "defeito", Priority: "alta", Status: "aberto", CreatedAt: "2024-02-12 09:30", Channel: "Mercado Livre", SLA: "dentro"},
			{ID: "TK-3202", Customer: "João Santos", Subject: "Dúvida sobre montagem da mesa", Category: "montagem", Priority: "baixa", Status: "em_andamento", CreatedAt: "2024-02-11 14:15", Channel: "Amazon", SLA: "dentro"},
			{ID: "TK-3203", Customer: "Ana Oliveira", Subject: "Solicita troca de cor do rack", Category: "troca", Priority: "media", Status: "aguardando_cliente", CreatedAt: "2024-02-10 11:00", Channel: "Magazine Luiza", SLA: "proximo"},
			{ID: "TK-3204", Customer: "Carlos Souza", Subject: "Guarda-roupa com porta desalinhada", Category: "defeito", Priority: "alta", Status: "aberto", CreatedAt: "2024-02-12 08:45", Channel: "Shopee", SLA: "estourado"},
			{ID: "TK-3205", Customer: "Fernanda Lima", Subject: "Reclamação sobre prazo de entrega", Category: "reclamacao", Priority: "alta", Status: "em_andamento", CreatedAt: "2024-02-09 16:20", Channel: "Site Próprio", SLA: "estourado"},
			{ID: "TK-3206", Customer: "Roberto Alves", Subject: "Peça faltando na embalagem", Category: "defeito", Priority: "media", Status: "aberto", CreatedAt: "2024-02-12 10:10", Channel: "Mercado Livre", SLA: "dentro"},
		},
		MonthlyRevenue: []analytics.MonthlyRevenue{
			{Month: "Mar", Revenue: 1820000, Orders: 1180},
			{Month: "Abr", Revenue: 1950000, Orders: 1250},
			{Month: "Mai", Revenue: 2100000, Orders: 1340},
			{Month: "Jun", Revenue: 1890000, Orders: 1210},
			{Month: "Jul", Revenue: 2250000, Orders: 1420},
			{Month: "Ago", Revenue: 2380000, Orders: 1510},
			{Month: "Set", Revenue: 2150000, Orders: 1380},
			{Month: "Out", Revenue: 2420000, Orders: 1560},
			{Month: "Nov", Revenue: 2890000, Orders: 1820},
			{Month: "Dez", Revenue: 3150000, Orders: 1980},
			{Month: "Jan", Revenue: 2540000, Orders: 1650},
			{Month: "Fev", Revenue: 2847500, Orders: 1842},
		},
		Forecast: []analytics.ForecastPoint{
			{Month: "Jan", Predicted: 2480000, Actual: ptr(2540000), LowerBound: 2200000, UpperBound: 2760000},
			{Month: "Fev", Predicted: 2790000, Actual: ptr(2847500), LowerBound: 2500000, UpperBound: 3080000},
			{Month: "Mar", Predicted: 3050000, LowerBound: 2720000, UpperBound: 3380000},
			{Month: "Abr", Predicted: 2920000, LowerBound: 2580000, UpperBound: 3260000},
			{Month: "Mai", Predicted: 3180000, LowerBound: 2800000, UpperBound: 3560000},
			{Month: "Jun", Predicted: 2850000, LowerBound: 2480000, UpperBound: 3220000},
		},
		ProductionLines: []analytics.ProductionLine{
			{Name: "Linha A - Estofados", Utilization: 87, Capacity: 50, Producing: 44, Efficiency: 91.2},
			{Name: "Linha B - Madeira", Utilization: 72, Capacity: 40, Producing: 29, Efficiency: 85.7},
			{Name: "Linha C - MDF", Utilization: 93, Capacity: 60, Producing: 56, Efficiency: 78.5},
		},
		TopProducts: []analytics.TopProduct{
			{Name: "Sofá Retrátil 3 Lugares", Sales: 312, Revenue: 623688, Margin: 42.1},
			{Name: "Rack para TV 180cm", Sales: 287, Revenue: 344113, Margin: 38.5},
			{Name: "Mesa de Jantar 6 Lugares", Sales: 198, Revenue: 394020, Margin: 35.8},
			{Name: "Escrivaninha Home Office", Sales: 245, Revenue: 220255, Margin: 44.2},
			{Name: "Guarda-Roupa 6 Portas", Sales: 156, Revenue: 389844, Margin: 33.6},
		},
		InventoryAlerts: []analytics.InventoryAlert{
			{Material: "MDF Branco 15mm", Current: 120, Minimum: 200, Unit: "chapas", DaysToStockout: 3},
			{Material: "Espuma D33", Current: 85, Minimum: 150, Unit: "blocos", DaysToStockout: 5},
			{Material: "Tecido Suede Cinza", Current: 45, Minimum: 100, Unit: "metros", DaysToStockout: 2},
			{Material: "Dobradiça 35mm", Current: 340, Minimum: 500, Unit: "pares", DaysToStockout: 7},
		},
	}
}
