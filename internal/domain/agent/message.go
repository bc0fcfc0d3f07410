package agent

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/argos/backend/internal/domain/analytics"
)

var monthNames = map[string]string{
	"Jan": "janeiro", "Fev": "fevereiro", "Mar": "março", "Abr": "abril",
	"Mai": "maio", "Jun": "junho", "Jul": "julho", "Ago": "agosto",
	"Set": "setembro", "Out": "outubro", "Nov": "novembro", "Dez": "dezembro",
}

// composeMessage picks the reply for the highest priority domain present
func composeMessage(d *analytics.Dataset, domains []Domain) string {
	has := func(want ...Domain) bool {
		for _, w := range want {
			if slices.Contains(domains, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has(DomainFaturamento, DomainPedidos):
		return revenueMessage(d)
	case has(DomainCanais):
		return channelsMessage(d)
	case has(DomainProducao):
		return productionMessage(d)
	case has(DomainFornecedores):
		return suppliersMessage(d)
	case has(DomainLogistica):
		return logisticsMessage(d)
	case has(DomainSuporte):
		return supportMessage(d)
	case has(DomainEstoque):
		return inventoryMessage(d)
	case has(DomainForecast):
		return forecastMessage(d)
	case has(DomainProdutos):
		return productsMessage(d)
	case has(DomainMargem):
		return marginMessage(d)
	default:
		return overviewMessage(d)
	}
}

func kpiValue(d *analytics.Dataset, label string) string {
	k, _ := d.FindKPI(label)
	return k.Value
}

// signedDecimal renders a change as "+12,3"
func signedDecimal(v float64) string {
	s := analytics.FormatDecimal(v, 1)
	if v >= 0 {
		return "+" + s
	}
	return s
}

func revenueMessage(d *analytics.Dataset) string {
	revenue, _ := d.FindKPI("Faturamento Mensal")
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Análise de Faturamento**\n\nO faturamento mensal atual é de **%s**, representando um crescimento de **%s%%** em relação ao mês anterior. ",
		revenue.Value, signedDecimal(revenue.Change))
	fmt.Fprintf(&b, "O volume de pedidos alcançou **%s unidades** com ticket médio de **%s**.",
		kpiValue(d, "Pedidos Totais"), kpiValue(d, "Ticket Médio"))

	ranked := channelsByRevenue(d.SalesChannels)
	if len(ranked) >= 2 {
		fmt.Fprintf(&b, "\n\n%s lidera com %s em receita, seguido por %s com %s.",
			ranked[0].Name, analytics.FormatCurrency(ranked[0].Revenue),
			ranked[1].Name, analytics.FormatCurrency(ranked[1].Revenue))
		fastest := channelsByGrowth(d.SalesChannels)[0]
		fmt.Fprintf(&b, " Destaque para o crescimento de %s (%s%%).", fastest.Name, signedDecimal(fastest.Change))
	}
	return b.String()
}

func channelsMessage(d *analytics.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 **Performance dos Canais de Venda**\n\nOperamos em **%d canais ativos**.", len(d.SalesChannels))

	ranked := channelsByRevenue(d.SalesChannels)
	var total float64
	for _, ch := range ranked {
		total += ch.Revenue
	}
	if len(ranked) >= 2 && total > 0 {
		share := ranked[0].Revenue / total * 100
		fmt.Fprintf(&b, " %s lidera com **%s** (%s%% do total), seguido por %s com **%s**.",
			ranked[0].Name, analytics.FormatCurrency(ranked[0].Revenue), strconv.FormatFloat(share, 'f', 1, 64),
			ranked[1].Name, analytics.FormatCurrency(ranked[1].Revenue))
	}

	growth := channelsByGrowth(d.SalesChannels)
	if len(growth) >= 2 {
		fmt.Fprintf(&b, "\n\nMaior crescimento: **%s (%s%%)** e **%s (%s%%)**.",
			growth[0].Name, signedDecimal(growth[0].Change), growth[1].Name, signedDecimal(growth[1].Change))
	}
	for _, ch := range d.SalesChannels {
		if ch.Change < 0 {
			fmt.Fprintf(&b, " O canal %s apresenta retração de %s%%, necessitando atenção.", ch.Name, analytics.FormatDecimal(ch.Change, 1))
		}
	}
	return b.String()
}

func productionMessage(d *analytics.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏭 **Status da Produção**\n\nO OEE geral está em **%s** com produção mensal de **%s unidades**.",
		kpiValue(d, "OEE Geral"), strings.TrimSuffix(kpiValue(d, "Produção Mensal"), " un"))

	if len(d.ProductionLines) > 0 {
		busiest := d.ProductionLines[0]
		for _, line := range d.ProductionLines[1:] {
			if line.Utilization > busiest.Utilization {
				busiest = line
			}
		}
		name := busiest.Name
		if head, tail, ok := strings.Cut(busiest.Name, " - "); ok {
			name = fmt.Sprintf("%s (%s)", head, tail)
		}
		fmt.Fprintf(&b, " A %s opera com **%d%% de utilização**", name, busiest.Utilization)
		if busiest.Utilization > 90 {
			b.WriteString(", próximo da capacidade máxima")
		}
		b.WriteString(".")
	}

	fmt.Fprintf(&b, "\n\nTemos **%d ordens em produção** e **%d atrasada(s)**. O refugo está controlado em **%s**.",
		d.CountWorkOrders("em_producao"), d.CountWorkOrders("atrasado"), kpiValue(d, "Refugo"))
	return b.String()
}

func suppliersMessage(d *analytics.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🤝 **Scorecard de Fornecedores**\n\nTemos **%d fornecedores ativos** e **%d em avaliação**. O on-time rate médio é de **%s%%**.",
		d.CountSuppliers("ativo"), d.CountSuppliers("em_avaliacao"), strconv.FormatFloat(d.AverageOnTimeRate(), 'f', 1, 64))

	if len(d.Suppliers) > 0 {
		best, worst := d.Suppliers[0], d.Suppliers[0]
		for _, s := range d.Suppliers[1:] {
			if s.OnTimeRate > best.OnTimeRate {
				best = s
			}
			if s.OnTimeRate < worst.OnTimeRate {
				worst = s
			}
		}
		fmt.Fprintf(&b, "\n\nDestaque positivo: **%s** com %s%% de pontualidade e quality score de %d.",
			best.Name, analytics.FormatDecimal(best.OnTimeRate, 1), best.QualityScore)
		if worst.ID != best.ID {
			fmt.Fprintf(&b, " Atenção: **%s** com apenas %s%% de pontualidade.", worst.Name, analytics.FormatDecimal(worst.OnTimeRate, 1))
		}
	}
	return b.String()
}

func logisticsMessage(d *analytics.Dataset) string {
	otd, _ := d.FindKPI("OTD (On-Time Delivery)")
	var b strings.Builder
	fmt.Fprintf(&b, "🚚 **Status Logístico**\n\nO OTD está em **%s** (%spp). Atualmente temos **%d entregas em trânsito**, **%d coletadas** e **%d em preparação**.\n\n",
		otd.Value, signedDecimal(otd.Change),
		d.CountShipments("em_transito"), d.CountShipments("coletado"), d.CountShipments("preparando"))
	if returned := d.CountShipments("devolvido"); returned > 0 {
		fmt.Fprintf(&b, "⚠️ Há **%d devolução(ões)** registrada(s).", returned)
	} else {
		b.WriteString("Sem devoluções no período.")
	}
	return b.String()
}

func supportMessage(d *analytics.Dataset) string {
	nps, _ := d.FindKPI("NPS Score")
	highPriority := d.CountTickets(func(t analytics.TicketSummary) bool { return t.Priority == "alta" })
	return fmt.Sprintf("🎧 **Suporte Pós-Venda**\n\nTemos **%d tickets abertos**, sendo **%d de alta prioridade**. O NPS está em **%s** (%s pontos).\n\n"+
		"⚠️ **%d ticket(s) com SLA estourado** requerem atenção imediata. Principais categorias: defeitos e reclamações.",
		d.OpenTickets(), highPriority, nps.Value, signedDecimal(nps.Change), d.CountTickets(slaBreached))
}

func inventoryMessage(d *analytics.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 **Alertas de Estoque**\n\nHá **%d materiais abaixo do estoque mínimo**.", len(d.InventoryAlerts))
	if alert, ok := d.MostUrgentAlert(); ok {
		fmt.Fprintf(&b, " Situação mais crítica: **%s** com apenas **%d dias** para ruptura.", alert.Material, alert.DaysToStockout)
	}
	b.WriteString("\n\nRecomendação: acionar fornecedores imediatamente para os itens com menos de 5 dias de cobertura.")
	return b.String()
}

func forecastMessage(d *analytics.Dataset) string {
	var next, peak *analytics.ForecastPoint
	closed := 0
	minAccuracy := math.Inf(1)
	for i := range d.Forecast {
		f := &d.Forecast[i]
		if acc, ok := f.Accuracy(); ok {
			closed++
			minAccuracy = math.Min(minAccuracy, acc)
			continue
		}
		if next == nil {
			next = f
		}
		if peak == nil || f.Predicted > peak.Predicted {
			peak = f
		}
	}

	var b strings.Builder
	b.WriteString("📈 **Forecast & Planejamento**\n\n")
	if next != nil {
		fmt.Fprintf(&b, "A previsão para %s é de **%s** (intervalo: %s a %s). ",
			monthName(next.Month), analytics.FormatCurrency(next.Predicted),
			analytics.FormatCurrency(next.LowerBound), analytics.FormatCurrency(next.UpperBound))
	}
	if closed > 0 {
		fmt.Fprintf(&b, "A acurácia do modelo nos últimos %d meses foi superior a **%d%%**.", closed, int(math.Floor(minAccuracy)))
	}
	if peak != nil {
		fmt.Fprintf(&b, "\n\nTendência de crescimento sustentado para o próximo trimestre, com pico previsto em %s (%s).",
			monthName(peak.Month), analytics.FormatCurrency(peak.Predicted))
	}
	return b.String()
}

func productsMessage(d *analytics.Dataset) string {
	if len(d.TopProducts) == 0 {
		return "🏆 **Top Produtos**\n\nSem vendas registradas no período."
	}
	leader := d.TopProducts[0]
	best, _ := d.HighestMarginProduct()
	return fmt.Sprintf("🏆 **Top Produtos**\n\nO **%s** lidera com **%s vendas** e receita de **%s** (margem de %s%%).\n\n"+
		"Maior margem: **%s** com %s%%. Oportunidade de push comercial nos produtos de alta margem.",
		leader.Name, analytics.FormatNumber(float64(leader.Sales)), analytics.FormatCurrency(leader.Revenue),
		analytics.FormatDecimal(leader.Margin, 1), best.Name, analytics.FormatDecimal(best.Margin, 1))
}

func marginMessage(d *analytics.Dataset) string {
	gross, _ := d.FindKPI("Margem Bruta")
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Análise de Margens**\n\nA margem bruta geral está em **%s** (%spp).", gross.Value, signedDecimal(gross.Change))
	if best, ok := d.HighestMarginProduct(); ok {
		worst := d.TopProducts[0]
		for _, p := range d.TopProducts[1:] {
			if p.Margin < worst.Margin {
				worst = p
			}
		}
		fmt.Fprintf(&b, " A **%s** tem a melhor margem (%s%%), enquanto o **%s** tem a menor (%s%%).",
			best.Name, analytics.FormatDecimal(best.Margin, 1), worst.Name, analytics.FormatDecimal(worst.Margin, 1))
	}
	b.WriteString("\n\nRecomendação: revisar precificação dos produtos de menor margem e avaliar custos de produção das linhas mais carregadas.")
	return b.String()
}

func overviewMessage(d *analytics.Dataset) string {
	revenue, _ := d.FindKPI("Faturamento Mensal")
	return fmt.Sprintf("📊 **Visão Geral da Empresa**\n\nFaturamento mensal de **%s** (%s%%), com **%s pedidos** processados. Margem bruta em **%s**.\n\n"+
		"Produção operando a **%s OEE**, entregas com **%s OTD** e NPS de **%s pontos**. %d tickets com SLA estourado requerem atenção.",
		revenue.Value, signedDecimal(revenue.Change), kpiValue(d, "Pedidos Totais"), kpiValue(d, "Margem Bruta"),
		kpiValue(d, "OEE Geral"), kpiValue(d, "OTD (On-Time Delivery)"), kpiValue(d, "NPS Score"), d.CountTickets(slaBreached))
}

func monthName(abbr string) string {
	if name, ok := monthNames[abbr]; ok {
		return name
	}
	return abbr
}

// channelsByRevenue returns a copy of the channels ordered by revenue, largest first
func channelsByRevenue(channels []analytics.SalesChannel) []analytics.SalesChannel {
	sorted := slices.Clone(channels)
	slices.SortStableFunc(sorted, func(a, b analytics.SalesChannel) int {
		switch {
		case a.Revenue > b.Revenue:
			return -1
		case a.Revenue < b.Revenue:
			return 1
		}
		return 0
	})
	return sorted
}
