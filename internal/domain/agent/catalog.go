package agent

import "strings"

// Domain is a business area the agent can build widgets for
type Domain string

const (
	DomainFaturamento  Domain = "faturamento"
	DomainPedidos      Domain = "pedidos"
	DomainCanais       Domain = "canais"
	DomainProducao     Domain = "producao"
	DomainFornecedores Domain = "fornecedores"
	DomainLogistica    Domain = "logistica"
	DomainSuporte      Domain = "suporte"
	DomainEstoque      Domain = "estoque"
	DomainForecast     Domain = "forecast"
	DomainProdutos     Domain = "produtos"
	DomainMargem       Domain = "margem"
	DomainKPIs         Domain = "kpis"
)

// CatalogEntry maps a domain to the keywords that select it
type CatalogEntry struct {
	Domain      Domain   `json:"domain"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Catalog is ordered; detection reports domains in this order
var Catalog = []CatalogEntry{
	{DomainFaturamento, "Análise de Faturamento", "Dados de faturamento mensal e por canal",
		[]string{"faturamento", "receita", "revenue", "vendas totais", "gmv", "billing"}},
	{DomainPedidos, "Volume de Pedidos", "Volume de pedidos por canal e período",
		[]string{"pedidos", "orders", "vendas", "compras", "encomendas"}},
	{DomainCanais, "Performance dos Canais", "Performance por canal de venda",
		[]string{"canais", "marketplace", "mercado livre", "amazon", "magalu", "shopee", "canal", "channels"}},
	{DomainProducao, "Controle de Produção", "Dados de produção e utilização fabril",
		[]string{"produção", "fábrica", "manufacturing", "linhas", "oee", "capacidade", "industrial"}},
	{DomainFornecedores, "Scorecard de Fornecedores", "Scorecard e performance de fornecedores",
		[]string{"fornecedores", "suppliers", "compras", "matéria-prima", "lead time", "procurement"}},
	{DomainLogistica, "Status Logístico", "Status de entregas e performance logística",
		[]string{"logística", "entregas", "delivery", "transporte", "otd", "rastreamento", "shipping"}},
	{DomainSuporte, "Suporte Pós-Venda", "Tickets de suporte e métricas de atendimento",
		[]string{"suporte", "tickets", "atendimento", "sla", "nps", "reclamações", "pós-venda", "support"}},
	{DomainEstoque, "Alertas de Estoque", "Níveis de estoque e alertas de ruptura",
		[]string{"estoque", "inventory", "stock", "materiais", "ruptura", "stockout"}},
	{DomainForecast, "Forecast & Planejamento", "Previsões de demanda e faturamento",
		[]string{"forecast", "previsão", "projeção", "planejamento", "tendência", "prediction"}},
	{DomainProdutos, "Ranking de Produtos", "Ranking e performance de produtos",
		[]string{"produtos", "products", "top produtos", "mais vendidos", "ranking", "bestsellers"}},
	{DomainMargem, "Análise de Margens", "Margens e rentabilidade por produto/canal",
		[]string{"margem", "margin", "lucro", "profit", "rentabilidade", "lucratividade"}},
	{DomainKPIs, "Painel Executivo", "KPIs executivos consolidados",
		[]string{"kpi", "indicadores", "métricas", "dashboard", "resumo", "overview", "visão geral"}},
}

// SuggestedQueries are offered to users who have not asked anything yet
var SuggestedQueries = []string{
	"Qual o faturamento por canal de venda?",
	"Como está a produção e utilização das linhas?",
	"Mostre os fornecedores e seus scorecards",
	"Qual o status das entregas e logística?",
	"Quais tickets de suporte estão com SLA estourado?",
	"Mostre o forecast para os próximos meses",
	"Quais materiais estão em risco de ruptura?",
	"Ranking dos produtos mais vendidos e suas margens",
	"Visão geral de todos os KPIs da empresa",
	"Compare a performance de todos os canais de venda",
}

// DetectDomains returns the catalog domains whose keywords occur in query,
// in catalog order. A query matching nothing falls back to the executive KPIs.
func DetectDomains(query string) []Domain {
	lower := strings.ToLower(query)
	var domains []Domain
	for _, entry := range Catalog {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				domains = append(domains, entry.Domain)
				break
			}
		}
	}
	if len(domains) == 0 {
		domains = append(domains, DomainKPIs)
	}
	return domains
}

// DomainTitle returns the dashboard title fragment for d
func DomainTitle(d Domain) string {
	for _, entry := range Catalog {
		if entry.Domain == d {
			return entry.Title
		}
	}
	return "Dashboard"
}

// DashboardTitle joins the title fragments of domains with " + "
func DashboardTitle(domains []Domain) string {
	titles := make([]string, len(domains))
	for i, d := range domains {
		titles[i] = DomainTitle(d)
	}
	return strings.Join(titles, " + ")
}
