package analytics

import (
	"fmt"
	"strconv"

	"github.com/argos/backend/internal/domain/shared"
)

// SectionID identifies one exportable report section
type SectionID string

const (
	SectionExecutiveKPIs SectionID = "executive_kpis"
	SectionRevenue       SectionID = "revenue"
	SectionChannels      SectionID = "channels"
	SectionProduction    SectionID = "production"
	SectionProducts      SectionID = "products"
	SectionInventory     SectionID = "inventory"
	SectionLogistics     SectionID = "logistics"
	SectionSupport       SectionID = "support"
	SectionSuppliers     SectionID = "suppliers"
	SectionForecast      SectionID = "forecast"
	SectionRetailKPIs    SectionID = "retail_kpis"
	SectionIndustryKPIs  SectionID = "industry_kpis"
)

// Section describes a report section
type Section struct {
	ID          SectionID `json:"id"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Heading     string    `json:"-"` // banner used by text exports
}

// Sections lists every report section in display order
var Sections = []Section{
	{SectionExecutiveKPIs, "KPIs Executivos", "📊", "Faturamento, pedidos, margem, OTD, NPS", "KPIs EXECUTIVOS"},
	{SectionRevenue, "Faturamento Mensal", "💰", "Receita dos últimos 12 meses", "FATURAMENTO MENSAL"},
	{SectionChannels, "Canais de Venda", "🛒", "Performance por marketplace", "CANAIS DE VENDA"},
	{SectionProduction, "Ordens de Produção", "🏭", "Status e progresso das OPs", "ORDENS DE PRODUÇÃO"},
	{SectionProducts, "Top Produtos", "🎯", "Produtos mais vendidos", "TOP PRODUTOS"},
	{SectionInventory, "Alertas de Estoque", "⚠️", "Materiais abaixo do mínimo", "ALERTAS DE ESTOQUE"},
	{SectionLogistics, "Logística", "🚚", "Entregas e rastreamento", "LOGÍSTICA"},
	{SectionSupport, "Suporte", "🎧", "Tickets de atendimento", "SUPORTE"},
	{SectionSuppliers, "Fornecedores", "🤝", "Scorecard de fornecedores", "FORNECEDORES"},
	{SectionForecast, "Forecast", "📈", "Previsão de faturamento", "FORECAST"},
	{SectionRetailKPIs, "KPIs Varejo", "💳", "GMV, conversão, CAC, LTV", "KPIs VAREJO"},
	{SectionIndustryKPIs, "KPIs Indústria", "⚙️", "OEE, produção, refugo", "KPIs INDÚSTRIA"},
}

// ErrUnknownSection is returned for section ids outside Sections
var ErrUnknownSection = shared.NewDomainError("UNKNOWN_SECTION", "Unknown report section")

// LookupSection finds a section by id
func LookupSection(id SectionID) (Section, error) {
	for _, s := range Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, shared.NewDomainError(ErrUnknownSection.Code, fmt.Sprintf("Unknown report section: %s", id))
}

// Table is a section flattened to text cells
type Table struct {
	Section Section
	Headers []string
	Rows    [][]string
}

// Records returns the raw rows of a section, for structured encoders
func (d *Dataset) Records(id SectionID) (any, error) {
	switch id {
	case SectionExecutiveKPIs:
		return d.ExecutiveKPIs, nil
	case SectionRevenue:
		return d.MonthlyRevenue, nil
	case SectionChannels:
		return d.SalesChannels, nil
	case SectionProduction:
		return d.WorkOrders, nil
	case SectionProducts:
		return d.TopProducts, nil
	case SectionInventory:
		return d.InventoryAlerts, nil
	case SectionLogistics:
		return d.Shipments, nil
	case SectionSupport:
		return d.Tickets, nil
	case SectionSuppliers:
		return d.Suppliers, nil
	case SectionForecast:
		return d.Forecast, nil
	case SectionRetailKPIs:
		return d.RetailKPIs, nil
	case SectionIndustryKPIs:
		return d.IndustryKPIs, nil
	}
	_, err := LookupSection(id)
	return nil, err
}

// Table flattens a section into header and row cells
func (d *Dataset) Table(id SectionID) (Table, error) {
	section, err := LookupSection(id)
	if err != nil {
		return Table{}, err
	}
	t := Table{Section: section}

	switch id {
	case SectionExecutiveKPIs, SectionRetailKPIs, SectionIndustryKPIs:
		kpis := d.ExecutiveKPIs
		if id == SectionRetailKPIs {
			kpis = d.RetailKPIs
		} else if id == SectionIndustryKPIs {
			kpis = d.IndustryKPIs
		}
		t.Headers = []string{"Indicador", "Valor", "Variação", "Tendência"}
		for _, k := range kpis {
			t.Rows = append(t.Rows, []string{k.Label, k.Value, plain(k.Change) + "%", string(k.Trend)})
		}
	case SectionRevenue:
		t.Headers = []string{"Mês", "Faturamento", "Pedidos"}
		for _, m := range d.MonthlyRevenue {
			t.Rows = append(t.Rows, []string{m.Month, plain(m.Revenue), strconv.Itoa(m.Orders)})
		}
	case SectionChannels:
		t.Headers = []string{"Canal", "Faturamento", "Pedidos", "Ticket Médio", "Conversão", "Variação"}
		for _, c := range d.SalesChannels {
			t.Rows = append(t.Rows, []string{
				c.Name, plain(c.Revenue), strconv.Itoa(c.Orders), plain(c.AvgTicket),
				plain(c.Conversion) + "%", plain(c.Change) + "%",
			})
		}
	case SectionProduction:
		t.Headers = []string{"OP", "Produto", "Linha", "Quantidade", "Concluído", "Status", "Prioridade", "Prazo"}
		for _, o := range d.WorkOrders {
			t.Rows = append(t.Rows, []string{
				o.ID, o.Product, o.Line, strconv.Itoa(o.Quantity), strconv.Itoa(o.Completed),
				o.Status, o.Priority, o.DueDate,
			})
		}
	case SectionProducts:
		t.Headers = []string{"Produto", "Vendas", "Faturamento", "Margem"}
		for _, p := range d.TopProducts {
			t.Rows = append(t.Rows, []string{p.Name, strconv.Itoa(p.Sales), plain(p.Revenue), plain(p.Margin) + "%"})
		}
	case SectionInventory:
		t.Headers = []string{"Material", "Atual", "Mínimo", "Unidade", "Dias p/ Ruptura"}
		for _, a := range d.InventoryAlerts {
			t.Rows = append(t.Rows, []string{
				a.Material, strconv.Itoa(a.Current), strconv.Itoa(a.Minimum), a.Unit, strconv.Itoa(a.DaysToStockout),
			})
		}
	case SectionLogistics:
		t.Headers = []string{"ID", "Pedido", "Cliente", "Cidade", "UF", "Transportadora", "Status", "Previsão", "Canal"}
		for _, l := range d.Shipments {
			t.Rows = append(t.Rows, []string{
				l.ID, l.OrderID, l.Customer, l.City, l.State, l.Carrier, l.Status, l.EstimatedDate, l.Channel,
			})
		}
	case SectionSupport:
		t.Headers = []string{"Ticket", "Cliente", "Assunto", "Categoria", "Prioridade", "Status", "Canal", "SLA"}
		for _, tk := range d.Tickets {
			t.Rows = append(t.Rows, []string{
				tk.ID, tk.Customer, tk.Subject, tk.Category, tk.Priority, tk.Status, tk.Channel, tk.SLA,
			})
		}
	case SectionSuppliers:
		t.Headers = []string{"ID", "Nome", "Categoria", "Lead Time", "On-Time Rate", "Qualidade", "Status"}
		for _, s := range d.Suppliers {
			t.Rows = append(t.Rows, []string{
				s.ID, s.Name, s.Category, strconv.Itoa(s.LeadTime), plain(s.OnTimeRate) + "%",
				strconv.Itoa(s.QualityScore), s.Status,
			})
		}
	case SectionForecast:
		t.Headers = []string{"Mês", "Previsto", "Realizado", "Limite Inferior", "Limite Superior"}
		for _, f := range d.Forecast {
			actual := ""
			if f.Actual != nil {
				actual = plain(*f.Actual)
			}
			t.Rows = append(t.Rows, []string{f.Month, plain(f.Predicted), actual, plain(f.LowerBound), plain(f.UpperBound)})
		}
	}
	return t, nil
}
