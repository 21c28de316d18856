package dto

import "github.com/shopspring/decimal"

// ReporteRango is the shared query-string range of every report
// endpoint. An empty bound falls back to the report's own default:
// all recorded history for KPI, top products and sales profit, the
// last six months for the sales trend.
type ReporteRango struct {
	Desde string `form:"desde"` // YYYY-MM-DD
	Hasta string `form:"hasta"` // YYYY-MM-DD, inclusive
}

// KpiStatsResponse feeds the dashboard header cards.
type KpiStatsResponse struct {
	VentasTotales  decimal.Decimal `json:"ventas_totales"`
	CostoTotal     decimal.Decimal `json:"costo_total"`
	UtilidadBruta  decimal.Decimal `json:"utilidad_bruta"`
	GastosTotales  decimal.Decimal `json:"gastos_totales"`
	UtilidadNeta   decimal.Decimal `json:"utilidad_neta"`
	NumeroVentas   int             `json:"numero_ventas"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
	ProductosBajos int             `json:"productos_stock_bajo"`
}

// PuntoTendencia is one day on the sales-trend chart. Days with only
// ventas or only gastos still appear, with the other axis at zero.
type PuntoTendencia struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Ventas   decimal.Decimal `json:"ventas"`
	Gastos   decimal.Decimal `json:"gastos"`
	Utilidad decimal.Decimal `json:"utilidad"` // ventas menos gastos del día
}

type TopProductoResponse struct {
	ProductoID uint            `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Ingresos   decimal.Decimal `json:"ingresos"`
}

type ValuacionCategoriaResponse struct {
	Categoria  string          `json:"categoria"`
	Valor      decimal.Decimal `json:"valor"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

type ValuacionInventarioResponse struct {
	Total      decimal.Decimal              `json:"total"`
	Categorias []ValuacionCategoriaResponse `json:"categorias"`
}

// LineaUtilidadResponse is one sale line on the sales-profit report.
// Deleted products or employees show placeholder labels instead of
// breaking the row.
type LineaUtilidadResponse struct {
	NumeroNota string          `json:"numero_nota"`
	Fecha      string          `json:"fecha"`
	Empleado   string          `json:"empleado"`
	Producto   string          `json:"producto"`
	Cantidad   int             `json:"cantidad"`
	Ingreso    decimal.Decimal `json:"ingreso"`
	Costo      decimal.Decimal `json:"costo"`
	Utilidad   decimal.Decimal `json:"utilidad"`
}

type UtilidadVentasResponse struct {
	Lineas        []LineaUtilidadResponse `json:"lineas"`
	IngresoTotal  decimal.Decimal         `json:"ingreso_total"`
	CostoTotal    decimal.Decimal         `json:"costo_total"`
	UtilidadTotal decimal.Decimal         `json:"utilidad_total"`
}
