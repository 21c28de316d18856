package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /api/v1/sales.
type VentaFilter struct {
	Fecha  string `form:"fecha"`  // YYYY-MM-DD; empty = all dates
	Estado string `form:"estado"` // "" (vigentes) | anuladas | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleVentaRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
	Cantidad   int  `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	ClienteID  *uint                 `json:"cliente_id"`
	EmpleadoID uint                  `json:"empleado_id" validate:"required"`
	MetodoPago string                `json:"metodo_pago" validate:"required,oneof=Efectivo Tarjeta Transferencia"`
	Detalles   []DetalleVentaRequest `json:"detalles"    validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ProductoID     uint            `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID         uint                   `json:"id"`
	NumeroNota string                 `json:"numero_nota"`
	Fecha      string                 `json:"fecha"`
	ClienteID  *uint                  `json:"cliente_id"`
	Cliente    string                 `json:"cliente,omitempty"`
	EmpleadoID uint                   `json:"empleado_id"`
	Empleado   string                 `json:"empleado,omitempty"`
	MetodoPago string                 `json:"metodo_pago"`
	Total      decimal.Decimal        `json:"total"`
	Anulada    bool                   `json:"anulada"`
	Detalles   []DetalleVentaResponse `json:"detalles"`
}
