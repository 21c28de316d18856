package dto

import "github.com/shopspring/decimal"

// CompraFilter is bound from query string of GET /api/v1/purchases.
type CompraFilter struct {
	ProveedorID uint   `form:"proveedor_id"`
	Fecha       string `form:"fecha"` // YYYY-MM-DD
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type DetalleCompraRequest struct {
	ProductoID     uint            `json:"producto_id" validate:"required"`
	Cantidad       int             `json:"cantidad"    validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type RegistrarCompraRequest struct {
	ProveedorID   uint                   `json:"proveedor_id" validate:"required"`
	NumeroFactura string                 `json:"numero_factura"`
	Detalles      []DetalleCompraRequest `json:"detalles" validate:"required,min=1,dive"`
}

type DetalleCompraResponse struct {
	ProductoID     uint            `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID            uint                    `json:"id"`
	Fecha         string                  `json:"fecha"`
	ProveedorID   uint                    `json:"proveedor_id"`
	Proveedor     string                  `json:"proveedor,omitempty"`
	NumeroFactura string                  `json:"numero_factura"`
	Total         decimal.Decimal         `json:"total"`
	Detalles      []DetalleCompraResponse `json:"detalles"`
}
