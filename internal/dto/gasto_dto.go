package dto

import "github.com/shopspring/decimal"

type GastoFilter struct {
	CategoriaGastoID uint   `form:"categoria_id"`
	Desde            string `form:"desde"` // YYYY-MM-DD
	Hasta            string `form:"hasta"` // YYYY-MM-DD
}

type GastoRequest struct {
	Descripcion      string          `json:"descripcion" validate:"required,min=3"`
	Monto            decimal.Decimal `json:"monto" validate:"required"`
	CategoriaGastoID uint            `json:"categoria_id" validate:"required"`
	Fecha            string          `json:"fecha"` // YYYY-MM-DD; empty = now
	MetodoPago       string          `json:"metodo_pago" validate:"omitempty,oneof=Efectivo Tarjeta Transferencia"`
	Notas            *string         `json:"notas"`
}

type GastoResponse struct {
	ID           uint            `json:"id"`
	Descripcion  string          `json:"descripcion"`
	Monto        decimal.Decimal `json:"monto"`
	CategoriaID  uint            `json:"categoria_id"`
	Categoria    string          `json:"categoria,omitempty"`
	Fecha        string          `json:"fecha"`
	MetodoPago   string          `json:"metodo_pago"`
	Notas        *string         `json:"notas"`
	SesionCajaID *uint           `json:"sesion_caja_id"`
}

type CategoriaGastoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type CategoriaGastoResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}
