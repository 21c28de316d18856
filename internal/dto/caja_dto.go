package dto

import "github.com/shopspring/decimal"

type AbrirSesionRequest struct {
	MontoApertura decimal.Decimal `json:"monto_apertura" validate:"required"`
}

type CerrarSesionRequest struct {
	MontoCierre decimal.Decimal `json:"monto_cierre" validate:"required"`
	Notas       *string         `json:"notas"`
}

type TransaccionCajaRequest struct {
	Tipo        string          `json:"tipo" validate:"required,oneof=Ingreso Egreso"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
}

type SesionFilter struct {
	UsuarioID uint   `form:"usuario_id"`
	Desde     string `form:"desde"` // YYYY-MM-DD
	Hasta     string `form:"hasta"` // YYYY-MM-DD
}

type TransaccionCajaResponse struct {
	ID          uint            `json:"id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Fecha       string          `json:"fecha"`
}

type SesionCajaResponse struct {
	ID             uint             `json:"id"`
	UsuarioID      uint             `json:"usuario_id"`
	Usuario        string           `json:"usuario,omitempty"`
	MontoApertura  decimal.Decimal  `json:"monto_apertura"`
	Apertura       string           `json:"apertura"`
	Cierre         *string          `json:"cierre"`
	MontoCierre    *decimal.Decimal `json:"monto_cierre"`
	MontoCalculado *decimal.Decimal `json:"monto_calculado"`
	Estado         string           `json:"estado"`
	Notas          *string          `json:"notas"`
}

// ResumenCajaResponse is the live summary of the open session.
// Balance = apertura + ventas efectivo + ingresos − gastos efectivo − egresos.
type ResumenCajaResponse struct {
	SesionID        uint                      `json:"sesion_id"`
	MontoApertura   decimal.Decimal           `json:"monto_apertura"`
	VentasEfectivo  decimal.Decimal           `json:"ventas_efectivo"`
	IngresosManual  decimal.Decimal           `json:"ingresos_manuales"`
	GastosEfectivo  decimal.Decimal           `json:"gastos_efectivo"`
	EgresosManual   decimal.Decimal           `json:"egresos_manuales"`
	Balance         decimal.Decimal           `json:"balance"`
	Transacciones   []TransaccionCajaResponse `json:"transacciones"`
}
