package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetodoPago is the closed set of payment methods accepted by ventas,
// compras y gastos. Free-text methods never reach the database.
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "Efectivo"
	MetodoTarjeta       MetodoPago = "Tarjeta"
	MetodoTransferencia MetodoPago = "Transferencia"
)

// Venta is a completed sale. Anulada=true is a soft void that already
// restored stock; the row stays for reporting. Total always equals the
// sum of its detail subtotals at creation time.
type Venta struct {
	ID          uint      `gorm:"primaryKey"`
	Fecha       time.Time `gorm:"not null;index"`
	ClienteID   *uint     `gorm:"index"`
	EmpleadoID  uint      `gorm:"not null;index"`
	NumeroNota  string    `gorm:"uniqueIndex;not null"`
	MetodoPago  MetodoPago `gorm:"type:varchar(20);not null;default:'Efectivo'"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Anulada     bool            `gorm:"not null;default:false"`
	Observacion *string
	// SesionCajaID links cash sales to the register session they were
	// collected under; nil for card/transfer sales.
	SesionCajaID *uint `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Empleado *Empleado      `gorm:"foreignKey:EmpleadoID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one line of a sale. Subtotal = Cantidad × PrecioUnitario.
type DetalleVenta struct {
	ID             uint `gorm:"primaryKey"`
	VentaID        uint `gorm:"not null;index"`
	ProductoID     uint `gorm:"not null;index"`
	Cantidad       int  `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }
