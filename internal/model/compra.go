package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is an incoming stock document from a supplier. Creating one
// increments stock and overwrites product cost with the line unit price
// (last-purchase-cost policy); deleting one reverses the stock.
type Compra struct {
	ID            uint      `gorm:"primaryKey"`
	ProveedorID   uint      `gorm:"not null;index"`
	Fecha         time.Time `gorm:"not null;index"`
	NumeroFactura string    `gorm:"not null"`
	MetodoPago    MetodoPago `gorm:"type:varchar(20);not null;default:'Efectivo'"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notas         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

func (Compra) TableName() string { return "compras" }

// DetalleCompra is one line of a purchase.
type DetalleCompra struct {
	ID             uint `gorm:"primaryKey"`
	CompraID       uint `gorm:"not null;index"`
	ProductoID     uint `gorm:"not null;index"`
	Cantidad       int  `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompra) TableName() string { return "detalles_compra" }
