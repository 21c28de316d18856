package model

import "time"

// TipoMovimiento is the closed set of kardex movement causes.
type TipoMovimiento string

const (
	MovimientoVenta             TipoMovimiento = "Venta"
	MovimientoCompra            TipoMovimiento = "Compra"
	MovimientoAnulacionVenta    TipoMovimiento = "AnulacionVenta"
	MovimientoAnulacionCompra   TipoMovimiento = "AnulacionCompra"
	MovimientoEliminacionVenta  TipoMovimiento = "EliminacionVenta"
	MovimientoAjuste            TipoMovimiento = "Ajuste"
	MovimientoInventarioInicial TipoMovimiento = "InventarioInicial"
)

// MovimientoInventario is one kardex ledger entry: the cause and signed
// delta of a stock change, with a before/after snapshot. Rows are
// append-only: never updated or deleted. VentaID/CompraID are plain
// back-references without a DB constraint, so a movement outlives the
// document that produced it.
type MovimientoInventario struct {
	ID            uint           `gorm:"primaryKey"`
	ProductoID    uint           `gorm:"not null;index"`
	Tipo          TipoMovimiento `gorm:"type:varchar(30);not null"`
	Cantidad      int            `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int            `gorm:"not null"`
	StockNuevo    int            `gorm:"not null"`
	UsuarioID     uint           `gorm:"not null"`
	Motivo        string         `gorm:"not null"`
	VentaID       *uint          `gorm:"index"`
	CompraID      *uint          `gorm:"index"`
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
}

func (MovimientoInventario) TableName() string { return "kardex" }
