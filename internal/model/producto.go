package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Stock is only mutated by the venta/compra
// workflows; catalog endpoints never touch it directly.
type Producto struct {
	ID             uint            `gorm:"primaryKey"`
	Nombre         string          `gorm:"uniqueIndex;not null"`
	Descripcion    string
	SKU            string          `gorm:"column:sku"`
	CodigoBarras   *string         `gorm:"uniqueIndex"`
	Precio         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Costo          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock          int             `gorm:"not null;default:0"`
	StockMinimo    int             `gorm:"not null;default:3"`
	DescuentoPct   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Activo         bool            `gorm:"not null;default:true"`
	CategoriaID    uint            `gorm:"not null;index"`
	SubcategoriaID *uint           `gorm:"index"`
	VideoURL       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Categoria    *Categoria       `gorm:"foreignKey:CategoriaID"`
	Subcategoria *Subcategoria    `gorm:"foreignKey:SubcategoriaID"`
	Imagenes     []ImagenProducto `gorm:"foreignKey:ProductoID"`
}

func (Producto) TableName() string { return "productos" }

// StockBajo reports whether the product sits in the alert band:
// above zero but at or below its configured minimum.
func (p *Producto) StockBajo() bool {
	return p.Stock > 0 && p.Stock <= p.StockMinimo
}

// ImagenProducto is one image of a product. At most one row per product
// carries EsPortada=true; Orden defines gallery position.
type ImagenProducto struct {
	ID         uint   `gorm:"primaryKey"`
	ProductoID uint   `gorm:"not null;index"`
	URL        string `gorm:"not null"`
	EsPortada  bool   `gorm:"not null;default:false"`
	Orden      int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (ImagenProducto) TableName() string { return "imagenes_producto" }
