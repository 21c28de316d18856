package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto is a non-inventory outgoing cost. Cash expenses created while a
// session is open are linked to it and count against its balance.
type Gasto struct {
	ID               uint   `gorm:"primaryKey"`
	Descripcion      string `gorm:"not null"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoriaGastoID uint            `gorm:"not null;index"`
	Fecha            time.Time       `gorm:"not null;index"`
	MetodoPago       MetodoPago      `gorm:"type:varchar(20);not null;default:'Efectivo'"`
	Notas            *string
	SesionCajaID     *uint `gorm:"index"`
	CreatedAt        time.Time

	CategoriaGasto *CategoriaGasto `gorm:"foreignKey:CategoriaGastoID"`
}

func (Gasto) TableName() string { return "gastos" }

// CategoriaGasto classifies expenses. Soft-deleted (Activo=false),
// never removed, so historical gastos keep their label.
type CategoriaGasto struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"uniqueIndex;not null"`
	Activo    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (CategoriaGasto) TableName() string { return "categorias_gasto" }
