package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una sesión de caja.
const (
	SesionAbierta = "Abierta"
	SesionCerrada = "Cerrada"
)

// SesionCaja is one cash-register shift of a user. At most one Abierta
// session may exist per user; closing freezes MontoCalculado from the
// final summary and is terminal.
type SesionCaja struct {
	ID             uint      `gorm:"primaryKey"`
	UsuarioID      uint      `gorm:"not null;index"`
	MontoApertura  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Apertura       time.Time       `gorm:"not null"`
	Cierre         *time.Time
	MontoCierre    *decimal.Decimal `gorm:"type:decimal(12,2)"` // counted at close
	MontoCalculado *decimal.Decimal `gorm:"type:decimal(12,2)"` // frozen system expectation
	Estado         string           `gorm:"type:varchar(20);not null;default:'Abierta'"`
	Notas          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (SesionCaja) TableName() string { return "sesiones_caja" }

// TipoTransaccion is the closed set of manual cash movements.
type TipoTransaccion string

const (
	TransaccionIngreso TipoTransaccion = "Ingreso"
	TransaccionEgreso  TipoTransaccion = "Egreso"
)

// TransaccionCaja is a manual cash movement under an open session.
// Immutable once created.
type TransaccionCaja struct {
	ID           uint            `gorm:"primaryKey"`
	SesionCajaID uint            `gorm:"not null;index"`
	Tipo         TipoTransaccion `gorm:"type:varchar(20);not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion  string          `gorm:"not null"`
	Fecha        time.Time       `gorm:"not null"`
}

func (TransaccionCaja) TableName() string { return "transacciones_caja" }
