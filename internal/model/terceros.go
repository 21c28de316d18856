package model

import "time"

// Cliente is a customer; optional on a sale (nil = consumidor final).
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	Documento *string
	Telefono  *string
	Email     *string
	Direccion *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }

// Empleado is the person attributed to a sale.
type Empleado struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	Cargo     *string
	Telefono  *string
	Email     *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Empleado) TableName() string { return "empleados" }

// Proveedor supplies purchases.
type Proveedor struct {
	ID          uint   `gorm:"primaryKey"`
	RazonSocial string `gorm:"not null"`
	RUC         *string `gorm:"column:ruc"`
	Telefono    *string
	Email       *string
	Direccion   *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
