package model

import "time"

// ConfiguracionEmpresa is a singleton row holding the legal identity
// printed on notas de venta plus the SMTP account used for alert mail.
// Created lazily with defaults on first read.
type ConfiguracionEmpresa struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"not null"`
	RUC       string `gorm:"column:ruc"`
	Direccion string
	Telefono  string
	Email     string
	SmtpHost     string
	SmtpPort     int `gorm:"default:587"`
	SmtpUsuario  string
	SmtpPassword string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ConfiguracionEmpresa) TableName() string { return "configuracion_empresa" }
