package model

import "time"

// Roles de usuario.
const (
	RolAdministrador = "administrador"
	RolEmpleado      = "empleado"
	RolCliente       = "cliente"
)

// Usuario stores system users with role-based access. Passwords are
// bcrypt hashes, never plaintext.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Nombre       string `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
