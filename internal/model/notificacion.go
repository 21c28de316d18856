package model

import "time"

// EnlaceStockBajo is the link every low-stock alert carries; it doubles
// as the discriminator for the dedup query.
const EnlaceStockBajo = "/products?stock=low"

// Tipos de notificación.
const (
	NotificacionInfo    = "Info"
	NotificacionWarning = "Warning"
)

// Notificacion is an in-app alert shown in the SPA bell menu.
type Notificacion struct {
	ID        uint   `gorm:"primaryKey"`
	Titulo    string `gorm:"not null"`
	Mensaje   string `gorm:"not null"`
	Tipo      string `gorm:"type:varchar(20);not null;default:'Info'"`
	Enlace    string
	Leida     bool `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

func (Notificacion) TableName() string { return "notificaciones" }
