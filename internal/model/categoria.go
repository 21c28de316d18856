package model

import "time"

// Categoria classifies products. It cannot be deleted while products or
// subcategories still reference it.
type Categoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }

// Subcategoria is an optional second classification level under a Categoria.
type Subcategoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"not null"`
	CategoriaID uint   `gorm:"not null;index"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Subcategoria) TableName() string { return "subcategorias" }
