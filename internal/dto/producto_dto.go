package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductoFilter is bound from query string of GET /api/v1/products.
type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID uint   `form:"categoria_id"`
	Activo      string `form:"activo"` // true (default) | false | all
	StockBajo   bool   `form:"stock_bajo"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=2"`
	SKU            string          `json:"sku"`
	CodigoBarras   *string         `json:"codigo_barras" validate:"omitempty,min=4"`
	Descripcion    string          `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio" validate:"required"`
	Costo          decimal.Decimal `json:"costo"`
	Stock          int             `json:"stock" validate:"min=0"`
	StockMinimo    int             `json:"stock_minimo" validate:"min=0"`
	DescuentoPct   decimal.Decimal `json:"descuento_pct"`
	CategoriaID    uint            `json:"categoria_id" validate:"required"`
	SubcategoriaID *uint           `json:"subcategoria_id"`
	VideoURL       *string         `json:"video_url" validate:"omitempty,url"`
	Imagenes       []ImagenRequest `json:"imagenes" validate:"dive"`
}

type ActualizarProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=2"`
	SKU            string          `json:"sku"`
	CodigoBarras   *string         `json:"codigo_barras" validate:"omitempty,min=4"`
	Descripcion    string          `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio" validate:"required"`
	Costo          decimal.Decimal `json:"costo"`
	StockMinimo    int             `json:"stock_minimo" validate:"min=0"`
	DescuentoPct   decimal.Decimal `json:"descuento_pct"`
	Activo         *bool           `json:"activo"`
	CategoriaID    uint            `json:"categoria_id" validate:"required"`
	SubcategoriaID *uint           `json:"subcategoria_id"`
	VideoURL       *string         `json:"video_url" validate:"omitempty,url"`
	Imagenes       []ImagenRequest `json:"imagenes" validate:"dive"`
}

type ImagenRequest struct {
	URL      string `json:"url" validate:"required,url"`
	EsPortada bool  `json:"es_portada"`
	Orden    int    `json:"orden"`
}

// AjusteStockRequest adjusts stock manually, always with an audit reason.
type AjusteStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Motivo string `json:"motivo" validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ImagenResponse struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	EsPortada bool   `json:"es_portada"`
	Orden     int    `json:"orden"`
}

type ProductoResponse struct {
	ID             uint             `json:"id"`
	Nombre         string           `json:"nombre"`
	SKU            string           `json:"sku"`
	CodigoBarras   *string          `json:"codigo_barras"`
	Descripcion    string           `json:"descripcion"`
	Precio         decimal.Decimal  `json:"precio"`
	Costo          decimal.Decimal  `json:"costo"`
	Stock          int              `json:"stock"`
	StockMinimo    int              `json:"stock_minimo"`
	StockBajo      bool             `json:"stock_bajo"`
	DescuentoPct   decimal.Decimal  `json:"descuento_pct"`
	Activo         bool             `json:"activo"`
	CategoriaID    uint             `json:"categoria_id"`
	Categoria      string           `json:"categoria,omitempty"`
	SubcategoriaID *uint            `json:"subcategoria_id"`
	VideoURL       *string          `json:"video_url"`
	Imagenes       []ImagenResponse `json:"imagenes"`
	CreatedAt      string           `json:"created_at"`
}
