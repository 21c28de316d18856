package dto

type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion"`
}

type ActualizarCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion"`
}

type CrearSubcategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	CategoriaID uint   `json:"categoria_id" validate:"required"`
}

type SubcategoriaResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	CategoriaID uint   `json:"categoria_id"`
}

type CategoriaResponse struct {
	ID            uint                   `json:"id"`
	Nombre        string                 `json:"nombre"`
	Descripcion   string                 `json:"descripcion"`
	Subcategorias []SubcategoriaResponse `json:"subcategorias"`
}
