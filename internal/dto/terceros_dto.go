package dto

type ClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	Documento *string `json:"documento"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ClienteResponse struct {
	ID        uint    `json:"id"`
	Nombre    string  `json:"nombre"`
	Documento *string `json:"documento"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
	Activo    bool    `json:"activo"`
}

type EmpleadoRequest struct {
	Nombre   string  `json:"nombre" validate:"required,min=2"`
	Cargo    *string `json:"cargo"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type EmpleadoResponse struct {
	ID       uint    `json:"id"`
	Nombre   string  `json:"nombre"`
	Cargo    *string `json:"cargo"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"`
	Activo   bool    `json:"activo"`
}

type ProveedorRequest struct {
	RazonSocial string  `json:"razon_social" validate:"required,min=2"`
	RUC         *string `json:"ruc"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Direccion   *string `json:"direccion"`
}

type ProveedorResponse struct {
	ID          uint    `json:"id"`
	RazonSocial string  `json:"razon_social"`
	RUC         *string `json:"ruc"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Direccion   *string `json:"direccion"`
	Activo      bool    `json:"activo"`
}
