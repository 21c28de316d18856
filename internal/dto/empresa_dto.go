package dto

type ConfiguracionEmpresaRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	RUC       string `json:"ruc"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" validate:"omitempty,email"`

	SmtpHost     string `json:"smtp_host"`
	SmtpPort     int    `json:"smtp_port" validate:"omitempty,min=1,max=65535"`
	SmtpUsuario  string `json:"smtp_usuario"`
	SmtpPassword string `json:"smtp_password"`
}

// ConfiguracionEmpresaResponse never echoes the SMTP password.
type ConfiguracionEmpresaResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	RUC       string `json:"ruc"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`

	SmtpHost        string `json:"smtp_host"`
	SmtpPort        int    `json:"smtp_port"`
	SmtpUsuario     string `json:"smtp_usuario"`
	SmtpConfigurado bool   `json:"smtp_configurado"`
}

type TestEmailRequest struct {
	Destinatario string `json:"destinatario" validate:"required,email"`
}
