package dto

type NotificacionFilter struct {
	SoloNoLeidas bool `form:"no_leidas"`
	Limit        int  `form:"limit,default=50" validate:"min=1,max=200"`
}

type NotificacionResponse struct {
	ID        uint   `json:"id"`
	Titulo    string `json:"titulo"`
	Mensaje   string `json:"mensaje"`
	Tipo      string `json:"tipo"`
	Enlace    string `json:"enlace"`
	Leida     bool   `json:"leida"`
	CreatedAt string `json:"created_at"`
}

type ContadorNoLeidasResponse struct {
	NoLeidas int64 `json:"no_leidas"`
}
