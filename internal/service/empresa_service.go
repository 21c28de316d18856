package service

import (
	"context"
	"errors"

	"erpstore/internal/dto"
	"erpstore/internal/infra"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

// EmpresaService manages the singleton company settings row, created
// lazily with defaults on first read.
type EmpresaService interface {
	Obtener(ctx context.Context) (*dto.ConfiguracionEmpresaResponse, error)
	Actualizar(ctx context.Context, req dto.ConfiguracionEmpresaRequest) (*dto.ConfiguracionEmpresaResponse, error)
	// EnviarEmailPrueba sends synchronously so the admin sees the SMTP
	// failure right away instead of finding it in the DLQ.
	EnviarEmailPrueba(ctx context.Context, destinatario string) error
}

type empresaService struct {
	repo   repository.ConfiguracionRepository
	mailer *infra.Mailer
}

func NewEmpresaService(repo repository.ConfiguracionRepository, mailer *infra.Mailer) EmpresaService {
	return &empresaService{repo: repo, mailer: mailer}
}

func (s *empresaService) Obtener(ctx context.Context) (*dto.ConfiguracionEmpresaResponse, error) {
	c, err := s.obtenerOCrear(ctx)
	if err != nil {
		return nil, err
	}
	return empresaToResponse(c), nil
}

func (s *empresaService) obtenerOCrear(ctx context.Context) (*model.ConfiguracionEmpresa, error) {
	c, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &model.ConfiguracionEmpresa{Nombre: "Mi Tienda", SmtpPort: 587}
		if err := s.repo.Save(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *empresaService) Actualizar(ctx context.Context, req dto.ConfiguracionEmpresaRequest) (*dto.ConfiguracionEmpresaResponse, error) {
	c, err := s.obtenerOCrear(ctx)
	if err != nil {
		return nil, err
	}

	c.Nombre = req.Nombre
	c.RUC = req.RUC
	c.Direccion = req.Direccion
	c.Telefono = req.Telefono
	c.Email = req.Email
	c.SmtpHost = req.SmtpHost
	if req.SmtpPort != 0 {
		c.SmtpPort = req.SmtpPort
	}
	c.SmtpUsuario = req.SmtpUsuario
	// Empty password means "keep the stored one".
	if req.SmtpPassword != "" {
		c.SmtpPassword = req.SmtpPassword
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return empresaToResponse(c), nil
}

func (s *empresaService) EnviarEmailPrueba(ctx context.Context, destinatario string) error {
	c, err := s.obtenerOCrear(ctx)
	if err != nil {
		return err
	}
	settings := infra.SMTPSettings{
		Host:     c.SmtpHost,
		Port:     c.SmtpPort,
		User:     c.SmtpUsuario,
		Password: c.SmtpPassword,
	}
	if err := s.mailer.Send(settings, destinatario,
		"Correo de prueba", "La configuración SMTP de su tienda funciona correctamente.", ""); err != nil {
		return errors.New("no se pudo enviar el correo de prueba: " + err.Error())
	}
	return nil
}

func empresaToResponse(c *model.ConfiguracionEmpresa) *dto.ConfiguracionEmpresaResponse {
	return &dto.ConfiguracionEmpresaResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		RUC:             c.RUC,
		Direccion:       c.Direccion,
		Telefono:        c.Telefono,
		Email:           c.Email,
		SmtpHost:        c.SmtpHost,
		SmtpPort:        c.SmtpPort,
		SmtpUsuario:     c.SmtpUsuario,
		SmtpConfigurado: c.SmtpHost != "" && c.SmtpUsuario != "",
	}
}
