package service

import (
	"context"
	"errors"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

// ClienteService, EmpleadoService y ProveedorService son CRUDs simples:
// los terceros referenciados por documentos se desactivan en lugar de
// eliminarse para no romper el historial.

type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:    req.Nombre,
		Documento: req.Documento,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("cliente no encontrado")
	}
	c.Nombre = req.Nombre
	c.Documento = req.Documento
	c.Telefono = req.Telefono
	c.Email = req.Email
	c.Direccion = req.Direccion
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.New("cliente no encontrado")
	}
	ventas, err := s.repo.CountVentas(ctx, id)
	if err != nil {
		return err
	}
	if ventas > 0 {
		c.Activo = false
		return s.repo.Update(ctx, c)
	}
	return s.repo.Delete(ctx, id)
}

func (s *clienteService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("cliente no encontrado")
	}
	return clienteToResponse(c), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Direccion: c.Direccion,
		Activo:    c.Activo,
	}
}

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.EmpleadoRequest) (*dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.EmpleadoRequest) (*dto.EmpleadoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.EmpleadoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.EmpleadoResponse, error)
}

type empleadoService struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository) EmpleadoService {
	return &empleadoService{repo: repo}
}

func (s *empleadoService) Crear(ctx context.Context, req dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e := &model.Empleado{
		Nombre:   req.Nombre,
		Cargo:    req.Cargo,
		Telefono: req.Telefono,
		Email:    req.Email,
		Activo:   true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return empleadoToResponse(e), nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uint, req dto.EmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.New("empleado no encontrado")
	}
	e.Nombre = req.Nombre
	e.Cargo = req.Cargo
	e.Telefono = req.Telefono
	e.Email = req.Email
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return empleadoToResponse(e), nil
}

func (s *empleadoService) Eliminar(ctx context.Context, id uint) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return errors.New("empleado no encontrado")
	}
	ventas, err := s.repo.CountVentas(ctx, id)
	if err != nil {
		return err
	}
	if ventas > 0 {
		e.Activo = false
		return s.repo.Update(ctx, e)
	}
	return s.repo.Delete(ctx, id)
}

func (s *empleadoService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.EmpleadoResponse, error) {
	empleados, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(empleados))
	for i := range empleados {
		out = append(out, *empleadoToResponse(&empleados[i]))
	}
	return out, nil
}

func (s *empleadoService) Obtener(ctx context.Context, id uint) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.New("empleado no encontrado")
	}
	return empleadoToResponse(e), nil
}

func empleadoToResponse(e *model.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:       e.ID,
		Nombre:   e.Nombre,
		Cargo:    e.Cargo,
		Telefono: e.Telefono,
		Email:    e.Email,
		Activo:   e.Activo,
	}
}

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ProveedorResponse, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		RazonSocial: req.RazonSocial,
		RUC:         req.RUC,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("proveedor no encontrado")
	}
	p.RazonSocial = req.RazonSocial
	p.RUC = req.RUC
	p.Telefono = req.Telefono
	p.Email = req.Email
	p.Direccion = req.Direccion
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("proveedor no encontrado")
	}
	compras, err := s.repo.CountCompras(ctx, id)
	if err != nil {
		return err
	}
	if compras > 0 {
		p.Activo = false
		return s.repo.Update(ctx, p)
	}
	return s.repo.Delete(ctx, id)
}

func (s *proveedorService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uint) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("proveedor no encontrado")
	}
	return proveedorToResponse(p), nil
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:          p.ID,
		RazonSocial: p.RazonSocial,
		RUC:         p.RUC,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Direccion:   p.Direccion,
		Activo:      p.Activo,
	}
}
