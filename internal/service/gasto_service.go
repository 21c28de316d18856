package service

import (
	"context"
	"errors"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

type GastoService interface {
	Registrar(ctx context.Context, usuarioID uint, req dto.GastoRequest) (*dto.GastoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.GastoRequest) (*dto.GastoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Listar(ctx context.Context, filter dto.GastoFilter) ([]dto.GastoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.GastoResponse, error)

	CrearCategoria(ctx context.Context, req dto.CategoriaGastoRequest) (*dto.CategoriaGastoResponse, error)
	DesactivarCategoria(ctx context.Context, id uint) error
	ListarCategorias(ctx context.Context, incluirInactivas bool) ([]dto.CategoriaGastoResponse, error)
}

type gastoService struct {
	repo     repository.GastoRepository
	cajaRepo repository.CajaRepository
}

func NewGastoService(repo repository.GastoRepository, cajaRepo repository.CajaRepository) GastoService {
	return &gastoService{repo: repo, cajaRepo: cajaRepo}
}

// Registrar persists the expense. Cash expenses created while the acting
// user has an open register session are linked to it so they count
// against the session balance.
func (s *gastoService) Registrar(ctx context.Context, usuarioID uint, req dto.GastoRequest) (*dto.GastoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}
	cat, err := s.repo.FindCategoriaByID(ctx, req.CategoriaGastoID)
	if err != nil {
		return nil, err
	}
	if cat == nil || !cat.Activo {
		return nil, errors.New("categoría de gasto no encontrada")
	}

	fecha := time.Now()
	if req.Fecha != "" {
		if t, err := time.Parse("2006-01-02", req.Fecha); err == nil {
			fecha = t
		}
	}
	metodo := model.MetodoEfectivo
	if req.MetodoPago != "" {
		metodo = model.MetodoPago(req.MetodoPago)
	}

	var sesionID *uint
	if metodo == model.MetodoEfectivo {
		if sesion, err := s.cajaRepo.FindSesionAbierta(ctx, usuarioID); err == nil && sesion != nil {
			sesionID = &sesion.ID
		}
	}

	g := &model.Gasto{
		Descripcion:      req.Descripcion,
		Monto:            req.Monto,
		CategoriaGastoID: req.CategoriaGastoID,
		Fecha:            fecha,
		MetodoPago:       metodo,
		Notas:            req.Notas,
		SesionCajaID:     sesionID,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	resp := gastoToResponse(g)
	resp.Categoria = cat.Nombre
	return resp, nil
}

func (s *gastoService) Actualizar(ctx context.Context, id uint, req dto.GastoRequest) (*dto.GastoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New("gasto no encontrado")
	}
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}
	cat, err := s.repo.FindCategoriaByID(ctx, req.CategoriaGastoID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.New("categoría de gasto no encontrada")
	}

	g.Descripcion = req.Descripcion
	g.Monto = req.Monto
	g.CategoriaGastoID = req.CategoriaGastoID
	if req.Fecha != "" {
		if t, err := time.Parse("2006-01-02", req.Fecha); err == nil {
			g.Fecha = t
		}
	}
	if req.MetodoPago != "" {
		g.MetodoPago = model.MetodoPago(req.MetodoPago)
	}
	g.Notas = req.Notas
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	resp := gastoToResponse(g)
	resp.Categoria = cat.Nombre
	return resp, nil
}

func (s *gastoService) Eliminar(ctx context.Context, id uint) error {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return errors.New("gasto no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *gastoService) Listar(ctx context.Context, filter dto.GastoFilter) ([]dto.GastoResponse, error) {
	repoFilter := repository.GastoFilter{}
	if filter.CategoriaGastoID != 0 {
		id := filter.CategoriaGastoID
		repoFilter.CategoriaGastoID = &id
	}
	if filter.Desde != "" {
		if t, err := time.Parse("2006-01-02", filter.Desde); err == nil {
			repoFilter.Desde = &t
		}
	}
	if filter.Hasta != "" {
		if t, err := time.Parse("2006-01-02", filter.Hasta); err == nil {
			fin := t.AddDate(0, 0, 1)
			repoFilter.Hasta = &fin
		}
	}

	gastos, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, *gastoToResponse(&gastos[i]))
	}
	return out, nil
}

func (s *gastoService) Obtener(ctx context.Context, id uint) (*dto.GastoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New("gasto no encontrado")
	}
	return gastoToResponse(g), nil
}

func (s *gastoService) CrearCategoria(ctx context.Context, req dto.CategoriaGastoRequest) (*dto.CategoriaGastoResponse, error) {
	existente, err := s.repo.FindCategoriaByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		if existente.Activo {
			return nil, errors.New("ya existe una categoría de gasto con ese nombre")
		}
		// Reactivate instead of duplicating the name.
		existente.Activo = true
		if err := s.repo.UpdateCategoria(ctx, existente); err != nil {
			return nil, err
		}
		return &dto.CategoriaGastoResponse{ID: existente.ID, Nombre: existente.Nombre, Activo: true}, nil
	}

	c := &model.CategoriaGasto{Nombre: req.Nombre, Activo: true}
	if err := s.repo.CreateCategoria(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoriaGastoResponse{ID: c.ID, Nombre: c.Nombre, Activo: c.Activo}, nil
}

// DesactivarCategoria soft-deletes so historical gastos keep their label.
func (s *gastoService) DesactivarCategoria(ctx context.Context, id uint) error {
	c, err := s.repo.FindCategoriaByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.New("categoría de gasto no encontrada")
	}
	c.Activo = false
	return s.repo.UpdateCategoria(ctx, c)
}

func (s *gastoService) ListarCategorias(ctx context.Context, incluirInactivas bool) ([]dto.CategoriaGastoResponse, error) {
	cats, err := s.repo.ListCategorias(ctx, incluirInactivas)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaGastoResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoriaGastoResponse{ID: c.ID, Nombre: c.Nombre, Activo: c.Activo})
	}
	return out, nil
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	categoria := ""
	if g.CategoriaGasto != nil {
		categoria = g.CategoriaGasto.Nombre
	}
	return &dto.GastoResponse{
		ID:           g.ID,
		Descripcion:  g.Descripcion,
		Monto:        g.Monto,
		CategoriaID:  g.CategoriaGastoID,
		Categoria:    categoria,
		Fecha:        g.Fecha.Format("2006-01-02"),
		MetodoPago:   string(g.MetodoPago),
		Notas:        g.Notas,
		SesionCajaID: g.SesionCajaID,
	}
}
