package service

import (
	"context"
	"errors"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

type CajaService interface {
	AbrirSesion(ctx context.Context, usuarioID uint, req dto.AbrirSesionRequest) (*dto.SesionCajaResponse, error)
	// Estado returns the user's open session, or nil when there is none.
	Estado(ctx context.Context, usuarioID uint) (*dto.SesionCajaResponse, error)
	Resumen(ctx context.Context, usuarioID uint) (*dto.ResumenCajaResponse, error)
	CerrarSesion(ctx context.Context, usuarioID uint, req dto.CerrarSesionRequest) (*dto.SesionCajaResponse, error)
	RegistrarTransaccion(ctx context.Context, usuarioID uint, req dto.TransaccionCajaRequest) (*dto.TransaccionCajaResponse, error)
	Historial(ctx context.Context, filter dto.SesionFilter) ([]dto.SesionCajaResponse, error)
}

type cajaService struct {
	repo      repository.CajaRepository
	ventaRepo repository.VentaRepository
	gastoRepo repository.GastoRepository
}

func NewCajaService(
	repo repository.CajaRepository,
	ventaRepo repository.VentaRepository,
	gastoRepo repository.GastoRepository,
) CajaService {
	return &cajaService{repo: repo, ventaRepo: ventaRepo, gastoRepo: gastoRepo}
}

func (s *cajaService) AbrirSesion(ctx context.Context, usuarioID uint, req dto.AbrirSesionRequest) (*dto.SesionCajaResponse, error) {
	if req.MontoApertura.IsNegative() {
		return nil, errors.New("el monto de apertura no puede ser negativo")
	}

	abierta, err := s.repo.FindSesionAbierta(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if abierta != nil {
		return nil, errors.New("ya existe una sesión de caja abierta para este usuario")
	}

	sesion := &model.SesionCaja{
		UsuarioID:     usuarioID,
		MontoApertura: req.MontoApertura,
		Apertura:      time.Now(),
		Estado:        model.SesionAbierta,
	}
	if err := s.repo.CreateSesion(ctx, sesion); err != nil {
		return nil, err
	}
	return sesionToResponse(sesion), nil
}

func (s *cajaService) Estado(ctx context.Context, usuarioID uint) (*dto.SesionCajaResponse, error) {
	sesion, err := s.repo.FindSesionAbierta(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, nil
	}
	return sesionToResponse(sesion), nil
}

// Resumen computes the live balance of the open session:
// apertura + ventas efectivo + ingresos manuales − gastos efectivo − egresos manuales.
func (s *cajaService) Resumen(ctx context.Context, usuarioID uint) (*dto.ResumenCajaResponse, error) {
	sesion, err := s.repo.FindSesionAbierta(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, ErrSinSesionAbierta
	}

	ventas, err := s.ventaRepo.SumEfectivoSesion(ctx, sesion.ID)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastoRepo.SumEfectivoSesion(ctx, sesion.ID)
	if err != nil {
		return nil, err
	}
	ingresos, err := s.repo.SumTransacciones(ctx, sesion.ID, model.TransaccionIngreso)
	if err != nil {
		return nil, err
	}
	egresos, err := s.repo.SumTransacciones(ctx, sesion.ID, model.TransaccionEgreso)
	if err != nil {
		return nil, err
	}

	balance := sesion.MontoApertura.Add(ventas).Add(ingresos).Sub(gastos).Sub(egresos)

	trans, err := s.repo.ListTransacciones(ctx, sesion.ID)
	if err != nil {
		return nil, err
	}
	transResp := make([]dto.TransaccionCajaResponse, 0, len(trans))
	for _, t := range trans {
		transResp = append(transResp, transaccionToResponse(&t))
	}

	return &dto.ResumenCajaResponse{
		SesionID:       sesion.ID,
		MontoApertura:  sesion.MontoApertura,
		VentasEfectivo: ventas,
		IngresosManual: ingresos,
		GastosEfectivo: gastos,
		EgresosManual:  egresos,
		Balance:        balance,
		Transacciones:  transResp,
	}, nil
}

// CerrarSesion freezes the computed balance as monto_calculado and
// records the counted close amount. Closing is terminal.
func (s *cajaService) CerrarSesion(ctx context.Context, usuarioID uint, req dto.CerrarSesionRequest) (*dto.SesionCajaResponse, error) {
	resumen, err := s.Resumen(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	sesion, err := s.repo.FindSesionByID(ctx, resumen.SesionID)
	if err != nil {
		return nil, err
	}
	if sesion == nil || sesion.Estado != model.SesionAbierta {
		return nil, ErrSinSesionAbierta
	}

	ahora := time.Now()
	calculado := resumen.Balance
	cierre := req.MontoCierre
	sesion.Cierre = &ahora
	sesion.MontoCierre = &cierre
	sesion.MontoCalculado = &calculado
	sesion.Estado = model.SesionCerrada
	sesion.Notas = req.Notas

	if err := s.repo.UpdateSesion(ctx, sesion); err != nil {
		return nil, err
	}
	return sesionToResponse(sesion), nil
}

func (s *cajaService) RegistrarTransaccion(ctx context.Context, usuarioID uint, req dto.TransaccionCajaRequest) (*dto.TransaccionCajaResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}

	sesion, err := s.repo.FindSesionAbierta(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if sesion == nil {
		return nil, ErrSinSesionAbierta
	}

	t := &model.TransaccionCaja{
		SesionCajaID: sesion.ID,
		Tipo:         model.TipoTransaccion(req.Tipo),
		Monto:        req.Monto,
		Descripcion:  req.Descripcion,
		Fecha:        time.Now(),
	}
	if err := s.repo.CreateTransaccion(ctx, t); err != nil {
		return nil, err
	}
	resp := transaccionToResponse(t)
	return &resp, nil
}

func (s *cajaService) Historial(ctx context.Context, filter dto.SesionFilter) ([]dto.SesionCajaResponse, error) {
	repoFilter := repository.SesionFilter{}
	if filter.UsuarioID != 0 {
		id := filter.UsuarioID
		repoFilter.UsuarioID = &id
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

	sesiones, err := s.repo.ListSesiones(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SesionCajaResponse, 0, len(sesiones))
	for i := range sesiones {
		out = append(out, *sesionToResponse(&sesiones[i]))
	}
	return out, nil
}

func sesionToResponse(s *model.SesionCaja) *dto.SesionCajaResponse {
	var cierre *string
	if s.Cierre != nil {
		v := s.Cierre.Format("2006-01-02T15:04:05Z")
		cierre = &v
	}
	usuario := ""
	if s.Usuario != nil {
		usuario = s.Usuario.Nombre
	}
	return &dto.SesionCajaResponse{
		ID:             s.ID,
		UsuarioID:      s.UsuarioID,
		Usuario:        usuario,
		MontoApertura:  s.MontoApertura,
		Apertura:       s.Apertura.Format("2006-01-02T15:04:05Z"),
		Cierre:         cierre,
		MontoCierre:    s.MontoCierre,
		MontoCalculado: s.MontoCalculado,
		Estado:         s.Estado,
		Notas:          s.Notas,
	}
}

func transaccionToResponse(t *model.TransaccionCaja) dto.TransaccionCajaResponse {
	return dto.TransaccionCajaResponse{
		ID:          t.ID,
		Tipo:        string(t.Tipo),
		Monto:       t.Monto,
		Descripcion: t.Descripcion,
		Fecha:       t.Fecha.Format("2006-01-02T15:04:05Z"),
	}
}
