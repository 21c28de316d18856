package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrSinSesionAbierta is returned when a cash sale is attempted without
// an open register session. The SPA matches on the NO_OPEN_SESSION
// prefix to offer opening one.
var ErrSinSesionAbierta = errors.New("NO_OPEN_SESSION: debe abrir una sesión de caja antes de registrar ventas en efectivo")

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID uint, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	AnularVenta(ctx context.Context, id uint, usuarioID uint) error
	EliminarVenta(ctx context.Context, id uint, usuarioID uint) error
	ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	ObtenerVenta(ctx context.Context, id uint) (*dto.VentaResponse, error)
	GenerarNotaPDF(ctx context.Context, id uint) (string, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	empleadoRepo repository.EmpleadoRepository
	cajaRepo     repository.CajaRepository
	kardex       KardexService
	alertas      AlertaService
	pdfGen       func(v *model.Venta, e *model.ConfiguracionEmpresa) (string, error)
	configRepo   repository.ConfiguracionRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	empleadoRepo repository.EmpleadoRepository,
	cajaRepo repository.CajaRepository,
	kardex KardexService,
	alertas AlertaService,
	configRepo repository.ConfiguracionRepository,
	pdfGen func(v *model.Venta, e *model.ConfiguracionEmpresa) (string, error),
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		empleadoRepo: empleadoRepo,
		cajaRepo:     cajaRepo,
		kardex:       kardex,
		alertas:      alertas,
		configRepo:   configRepo,
		pdfGen:       pdfGen,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Atomic sale registration:
//   1. Cash sales require the acting user's open register session
//   2. Pre-flight: resolve products, compute line subtotals and total
//   3. BEGIN TX: nextval numero_nota, create venta+detalles, conditional
//      stock decrement per line, kardex "Venta" per line, low-stock check
//   4. COMMIT, then enqueue alert emails (best effort)

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID uint, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, errors.New("la venta debe tener al menos un producto")
	}

	empleado, err := s.empleadoRepo.FindByID(ctx, req.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, errors.New("empleado no encontrado")
	}

	// Cash sales are collected under the acting user's open session.
	var sesionID *uint
	metodo := model.MetodoPago(req.MetodoPago)
	if metodo == model.MetodoEfectivo {
		sesion, err := s.cajaRepo.FindSesionAbierta(ctx, usuarioID)
		if err != nil {
			return nil, err
		}
		if sesion == nil {
			return nil, ErrSinSesionAbierta
		}
		sesionID = &sesion.ID
	}

	type lineaResuelta struct {
		producto *model.Producto
		cantidad int
		precio   decimal.Decimal
		subtotal decimal.Decimal
	}

	var lineas []lineaResuelta
	total := decimal.Zero
	for _, det := range req.Detalles {
		p, err := s.productoRepo.FindByID(ctx, det.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("producto %d no encontrado", det.ProductoID)
		}
		if !p.Activo {
			return nil, fmt.Errorf("el producto %s está inactivo y no puede venderse", p.Nombre)
		}

		precio := p.Precio
		if !p.DescuentoPct.IsZero() {
			factor := decimal.NewFromInt(100).Sub(p.DescuentoPct).Div(decimal.NewFromInt(100))
			precio = p.Precio.Mul(factor).Round(2)
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(det.Cantidad)))
		total = total.Add(subtotal)
		lineas = append(lineas, lineaResuelta{
			producto: p,
			cantidad: det.Cantidad,
			precio:   precio,
			subtotal: subtotal,
		})
	}

	var venta model.Venta
	var alertados []*model.Producto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		num, err := s.repo.NextNumeroNota(ctx, tx)
		if err != nil {
			return err
		}

		venta = model.Venta{
			Fecha:        time.Now(),
			ClienteID:    req.ClienteID,
			EmpleadoID:   req.EmpleadoID,
			NumeroNota:   fmt.Sprintf("001-001-%08d", num),
			MetodoPago:   metodo,
			Total:        total,
			SesionCajaID: sesionID,
		}
		for _, l := range lineas {
			venta.Detalles = append(venta.Detalles, model.DetalleVenta{
				ProductoID:     l.producto.ID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				Subtotal:       l.subtotal,
			})
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, l := range lineas {
			stockAntes := l.producto.Stock
			if actual, err := s.productoRepo.FindByIDTx(tx, l.producto.ID); err == nil && actual != nil {
				stockAntes = actual.Stock
			}

			if err := s.productoRepo.DescontarStockTx(tx, l.producto.ID, l.cantidad); err != nil {
				if errors.Is(err, repository.ErrStockInsuficiente) {
					return fmt.Errorf("stock insuficiente para %s", l.producto.Nombre)
				}
				return err
			}

			ventaRef := venta.ID
			mov := &model.MovimientoInventario{
				ProductoID:    l.producto.ID,
				Tipo:          model.MovimientoVenta,
				Cantidad:      -l.cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes - l.cantidad,
				UsuarioID:     usuarioID,
				Motivo:        fmt.Sprintf("Venta %s", venta.NumeroNota),
				VentaID:       &ventaRef,
			}
			if err := s.kardex.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}

			despues := *l.producto
			despues.Stock = stockAntes - l.cantidad
			creada, err := s.alertas.EvaluarProductoTx(tx, &despues)
			if err != nil {
				return err
			}
			if creada {
				alertado := despues
				alertados = append(alertados, &alertado)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Post-commit, best effort.
	for _, p := range alertados {
		s.alertas.EncolarEmail(ctx, p)
	}

	resp := s.ventaToResponse(&venta)
	resp.Empleado = empleado.Nombre
	for i, l := range lineas {
		resp.Detalles[i].Producto = l.producto.Nombre
	}
	return resp, nil
}

// ── AnularVenta ───────────────────────────────────────────────────────────────
// Soft void: restore stock, append "AnulacionVenta" kardex rows, flag
// the sale. The row stays for reporting; double void is rejected.

func (s *ventaService) AnularVenta(ctx context.Context, id uint, usuarioID uint) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if venta == nil {
		return errors.New("venta no encontrada")
	}
	if venta.Anulada {
		return errors.New("la venta ya está anulada")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.restaurarStockTx(tx, venta, usuarioID, model.MovimientoAnulacionVenta,
			fmt.Sprintf("Anulación venta %s", venta.NumeroNota)); err != nil {
			return err
		}
		return s.repo.MarcarAnuladaTx(tx, id)
	})
}

// ── EliminarVenta ─────────────────────────────────────────────────────────────
// Hard delete: voided sales already restored their stock, so only
// non-void sales get a compensating "EliminacionVenta" restore. Kardex
// rows keep the dangling venta_id as history.

func (s *ventaService) EliminarVenta(ctx context.Context, id uint, usuarioID uint) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if venta == nil {
		return errors.New("venta no encontrada")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if !venta.Anulada {
			if err := s.restaurarStockTx(tx, venta, usuarioID, model.MovimientoEliminacionVenta,
				fmt.Sprintf("Eliminación venta %s", venta.NumeroNota)); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
}

// restaurarStockTx puts every line's quantity back and appends the
// compensating kardex row.
func (s *ventaService) restaurarStockTx(tx *gorm.DB, venta *model.Venta, usuarioID uint, tipo model.TipoMovimiento, motivo string) error {
	for _, det := range venta.Detalles {
		stockAntes := 0
		if p, err := s.productoRepo.FindByIDTx(tx, det.ProductoID); err == nil && p != nil {
			stockAntes = p.Stock
		}

		if err := s.productoRepo.AjustarStockTx(tx, det.ProductoID, det.Cantidad); err != nil {
			return err
		}

		ventaRef := venta.ID
		mov := &model.MovimientoInventario{
			ProductoID:    det.ProductoID,
			Tipo:          tipo,
			Cantidad:      det.Cantidad,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes + det.Cantidad,
			UsuarioID:     usuarioID,
			Motivo:        motivo,
			VentaID:       &ventaRef,
		}
		if err := s.kardex.RegistrarMovimientoTx(tx, mov); err != nil {
			return err
		}
	}
	return nil
}

func (s *ventaService) ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *s.ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, errors.New("venta no encontrada")
	}
	return s.ventaToResponse(venta), nil
}

func (s *ventaService) GenerarNotaPDF(ctx context.Context, id uint) (string, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if venta == nil {
		return "", errors.New("venta no encontrada")
	}
	empresa, err := s.configRepo.Find(ctx)
	if err != nil {
		return "", err
	}
	return s.pdfGen(venta, empresa)
}

func (s *ventaService) ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, det := range v.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			ProductoID:     det.ProductoID,
			Producto:       nombre,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
			Subtotal:       det.Subtotal,
		})
	}
	cliente := ""
	if v.Cliente != nil {
		cliente = v.Cliente.Nombre
	}
	empleado := ""
	if v.Empleado != nil {
		empleado = v.Empleado.Nombre
	}
	return &dto.VentaResponse{
		ID:         v.ID,
		NumeroNota: v.NumeroNota,
		Fecha:      v.Fecha.Format("2006-01-02T15:04:05Z"),
		ClienteID:  v.ClienteID,
		Cliente:    cliente,
		EmpleadoID: v.EmpleadoID,
		Empleado:   empleado,
		MetodoPago: string(v.MetodoPago),
		Total:      v.Total,
		Anulada:    v.Anulada,
		Detalles:   detalles,
	}
}
