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

type CompraService interface {
	RegistrarCompra(ctx context.Context, usuarioID uint, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
	EliminarCompra(ctx context.Context, id uint, usuarioID uint) error
	ListarCompras(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
	ObtenerCompra(ctx context.Context, id uint) (*dto.CompraResponse, error)
}

type compraService struct {
	repo          repository.CompraRepository
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	kardex        KardexService
	alertas       AlertaService
}

func NewCompraService(
	repo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	kardex KardexService,
	alertas AlertaService,
) CompraService {
	return &compraService{
		repo:          repo,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		kardex:        kardex,
		alertas:       alertas,
	}
}

// ── RegistrarCompra ───────────────────────────────────────────────────────────
// Atomic: create the document, then per line increment stock, overwrite
// product cost with the line unit price (last-purchase-cost) and append
// a "Compra" kardex row.

func (s *compraService) RegistrarCompra(ctx context.Context, usuarioID uint, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	if len(req.Detalles) == 0 {
		return nil, errors.New("la compra debe tener al menos un producto")
	}

	proveedor, err := s.proveedorRepo.FindByID(ctx, req.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, errors.New("proveedor no encontrado")
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
		subtotal := det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad)))
		total = total.Add(subtotal)
		lineas = append(lineas, lineaResuelta{
			producto: p,
			cantidad: det.Cantidad,
			precio:   det.PrecioUnitario,
			subtotal: subtotal,
		})
	}

	var compra model.Compra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra = model.Compra{
			ProveedorID:   req.ProveedorID,
			Fecha:         time.Now(),
			NumeroFactura: req.NumeroFactura,
			Total:         total,
		}
		for _, l := range lineas {
			compra.Detalles = append(compra.Detalles, model.DetalleCompra{
				ProductoID:     l.producto.ID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				Subtotal:       l.subtotal,
			})
		}
		if err := s.repo.CreateTx(tx, &compra); err != nil {
			return err
		}

		for _, l := range lineas {
			stockAntes := l.producto.Stock
			if actual, err := s.productoRepo.FindByIDTx(tx, l.producto.ID); err == nil && actual != nil {
				stockAntes = actual.Stock
			}

			if err := s.productoRepo.AjustarStockTx(tx, l.producto.ID, l.cantidad); err != nil {
				return err
			}
			if err := s.productoRepo.ActualizarCostoTx(tx, l.producto.ID, l.precio); err != nil {
				return err
			}

			compraRef := compra.ID
			mov := &model.MovimientoInventario{
				ProductoID:    l.producto.ID,
				Tipo:          model.MovimientoCompra,
				Cantidad:      l.cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes + l.cantidad,
				UsuarioID:     usuarioID,
				Motivo:        fmt.Sprintf("Compra factura %s", compra.NumeroFactura),
				CompraID:      &compraRef,
			}
			if err := s.kardex.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := s.compraToResponse(&compra)
	resp.Proveedor = proveedor.RazonSocial
	for i, l := range lineas {
		resp.Detalles[i].Producto = l.producto.Nombre
	}
	return resp, nil
}

// ── EliminarCompra ────────────────────────────────────────────────────────────
// Reverses the stock the purchase brought in ("AnulacionCompra" rows),
// which can push products back under their minimum, so every touched
// line re-runs the low-stock check.

func (s *compraService) EliminarCompra(ctx context.Context, id uint, usuarioID uint) error {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if compra == nil {
		return errors.New("compra no encontrada")
	}

	var alertados []*model.Producto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, det := range compra.Detalles {
			stockAntes := 0
			var producto *model.Producto
			if p, err := s.productoRepo.FindByIDTx(tx, det.ProductoID); err == nil && p != nil {
				stockAntes = p.Stock
				producto = p
			}

			if err := s.productoRepo.AjustarStockTx(tx, det.ProductoID, -det.Cantidad); err != nil {
				return err
			}

			compraRef := compra.ID
			mov := &model.MovimientoInventario{
				ProductoID:    det.ProductoID,
				Tipo:          model.MovimientoAnulacionCompra,
				Cantidad:      -det.Cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes - det.Cantidad,
				UsuarioID:     usuarioID,
				Motivo:        fmt.Sprintf("Eliminación compra factura %s", compra.NumeroFactura),
				CompraID:      &compraRef,
			}
			if err := s.kardex.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}

			if producto != nil {
				despues := *producto
				despues.Stock = stockAntes - det.Cantidad
				creada, err := s.alertas.EvaluarProductoTx(tx, &despues)
				if err != nil {
					return err
				}
				if creada {
					alertado := despues
					alertados = append(alertados, &alertado)
				}
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return txErr
	}

	for _, p := range alertados {
		s.alertas.EncolarEmail(ctx, p)
	}
	return nil
}

func (s *compraService) ListarCompras(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		items = append(items, *s.compraToResponse(&compras[i]))
	}
	return &dto.CompraListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *compraService) ObtenerCompra(ctx context.Context, id uint) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, errors.New("compra no encontrada")
	}
	return s.compraToResponse(compra), nil
}

func (s *compraService) compraToResponse(c *model.Compra) *dto.CompraResponse {
	detalles := make([]dto.DetalleCompraResponse, 0, len(c.Detalles))
	for _, det := range c.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleCompraResponse{
			ProductoID:     det.ProductoID,
			Producto:       nombre,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
			Subtotal:       det.Subtotal,
		})
	}
	proveedor := ""
	if c.Proveedor != nil {
		proveedor = c.Proveedor.RazonSocial
	}
	return &dto.CompraResponse{
		ID:            c.ID,
		Fecha:         c.Fecha.Format("2006-01-02T15:04:05Z"),
		ProveedorID:   c.ProveedorID,
		Proveedor:     proveedor,
		NumeroFactura: c.NumeroFactura,
		Total:         c.Total,
		Detalles:      detalles,
	}
}
