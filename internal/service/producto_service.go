package service

import (
	"context"
	"errors"
	"fmt"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"

	"gorm.io/gorm"
)

type ProductoService interface {
	Crear(ctx context.Context, usuarioID uint, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	// Eliminar hard-deletes only when no sale line references the
	// product; otherwise it deactivates and reports which happened.
	Eliminar(ctx context.Context, id uint) (eliminado bool, err error)
	Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	AjustarStock(ctx context.Context, id uint, usuarioID uint, req dto.AjusteStockRequest) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	kardex        KardexService
	alertas       AlertaService
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	kardex KardexService,
	alertas AlertaService,
) ProductoService {
	return &productoService{
		repo:          repo,
		categoriaRepo: categoriaRepo,
		kardex:        kardex,
		alertas:       alertas,
	}
}

func (s *productoService) Crear(ctx context.Context, usuarioID uint, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if err := s.validarUnicidad(ctx, 0, req.Nombre, req.CodigoBarras); err != nil {
		return nil, err
	}
	if cat, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		return nil, err
	} else if cat == nil {
		return nil, errors.New("categoría no encontrada")
	}

	p := &model.Producto{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		SKU:            req.SKU,
		CodigoBarras:   req.CodigoBarras,
		Precio:         req.Precio,
		Costo:          req.Costo,
		Stock:          req.Stock,
		StockMinimo:    req.StockMinimo,
		DescuentoPct:   req.DescuentoPct,
		Activo:         true,
		CategoriaID:    req.CategoriaID,
		SubcategoriaID: req.SubcategoriaID,
		VideoURL:       req.VideoURL,
	}
	if p.StockMinimo == 0 {
		p.StockMinimo = 3
	}
	for _, img := range req.Imagenes {
		p.Imagenes = append(p.Imagenes, model.ImagenProducto{
			URL:       img.URL,
			EsPortada: img.EsPortada,
			Orden:     img.Orden,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		if p.Stock > 0 {
			mov := &model.MovimientoInventario{
				ProductoID:    p.ID,
				Tipo:          model.MovimientoInventarioInicial,
				Cantidad:      p.Stock,
				StockAnterior: 0,
				StockNuevo:    p.Stock,
				UsuarioID:     usuarioID,
				Motivo:        "Inventario inicial",
			}
			return s.kardex.RegistrarMovimientoTx(tx, mov)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return productoToResponse(p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("producto no encontrado")
	}
	if err := s.validarUnicidad(ctx, id, req.Nombre, req.CodigoBarras); err != nil {
		return nil, err
	}
	if cat, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		return nil, err
	} else if cat == nil {
		return nil, errors.New("categoría no encontrada")
	}

	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.SKU = req.SKU
	p.CodigoBarras = req.CodigoBarras
	p.Precio = req.Precio
	p.Costo = req.Costo
	p.StockMinimo = req.StockMinimo
	p.DescuentoPct = req.DescuentoPct
	p.CategoriaID = req.CategoriaID
	p.SubcategoriaID = req.SubcategoriaID
	p.VideoURL = req.VideoURL
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if req.Imagenes != nil {
		imgs := make([]model.ImagenProducto, 0, len(req.Imagenes))
		for _, img := range req.Imagenes {
			imgs = append(imgs, model.ImagenProducto{
				ProductoID: p.ID,
				URL:        img.URL,
				EsPortada:  img.EsPortada,
				Orden:      img.Orden,
			})
		}
		if err := s.repo.ReplaceImagenes(ctx, p.ID, imgs); err != nil {
			return nil, err
		}
		p.Imagenes = imgs
	}
	return productoToResponse(p), nil
}

// validarUnicidad enforces unique name and barcode among active products.
func (s *productoService) validarUnicidad(ctx context.Context, selfID uint, nombre string, codigoBarras *string) error {
	if existente, err := s.repo.FindByNombre(ctx, nombre); err != nil {
		return err
	} else if existente != nil && existente.ID != selfID && existente.Activo {
		return fmt.Errorf("ya existe un producto activo con el nombre %s", nombre)
	}
	if codigoBarras != nil && *codigoBarras != "" {
		if existente, err := s.repo.FindByCodigoBarras(ctx, *codigoBarras); err != nil {
			return err
		} else if existente != nil && existente.ID != selfID && existente.Activo {
			return fmt.Errorf("ya existe un producto activo con el código de barras %s", *codigoBarras)
		}
	}
	return nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) (bool, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, errors.New("producto no encontrado")
	}

	refs, err := s.repo.CountDetallesVenta(ctx, id)
	if err != nil {
		return false, err
	}
	if refs > 0 {
		// Referenced by sale history: deactivate instead of breaking it.
		return false, s.repo.SoftDelete(ctx, id)
	}
	return true, s.repo.Delete(ctx, id)
}

func (s *productoService) Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		items = append(items, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) AjustarStock(ctx context.Context, id uint, usuarioID uint, req dto.AjusteStockRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("producto no encontrado")
	}
	if p.Stock+req.Delta < 0 {
		return nil, errors.New("el ajuste dejaría el stock en negativo")
	}

	var alertado *model.Producto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AjustarStockTx(tx, id, req.Delta); err != nil {
			return err
		}
		mov := &model.MovimientoInventario{
			ProductoID:    id,
			Tipo:          model.MovimientoAjuste,
			Cantidad:      req.Delta,
			StockAnterior: p.Stock,
			StockNuevo:    p.Stock + req.Delta,
			UsuarioID:     usuarioID,
			Motivo:        req.Motivo,
		}
		if err := s.kardex.RegistrarMovimientoTx(tx, mov); err != nil {
			return err
		}

		despues := *p
		despues.Stock = p.Stock + req.Delta
		creada, err := s.alertas.EvaluarProductoTx(tx, &despues)
		if err != nil {
			return err
		}
		if creada {
			alertado = &despues
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	if alertado != nil {
		s.alertas.EncolarEmail(ctx, alertado)
	}

	p.Stock += req.Delta
	return productoToResponse(p), nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	imgs := make([]dto.ImagenResponse, 0, len(p.Imagenes))
	for _, img := range p.Imagenes {
		imgs = append(imgs, dto.ImagenResponse{
			ID:        img.ID,
			URL:       img.URL,
			EsPortada: img.EsPortada,
			Orden:     img.Orden,
		})
	}
	categoria := ""
	if p.Categoria != nil {
		categoria = p.Categoria.Nombre
	}
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		SKU:            p.SKU,
		CodigoBarras:   p.CodigoBarras,
		Descripcion:    p.Descripcion,
		Precio:         p.Precio,
		Costo:          p.Costo,
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		StockBajo:      p.StockBajo(),
		DescuentoPct:   p.DescuentoPct,
		Activo:         p.Activo,
		CategoriaID:    p.CategoriaID,
		Categoria:      categoria,
		SubcategoriaID: p.SubcategoriaID,
		VideoURL:       p.VideoURL,
		Imagenes:       imgs,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
