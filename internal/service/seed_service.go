package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"erpstore/internal/model"
	"erpstore/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SeedService hydrates a demo catalog from a JSON file. Existing rows
// are matched by name and left alone, so restoring is idempotent and
// never clobbers real data.
type SeedService interface {
	Restaurar(ctx context.Context, usuarioID uint) (*SeedResumen, error)
}

// SeedResumen reports what the restore actually inserted.
type SeedResumen struct {
	Categorias int `json:"categorias"`
	Productos  int `json:"productos"`
	Clientes   int `json:"clientes"`
	Empleados  int `json:"empleados"`
}

type seedArchivo struct {
	Empresa *struct {
		Nombre    string `json:"nombre"`
		RUC       string `json:"ruc"`
		Direccion string `json:"direccion"`
		Telefono  string `json:"telefono"`
		Email     string `json:"email"`
	} `json:"empresa"`
	Categorias []struct {
		Nombre      string `json:"nombre"`
		Descripcion string `json:"descripcion"`
	} `json:"categorias"`
	Productos []struct {
		Nombre      string          `json:"nombre"`
		Categoria   string          `json:"categoria"`
		Precio      decimal.Decimal `json:"precio"`
		Costo       decimal.Decimal `json:"costo"`
		Stock       int             `json:"stock"`
		StockMinimo int             `json:"stock_minimo"`
	} `json:"productos"`
	Clientes []struct {
		Nombre    string  `json:"nombre"`
		Documento *string `json:"documento"`
	} `json:"clientes"`
	Empleados []struct {
		Nombre string  `json:"nombre"`
		Cargo  *string `json:"cargo"`
	} `json:"empleados"`
}

type seedService struct {
	path          string
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	clienteRepo   repository.ClienteRepository
	empleadoRepo  repository.EmpleadoRepository
	configRepo    repository.ConfiguracionRepository
	kardex        KardexService
}

func NewSeedService(
	path string,
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	configRepo repository.ConfiguracionRepository,
	kardex KardexService,
) SeedService {
	return &seedService{
		path:          path,
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
		clienteRepo:   clienteRepo,
		empleadoRepo:  empleadoRepo,
		configRepo:    configRepo,
		kardex:        kardex,
	}
}

func (s *seedService) Restaurar(ctx context.Context, usuarioID uint) (*SeedResumen, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo de seed: %w", err)
	}
	var archivo seedArchivo
	if err := json.Unmarshal(data, &archivo); err != nil {
		return nil, fmt.Errorf("archivo de seed inválido: %w", err)
	}

	resumen := &SeedResumen{}

	if archivo.Empresa != nil {
		cfg, err := s.configRepo.Find(ctx)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			cfg = &model.ConfiguracionEmpresa{SmtpPort: 587}
		}
		cfg.Nombre = archivo.Empresa.Nombre
		cfg.RUC = archivo.Empresa.RUC
		cfg.Direccion = archivo.Empresa.Direccion
		cfg.Telefono = archivo.Empresa.Telefono
		cfg.Email = archivo.Empresa.Email
		if err := s.configRepo.Save(ctx, cfg); err != nil {
			return nil, err
		}
	}

	categoriaPorNombre := map[string]uint{}
	for _, c := range archivo.Categorias {
		existente, err := s.categoriaRepo.FindByNombre(ctx, c.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			categoriaPorNombre[c.Nombre] = existente.ID
			continue
		}
		cat := &model.Categoria{Nombre: c.Nombre, Activo: true}
		if c.Descripcion != "" {
			d := c.Descripcion
			cat.Descripcion = &d
		}
		if err := s.categoriaRepo.Create(ctx, cat); err != nil {
			return nil, err
		}
		categoriaPorNombre[c.Nombre] = cat.ID
		resumen.Categorias++
	}

	for _, p := range archivo.Productos {
		existente, err := s.productoRepo.FindByNombre(ctx, p.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			continue
		}
		categoriaID, ok := categoriaPorNombre[p.Categoria]
		if !ok {
			if cat, err := s.categoriaRepo.FindByNombre(ctx, p.Categoria); err == nil && cat != nil {
				categoriaID = cat.ID
			} else {
				log.Warn().Str("producto", p.Nombre).Str("categoria", p.Categoria).
					Msg("seed: categoría desconocida, producto omitido")
				continue
			}
		}

		producto := &model.Producto{
			Nombre:      p.Nombre,
			Precio:      p.Precio,
			Costo:       p.Costo,
			Stock:       p.Stock,
			StockMinimo: p.StockMinimo,
			Activo:      true,
			CategoriaID: categoriaID,
		}
		if producto.StockMinimo == 0 {
			producto.StockMinimo = 3
		}
		if err := s.productoRepo.Create(ctx, producto); err != nil {
			return nil, err
		}
		if producto.Stock > 0 {
			mov := &model.MovimientoInventario{
				ProductoID:    producto.ID,
				Tipo:          model.MovimientoInventarioInicial,
				Cantidad:      producto.Stock,
				StockAnterior: 0,
				StockNuevo:    producto.Stock,
				UsuarioID:     usuarioID,
				Motivo:        "Inventario inicial (seed)",
			}
			if err := s.kardex.RegistrarMovimientoTx(s.productoRepo.DB(), mov); err != nil {
				return nil, err
			}
		}
		resumen.Productos++
	}

	clientesActuales, err := s.clienteRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	clientePorNombre := map[string]bool{}
	for _, c := range clientesActuales {
		clientePorNombre[c.Nombre] = true
	}
	for _, c := range archivo.Clientes {
		if clientePorNombre[c.Nombre] {
			continue
		}
		cliente := &model.Cliente{Nombre: c.Nombre, Documento: c.Documento, Activo: true}
		if err := s.clienteRepo.Create(ctx, cliente); err != nil {
			return nil, err
		}
		resumen.Clientes++
	}

	empleadosActuales, err := s.empleadoRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	empleadoPorNombre := map[string]bool{}
	for _, e := range empleadosActuales {
		empleadoPorNombre[e.Nombre] = true
	}
	for _, e := range archivo.Empleados {
		if empleadoPorNombre[e.Nombre] {
			continue
		}
		empleado := &model.Empleado{Nombre: e.Nombre, Cargo: e.Cargo, Activo: true}
		if err := s.empleadoRepo.Create(ctx, empleado); err != nil {
			return nil, err
		}
		resumen.Empleados++
	}

	log.Info().
		Int("categorias", resumen.Categorias).
		Int("productos", resumen.Productos).
		Int("clientes", resumen.Clientes).
		Int("empleados", resumen.Empleados).
		Msg("seed: restauración completada")
	return resumen, nil
}
