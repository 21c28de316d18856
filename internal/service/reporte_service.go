package service

import (
	"context"
	"sort"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/repository"

	"github.com/shopspring/decimal"
)

// Placeholder labels for rows whose referenced entity was hard-deleted.
const (
	productoEliminado = "Producto eliminado"
	empleadoEliminado = "Empleado eliminado"
)

// ReporteService aggregates the read-side dashboards in memory from the
// raw rows. Voided sales never count.
type ReporteService interface {
	KpiStats(ctx context.Context, rango dto.ReporteRango) (*dto.KpiStatsResponse, error)
	TendenciaVentas(ctx context.Context, rango dto.ReporteRango) ([]dto.PuntoTendencia, error)
	TopProductos(ctx context.Context, rango dto.ReporteRango) ([]dto.TopProductoResponse, error)
	ValuacionInventario(ctx context.Context) (*dto.ValuacionInventarioResponse, error)
	UtilidadVentas(ctx context.Context, rango dto.ReporteRango) (*dto.UtilidadVentasResponse, error)
}

type reporteService struct {
	ventaRepo    repository.VentaRepository
	gastoRepo    repository.GastoRepository
	productoRepo repository.ProductoRepository
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	gastoRepo repository.GastoRepository,
	productoRepo repository.ProductoRepository,
) ReporteService {
	return &reporteService{
		ventaRepo:    ventaRepo,
		gastoRepo:    gastoRepo,
		productoRepo: productoRepo,
	}
}

// fechaMaxima is the open upper bound used when a report covers all
// recorded history.
var fechaMaxima = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// resolverRango parses the query range over the given defaults.
// Hasta is inclusive, so the repo bound is the start of the next day.
func resolverRango(rango dto.ReporteRango, desde, hasta time.Time) (time.Time, time.Time) {
	if rango.Desde != "" {
		if t, err := time.Parse("2006-01-02", rango.Desde); err == nil {
			desde = t
		}
	}
	if rango.Hasta != "" {
		if t, err := time.Parse("2006-01-02", rango.Hasta); err == nil {
			hasta = t.AddDate(0, 0, 1)
		}
	}
	return desde, hasta
}

// rangoHistorico covers everything ever registered when the caller
// gives no bounds.
func rangoHistorico(rango dto.ReporteRango) (time.Time, time.Time) {
	return resolverRango(rango, time.Time{}, fechaMaxima)
}

// rangoSemestral covers the last six months through today, so the
// default trend chart stays readable.
func rangoSemestral(rango dto.ReporteRango) (time.Time, time.Time) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	return resolverRango(rango, hoy.AddDate(0, -6, 0), hoy.AddDate(0, 0, 1))
}

func (s *reporteService) KpiStats(ctx context.Context, rango dto.ReporteRango) (*dto.KpiStatsResponse, error) {
	desde, hasta := rangoHistorico(rango)

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastoRepo.SumEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	productos, err := s.productoRepo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}

	ventasTotales := decimal.Zero
	costoTotal := decimal.Zero
	for i := range ventas {
		v := &ventas[i]
		ventasTotales = ventasTotales.Add(v.Total)
		for _, det := range v.Detalles {
			costo := decimal.Zero
			if det.Producto != nil {
				costo = det.Producto.Costo
			}
			costoTotal = costoTotal.Add(costo.Mul(decimal.NewFromInt(int64(det.Cantidad))))
		}
	}
	utilidadBruta := ventasTotales.Sub(costoTotal)

	ticketPromedio := decimal.Zero
	if len(ventas) > 0 {
		ticketPromedio = ventasTotales.Div(decimal.NewFromInt(int64(len(ventas)))).Round(2)
	}

	bajos := 0
	for i := range productos {
		if productos[i].StockBajo() {
			bajos++
		}
	}

	return &dto.KpiStatsResponse{
		VentasTotales:  ventasTotales,
		CostoTotal:     costoTotal,
		UtilidadBruta:  utilidadBruta,
		GastosTotales:  gastos,
		UtilidadNeta:   utilidadBruta.Sub(gastos),
		NumeroVentas:   len(ventas),
		TicketPromedio: ticketPromedio,
		ProductosBajos: bajos,
	}, nil
}

// TendenciaVentas builds the per-day union of the revenue and expense
// axes: a day with only gastos still appears with ventas at zero, and
// vice versa.
func (s *reporteService) TendenciaVentas(ctx context.Context, rango dto.ReporteRango) ([]dto.PuntoTendencia, error) {
	desde, hasta := rangoSemestral(rango)

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastoRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	porDia := map[string]*dto.PuntoTendencia{}
	punto := func(fecha string) *dto.PuntoTendencia {
		p, ok := porDia[fecha]
		if !ok {
			p = &dto.PuntoTendencia{Fecha: fecha, Ventas: decimal.Zero, Gastos: decimal.Zero}
			porDia[fecha] = p
		}
		return p
	}

	for i := range ventas {
		dia := ventas[i].Fecha.Format("2006-01-02")
		p := punto(dia)
		p.Ventas = p.Ventas.Add(ventas[i].Total)
	}
	for i := range gastos {
		dia := gastos[i].Fecha.Format("2006-01-02")
		p := punto(dia)
		p.Gastos = p.Gastos.Add(gastos[i].Monto)
	}

	out := make([]dto.PuntoTendencia, 0, len(porDia))
	for _, p := range porDia {
		p.Utilidad = p.Ventas.Sub(p.Gastos)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha < out[j].Fecha })
	return out, nil
}

func (s *reporteService) TopProductos(ctx context.Context, rango dto.ReporteRango) ([]dto.TopProductoResponse, error) {
	desde, hasta := rangoHistorico(rango)

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	type acum struct {
		nombre   string
		cantidad int
		ingresos decimal.Decimal
	}
	porProducto := map[uint]*acum{}
	for i := range ventas {
		for _, det := range ventas[i].Detalles {
			a, ok := porProducto[det.ProductoID]
			if !ok {
				nombre := productoEliminado
				if det.Producto != nil {
					nombre = det.Producto.Nombre
				}
				a = &acum{nombre: nombre, ingresos: decimal.Zero}
				porProducto[det.ProductoID] = a
			}
			a.cantidad += det.Cantidad
			a.ingresos = a.ingresos.Add(det.Subtotal)
		}
	}

	out := make([]dto.TopProductoResponse, 0, len(porProducto))
	for id, a := range porProducto {
		out = append(out, dto.TopProductoResponse{
			ProductoID: id,
			Nombre:     a.nombre,
			Cantidad:   a.cantidad,
			Ingresos:   a.ingresos,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Ingresos.Equal(out[j].Ingresos) {
			return out[i].Ingresos.GreaterThan(out[j].Ingresos)
		}
		return out[i].ProductoID < out[j].ProductoID
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

func (s *reporteService) ValuacionInventario(ctx context.Context) (*dto.ValuacionInventarioResponse, error) {
	productos, err := s.productoRepo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}

	porCategoria := map[string]decimal.Decimal{}
	total := decimal.Zero
	for i := range productos {
		p := &productos[i]
		valor := p.Costo.Mul(decimal.NewFromInt(int64(p.Stock)))
		categoria := "Sin categoría"
		if p.Categoria != nil {
			categoria = p.Categoria.Nombre
		}
		porCategoria[categoria] = porCategoria[categoria].Add(valor)
		total = total.Add(valor)
	}

	categorias := make([]dto.ValuacionCategoriaResponse, 0, len(porCategoria))
	for nombre, valor := range porCategoria {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = valor.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		categorias = append(categorias, dto.ValuacionCategoriaResponse{
			Categoria:  nombre,
			Valor:      valor,
			Porcentaje: pct,
		})
	}
	sort.Slice(categorias, func(i, j int) bool {
		return categorias[i].Valor.GreaterThan(categorias[j].Valor)
	})

	return &dto.ValuacionInventarioResponse{Total: total, Categorias: categorias}, nil
}

func (s *reporteService) UtilidadVentas(ctx context.Context, rango dto.ReporteRango) (*dto.UtilidadVentasResponse, error) {
	desde, hasta := rangoHistorico(rango)

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	resp := &dto.UtilidadVentasResponse{
		IngresoTotal:  decimal.Zero,
		CostoTotal:    decimal.Zero,
		UtilidadTotal: decimal.Zero,
	}
	for i := range ventas {
		v := &ventas[i]
		empleado := empleadoEliminado
		if v.Empleado != nil {
			empleado = v.Empleado.Nombre
		}
		for _, det := range v.Detalles {
			producto := productoEliminado
			costoUnitario := decimal.Zero
			if det.Producto != nil {
				producto = det.Producto.Nombre
				costoUnitario = det.Producto.Costo
			}
			costo := costoUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad)))
			utilidad := det.Subtotal.Sub(costo)

			resp.Lineas = append(resp.Lineas, dto.LineaUtilidadResponse{
				NumeroNota: v.NumeroNota,
				Fecha:      v.Fecha.Format("2006-01-02"),
				Empleado:   empleado,
				Producto:   producto,
				Cantidad:   det.Cantidad,
				Ingreso:    det.Subtotal,
				Costo:      costo,
				Utilidad:   utilidad,
			})
			resp.IngresoTotal = resp.IngresoTotal.Add(det.Subtotal)
			resp.CostoTotal = resp.CostoTotal.Add(costo)
			resp.UtilidadTotal = resp.UtilidadTotal.Add(utilidad)
		}
	}
	return resp, nil
}
