package service_test

import (
	"context"
	"testing"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reporteFixture struct {
	svc       service.ReporteService
	ventas    *stubVentaRepo
	gastos    *stubGastoRepo
	productos *stubProductoRepo
}

func buildReporteSvc(t *testing.T) *reporteFixture {
	t.Helper()
	f := &reporteFixture{
		ventas:    newStubVentaRepo(),
		gastos:    newStubGastoRepo(),
		productos: newStubProductoRepo(),
	}
	f.svc = service.NewReporteService(f.ventas, f.gastos, f.productos)
	return f
}

var rangoMarzo = dto.ReporteRango{Desde: "2026-03-01", Hasta: "2026-03-31"}

func fechaMarzo(dia int) time.Time {
	return time.Date(2026, time.March, dia, 12, 0, 0, 0, time.UTC)
}

func (f *reporteFixture) seedVenta(t *testing.T, dia int, total decimal.Decimal, detalles ...model.DetalleVenta) {
	t.Helper()
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha:      fechaMarzo(dia),
		NumeroNota: "001-001-00000001",
		MetodoPago: model.MetodoEfectivo,
		Total:      total,
		Detalles:   detalles,
	}))
}

func TestKpiStats(t *testing.T) {
	f := buildReporteSvc(t)

	yerba := &model.Producto{ID: 1, Nombre: "Yerba", Costo: decimal.NewFromInt(60), Activo: true}
	f.seedVenta(t, 5, decimal.NewFromInt(300), model.DetalleVenta{
		ProductoID: 1, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(100),
		Subtotal: decimal.NewFromInt(300), Producto: yerba,
	})
	f.seedVenta(t, 8, decimal.NewFromInt(100), model.DetalleVenta{
		ProductoID: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100),
		Subtotal: decimal.NewFromInt(100), Producto: yerba,
	})

	require.NoError(t, f.gastos.Create(context.Background(), &model.Gasto{
		Monto: decimal.NewFromInt(50), Fecha: fechaMarzo(6), CategoriaGastoID: 1,
	}))

	// Un activo en banda baja y otro sano.
	f.productos.agregar(model.Producto{Nombre: "Bajo", Stock: 2, StockMinimo: 3, Activo: true})
	f.productos.agregar(model.Producto{Nombre: "Sano", Stock: 50, StockMinimo: 3, Activo: true})

	kpi, err := f.svc.KpiStats(context.Background(), rangoMarzo)
	require.NoError(t, err)

	assert.True(t, kpi.VentasTotales.Equal(decimal.NewFromInt(400)))
	// Costo: 60*3 + 60*1
	assert.True(t, kpi.CostoTotal.Equal(decimal.NewFromInt(240)), "costo %s", kpi.CostoTotal)
	assert.True(t, kpi.UtilidadBruta.Equal(decimal.NewFromInt(160)), "utilidad %s", kpi.UtilidadBruta)
	assert.True(t, kpi.GastosTotales.Equal(decimal.NewFromInt(50)))
	// Neta: 160 de utilidad bruta menos 50 de gastos
	assert.True(t, kpi.UtilidadNeta.Equal(decimal.NewFromInt(110)), "neta %s", kpi.UtilidadNeta)
	assert.Equal(t, 2, kpi.NumeroVentas)
	assert.True(t, kpi.TicketPromedio.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 1, kpi.ProductosBajos)
}

func TestKpiStatsSinRangoCubreTodoElHistorico(t *testing.T) {
	f := buildReporteSvc(t)

	ahora := time.Now()
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: ahora.AddDate(0, -2, 0), Total: decimal.NewFromInt(100),
	}))
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: ahora.AddDate(-3, 0, 0), Total: decimal.NewFromInt(40),
	}))

	kpi, err := f.svc.KpiStats(context.Background(), dto.ReporteRango{})
	require.NoError(t, err)
	assert.Equal(t, 2, kpi.NumeroVentas)
	assert.True(t, kpi.VentasTotales.Equal(decimal.NewFromInt(140)))
}

func TestKpiStatsHastaEsInclusivoPeroNoLaMedianocheSiguiente(t *testing.T) {
	f := buildReporteSvc(t)

	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
		Total: decimal.NewFromInt(70),
	}))
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		Total: decimal.NewFromInt(999),
	}))

	kpi, err := f.svc.KpiStats(context.Background(), rangoMarzo)
	require.NoError(t, err)
	assert.Equal(t, 1, kpi.NumeroVentas)
	assert.True(t, kpi.VentasTotales.Equal(decimal.NewFromInt(70)))
}

func TestKpiStatsSinVentas(t *testing.T) {
	f := buildReporteSvc(t)

	kpi, err := f.svc.KpiStats(context.Background(), rangoMarzo)
	require.NoError(t, err)
	assert.Equal(t, 0, kpi.NumeroVentas)
	assert.True(t, kpi.TicketPromedio.IsZero())
}

func TestKpiStatsIgnoraVentasAnuladas(t *testing.T) {
	f := buildReporteSvc(t)

	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: fechaMarzo(5), Total: decimal.NewFromInt(999), Anulada: true,
	}))

	kpi, err := f.svc.KpiStats(context.Background(), rangoMarzo)
	require.NoError(t, err)
	assert.True(t, kpi.VentasTotales.IsZero())
}

func TestTendenciaVentasUneDiasDeAmbosEjes(t *testing.T) {
	f := buildReporteSvc(t)

	f.seedVenta(t, 3, decimal.NewFromInt(100))
	require.NoError(t, f.gastos.Create(context.Background(), &model.Gasto{
		Monto: decimal.NewFromInt(20), Fecha: fechaMarzo(4), CategoriaGastoID: 1,
	}))

	puntos, err := f.svc.TendenciaVentas(context.Background(), rangoMarzo)
	require.NoError(t, err)
	require.Len(t, puntos, 2)

	assert.Equal(t, "2026-03-03", puntos[0].Fecha)
	assert.True(t, puntos[0].Ventas.Equal(decimal.NewFromInt(100)))
	assert.True(t, puntos[0].Gastos.IsZero())
	assert.True(t, puntos[0].Utilidad.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, "2026-03-04", puntos[1].Fecha)
	assert.True(t, puntos[1].Ventas.IsZero())
	assert.True(t, puntos[1].Gastos.Equal(decimal.NewFromInt(20)))
	assert.True(t, puntos[1].Utilidad.Equal(decimal.NewFromInt(-20)))
}

func TestTendenciaVentasSinRangoMiraSeisMesesAtras(t *testing.T) {
	f := buildReporteSvc(t)

	ahora := time.Now()
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: ahora.AddDate(0, -2, 0), Total: decimal.NewFromInt(100),
	}))
	require.NoError(t, f.ventas.CreateTx(nil, &model.Venta{
		Fecha: ahora.AddDate(0, -8, 0), Total: decimal.NewFromInt(999),
	}))

	puntos, err := f.svc.TendenciaVentas(context.Background(), dto.ReporteRango{})
	require.NoError(t, err)
	require.Len(t, puntos, 1)
	assert.True(t, puntos[0].Ventas.Equal(decimal.NewFromInt(100)))
}

func TestTopProductosOrdenaPorIngresos(t *testing.T) {
	f := buildReporteSvc(t)

	caro := &model.Producto{ID: 1, Nombre: "Caro"}
	barato := &model.Producto{ID: 2, Nombre: "Barato"}
	f.seedVenta(t, 10, decimal.NewFromInt(550),
		model.DetalleVenta{ProductoID: 1, Cantidad: 1, Subtotal: decimal.NewFromInt(500), Producto: caro},
		model.DetalleVenta{ProductoID: 2, Cantidad: 5, Subtotal: decimal.NewFromInt(50), Producto: barato},
	)
	f.seedVenta(t, 11, decimal.NewFromInt(30),
		model.DetalleVenta{ProductoID: 2, Cantidad: 3, Subtotal: decimal.NewFromInt(30), Producto: barato},
	)

	top, err := f.svc.TopProductos(context.Background(), rangoMarzo)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Caro", top[0].Nombre)
	assert.True(t, top[0].Ingresos.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Barato", top[1].Nombre)
	assert.Equal(t, 8, top[1].Cantidad)
	assert.True(t, top[1].Ingresos.Equal(decimal.NewFromInt(80)))
}

func TestTopProductosEtiquetaProductoEliminado(t *testing.T) {
	f := buildReporteSvc(t)

	f.seedVenta(t, 10, decimal.NewFromInt(40),
		model.DetalleVenta{ProductoID: 77, Cantidad: 2, Subtotal: decimal.NewFromInt(40)},
	)

	top, err := f.svc.TopProductos(context.Background(), rangoMarzo)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Producto eliminado", top[0].Nombre)
}

func TestValuacionInventario(t *testing.T) {
	f := buildReporteSvc(t)

	almacen := &model.Categoria{ID: 1, Nombre: "Almacén"}
	bebidas := &model.Categoria{ID: 2, Nombre: "Bebidas"}
	f.productos.agregar(model.Producto{
		Nombre: "Arroz", Costo: decimal.NewFromInt(10), Stock: 30, Activo: true, Categoria: almacen,
	})
	f.productos.agregar(model.Producto{
		Nombre: "Gaseosa", Costo: decimal.NewFromInt(5), Stock: 20, Activo: true, Categoria: bebidas,
	})
	f.productos.agregar(model.Producto{
		Nombre: "Inactivo", Costo: decimal.NewFromInt(100), Stock: 100, Activo: false, Categoria: almacen,
	})

	val, err := f.svc.ValuacionInventario(context.Background())
	require.NoError(t, err)

	assert.True(t, val.Total.Equal(decimal.NewFromInt(400)), "total %s", val.Total)
	require.Len(t, val.Categorias, 2)
	assert.Equal(t, "Almacén", val.Categorias[0].Categoria)
	assert.True(t, val.Categorias[0].Valor.Equal(decimal.NewFromInt(300)))
	assert.True(t, val.Categorias[0].Porcentaje.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "Bebidas", val.Categorias[1].Categoria)
	assert.True(t, val.Categorias[1].Porcentaje.Equal(decimal.NewFromInt(25)))
}

func TestUtilidadVentas(t *testing.T) {
	f := buildReporteSvc(t)

	yerba := &model.Producto{ID: 1, Nombre: "Yerba", Costo: decimal.NewFromInt(60)}
	f.seedVenta(t, 15, decimal.NewFromInt(200), model.DetalleVenta{
		ProductoID: 1, Cantidad: 2, PrecioUnitario: decimal.NewFromInt(100),
		Subtotal: decimal.NewFromInt(200), Producto: yerba,
	})

	resp, err := f.svc.UtilidadVentas(context.Background(), rangoMarzo)
	require.NoError(t, err)
	require.Len(t, resp.Lineas, 1)

	linea := resp.Lineas[0]
	assert.Equal(t, "Yerba", linea.Producto)
	assert.True(t, linea.Ingreso.Equal(decimal.NewFromInt(200)))
	assert.True(t, linea.Costo.Equal(decimal.NewFromInt(120)))
	assert.True(t, linea.Utilidad.Equal(decimal.NewFromInt(80)))

	assert.True(t, resp.IngresoTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.CostoTotal.Equal(decimal.NewFromInt(120)))
	assert.True(t, resp.UtilidadTotal.Equal(decimal.NewFromInt(80)))
}
