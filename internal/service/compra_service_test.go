package service_test

import (
	"context"
	"testing"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type compraFixture struct {
	svc         service.CompraService
	compras     *stubCompraRepo
	productos   *stubProductoRepo
	proveedores *stubProveedorRepo
	kardex      *stubKardexRepo
	notifs      *stubNotificacionRepo
}

func buildCompraSvc(t *testing.T) *compraFixture {
	t.Helper()
	f := &compraFixture{
		compras:     newStubCompraRepo(),
		productos:   newStubProductoRepo(),
		proveedores: newStubProveedorRepo(),
		kardex:      &stubKardexRepo{},
		notifs:      &stubNotificacionRepo{},
	}
	configRepo := &stubConfiguracionRepo{}
	kardexSvc := service.NewKardexService(f.kardex, f.productos)
	alertas := service.NewAlertaService(f.notifs, f.productos, configRepo, nil)
	f.svc = service.NewCompraService(f.compras, f.productos, f.proveedores, kardexSvc, alertas)
	return f
}

func TestRegistrarCompraIncrementaStockYActualizaCosto(t *testing.T) {
	f := buildCompraSvc(t)
	prov := f.proveedores.agregar(model.Proveedor{RazonSocial: "Distribuidora Sur", Activo: true})
	prod := f.productos.agregar(model.Producto{
		Nombre: "Azúcar 1kg", Precio: decimal.NewFromInt(30),
		Costo: decimal.NewFromInt(15), Stock: 2, StockMinimo: 1, Activo: true, CategoriaID: 1,
	})

	resp, err := f.svc.RegistrarCompra(context.Background(), 1, dto.RegistrarCompraRequest{
		ProveedorID:   prov.ID,
		NumeroFactura: "F-0042",
		Detalles: []dto.DetalleCompraRequest{
			{ProductoID: prod.ID, Cantidad: 5, PrecioUnitario: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora Sur", resp.Proveedor)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(90)), "total %s", resp.Total)

	actual, _ := f.productos.FindByID(context.Background(), prod.ID)
	assert.Equal(t, 7, actual.Stock)
	assert.True(t, actual.Costo.Equal(decimal.NewFromInt(18)), "costo última compra %s", actual.Costo)

	movs := f.kardex.porTipo(prod.ID, model.MovimientoCompra)
	require.Len(t, movs, 1)
	assert.Equal(t, 5, movs[0].Cantidad)
	assert.Equal(t, 2, movs[0].StockAnterior)
	assert.Equal(t, 7, movs[0].StockNuevo)
	assert.Equal(t, "Compra factura F-0042", movs[0].Motivo)
}

func TestRegistrarCompraRechazaProveedorInexistente(t *testing.T) {
	f := buildCompraSvc(t)
	prod := f.productos.agregar(model.Producto{
		Nombre: "Harina", Precio: decimal.NewFromInt(10), Stock: 0, Activo: true, CategoriaID: 1,
	})

	_, err := f.svc.RegistrarCompra(context.Background(), 1, dto.RegistrarCompraRequest{
		ProveedorID: 99,
		Detalles: []dto.DetalleCompraRequest{
			{ProductoID: prod.ID, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(5)},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proveedor no encontrado")
}

func TestRegistrarCompraRechazaSinDetalles(t *testing.T) {
	f := buildCompraSvc(t)
	prov := f.proveedores.agregar(model.Proveedor{RazonSocial: "X", Activo: true})

	_, err := f.svc.RegistrarCompra(context.Background(), 1, dto.RegistrarCompraRequest{ProveedorID: prov.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "al menos un producto")
}

func TestEliminarCompraReviertStockYReevaluaAlertas(t *testing.T) {
	f := buildCompraSvc(t)
	prov := f.proveedores.agregar(model.Proveedor{RazonSocial: "Mayorista Norte", Activo: true})
	prod := f.productos.agregar(model.Producto{
		Nombre: "Café molido", Precio: decimal.NewFromInt(50),
		Stock: 1, StockMinimo: 3, Activo: true, CategoriaID: 1,
	})

	resp, err := f.svc.RegistrarCompra(context.Background(), 1, dto.RegistrarCompraRequest{
		ProveedorID:   prov.ID,
		NumeroFactura: "F-0100",
		Detalles: []dto.DetalleCompraRequest{
			{ProductoID: prod.ID, Cantidad: 4, PrecioUnitario: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.EliminarCompra(context.Background(), resp.ID, 1))

	actual, _ := f.productos.FindByID(context.Background(), prod.ID)
	assert.Equal(t, 1, actual.Stock)

	movs := f.kardex.porTipo(prod.ID, model.MovimientoAnulacionCompra)
	require.Len(t, movs, 1)
	assert.Equal(t, -4, movs[0].Cantidad)
	assert.Equal(t, "Eliminación compra factura F-0100", movs[0].Motivo)

	// La reversión deja el stock de vuelta en la banda de alerta.
	require.Len(t, f.notifs.notificaciones, 1)
	assert.Contains(t, f.notifs.notificaciones[0].Titulo, "Café molido")

	_, err = f.svc.ObtenerCompra(context.Background(), resp.ID)
	require.Error(t, err)
}

func TestEliminarCompraInexistente(t *testing.T) {
	f := buildCompraSvc(t)
	err := f.svc.EliminarCompra(context.Background(), 123, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compra no encontrada")
}
