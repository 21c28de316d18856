package service_test

import (
	"context"
	"testing"

	"erpstore/internal/model"
	"erpstore/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarMovimientoRechazaCantidadCero(t *testing.T) {
	svc := service.NewKardexService(&stubKardexRepo{}, newStubProductoRepo())

	err := svc.RegistrarMovimientoTx(nil, &model.MovimientoInventario{
		ProductoID: 1, Tipo: model.MovimientoAjuste, Cantidad: 0, UsuarioID: 1, Motivo: "Nada",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cantidad distinta de cero")
}

func TestHistorialDevuelveMovimientosDelProducto(t *testing.T) {
	kardex := &stubKardexRepo{}
	productos := newStubProductoRepo()
	prod := productos.agregar(model.Producto{
		Nombre: "Trazable", Precio: decimal.NewFromInt(10), Stock: 5, Activo: true, CategoriaID: 1,
	})
	otro := productos.agregar(model.Producto{
		Nombre: "Ajeno", Precio: decimal.NewFromInt(10), Stock: 5, Activo: true, CategoriaID: 1,
	})
	svc := service.NewKardexService(kardex, productos)

	require.NoError(t, svc.RegistrarMovimientoTx(nil, &model.MovimientoInventario{
		ProductoID: prod.ID, Tipo: model.MovimientoInventarioInicial, Cantidad: 5,
		StockNuevo: 5, UsuarioID: 1, Motivo: "Inventario inicial",
	}))
	require.NoError(t, svc.RegistrarMovimientoTx(nil, &model.MovimientoInventario{
		ProductoID: otro.ID, Tipo: model.MovimientoInventarioInicial, Cantidad: 5,
		StockNuevo: 5, UsuarioID: 1, Motivo: "Inventario inicial",
	}))
	require.NoError(t, svc.RegistrarMovimientoTx(nil, &model.MovimientoInventario{
		ProductoID: prod.ID, Tipo: model.MovimientoVenta, Cantidad: -2,
		StockAnterior: 5, StockNuevo: 3, UsuarioID: 1, Motivo: "Venta",
	}))

	historial, err := svc.Historial(context.Background(), prod.ID)
	require.NoError(t, err)
	require.Len(t, historial, 2)
	assert.Equal(t, "InventarioInicial", historial[0].Tipo)
	assert.Equal(t, "Venta", historial[1].Tipo)
	assert.Equal(t, -2, historial[1].Cantidad)
}

func TestHistorialProductoInexistente(t *testing.T) {
	svc := service.NewKardexService(&stubKardexRepo{}, newStubProductoRepo())

	_, err := svc.Historial(context.Background(), 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "producto no encontrado")
}
