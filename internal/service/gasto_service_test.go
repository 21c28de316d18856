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

type gastoFixture struct {
	svc    service.GastoService
	gastos *stubGastoRepo
	caja   *stubCajaRepo
}

func buildGastoSvc(t *testing.T) *gastoFixture {
	t.Helper()
	f := &gastoFixture{gastos: newStubGastoRepo(), caja: newStubCajaRepo()}
	f.svc = service.NewGastoService(f.gastos, f.caja)
	require.NoError(t, f.gastos.CreateCategoria(context.Background(), &model.CategoriaGasto{
		Nombre: "Servicios", Activo: true,
	}))
	return f
}

func TestRegistrarGastoEfectivoSeLigaALaSesionAbierta(t *testing.T) {
	f := buildGastoSvc(t)

	sesion := &model.SesionCaja{UsuarioID: 1, Estado: model.SesionAbierta}
	require.NoError(t, f.caja.CreateSesion(context.Background(), sesion))

	resp, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion:      "Factura de luz",
		Monto:            decimal.NewFromInt(80),
		CategoriaGastoID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, string(model.MetodoEfectivo), resp.MetodoPago, "efectivo por defecto")
	require.NotNil(t, resp.SesionCajaID)
	assert.Equal(t, sesion.ID, *resp.SesionCajaID)
	assert.Equal(t, "Servicios", resp.Categoria)
}

func TestRegistrarGastoNoEfectivoNoTocaLaCaja(t *testing.T) {
	f := buildGastoSvc(t)

	sesion := &model.SesionCaja{UsuarioID: 1, Estado: model.SesionAbierta}
	require.NoError(t, f.caja.CreateSesion(context.Background(), sesion))

	resp, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion:      "Seguro mensual",
		Monto:            decimal.NewFromInt(500),
		CategoriaGastoID: 1,
		MetodoPago:       string(model.MetodoTransferencia),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.SesionCajaID)
}

func TestRegistrarGastoSinSesionQuedaSinLigar(t *testing.T) {
	f := buildGastoSvc(t)

	resp, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion:      "Compra de bolsas",
		Monto:            decimal.NewFromInt(15),
		CategoriaGastoID: 1,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.SesionCajaID)
}

func TestRegistrarGastoValidaciones(t *testing.T) {
	f := buildGastoSvc(t)

	_, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion: "Gratis", Monto: decimal.Zero, CategoriaGastoID: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mayor a cero")

	_, err = f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion: "Sin rubro", Monto: decimal.NewFromInt(10), CategoriaGastoID: 99,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoría de gasto no encontrada")
}

func TestRegistrarGastoRechazaCategoriaInactiva(t *testing.T) {
	f := buildGastoSvc(t)
	require.NoError(t, f.gastos.CreateCategoria(context.Background(), &model.CategoriaGasto{
		Nombre: "Obsoleta", Activo: false,
	}))

	_, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion: "Viejo rubro", Monto: decimal.NewFromInt(10), CategoriaGastoID: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoría de gasto no encontrada")
}

func TestActualizarYEliminarGasto(t *testing.T) {
	f := buildGastoSvc(t)

	creado, err := f.svc.Registrar(context.Background(), 1, dto.GastoRequest{
		Descripcion: "Internet", Monto: decimal.NewFromInt(30), CategoriaGastoID: 1,
	})
	require.NoError(t, err)

	actualizado, err := f.svc.Actualizar(context.Background(), creado.ID, dto.GastoRequest{
		Descripcion: "Internet fibra", Monto: decimal.NewFromInt(35), CategoriaGastoID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Internet fibra", actualizado.Descripcion)
	assert.True(t, actualizado.Monto.Equal(decimal.NewFromInt(35)))

	require.NoError(t, f.svc.Eliminar(context.Background(), creado.ID))
	err = f.svc.Eliminar(context.Background(), creado.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gasto no encontrado")
}

func TestCrearCategoriaGastoRechazaDuplicada(t *testing.T) {
	f := buildGastoSvc(t)

	_, err := f.svc.CrearCategoria(context.Background(), dto.CategoriaGastoRequest{Nombre: "servicios"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe una categoría de gasto")
}

func TestDesactivarCategoriaGasto(t *testing.T) {
	f := buildGastoSvc(t)

	require.NoError(t, f.svc.DesactivarCategoria(context.Background(), 1))

	activas, err := f.svc.ListarCategorias(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, activas)

	todas, err := f.svc.ListarCategorias(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todas, 1)
}
