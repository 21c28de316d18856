package service_test

import (
	"context"
	"testing"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminarClienteConVentasDesactiva(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo)

	doc := "40123456"
	creado, err := svc.Crear(context.Background(), dto.ClienteRequest{Nombre: "Marta Pérez", Documento: &doc})
	require.NoError(t, err)
	repo.ventas[creado.ID] = 3

	require.NoError(t, svc.Eliminar(context.Background(), creado.ID))

	guardado, _ := repo.FindByID(context.Background(), creado.ID)
	require.NotNil(t, guardado, "con historial de ventas solo se desactiva")
	assert.False(t, guardado.Activo)

	activos, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, activos)

	todos, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestEliminarClienteSinVentasBorra(t *testing.T) {
	repo := newStubClienteRepo()
	svc := service.NewClienteService(repo)

	creado, err := svc.Crear(context.Background(), dto.ClienteRequest{Nombre: "Cliente fugaz"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), creado.ID))

	guardado, _ := repo.FindByID(context.Background(), creado.ID)
	assert.Nil(t, guardado)
}

func TestActualizarEmpleado(t *testing.T) {
	repo := newStubEmpleadoRepo()
	svc := service.NewEmpleadoService(repo)

	creado, err := svc.Crear(context.Background(), dto.EmpleadoRequest{Nombre: "Juan"})
	require.NoError(t, err)

	cargo := "Cajero"
	actualizado, err := svc.Actualizar(context.Background(), creado.ID, dto.EmpleadoRequest{
		Nombre: "Juan Gómez", Cargo: &cargo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Gómez", actualizado.Nombre)
	require.NotNil(t, actualizado.Cargo)
	assert.Equal(t, "Cajero", *actualizado.Cargo)

	_, err = svc.Actualizar(context.Background(), 99, dto.EmpleadoRequest{Nombre: "Nadie"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empleado no encontrado")
}

func TestEliminarEmpleadoConVentasDesactiva(t *testing.T) {
	repo := newStubEmpleadoRepo()
	svc := service.NewEmpleadoService(repo)

	emp := repo.agregar(model.Empleado{Nombre: "Histórico", Activo: true})
	repo.ventas[emp.ID] = 10

	require.NoError(t, svc.Eliminar(context.Background(), emp.ID))

	guardado, _ := repo.FindByID(context.Background(), emp.ID)
	require.NotNil(t, guardado)
	assert.False(t, guardado.Activo)
}

func TestEliminarProveedorConComprasDesactiva(t *testing.T) {
	repo := newStubProveedorRepo()
	svc := service.NewProveedorService(repo)

	prov := repo.agregar(model.Proveedor{RazonSocial: "Importadora Este", Activo: true})
	repo.compras[prov.ID] = 2

	require.NoError(t, svc.Eliminar(context.Background(), prov.ID))

	guardado, _ := repo.FindByID(context.Background(), prov.ID)
	require.NotNil(t, guardado)
	assert.False(t, guardado.Activo)

	sinCompras := repo.agregar(model.Proveedor{RazonSocial: "Efímera SRL", Activo: true})
	require.NoError(t, svc.Eliminar(context.Background(), sinCompras.ID))
	borrado, _ := repo.FindByID(context.Background(), sinCompras.ID)
	assert.Nil(t, borrado)
}

func TestObtenerProveedorInexistente(t *testing.T) {
	svc := service.NewProveedorService(newStubProveedorRepo())

	_, err := svc.Obtener(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proveedor no encontrado")
}
