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

func buildCategoriaSvc(t *testing.T) (service.CategoriaService, *stubCategoriaRepo) {
	t.Helper()
	repo := newStubCategoriaRepo()
	return service.NewCategoriaService(repo), repo
}

func TestCrearCategoriaRechazaNombreDuplicado(t *testing.T) {
	svc, _ := buildCategoriaSvc(t)

	_, err := svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearCategoriaRequest{Nombre: "bebidas"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe una categoría")
}

func TestEliminarCategoriaConProductosFalla(t *testing.T) {
	svc, repo := buildCategoriaSvc(t)
	cat := repo.agregar(model.Categoria{Nombre: "Limpieza", Activo: true})
	repo.productos[cat.ID] = 2

	err := svc.Eliminar(context.Background(), cat.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productos asociados")
}

func TestEliminarCategoriaConSubcategoriasFalla(t *testing.T) {
	svc, repo := buildCategoriaSvc(t)
	cat := repo.agregar(model.Categoria{Nombre: "Electro", Activo: true})

	_, err := svc.CrearSubcategoria(context.Background(), dto.CrearSubcategoriaRequest{
		Nombre: "Audio", CategoriaID: cat.ID,
	})
	require.NoError(t, err)

	err = svc.Eliminar(context.Background(), cat.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcategorías asociadas")
}

func TestEliminarCategoriaVacia(t *testing.T) {
	svc, repo := buildCategoriaSvc(t)
	cat := repo.agregar(model.Categoria{Nombre: "Temporal", Activo: true})

	require.NoError(t, svc.Eliminar(context.Background(), cat.ID))

	restante, _ := repo.FindByID(context.Background(), cat.ID)
	assert.Nil(t, restante)
}

func TestCrearSubcategoriaExigePadre(t *testing.T) {
	svc, _ := buildCategoriaSvc(t)

	_, err := svc.CrearSubcategoria(context.Background(), dto.CrearSubcategoriaRequest{
		Nombre: "Huérfana", CategoriaID: 9,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoría no encontrada")
}

func TestEliminarSubcategoriaConProductosFalla(t *testing.T) {
	svc, repo := buildCategoriaSvc(t)
	cat := repo.agregar(model.Categoria{Nombre: "Ferretería", Activo: true})

	sub, err := svc.CrearSubcategoria(context.Background(), dto.CrearSubcategoriaRequest{
		Nombre: "Tornillería", CategoriaID: cat.ID,
	})
	require.NoError(t, err)
	repo.subProductos[sub.ID] = 1

	err = svc.EliminarSubcategoria(context.Background(), sub.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productos asociados")

	repo.subProductos[sub.ID] = 0
	require.NoError(t, svc.EliminarSubcategoria(context.Background(), sub.ID))

	subs, err := svc.ListarSubcategorias(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
