package service

import (
	"context"
	"errors"
	"fmt"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.CategoriaResponse, error)

	CrearSubcategoria(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error)
	EliminarSubcategoria(ctx context.Context, id uint) error
	ListarSubcategorias(ctx context.Context, categoriaID uint) ([]dto.SubcategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existente, err := s.repo.FindByNombre(ctx, req.Nombre); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, fmt.Errorf("ya existe una categoría con el nombre %s", req.Nombre)
	}

	c := &model.Categoria{Nombre: req.Nombre, Activo: true}
	if req.Descripcion != "" {
		c.Descripcion = &req.Descripcion
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("categoría no encontrada")
	}
	if otra, err := s.repo.FindByNombre(ctx, req.Nombre); err != nil {
		return nil, err
	} else if otra != nil && otra.ID != id {
		return nil, fmt.Errorf("ya existe una categoría con el nombre %s", req.Nombre)
	}

	c.Nombre = req.Nombre
	if req.Descripcion != "" {
		c.Descripcion = &req.Descripcion
	} else {
		c.Descripcion = nil
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

// Eliminar refuses while products or subcategories still depend on the
// category.
func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.New("categoría no encontrada")
	}

	productos, err := s.repo.CountProductos(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 {
		return errors.New("no se puede eliminar una categoría con productos asociados")
	}
	subs, err := s.repo.CountSubcategorias(ctx, id)
	if err != nil {
		return err
	}
	if subs > 0 {
		return errors.New("no se puede eliminar una categoría con subcategorías asociadas")
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uint) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("categoría no encontrada")
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) CrearSubcategoria(ctx context.Context, req dto.CrearSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	padre, err := s.repo.FindByID(ctx, req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if padre == nil {
		return nil, errors.New("categoría no encontrada")
	}

	sub := &model.Subcategoria{Nombre: req.Nombre, CategoriaID: req.CategoriaID, Activo: true}
	if err := s.repo.CreateSubcategoria(ctx, sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoriaResponse{ID: sub.ID, Nombre: sub.Nombre, CategoriaID: sub.CategoriaID}, nil
}

func (s *categoriaService) EliminarSubcategoria(ctx context.Context, id uint) error {
	sub, err := s.repo.FindSubcategoriaByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.New("subcategoría no encontrada")
	}

	productos, err := s.repo.CountProductosSubcategoria(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 {
		return errors.New("no se puede eliminar una subcategoría con productos asociados")
	}
	return s.repo.DeleteSubcategoria(ctx, id)
}

func (s *categoriaService) ListarSubcategorias(ctx context.Context, categoriaID uint) ([]dto.SubcategoriaResponse, error) {
	subs, err := s.repo.ListSubcategorias(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubcategoriaResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.SubcategoriaResponse{ID: sub.ID, Nombre: sub.Nombre, CategoriaID: sub.CategoriaID})
	}
	return out, nil
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	subs := make([]dto.SubcategoriaResponse, 0, len(c.Subcategorias))
	for _, sub := range c.Subcategorias {
		subs = append(subs, dto.SubcategoriaResponse{ID: sub.ID, Nombre: sub.Nombre, CategoriaID: sub.CategoriaID})
	}
	descripcion := ""
	if c.Descripcion != nil {
		descripcion = *c.Descripcion
	}
	return &dto.CategoriaResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   descripcion,
		Subcategorias: subs,
	}
}
