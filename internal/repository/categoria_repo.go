package repository

import (
	"context"
	"errors"

	"erpstore/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uint) (*model.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	List(ctx context.Context) ([]model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, id uint) error
	CountProductos(ctx context.Context, id uint) (int64, error)
	CountSubcategorias(ctx context.Context, id uint) (int64, error)

	CreateSubcategoria(ctx context.Context, s *model.Subcategoria) error
	FindSubcategoriaByID(ctx context.Context, id uint) (*model.Subcategoria, error)
	ListSubcategorias(ctx context.Context, categoriaID uint) ([]model.Subcategoria, error)
	DeleteSubcategoria(ctx context.Context, id uint) error
	CountProductosSubcategoria(ctx context.Context, id uint) (int64, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Preload("Subcategorias").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Preload("Subcategorias").Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, id).Error
}

func (r *categoriaRepo) CountProductos(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("categoria_id = ?", id).Count(&n).Error
	return n, err
}

func (r *categoriaRepo) CountSubcategorias(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Subcategoria{}).Where("categoria_id = ?", id).Count(&n).Error
	return n, err
}

func (r *categoriaRepo) CreateSubcategoria(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *categoriaRepo) FindSubcategoriaByID(ctx context.Context, id uint) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *categoriaRepo) ListSubcategorias(ctx context.Context, categoriaID uint) ([]model.Subcategoria, error) {
	var subs []model.Subcategoria
	q := r.db.WithContext(ctx).Order("nombre ASC")
	if categoriaID != 0 {
		q = q.Where("categoria_id = ?", categoriaID)
	}
	err := q.Find(&subs).Error
	return subs, err
}

func (r *categoriaRepo) DeleteSubcategoria(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subcategoria{}, id).Error
}

func (r *categoriaRepo) CountProductosSubcategoria(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("subcategoria_id = ?", id).Count(&n).Error
	return n, err
}
