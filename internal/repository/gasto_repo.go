package repository

import (
	"context"
	"errors"
	"time"

	"erpstore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GastoRepository persiste gastos y sus categorías.
type GastoRepository interface {
	Create(ctx context.Context, g *model.Gasto) error
	FindByID(ctx context.Context, id uint) (*model.Gasto, error)
	List(ctx context.Context, filter GastoFilter) ([]model.Gasto, error)
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Gasto, error)
	Update(ctx context.Context, g *model.Gasto) error
	Delete(ctx context.Context, id uint) error
	SumEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	// SumEfectivoSesion suma los gastos en efectivo ligados a una sesión de caja.
	SumEfectivoSesion(ctx context.Context, sesionID uint) (decimal.Decimal, error)

	CreateCategoria(ctx context.Context, c *model.CategoriaGasto) error
	FindCategoriaByID(ctx context.Context, id uint) (*model.CategoriaGasto, error)
	FindCategoriaByNombre(ctx context.Context, nombre string) (*model.CategoriaGasto, error)
	ListCategorias(ctx context.Context, incluirInactivas bool) ([]model.CategoriaGasto, error)
	UpdateCategoria(ctx context.Context, c *model.CategoriaGasto) error
	CountGastosCategoria(ctx context.Context, categoriaID uint) (int64, error)
}

// GastoFilter acota el listado de gastos.
type GastoFilter struct {
	CategoriaGastoID *uint
	Desde            *time.Time
	Hasta            *time.Time
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) FindByID(ctx context.Context, id uint) (*model.Gasto, error) {
	var g model.Gasto
	err := r.db.WithContext(ctx).Preload("CategoriaGasto").First(&g, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gastoRepo) List(ctx context.Context, filter GastoFilter) ([]model.Gasto, error) {
	q := r.db.WithContext(ctx).Model(&model.Gasto{}).Preload("CategoriaGasto")
	if filter.CategoriaGastoID != nil {
		q = q.Where("categoria_gasto_id = ?", *filter.CategoriaGastoID)
	}
	if filter.Desde != nil {
		q = q.Where("fecha >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("fecha < ?", *filter.Hasta)
	}
	var gastos []model.Gasto
	err := q.Order("fecha DESC").Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).
		Preload("CategoriaGasto").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Order("fecha ASC").
		Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) Update(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gastoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Gasto{}, id).Error
}

func (r *gastoRepo) SumEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Select("SUM(monto)").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *gastoRepo) SumEfectivoSesion(ctx context.Context, sesionID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Select("SUM(monto)").
		Where("sesion_caja_id = ? AND metodo_pago = ?", sesionID, model.MetodoEfectivo).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *gastoRepo) CreateCategoria(ctx context.Context, c *model.CategoriaGasto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gastoRepo) FindCategoriaByID(ctx context.Context, id uint) (*model.CategoriaGasto, error) {
	var c model.CategoriaGasto
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *gastoRepo) FindCategoriaByNombre(ctx context.Context, nombre string) (*model.CategoriaGasto, error) {
	var c model.CategoriaGasto
	err := r.db.WithContext(ctx).Where("LOWER(nombre) = LOWER(?)", nombre).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *gastoRepo) ListCategorias(ctx context.Context, incluirInactivas bool) ([]model.CategoriaGasto, error) {
	q := r.db.WithContext(ctx).Model(&model.CategoriaGasto{})
	if !incluirInactivas {
		q = q.Where("activo = ?", true)
	}
	var cats []model.CategoriaGasto
	err := q.Order("nombre ASC").Find(&cats).Error
	return cats, err
}

func (r *gastoRepo) UpdateCategoria(ctx context.Context, c *model.CategoriaGasto) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *gastoRepo) CountGastosCategoria(ctx context.Context, categoriaID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Where("categoria_gasto_id = ?", categoriaID).Count(&n).Error
	return n, err
}
