package repository

import (
	"context"

	"erpstore/internal/model"

	"gorm.io/gorm"
)

// KardexRepository appends and reads inventory movements. There is no
// update or delete: the kardex is an immutable historical ledger.
type KardexRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	Create(ctx context.Context, m *model.MovimientoInventario) error
	ListByProducto(ctx context.Context, productoID uint) ([]model.MovimientoInventario, error)
}

type kardexRepo struct{ db *gorm.DB }

func NewKardexRepository(db *gorm.DB) KardexRepository { return &kardexRepo{db: db} }

func (r *kardexRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *kardexRepo) Create(ctx context.Context, m *model.MovimientoInventario) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *kardexRepo) ListByProducto(ctx context.Context, productoID uint) ([]model.MovimientoInventario, error) {
	var movs []model.MovimientoInventario
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("producto_id = ?", productoID).
		Order("created_at DESC").
		Find(&movs).Error
	return movs, err
}
