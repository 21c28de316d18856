package repository

import (
	"context"
	"errors"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	// ListEnRango returns non-void sales inside [desde, hasta) with
	// details, products and employee preloaded, most recent first.
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	MarcarAnuladaTx(tx *gorm.DB, id uint) error
	DeleteTx(tx *gorm.DB, id uint) error
	// NextNumeroNota pulls the next value of the note-number sequence
	// inside the sale transaction, so concurrent sales never collide.
	NextNumeroNota(ctx context.Context, tx *gorm.DB) (int64, error)
	// SumEfectivoSesion sums non-void cash sales linked to a session.
	SumEfectivoSesion(ctx context.Context, sesionID uint) (decimal.Decimal, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("Cliente").Preload("Empleado").
		First(&v, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	}
	switch filter.Estado {
	case "anuladas":
		q = q.Where("anulada = true")
	case "all":
		// no filter
	default:
		q = q.Where("anulada = false")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Detalles.Producto").Preload("Cliente").Preload("Empleado").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("Empleado").
		Where("anulada = false AND fecha >= ? AND fecha < ?", desde, hasta).
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) MarcarAnuladaTx(tx *gorm.DB, id uint) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Update("anulada", true).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) NextNumeroNota(ctx context.Context, tx *gorm.DB) (int64, error) {
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('ventas_numero_nota_seq')").Scan(&num).Error
	return num, err
}

func (r *ventaRepo) SumEfectivoSesion(ctx context.Context, sesionID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("SUM(total)").
		Where("sesion_caja_id = ? AND metodo_pago = ? AND anulada = false", sesionID, model.MetodoEfectivo).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
