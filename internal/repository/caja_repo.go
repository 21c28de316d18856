package repository

import (
	"context"
	"errors"
	"time"

	"erpstore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CajaRepository persiste sesiones de caja y sus transacciones manuales.
type CajaRepository interface {
	CreateSesion(ctx context.Context, s *model.SesionCaja) error
	FindSesionByID(ctx context.Context, id uint) (*model.SesionCaja, error)
	// FindSesionAbierta devuelve la sesión Abierta del usuario o nil si no hay.
	FindSesionAbierta(ctx context.Context, usuarioID uint) (*model.SesionCaja, error)
	UpdateSesion(ctx context.Context, s *model.SesionCaja) error
	ListSesiones(ctx context.Context, filter SesionFilter) ([]model.SesionCaja, error)

	CreateTransaccion(ctx context.Context, t *model.TransaccionCaja) error
	ListTransacciones(ctx context.Context, sesionID uint) ([]model.TransaccionCaja, error)
	SumTransacciones(ctx context.Context, sesionID uint, tipo model.TipoTransaccion) (decimal.Decimal, error)
}

// SesionFilter acota el historial de sesiones.
type SesionFilter struct {
	UsuarioID *uint
	Desde     *time.Time
	Hasta     *time.Time
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) CreateSesion(ctx context.Context, s *model.SesionCaja) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *cajaRepo) FindSesionByID(ctx context.Context, id uint) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).Preload("Usuario").First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *cajaRepo) FindSesionAbierta(ctx context.Context, usuarioID uint) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND estado = ?", usuarioID, model.SesionAbierta).
		Order("apertura DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *cajaRepo) UpdateSesion(ctx context.Context, s *model.SesionCaja) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *cajaRepo) ListSesiones(ctx context.Context, filter SesionFilter) ([]model.SesionCaja, error) {
	q := r.db.WithContext(ctx).Model(&model.SesionCaja{}).Preload("Usuario")
	if filter.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *filter.UsuarioID)
	}
	if filter.Desde != nil {
		q = q.Where("apertura >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("apertura < ?", *filter.Hasta)
	}
	var sesiones []model.SesionCaja
	err := q.Order("apertura DESC").Find(&sesiones).Error
	return sesiones, err
}

func (r *cajaRepo) CreateTransaccion(ctx context.Context, t *model.TransaccionCaja) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *cajaRepo) ListTransacciones(ctx context.Context, sesionID uint) ([]model.TransaccionCaja, error) {
	var trans []model.TransaccionCaja
	err := r.db.WithContext(ctx).
		Where("sesion_caja_id = ?", sesionID).
		Order("fecha ASC").
		Find(&trans).Error
	return trans, err
}

func (r *cajaRepo) SumTransacciones(ctx context.Context, sesionID uint, tipo model.TipoTransaccion) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.TransaccionCaja{}).
		Select("SUM(monto)").
		Where("sesion_caja_id = ? AND tipo = ?", sesionID, tipo).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
