package repository

import (
	"context"
	"time"

	"erpstore/internal/model"

	"gorm.io/gorm"
)

// NotificacionRepository persiste las alertas del panel.
type NotificacionRepository interface {
	Create(ctx context.Context, n *model.Notificacion) error
	CreateTx(tx *gorm.DB, n *model.Notificacion) error
	List(ctx context.Context, soloNoLeidas bool, limit int) ([]model.Notificacion, error)
	CountNoLeidas(ctx context.Context) (int64, error)
	MarcarLeida(ctx context.Context, id uint) (bool, error)
	MarcarTodasLeidas(ctx context.Context) error
	Delete(ctx context.Context, id uint) (bool, error)
	DeleteTodas(ctx context.Context) error
	// ExisteAlertaStockBajoTx reports whether a low-stock alert for the
	// product is already pending: unread, or created today.
	ExisteAlertaStockBajoTx(tx *gorm.DB, nombreProducto string, hoy time.Time) (bool, error)
}

type notificacionRepo struct{ db *gorm.DB }

func NewNotificacionRepository(db *gorm.DB) NotificacionRepository {
	return &notificacionRepo{db: db}
}

func (r *notificacionRepo) Create(ctx context.Context, n *model.Notificacion) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacionRepo) CreateTx(tx *gorm.DB, n *model.Notificacion) error {
	return tx.Create(n).Error
}

func (r *notificacionRepo) List(ctx context.Context, soloNoLeidas bool, limit int) ([]model.Notificacion, error) {
	q := r.db.WithContext(ctx).Model(&model.Notificacion{})
	if soloNoLeidas {
		q = q.Where("leida = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var notifs []model.Notificacion
	err := q.Order("created_at DESC").Find(&notifs).Error
	return notifs, err
}

func (r *notificacionRepo) CountNoLeidas(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Notificacion{}).
		Where("leida = ?", false).Count(&n).Error
	return n, err
}

func (r *notificacionRepo) MarcarLeida(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Notificacion{}).
		Where("id = ?", id).Update("leida", true)
	return res.RowsAffected > 0, res.Error
}

func (r *notificacionRepo) MarcarTodasLeidas(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.Notificacion{}).
		Where("leida = ?", false).Update("leida", true).Error
}

func (r *notificacionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Notificacion{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *notificacionRepo) DeleteTodas(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Notificacion{}).Error
}

func (r *notificacionRepo) ExisteAlertaStockBajoTx(tx *gorm.DB, nombreProducto string, hoy time.Time) (bool, error) {
	inicioDia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	var n int64
	err := tx.Model(&model.Notificacion{}).
		Where("enlace = ? AND titulo LIKE ?", model.EnlaceStockBajo, "%"+nombreProducto+"%").
		Where("leida = ? OR created_at >= ?", false, inicioDia).
		Count(&n).Error
	return n > 0, err
}
