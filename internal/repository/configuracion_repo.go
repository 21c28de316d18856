package repository

import (
	"context"
	"errors"

	"erpstore/internal/model"

	"gorm.io/gorm"
)

// ConfiguracionRepository maneja la fila única de configuración de empresa.
type ConfiguracionRepository interface {
	// Find devuelve la fila o nil si todavía no existe.
	Find(ctx context.Context) (*model.ConfiguracionEmpresa, error)
	Save(ctx context.Context, c *model.ConfiguracionEmpresa) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Find(ctx context.Context) (*model.ConfiguracionEmpresa, error) {
	var c model.ConfiguracionEmpresa
	err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *configuracionRepo) Save(ctx context.Context, c *model.ConfiguracionEmpresa) error {
	return r.db.WithContext(ctx).Save(c).Error
}
