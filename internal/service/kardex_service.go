package service

import (
	"context"
	"errors"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"

	"gorm.io/gorm"
)

// KardexService appends movement rows for every stock change and serves
// the per-product history. Rows are never updated or deleted.
type KardexService interface {
	RegistrarMovimientoTx(tx *gorm.DB, mov *model.MovimientoInventario) error
	Historial(ctx context.Context, productoID uint) ([]dto.MovimientoKardexResponse, error)
}

type kardexService struct {
	repo         repository.KardexRepository
	productoRepo repository.ProductoRepository
}

func NewKardexService(repo repository.KardexRepository, productoRepo repository.ProductoRepository) KardexService {
	return &kardexService{repo: repo, productoRepo: productoRepo}
}

func (s *kardexService) RegistrarMovimientoTx(tx *gorm.DB, mov *model.MovimientoInventario) error {
	if mov.Cantidad == 0 {
		return errors.New("el movimiento debe tener una cantidad distinta de cero")
	}
	return s.repo.CreateTx(tx, mov)
}

func (s *kardexService) Historial(ctx context.Context, productoID uint) ([]dto.MovimientoKardexResponse, error) {
	p, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("producto no encontrado")
	}

	movs, err := s.repo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoKardexResponse, 0, len(movs))
	for _, m := range movs {
		usuario := ""
		if m.Usuario != nil {
			usuario = m.Usuario.Nombre
		}
		out = append(out, dto.MovimientoKardexResponse{
			ID:            m.ID,
			ProductoID:    m.ProductoID,
			Tipo:          string(m.Tipo),
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			Usuario:       usuario,
			VentaID:       m.VentaID,
			CompraID:      m.CompraID,
			Fecha:         m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return out, nil
}
