package service

import (
	"context"
	"errors"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"
)

type NotificacionService interface {
	// Listar runs the low-stock sweep first so the panel never shows a
	// stale picture of the inventory.
	Listar(ctx context.Context, filter dto.NotificacionFilter) ([]dto.NotificacionResponse, error)
	ContarNoLeidas(ctx context.Context) (int64, error)
	MarcarLeida(ctx context.Context, id uint) error
	MarcarTodasLeidas(ctx context.Context) error
	Eliminar(ctx context.Context, id uint) error
	EliminarTodas(ctx context.Context) error
}

type notificacionService struct {
	repo    repository.NotificacionRepository
	alertas AlertaService
}

func NewNotificacionService(repo repository.NotificacionRepository, alertas AlertaService) NotificacionService {
	return &notificacionService{repo: repo, alertas: alertas}
}

func (s *notificacionService) Listar(ctx context.Context, filter dto.NotificacionFilter) ([]dto.NotificacionResponse, error) {
	if s.alertas != nil {
		s.alertas.Sweep(ctx)
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}
	notifs, err := s.repo.List(ctx, filter.SoloNoLeidas, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificacionResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, notificacionToResponse(&n))
	}
	return out, nil
}

func (s *notificacionService) ContarNoLeidas(ctx context.Context) (int64, error) {
	return s.repo.CountNoLeidas(ctx)
}

func (s *notificacionService) MarcarLeida(ctx context.Context, id uint) error {
	ok, err := s.repo.MarcarLeida(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("notificación no encontrada")
	}
	return nil
}

func (s *notificacionService) MarcarTodasLeidas(ctx context.Context) error {
	return s.repo.MarcarTodasLeidas(ctx)
}

func (s *notificacionService) Eliminar(ctx context.Context, id uint) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("notificación no encontrada")
	}
	return nil
}

func (s *notificacionService) EliminarTodas(ctx context.Context) error {
	return s.repo.DeleteTodas(ctx)
}

func notificacionToResponse(n *model.Notificacion) dto.NotificacionResponse {
	return dto.NotificacionResponse{
		ID:        n.ID,
		Titulo:    n.Titulo,
		Mensaje:   n.Mensaje,
		Tipo:      n.Tipo,
		Enlace:    n.Enlace,
		Leida:     n.Leida,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
