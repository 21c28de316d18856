package service

import (
	"context"
	"fmt"
	"time"

	"erpstore/internal/model"
	"erpstore/internal/repository"
	"erpstore/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AlertaService raises low-stock notifications. A product is low when
// 0 < stock <= stock_minimo. Dedup: skip while an alert mentioning the
// product is still unread or was already created today.
type AlertaService interface {
	// EvaluarProductoTx checks the product inside the caller's
	// transaction and creates the notification row when due. It returns
	// the product name when a new alert was raised so the caller can
	// enqueue the email after commit.
	EvaluarProductoTx(tx *gorm.DB, p *model.Producto) (bool, error)
	// EncolarEmail dispatches the alert mail job. Best effort: failures
	// are logged, never propagated.
	EncolarEmail(ctx context.Context, p *model.Producto)
	// Sweep walks every active product and raises missing alerts.
	// Triggered on notification list reads.
	Sweep(ctx context.Context)
}

type alertaService struct {
	notifRepo    repository.NotificacionRepository
	productoRepo repository.ProductoRepository
	configRepo   repository.ConfiguracionRepository
	dispatcher   *worker.Dispatcher
}

func NewAlertaService(
	notifRepo repository.NotificacionRepository,
	productoRepo repository.ProductoRepository,
	configRepo repository.ConfiguracionRepository,
	dispatcher *worker.Dispatcher,
) AlertaService {
	return &alertaService{
		notifRepo:    notifRepo,
		productoRepo: productoRepo,
		configRepo:   configRepo,
		dispatcher:   dispatcher,
	}
}

func (s *alertaService) EvaluarProductoTx(tx *gorm.DB, p *model.Producto) (bool, error) {
	if !p.StockBajo() {
		return false, nil
	}

	existe, err := s.notifRepo.ExisteAlertaStockBajoTx(tx, p.Nombre, time.Now())
	if err != nil {
		return false, err
	}
	if existe {
		return false, nil
	}

	notif := &model.Notificacion{
		Titulo:  fmt.Sprintf("Stock Bajo: %s", p.Nombre),
		Mensaje: fmt.Sprintf("El producto %s tiene %d unidades (mínimo %d).", p.Nombre, p.Stock, p.StockMinimo),
		Tipo:    model.NotificacionWarning,
		Enlace:  model.EnlaceStockBajo,
	}
	if err := s.notifRepo.CreateTx(tx, notif); err != nil {
		return false, err
	}
	return true, nil
}

func (s *alertaService) EncolarEmail(ctx context.Context, p *model.Producto) {
	if s.dispatcher == nil {
		return
	}

	destinatario := ""
	if empresa, err := s.configRepo.Find(ctx); err == nil && empresa != nil {
		if empresa.Email != "" {
			destinatario = empresa.Email
		} else if empresa.SmtpUsuario != "" {
			destinatario = empresa.SmtpUsuario
		}
	}
	if destinatario == "" {
		log.Warn().Str("producto", p.Nombre).Msg("alerta: sin destinatario configurado, email omitido")
		return
	}

	payload := worker.EmailJobPayload{
		ToEmail: destinatario,
		Subject: fmt.Sprintf("Alerta de stock bajo: %s", p.Nombre),
		Body: fmt.Sprintf(
			"El producto %s quedó con %d unidades en inventario (mínimo configurado: %d).\n\nRevise el módulo de productos para reponer stock.",
			p.Nombre, p.Stock, p.StockMinimo),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("producto", p.Nombre).Msg("alerta: no se pudo encolar email")
	}
}

func (s *alertaService) Sweep(ctx context.Context) {
	productos, err := s.productoRepo.ListActivos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("alerta: sweep falló listando productos")
		return
	}
	for i := range productos {
		p := &productos[i]
		if !p.StockBajo() {
			continue
		}
		creada, err := s.EvaluarProductoTx(s.productoRepo.DB(), p)
		if err != nil {
			log.Error().Err(err).Str("producto", p.Nombre).Msg("alerta: sweep falló evaluando producto")
			continue
		}
		if creada {
			s.EncolarEmail(ctx, p)
		}
	}
}
