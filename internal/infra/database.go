package infra

import (
	"fmt"

	"erpstore/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (the nota de venta sequence, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.Subcategoria{},
		&model.Producto{},
		&model.ImagenProducto{},
		&model.Cliente{},
		&model.Empleado{},
		&model.Proveedor{},
		&model.Usuario{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.MovimientoInventario{},
		&model.SesionCaja{},
		&model.TransaccionCaja{},
		&model.CategoriaGasto{},
		&model.Gasto{},
		&model.Notificacion{},
		&model.ConfiguracionEmpresa{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Safe to re-run on an already-patched database.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Sequence backing numero_nota. Seeded past existing rows so a
		// database migrated from the max(id)+1 era never repeats a number.
		{"create ventas_numero_nota_seq", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = 'ventas_numero_nota_seq') THEN
    CREATE SEQUENCE ventas_numero_nota_seq START 1;
    PERFORM setval('ventas_numero_nota_seq', GREATEST((SELECT COALESCE(MAX(id), 0) FROM ventas), 1), (SELECT COUNT(*) > 0 FROM ventas));
  END IF;
END $$`},
		// Partial index for the low-stock sweep and the dedup query.
		{"create idx_notificaciones_no_leidas", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notificaciones_no_leidas') THEN
    CREATE INDEX idx_notificaciones_no_leidas ON notificaciones (created_at) WHERE leida = false;
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
