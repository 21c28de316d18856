package service_test

import (
	"context"
	"strings"
	"time"

	"erpstore/internal/dto"
	"erpstore/internal/model"
	"erpstore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Every DB() returns nil so services run
// their transactional closures with a nil tx.

// ── Producto ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	seq       uint
	// ventasRefs simulates detalles_venta rows per product.
	ventasRefs map[uint]int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:  make(map[uint]*model.Producto),
		ventasRefs: make(map[uint]int64),
	}
}

func (r *stubProductoRepo) agregar(p model.Producto) *model.Producto {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = &p
	return &p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) FindByNombre(_ context.Context, nombre string) (*model.Producto, error) {
	var inactivo *model.Producto
	for _, p := range r.productos {
		if strings.EqualFold(p.Nombre, nombre) {
			if p.Activo {
				copia := *p
				return &copia, nil
			}
			copia := *p
			inactivo = &copia
		}
	}
	return inactivo, nil
}

func (r *stubProductoRepo) FindByCodigoBarras(_ context.Context, codigo string) (*model.Producto, error) {
	var inactivo *model.Producto
	for _, p := range r.productos {
		if p.CodigoBarras != nil && *p.CodigoBarras == codigo {
			if p.Activo {
				copia := *p
				return &copia, nil
			}
			copia := *p
			inactivo = &copia
		}
	}
	return inactivo, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListActivos(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uint) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) CountDetallesVenta(_ context.Context, id uint) (int64, error) {
	return r.ventasRefs[id], nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uint, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id uint, delta int) error {
	if p, ok := r.productos[id]; ok {
		p.Stock += delta
	}
	return nil
}

func (r *stubProductoRepo) ActualizarCostoTx(_ *gorm.DB, id uint, costo decimal.Decimal) error {
	if p, ok := r.productos[id]; ok {
		p.Costo = costo
	}
	return nil
}

func (r *stubProductoRepo) ReplaceImagenes(_ context.Context, id uint, imagenes []model.ImagenProducto) error {
	if p, ok := r.productos[id]; ok {
		p.Imagenes = imagenes
	}
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Venta ─────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas    map[uint]*model.Venta
	seq       uint
	numeroSeq int64
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uint]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	r.seq++
	v.ID = r.seq
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.Anulada {
			continue
		}
		if v.Fecha.Before(desde) || !v.Fecha.Before(hasta) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) MarcarAnuladaTx(_ *gorm.DB, id uint) error {
	if v, ok := r.ventas[id]; ok {
		v.Anulada = true
	}
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) NextNumeroNota(_ context.Context, _ *gorm.DB) (int64, error) {
	r.numeroSeq++
	return r.numeroSeq, nil
}

func (r *stubVentaRepo) SumEfectivoSesion(_ context.Context, sesionID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.ventas {
		if v.Anulada || v.SesionCajaID == nil || *v.SesionCajaID != sesionID {
			continue
		}
		if v.MetodoPago == model.MetodoEfectivo {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Compra ────────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uint]*model.Compra
	seq     uint
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uint]*model.Compra)}
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	r.seq++
	c.ID = r.seq
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uint) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context, _ dto.CompraFilter) ([]model.Compra, int64, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── Kardex ────────────────────────────────────────────────────────────────────

type stubKardexRepo struct {
	movimientos []model.MovimientoInventario
}

func (r *stubKardexRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	m.ID = uint(len(r.movimientos) + 1)
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubKardexRepo) Create(_ context.Context, m *model.MovimientoInventario) error {
	return r.CreateTx(nil, m)
}

func (r *stubKardexRepo) ListByProducto(_ context.Context, productoID uint) ([]model.MovimientoInventario, error) {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

// porTipo filters captured movements by product and type.
func (r *stubKardexRepo) porTipo(productoID uint, tipo model.TipoMovimiento) []model.MovimientoInventario {
	var out []model.MovimientoInventario
	for _, m := range r.movimientos {
		if m.ProductoID == productoID && m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.KardexRepository = (*stubKardexRepo)(nil)

// ── Caja ──────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	sesiones      map[uint]*model.SesionCaja
	seq           uint
	transacciones []model.TransaccionCaja
}

func newStubCajaRepo() *stubCajaRepo {
	return &stubCajaRepo{sesiones: make(map[uint]*model.SesionCaja)}
}

func (r *stubCajaRepo) CreateSesion(_ context.Context, s *model.SesionCaja) error {
	r.seq++
	s.ID = r.seq
	r.sesiones[s.ID] = s
	return nil
}

func (r *stubCajaRepo) FindSesionByID(_ context.Context, id uint) (*model.SesionCaja, error) {
	s, ok := r.sesiones[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *stubCajaRepo) FindSesionAbierta(_ context.Context, usuarioID uint) (*model.SesionCaja, error) {
	for _, s := range r.sesiones {
		if s.UsuarioID == usuarioID && s.Estado == model.SesionAbierta {
			return s, nil
		}
	}
	return nil, nil
}

func (r *stubCajaRepo) UpdateSesion(_ context.Context, s *model.SesionCaja) error {
	r.sesiones[s.ID] = s
	return nil
}

func (r *stubCajaRepo) ListSesiones(_ context.Context, _ repository.SesionFilter) ([]model.SesionCaja, error) {
	out := make([]model.SesionCaja, 0, len(r.sesiones))
	for _, s := range r.sesiones {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubCajaRepo) CreateTransaccion(_ context.Context, t *model.TransaccionCaja) error {
	t.ID = uint(len(r.transacciones) + 1)
	r.transacciones = append(r.transacciones, *t)
	return nil
}

func (r *stubCajaRepo) ListTransacciones(_ context.Context, sesionID uint) ([]model.TransaccionCaja, error) {
	var out []model.TransaccionCaja
	for _, t := range r.transacciones {
		if t.SesionCajaID == sesionID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubCajaRepo) SumTransacciones(_ context.Context, sesionID uint, tipo model.TipoTransaccion) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range r.transacciones {
		if t.SesionCajaID == sesionID && t.Tipo == tipo {
			total = total.Add(t.Monto)
		}
	}
	return total, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── Gasto ─────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos     map[uint]*model.Gasto
	seq        uint
	categorias map[uint]*model.CategoriaGasto
	catSeq     uint
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{
		gastos:     make(map[uint]*model.Gasto),
		categorias: make(map[uint]*model.CategoriaGasto),
	}
}

func (r *stubGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	r.seq++
	g.ID = r.seq
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) FindByID(_ context.Context, id uint) (*model.Gasto, error) {
	g, ok := r.gastos[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (r *stubGastoRepo) List(_ context.Context, _ repository.GastoFilter) ([]model.Gasto, error) {
	out := make([]model.Gasto, 0, len(r.gastos))
	for _, g := range r.gastos {
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGastoRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.Fecha.Before(desde) || !g.Fecha.Before(hasta) {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGastoRepo) Update(_ context.Context, g *model.Gasto) error {
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) Delete(_ context.Context, id uint) error {
	delete(r.gastos, id)
	return nil
}

func (r *stubGastoRepo) SumEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	gastos, _ := r.ListEnRango(ctx, desde, hasta)
	total := decimal.Zero
	for _, g := range gastos {
		total = total.Add(g.Monto)
	}
	return total, nil
}

func (r *stubGastoRepo) SumEfectivoSesion(_ context.Context, sesionID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.gastos {
		if g.SesionCajaID == nil || *g.SesionCajaID != sesionID {
			continue
		}
		if g.MetodoPago == model.MetodoEfectivo {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

func (r *stubGastoRepo) CreateCategoria(_ context.Context, c *model.CategoriaGasto) error {
	r.catSeq++
	c.ID = r.catSeq
	r.categorias[c.ID] = c
	return nil
}

func (r *stubGastoRepo) FindCategoriaByID(_ context.Context, id uint) (*model.CategoriaGasto, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubGastoRepo) FindCategoriaByNombre(_ context.Context, nombre string) (*model.CategoriaGasto, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubGastoRepo) ListCategorias(_ context.Context, incluirInactivas bool) ([]model.CategoriaGasto, error) {
	var out []model.CategoriaGasto
	for _, c := range r.categorias {
		if c.Activo || incluirInactivas {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubGastoRepo) UpdateCategoria(_ context.Context, c *model.CategoriaGasto) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubGastoRepo) CountGastosCategoria(_ context.Context, categoriaID uint) (int64, error) {
	var n int64
	for _, g := range r.gastos {
		if g.CategoriaGastoID == categoriaID {
			n++
		}
	}
	return n, nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Notificaciones ────────────────────────────────────────────────────────────

type stubNotificacionRepo struct {
	notificaciones []model.Notificacion
}

func (r *stubNotificacionRepo) Create(_ context.Context, n *model.Notificacion) error {
	return r.CreateTx(nil, n)
}

func (r *stubNotificacionRepo) CreateTx(_ *gorm.DB, n *model.Notificacion) error {
	n.ID = uint(len(r.notificaciones) + 1)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.notificaciones = append(r.notificaciones, *n)
	return nil
}

func (r *stubNotificacionRepo) List(_ context.Context, soloNoLeidas bool, _ int) ([]model.Notificacion, error) {
	var out []model.Notificacion
	for _, n := range r.notificaciones {
		if soloNoLeidas && n.Leida {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *stubNotificacionRepo) CountNoLeidas(_ context.Context) (int64, error) {
	var total int64
	for _, n := range r.notificaciones {
		if !n.Leida {
			total++
		}
	}
	return total, nil
}

func (r *stubNotificacionRepo) MarcarLeida(_ context.Context, id uint) (bool, error) {
	for i := range r.notificaciones {
		if r.notificaciones[i].ID == id {
			r.notificaciones[i].Leida = true
			return true, nil
		}
	}
	return false, nil
}

func (r *stubNotificacionRepo) MarcarTodasLeidas(_ context.Context) error {
	for i := range r.notificaciones {
		r.notificaciones[i].Leida = true
	}
	return nil
}

func (r *stubNotificacionRepo) Delete(_ context.Context, id uint) (bool, error) {
	for i := range r.notificaciones {
		if r.notificaciones[i].ID == id {
			r.notificaciones = append(r.notificaciones[:i], r.notificaciones[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubNotificacionRepo) DeleteTodas(_ context.Context) error {
	r.notificaciones = nil
	return nil
}

func (r *stubNotificacionRepo) ExisteAlertaStockBajoTx(_ *gorm.DB, nombreProducto string, hoy time.Time) (bool, error) {
	inicioDia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	for _, n := range r.notificaciones {
		if n.Enlace != model.EnlaceStockBajo || !strings.Contains(n.Titulo, nombreProducto) {
			continue
		}
		if !n.Leida || !n.CreatedAt.Before(inicioDia) {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.NotificacionRepository = (*stubNotificacionRepo)(nil)

// ── Configuración ─────────────────────────────────────────────────────────────

type stubConfiguracionRepo struct {
	config *model.ConfiguracionEmpresa
}

func (r *stubConfiguracionRepo) Find(_ context.Context) (*model.ConfiguracionEmpresa, error) {
	return r.config, nil
}

func (r *stubConfiguracionRepo) Save(_ context.Context, c *model.ConfiguracionEmpresa) error {
	if c.ID == 0 {
		c.ID = 1
	}
	r.config = c
	return nil
}

var _ repository.ConfiguracionRepository = (*stubConfiguracionRepo)(nil)

// ── Terceros ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	seq      uint
	ventas   map[uint]int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente), ventas: make(map[uint]int64)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, incluirInactivos bool) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.Activo || incluirInactivos {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountVentas(_ context.Context, clienteID uint) (int64, error) {
	return r.ventas[clienteID], nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

type stubEmpleadoRepo struct {
	empleados map[uint]*model.Empleado
	seq       uint
	ventas    map[uint]int64
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uint]*model.Empleado), ventas: make(map[uint]int64)}
}

func (r *stubEmpleadoRepo) agregar(e model.Empleado) *model.Empleado {
	r.seq++
	e.ID = r.seq
	r.empleados[e.ID] = &e
	return &e
}

func (r *stubEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	r.seq++
	e.ID = r.seq
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) FindByID(_ context.Context, id uint) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *stubEmpleadoRepo) List(_ context.Context, incluirInactivos bool) ([]model.Empleado, error) {
	var out []model.Empleado
	for _, e := range r.empleados {
		if e.Activo || incluirInactivos {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmpleadoRepo) Update(_ context.Context, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) Delete(_ context.Context, id uint) error {
	delete(r.empleados, id)
	return nil
}

func (r *stubEmpleadoRepo) CountVentas(_ context.Context, empleadoID uint) (int64, error) {
	return r.ventas[empleadoID], nil
}

var _ repository.EmpleadoRepository = (*stubEmpleadoRepo)(nil)

type stubProveedorRepo struct {
	proveedores map[uint]*model.Proveedor
	seq         uint
	compras     map[uint]int64
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uint]*model.Proveedor), compras: make(map[uint]int64)}
}

func (r *stubProveedorRepo) agregar(p model.Proveedor) *model.Proveedor {
	r.seq++
	p.ID = r.seq
	r.proveedores[p.ID] = &p
	return &p
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	r.seq++
	p.ID = r.seq
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uint) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context, incluirInactivos bool) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if p.Activo || incluirInactivos {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, id uint) error {
	delete(r.proveedores, id)
	return nil
}

func (r *stubProveedorRepo) CountCompras(_ context.Context, proveedorID uint) (int64, error) {
	return r.compras[proveedorID], nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Categoría ─────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias    map[uint]*model.Categoria
	seq           uint
	subcategorias map[uint]*model.Subcategoria
	subSeq        uint
	productos     map[uint]int64 // productos por categoría
	subProductos  map[uint]int64 // productos por subcategoría
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias:    make(map[uint]*model.Categoria),
		subcategorias: make(map[uint]*model.Subcategoria),
		productos:     make(map[uint]int64),
		subProductos:  make(map[uint]int64),
	}
}

func (r *stubCategoriaRepo) agregar(c model.Categoria) *model.Categoria {
	r.seq++
	c.ID = r.seq
	r.categorias[c.ID] = &c
	return &c
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.seq++
	c.ID = r.seq
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *stubCategoriaRepo) FindByNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if strings.EqualFold(c.Nombre, nombre) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Delete(_ context.Context, id uint) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) CountProductos(_ context.Context, id uint) (int64, error) {
	return r.productos[id], nil
}

func (r *stubCategoriaRepo) CountSubcategorias(_ context.Context, id uint) (int64, error) {
	var n int64
	for _, s := range r.subcategorias {
		if s.CategoriaID == id {
			n++
		}
	}
	return n, nil
}

func (r *stubCategoriaRepo) CreateSubcategoria(_ context.Context, s *model.Subcategoria) error {
	r.subSeq++
	s.ID = r.subSeq
	r.subcategorias[s.ID] = s
	return nil
}

func (r *stubCategoriaRepo) FindSubcategoriaByID(_ context.Context, id uint) (*model.Subcategoria, error) {
	s, ok := r.subcategorias[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *stubCategoriaRepo) ListSubcategorias(_ context.Context, categoriaID uint) ([]model.Subcategoria, error) {
	var out []model.Subcategoria
	for _, s := range r.subcategorias {
		if s.CategoriaID == categoriaID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubCategoriaRepo) DeleteSubcategoria(_ context.Context, id uint) error {
	delete(r.subcategorias, id)
	return nil
}

func (r *stubCategoriaRepo) CountProductosSubcategoria(_ context.Context, id uint) (int64, error) {
	return r.subProductos[id], nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	seq      uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.seq++
	u.ID = r.seq
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uint) error {
	delete(r.usuarios, id)
	return nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
