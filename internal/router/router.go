package router

import (
	"time"

	"erpstore/internal/config"
	"erpstore/internal/handler"
	"erpstore/internal/infra"
	"erpstore/internal/middleware"
	"erpstore/internal/model"
	"erpstore/internal/repository"
	"erpstore/internal/service"
	"erpstore/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mediaClient := infra.NewMediaClient(cfg.MediaServiceURL)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	kardexRepo := repository.NewKardexRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	notifRepo := repository.NewNotificacionRepository(db)
	configRepo := repository.NewConfiguracionRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	kardexSvc := service.NewKardexService(kardexRepo, productoRepo)
	alertaSvc := service.NewAlertaService(notifRepo, productoRepo, configRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, kardexSvc, alertaSvc)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	pdfGen := func(v *model.Venta, e *model.ConfiguracionEmpresa) (string, error) {
		return infra.GenerateNotaPDF(v, e, cfg.PDFStoragePath)
	}
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, empleadoRepo, cajaRepo, kardexSvc, alertaSvc, configRepo, pdfGen)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, proveedorRepo, kardexSvc, alertaSvc)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo, gastoRepo)
	gastoSvc := service.NewGastoService(gastoRepo, cajaRepo)
	notifSvc := service.NewNotificacionService(notifRepo, alertaSvc)
	empresaSvc := service.NewEmpresaService(configRepo, mailer)
	reporteSvc := service.NewReporteService(ventaRepo, gastoRepo, productoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	seedSvc := service.NewSeedService(cfg.SeedFilePath, productoRepo, categoriaRepo, clienteRepo, empleadoRepo, configRepo, kardexSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc, kardexSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	notifH := handler.NewNotificacionesHandler(notifSvc)
	empresaH := handler.NewEmpresaHandler(empresaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	mediaH := handler.NewMediaHandler(mediaClient)
	seedH := handler.NewSeedHandler(seedSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public catalog reads: storefront browsing needs no token
	publico := r.Group("/api/v1")
	{
		publico.GET("/productos", productosH.Listar)
		publico.GET("/productos/:id", productosH.Obtener)
		publico.GET("/categorias", categoriasH.Listar)
		publico.GET("/categorias/:id", categoriasH.Obtener)
		publico.GET("/categorias/:id/subcategorias", categoriasH.ListarSubcategorias)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireRole(model.RolAdministrador)
	pos := middleware.RequireRole(model.RolAdministrador, model.RolEmpleado)

	v1 := r.Group("/api/v1", jwtMW)
	{
		// Productos: writes are admin-only, kardex readable from POS
		v1.GET("/productos/:id/kardex", pos, productosH.Kardex)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.POST("/:id/ajuste-stock", productosH.AjustarStock)
		}

		categorias := v1.Group("/categorias", admin)
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.POST("/subcategorias", categoriasH.CrearSubcategoria)
			categorias.DELETE("/subcategorias/:id", categoriasH.EliminarSubcategoria)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", pos, ventasH.Registrar)
			ventas.GET("", pos, ventasH.Listar)
			ventas.GET("/:id", pos, ventasH.Obtener)
			ventas.GET("/:id/pdf", pos, ventasH.NotaPDF)
			ventas.POST("/:id/anular", admin, ventasH.Anular)
			ventas.DELETE("/:id", admin, ventasH.Eliminar)
		}

		compras := v1.Group("/compras", admin)
		{
			compras.POST("", comprasH.Registrar)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.Obtener)
			compras.DELETE("/:id", comprasH.Eliminar)
		}

		caja := v1.Group("/caja", pos)
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.POST("/cerrar", cajaH.Cerrar)
			caja.GET("/estado", cajaH.Estado)
			caja.GET("/resumen", cajaH.Resumen)
			caja.POST("/transacciones", cajaH.Transaccion)
			caja.GET("/historial", admin, cajaH.Historial)
		}

		gastos := v1.Group("/gastos")
		{
			gastos.POST("", pos, gastosH.Registrar)
			gastos.GET("", pos, gastosH.Listar)
			gastos.GET("/:id", pos, gastosH.Obtener)
			gastos.PUT("/:id", admin, gastosH.Actualizar)
			gastos.DELETE("/:id", admin, gastosH.Eliminar)
		}
		v1.GET("/categorias-gasto", pos, gastosH.ListarCategorias)
		catGastos := v1.Group("/categorias-gasto", admin)
		{
			catGastos.POST("", gastosH.CrearCategoria)
			catGastos.DELETE("/:id", gastosH.DesactivarCategoria)
		}

		// Terceros: reads from POS, writes admin-only except clientes,
		// which the counter creates on the fly
		clientes := v1.Group("/clientes", pos)
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", admin, clientesH.Eliminar)
		}
		v1.GET("/empleados", pos, empleadosH.Listar)
		v1.GET("/empleados/:id", pos, empleadosH.Obtener)
		empleados := v1.Group("/empleados", admin)
		{
			empleados.POST("", empleadosH.Crear)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Eliminar)
		}
		proveedores := v1.Group("/proveedores", admin)
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.Obtener)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Eliminar)
		}

		reportes := v1.Group("/reportes", admin)
		{
			reportes.GET("/kpi", reportesH.Kpi)
			reportes.GET("/tendencia", reportesH.Tendencia)
			reportes.GET("/top-productos", reportesH.TopProductos)
			reportes.GET("/valuacion-inventario", reportesH.ValuacionInventario)
			reportes.GET("/utilidad-ventas", reportesH.UtilidadVentas)
		}

		notificaciones := v1.Group("/notificaciones", pos)
		{
			notificaciones.GET("", notifH.Listar)
			notificaciones.GET("/no-leidas", notifH.ContarNoLeidas)
			notificaciones.PATCH("/:id/leida", notifH.MarcarLeida)
			notificaciones.PATCH("/leidas", notifH.MarcarTodasLeidas)
			notificaciones.DELETE("/:id", notifH.Eliminar)
			notificaciones.DELETE("", notifH.EliminarTodas)
		}

		v1.GET("/empresa", pos, empresaH.Obtener)
		empresa := v1.Group("/empresa", admin)
		{
			empresa.PUT("", empresaH.Actualizar)
			empresa.POST("/test-email", empresaH.TestEmail)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.EliminarUsuario)
		}

		media := v1.Group("/media", admin)
		{
			media.POST("/imagenes", mediaH.UploadImage)
			media.POST("/videos", mediaH.UploadVideo)
		}

		v1.POST("/seed/restaurar", admin, seedH.Restaurar)
	}

	// Swagger UI is only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
