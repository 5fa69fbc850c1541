package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemaarroz/ingenio-api/internal/application/analytics"
	"github.com/sistemaarroz/ingenio-api/internal/application/auth"
	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/application/ledger"
	"github.com/sistemaarroz/ingenio-api/internal/application/usecase"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LedgerUC     *ledger.LedgerUseCase
	InventarioUC *usecase.InventarioUseCase
	BillingUC    *billing.BillingUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	ProductoUC   *usecase.ProductoUseCase
	AlmacenUC    *usecase.AlmacenUseCase
	IngenioUC    *usecase.IngenioUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)

	// Facturas públicas: el UUID es la credencial, no requieren token.
	facturaHandler := NewFacturaHandler(deps.BillingUC)
	publicas := api.Group("/facturas/publica")
	publicas.Get("/:uuid", facturaHandler.ObtenerPublica)
	publicas.Get("/:uuid/pdf", facturaHandler.DescargarPDF)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido; altas y gestión solo para el jefe)
	usuarios := protected.Group("/usuarios")
	usuarios.Post("/", RequireNivel(entity.NivelJefe), authHandler.CrearUsuario)
	usuarios.Get("/", RequireNivel(entity.NivelJefe), authHandler.ListarUsuarios)
	usuarios.Put("/password", authHandler.CambiarPassword)
	usuarios.Put("/:id/acceso", RequireNivel(entity.NivelJefe), authHandler.ToggleAcceso)

	// Libro mayor (protegido)
	operaciones := protected.Group("/operaciones")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	operaciones.Post("/compras", ledgerHandler.RegistrarCompra)
	operaciones.Post("/ventas", ledgerHandler.RegistrarVenta)
	operaciones.Post("/devoluciones", ledgerHandler.RegistrarDevolucion)
	operaciones.Post("/transformaciones", ledgerHandler.RegistrarTransformacion)
	operaciones.Post("/secados", ledgerHandler.SecarLote)
	operaciones.Post("/servicios", ledgerHandler.RegistrarServicio)

	// Código de lote propuesto para el formulario de compra
	protected.Get("/lotes/generar", ledgerHandler.GenerarLote)

	// Inventario (protegido)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.Listar)
	inventario.Get("/transformables", inventarioHandler.ListarTransformables)
	inventario.Get("/secables", inventarioHandler.ListarSecables)
	inventario.Get("/:id", inventarioHandler.Obtener)
	inventario.Put("/:id/precio-venta", ledgerHandler.ActualizarPrecioVenta)

	// Historial (protegido)
	protected.Get("/historial", inventarioHandler.Historial)

	// Facturas (protegido): lookup del UUID por transacción
	protected.Get("/transacciones/:id/factura-uuid", facturaHandler.ObtenerUUID)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard", dashboardHandler.Estadisticas)

	// Catálogos (protegido)
	catalogoHandler := NewCatalogoHandler(deps.ProductoUC, deps.AlmacenUC, deps.IngenioUC)
	protected.Get("/productos", catalogoHandler.ListarProductos)
	almacenes := protected.Group("/almacenes")
	almacenes.Post("/", catalogoHandler.CrearAlmacen)
	almacenes.Get("/", catalogoHandler.ListarAlmacenes)
	variedades := protected.Group("/variedades")
	variedades.Post("/", catalogoHandler.CrearVariedad)
	variedades.Get("/", catalogoHandler.ListarVariedades)
	ingenio := protected.Group("/ingenio")
	ingenio.Get("/", catalogoHandler.ObtenerIngenio)
	ingenio.Put("/", RequireNivel(entity.NivelJefe), catalogoHandler.ActualizarIngenio)
}
