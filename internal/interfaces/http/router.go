package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NotSleepp/possbien/internal/application/analytics"
	"github.com/NotSleepp/possbien/internal/application/auth"
	"github.com/NotSleepp/possbien/internal/application/cash"
	"github.com/NotSleepp/possbien/internal/application/inventory"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/application/sales"
	"github.com/NotSleepp/possbien/internal/application/usecase"
	"github.com/NotSleepp/possbien/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	Permissions    *auth.PermissionService
	CompanyUC      *usecase.CompanyUseCase
	BranchUC       *usecase.BranchUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	UserUC         *usecase.UserUseCase
	RoleUC         *usecase.RoleUseCase
	PermissionUC   *usecase.PermissionUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	ProductImageUC *usecase.ProductImageUseCase
	StockUC        *usecase.StockUseCase
	CashRegisterUC *usecase.CashRegisterUseCase
	Movements      *inventory.RegisterMovementUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	CashSessions   *cash.SessionUseCase
	Sales          *sales.SaleUseCase
	DashboardUC    *analytics.DashboardUseCase
	TokenBlacklist ports.TokenBlacklist
	JWTSecret      string
}

// Router registra las rutas de la API. Las rutas fijas (/por-x/:id, /buscar, ...) se registran
// antes de /:id porque Fiber resuelve en orden de registro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	perm := func(code string) fiber.Handler { return RequirePermission(deps.Permissions, code) }

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret, deps.TokenBlacklist))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := protected.Group("/empresas")
	companies.Get("/", perm("empresas:leer"), companyHandler.List)
	companies.Post("/", RequireRole(entity.RolePlatform), perm("empresas:crear"), companyHandler.Create)
	companies.Get("/:id", perm("empresas:leer"), companyHandler.GetByID)
	companies.Put("/:id", perm("empresas:editar"), companyHandler.Update)
	companies.Delete("/:id", perm("empresas:eliminar"), companyHandler.Delete)

	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := protected.Group("/sucursales")
	branches.Get("/", perm("sucursales:leer"), branchHandler.List)
	branches.Post("/", perm("sucursales:crear"), branchHandler.Create)
	branches.Get("/:id", perm("sucursales:leer"), branchHandler.GetByID)
	branches.Put("/:id", perm("sucursales:editar"), branchHandler.Update)
	branches.Delete("/:id", perm("sucursales:eliminar"), branchHandler.Delete)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/almacenes")
	warehouses.Get("/", perm("almacenes:leer"), warehouseHandler.List)
	warehouses.Post("/", perm("almacenes:crear"), warehouseHandler.Create)
	warehouses.Get("/por-sucursal/:id", perm("almacenes:leer"), warehouseHandler.ListByBranch)
	warehouses.Get("/:id", perm("almacenes:leer"), warehouseHandler.GetByID)
	warehouses.Put("/:id", perm("almacenes:editar"), warehouseHandler.Update)
	warehouses.Delete("/:id", perm("almacenes:eliminar"), warehouseHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/usuarios")
	users.Get("/", perm("usuarios:leer"), userHandler.List)
	users.Post("/", perm("usuarios:crear"), userHandler.Create)
	users.Get("/:id", perm("usuarios:leer"), userHandler.GetByID)
	users.Put("/:id", perm("usuarios:editar"), userHandler.Update)
	users.Delete("/:id", perm("usuarios:eliminar"), userHandler.Delete)

	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/roles")
	roles.Get("/", perm("roles:leer"), roleHandler.List)
	roles.Post("/", perm("roles:crear"), roleHandler.Create)
	roles.Get("/:id", perm("roles:leer"), roleHandler.GetByID)
	roles.Put("/:id", perm("roles:editar"), roleHandler.Update)
	roles.Delete("/:id", perm("roles:eliminar"), roleHandler.Delete)

	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions := protected.Group("/permisos")
	permissions.Get("/", perm("permisos:leer"), permissionHandler.List)
	permissions.Post("/", perm("permisos:crear"), permissionHandler.Create)
	permissions.Get("/por-rol/:id", perm("permisos:leer"), permissionHandler.ListByRole)
	permissions.Get("/:id", perm("permisos:leer"), permissionHandler.GetByID)
	permissions.Put("/:id", perm("permisos:editar"), permissionHandler.Update)
	permissions.Delete("/:id", perm("permisos:eliminar"), permissionHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categorias")
	categories.Get("/", perm("categorias:leer"), categoryHandler.List)
	categories.Post("/", perm("categorias:crear"), categoryHandler.Create)
	categories.Get("/:id", perm("categorias:leer"), categoryHandler.GetByID)
	categories.Put("/:id", perm("categorias:editar"), categoryHandler.Update)
	categories.Delete("/:id", perm("categorias:eliminar"), categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC, deps.ProductImageUC)
	products := protected.Group("/productos")
	products.Get("/", perm("productos:leer"), productHandler.List)
	products.Post("/", perm("productos:crear"), productHandler.Create)
	products.Get("/buscar", perm("productos:leer"), productHandler.Search)
	products.Get("/por-categoria/:id", perm("productos:leer"), productHandler.ListByCategory)
	products.Post("/:id/imagen", perm("productos:editar"), productHandler.UploadImage)
	products.Get("/:id/imagen", perm("productos:leer"), productHandler.ImageURL)
	products.Get("/:id", perm("productos:leer"), productHandler.GetByID)
	products.Put("/:id", perm("productos:editar"), productHandler.Update)
	products.Delete("/:id", perm("productos:eliminar"), productHandler.Delete)

	stockHandler := NewStockHandler(deps.StockUC, deps.Movements, deps.Replenishment)
	stock := protected.Group("/stock")
	stock.Get("/", perm("stock:leer"), stockHandler.List)
	stock.Post("/", perm("stock:crear"), stockHandler.Create)
	stock.Post("/movimientos", perm("stock:editar"), stockHandler.RegisterMovement)
	stock.Get("/movimientos/por-producto/:id", perm("stock:leer"), stockHandler.ListMovementsByProduct)
	stock.Get("/bajo-minimo", perm("stock:leer"), stockHandler.ListBelowMinimum)
	stock.Get("/reposicion", perm("stock:leer"), stockHandler.Replenishment)
	stock.Get("/por-producto/:id", perm("stock:leer"), stockHandler.ListByProduct)
	stock.Get("/por-almacen/:id", perm("stock:leer"), stockHandler.ListByWarehouse)
	stock.Get("/:id", perm("stock:leer"), stockHandler.GetByID)
	stock.Put("/:id", perm("stock:editar"), stockHandler.Update)
	stock.Delete("/:id", perm("stock:eliminar"), stockHandler.Delete)

	cashHandler := NewCashHandler(deps.CashRegisterUC, deps.CashSessions)
	registers := protected.Group("/cajas")
	registers.Get("/", perm("cajas:leer"), cashHandler.List)
	registers.Post("/", perm("cajas:crear"), cashHandler.Create)
	registers.Get("/por-sucursal/:id", perm("cajas:leer"), cashHandler.ListByBranch)
	registers.Get("/sesiones/:id/reporte", perm("cajas:leer"), cashHandler.ClosingReport)
	registers.Post("/:id/abrir", perm("cajas:editar"), cashHandler.Open)
	registers.Post("/:id/cerrar", perm("cajas:editar"), cashHandler.Close)
	registers.Get("/:id/sesion-actual", perm("cajas:leer"), cashHandler.CurrentSession)
	registers.Get("/:id", perm("cajas:leer"), cashHandler.GetByID)
	registers.Put("/:id", perm("cajas:editar"), cashHandler.Update)
	registers.Delete("/:id", perm("cajas:eliminar"), cashHandler.Delete)

	saleHandler := NewSaleHandler(deps.Sales)
	salesGroup := protected.Group("/ventas")
	salesGroup.Get("/", perm("ventas:leer"), saleHandler.List)
	salesGroup.Post("/", perm("ventas:crear"), saleHandler.Checkout)
	salesGroup.Get("/:id/ticket", perm("ventas:leer"), saleHandler.Ticket)
	salesGroup.Post("/:id/anular", perm("ventas:eliminar"), saleHandler.Void)
	salesGroup.Get("/:id", perm("ventas:leer"), saleHandler.GetByID)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/resumen", perm("dashboard:leer"), dashboardHandler.GetSummary)
}
