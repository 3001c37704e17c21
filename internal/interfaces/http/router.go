package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/auth"
	"github.com/construtek/obras-api/internal/application/billing"
	"github.com/construtek/obras-api/internal/application/inventory"
	"github.com/construtek/obras-api/internal/application/usecase"
	"github.com/construtek/obras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	CompanyUC         *usecase.CompanyUseCase
	ProjectUC         *usecase.ProjectUseCase
	EmployeeUC        *usecase.EmployeeUseCase
	ClientUC          *usecase.ClientUseCase
	SupplierUC        *usecase.SupplierUseCase
	ItemUC            *usecase.InventoryItemUseCase
	MaterialRequestUC *inventory.MaterialRequestUseCase
	PurchaseOrderUC   *inventory.PurchaseOrderUseCase
	AssetUC           *usecase.AssetUseCase
	TransactionUC     *usecase.TransactionUseCase
	InvoiceUC         *billing.InvoiceUseCase
	ExportUC          *billing.ExportUseCase
	ActivityUC        *usecase.ActivityUseCase
	SearchUC          *usecase.SearchUseCase
	AIUC              *usecase.AIUseCase
	DashboardUC       *usecase.DashboardUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Aprobar y decidir exige gerencia; el almacenista opera bodega.
	gerencia := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Projects (protegido)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Patch("/:id/status", projectHandler.ChangeStatus)
	projects.Delete("/:id", gerencia, projectHandler.Delete)
	projects.Post("/:id/tasks", projectHandler.CreateTask)
	projects.Get("/:id/tasks", projectHandler.ListTasks)
	projects.Put("/:id/tasks/:taskId", projectHandler.UpdateTask)
	projects.Delete("/:id/tasks/:taskId", projectHandler.DeleteTask)
	projects.Post("/:id/daily-logs", projectHandler.CreateDailyLog)
	projects.Get("/:id/daily-logs", projectHandler.ListDailyLogs)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/payroll", employeeHandler.PayrollSummary)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", gerencia, employeeHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", gerencia, clientHandler.Delete)
	clients.Post("/:id/interactions", clientHandler.CreateInteraction)
	clients.Get("/:id/interactions", clientHandler.ListInteractions)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", gerencia, supplierHandler.Delete)

	// Inventario (protegido)
	inventoryGroup := protected.Group("/inventory")
	itemHandler := NewInventoryItemHandler(deps.ItemUC)
	inventoryGroup.Get("/low-stock", itemHandler.ListLowStock)
	items := inventoryGroup.Group("/items")
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", gerencia, itemHandler.Delete)

	// Material requests (protegido; aprobar/rechazar solo gerencia)
	requests := protected.Group("/material-requests")
	requestHandler := NewMaterialRequestHandler(deps.MaterialRequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/:id/approve", gerencia, requestHandler.Approve)
	requests.Post("/:id/reject", gerencia, requestHandler.Reject)

	// Purchase orders (protegido; aprobar/cancelar solo gerencia)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/approve", gerencia, orderHandler.Approve)
	orders.Post("/:id/cancel", gerencia, orderHandler.Cancel)
	orders.Post("/:id/receive", orderHandler.Receive)

	// Assets (protegido)
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Post("/:id/assign", assetHandler.Assign)
	assets.Delete("/:id", gerencia, assetHandler.Delete)
	assets.Post("/:id/maintenance", assetHandler.CreateMaintenanceLog)
	assets.Get("/:id/maintenance", assetHandler.ListMaintenanceLogs)

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/summary", transactionHandler.Summary)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", gerencia, transactionHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Post("/:id/overdue", invoiceHandler.MarkOverdue)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)

	// Activity (protegido, solo lectura)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", activityHandler.List)

	// Search (protegido)
	searchHandler := NewSearchHandler(deps.SearchUC)
	protected.Get("/search", searchHandler.Search)

	// AI (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/compliance", aiHandler.SuggestCompliance)
	ai.Post("/projects/:id/risk", aiHandler.AnalyzeProjectRisk)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
