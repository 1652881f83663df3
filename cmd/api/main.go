package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-restaurant-pos/internal/cart"
	"go-restaurant-pos/internal/handler"
	"go-restaurant-pos/internal/middleware"
	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/internal/service"
	"go-restaurant-pos/internal/ws"
	"go-restaurant-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Category{}, &model.Product{}, &model.StockAdjustment{},
		&model.Order{}, &model.OrderItem{}, &model.Payment{}, &model.Receipt{}, &model.Shift{},
		&model.Employee{}, &model.Attendance{}, &model.Payroll{},
		&model.AccountsPayable{}, &model.AccountsReceivable{}, &model.Expense{}, &model.Revenue{},
		&model.AuditLog{}, &model.Notification{},
		&model.SystemSetting{}, &model.MenuItem{},
	)

	// 3. Seed defaults: privileges, roles, admin user, store settings
	seedPrivilegesRolesAndAdmin(db)
	seedSystemSettings(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	receiptRepo := repository.NewReceiptRepo(db)
	shiftRepo := repository.NewShiftRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	accountingRepo := repository.NewAccountingRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	carts := cart.NewStore()

	posService := service.NewPOSService(categoryRepo, productRepo, orderRepo, paymentRepo, receiptRepo, auditRepo, carts, wsHub)
	cashierService := service.NewCashierService(shiftRepo, paymentRepo, receiptRepo, orderRepo, settingRepo, auditRepo, wsHub)
	invService := service.NewInventoryService(productRepo, categoryRepo, auditRepo, notificationRepo, db, wsHub)
	hrmService := service.NewHRMService(employeeRepo, auditRepo)
	accountingService := service.NewAccountingService(accountingRepo, auditRepo)
	dashService := service.NewDashboardService(orderRepo)
	settingsService := service.NewSettingsService(settingRepo, auditRepo)
	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)

	posHandler := handler.NewPOSHandler(posService)
	cashierHandler := handler.NewCashierHandler(cashierService)
	invHandler := handler.NewInventoryHandler(invService)
	hrmHandler := handler.NewHRMHandler(hrmService)
	accountingHandler := handler.NewAccountingHandler(accountingService)
	dashHandler := handler.NewDashboardHandler(dashService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	auditHandler := handler.NewAuditHandler(auditRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Restaurant POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// POS Routes (catalog, cart, checkout)
	pos := protected.Group("/pos")
	pos.Get("/categories", middleware.RequirePrivilege("pos:view"), posHandler.GetCategories)
	pos.Get("/products", middleware.RequirePrivilege("pos:view"), posHandler.GetProducts)
	pos.Get("/cart", middleware.RequirePrivilege("pos:sell"), posHandler.GetCart)
	pos.Post("/cart/items", middleware.RequirePrivilege("pos:sell"), posHandler.AddToCart)
	pos.Put("/cart/items/:productId", middleware.RequirePrivilege("pos:sell"), posHandler.UpdateCartItem)
	pos.Delete("/cart/items/:productId", middleware.RequirePrivilege("pos:sell"), posHandler.RemoveCartItem)
	pos.Post("/checkout", middleware.RequirePrivilege("pos:sell"), posHandler.Checkout)
	pos.Get("/orders", middleware.RequirePrivilege("pos:view"), posHandler.GetRecentOrders)

	// Cashier Routes (shifts, payments, receipts)
	cashier := protected.Group("/cashier")
	cashier.Post("/shifts/open", middleware.RequirePrivilege("shift:open"), cashierHandler.OpenShift)
	cashier.Post("/shifts/close", middleware.RequirePrivilege("shift:close"), cashierHandler.CloseShift)
	cashier.Get("/shifts/current", middleware.RequirePrivilege("shift:view"), cashierHandler.CurrentShift)
	cashier.Get("/shifts", middleware.RequirePrivilege("shift:view"), cashierHandler.GetShiftHistory)
	cashier.Get("/shifts/:id", middleware.RequirePrivilege("shift:view"), cashierHandler.GetShift)
	cashier.Post("/payments", middleware.RequirePrivilege("payment:create"), cashierHandler.ProcessPayment)
	cashier.Get("/payments", middleware.RequirePrivilege("payment:view"), cashierHandler.GetRecentPayments)
	cashier.Get("/orders/:id/payments", middleware.RequirePrivilege("payment:view"), cashierHandler.GetOrderPayments)
	cashier.Get("/payments/summary", middleware.RequirePrivilege("payment:view"), cashierHandler.GetDailySummary)
	cashier.Get("/receipts", middleware.RequirePrivilege("receipt:view"), cashierHandler.GetRecentReceipts)
	cashier.Post("/receipts/:id/print", middleware.RequirePrivilege("receipt:print"), cashierHandler.PrintReceipt)

	// Inventory Routes
	inventory := protected.Group("/inventory")
	inventory.Get("/products", middleware.RequirePrivilege("inventory:view"), invHandler.GetProducts)
	inventory.Post("/products", middleware.RequirePrivilege("inventory:create"), invHandler.CreateProduct)
	inventory.Put("/products/:id", middleware.RequirePrivilege("inventory:update"), invHandler.UpdateProduct)
	inventory.Post("/adjustments", middleware.RequirePrivilege("inventory:adjust"), invHandler.AdjustStock)
	inventory.Get("/stats", middleware.RequirePrivilege("inventory:view"), invHandler.GetStats)

	// HRM Routes
	hrm := protected.Group("/hrm")
	hrm.Get("/employees", middleware.RequirePrivilege("hrm:view"), hrmHandler.GetEmployees)
	hrm.Post("/employees", middleware.RequirePrivilege("hrm:manage"), hrmHandler.CreateEmployee)
	hrm.Put("/employees/:id", middleware.RequirePrivilege("hrm:manage"), hrmHandler.UpdateEmployee)
	hrm.Delete("/employees/:id", middleware.RequirePrivilege("hrm:manage"), hrmHandler.DeleteEmployee)
	hrm.Post("/attendances/check-in", middleware.RequirePrivilege("hrm:manage"), hrmHandler.CheckIn)
	hrm.Post("/attendances/check-out", middleware.RequirePrivilege("hrm:manage"), hrmHandler.CheckOut)
	hrm.Get("/attendances/today", middleware.RequirePrivilege("hrm:view"), hrmHandler.GetTodayAttendances)
	hrm.Get("/payrolls", middleware.RequirePrivilege("hrm:view"), hrmHandler.GetPayrolls)
	hrm.Post("/payrolls", middleware.RequirePrivilege("hrm:manage"), hrmHandler.CreatePayroll)
	hrm.Post("/payrolls/:id/pay", middleware.RequirePrivilege("hrm:manage"), hrmHandler.MarkPayrollPaid)

	// Accounting Routes
	accounting := protected.Group("/accounting")
	accounting.Get("/overview", middleware.RequirePrivilege("accounting:view"), accountingHandler.GetOverview)
	accounting.Post("/expenses", middleware.RequirePrivilege("accounting:manage"), accountingHandler.RecordExpense)
	accounting.Post("/revenues", middleware.RequirePrivilege("accounting:manage"), accountingHandler.RecordRevenue)
	accounting.Post("/payables", middleware.RequirePrivilege("accounting:manage"), accountingHandler.CreatePayable)
	accounting.Post("/receivables", middleware.RequirePrivilege("accounting:manage"), accountingHandler.CreateReceivable)

	// Dashboard Routes
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetDashboardStats)
	protected.Get("/dashboard/daily-sales", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetDailySales)

	// Audit Routes
	protected.Get("/audit/logs", middleware.RequirePrivilege("audit:view"), auditHandler.GetAuditLogs)

	// Settings Routes
	settings := protected.Group("/settings")
	settings.Get("/", middleware.RequirePrivilege("settings:view"), settingsHandler.GetSettings)
	settings.Put("/:id", middleware.RequirePrivilege("settings:update"), settingsHandler.UpdateSetting)
	settings.Get("/menu", middleware.RequireAnyPrivilege("settings:view", "pos:view"), settingsHandler.GetMenuItems)
	settings.Post("/menu", middleware.RequirePrivilege("settings:update"), settingsHandler.CreateMenuItem)
	settings.Delete("/menu/:id", middleware.RequirePrivilege("settings:update"), settingsHandler.DeleteMenuItem)
	settings.Get("/status", settingsHandler.GetSystemStatus)

	// Notification Routes
	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Post("/notifications/:id/read", notificationHandler.MarkNotificationRead)

	// User Management Routes (with privilege checks)
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.DeleteUser)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update_privilege"), userHandler.UpdateUserPrivileges)

	// Role Routes
	protected.Get("/roles", roleHandler.GetRoles)

	// Privileges Route (list all available privileges)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// WebSocket Route (authenticated; the hub keys connections by user)
	app.Use("/ws", middleware.RequireAuth(userRepo), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		userID, _ := c.Locals("user_id").(string)
		wsHub.Register(c, userID)
		defer wsHub.Unregister(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign privileges to roles
	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets ALL privileges
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(&adminRole).Association("Privileges").Replace(allPrivileges)
		log.Println("✅ ADMIN role assigned all privileges")
	}

	// MANAGER gets everything except user management
	managerRole, err := roleRepo.FindByCode(model.RoleManager)
	if err == nil && len(managerRole.Privileges) == 0 {
		managerPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if strings.HasPrefix(p.Code, "user:") {
				continue
			}
			managerPrivileges = append(managerPrivileges, p)
		}
		db.Model(&managerRole).Association("Privileges").Replace(managerPrivileges)
		log.Println("✅ MANAGER role assigned limited privileges")
	}

	// CASHIER gets the front-of-house subset
	cashierRole, err := roleRepo.FindByCode(model.RoleCashier)
	if err == nil && len(cashierRole.Privileges) == 0 {
		cashierCodes := map[string]bool{
			"pos:sell": true, "pos:view": true,
			"shift:open": true, "shift:close": true, "shift:view": true,
			"payment:create": true, "payment:view": true,
			"receipt:print": true, "receipt:view": true,
		}
		cashierPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if cashierCodes[p.Code] {
				cashierPrivileges = append(cashierPrivileges, p)
			}
		}
		db.Model(&cashierRole).Association("Privileges").Replace(cashierPrivileges)
		log.Println("✅ CASHIER role assigned POS privileges")
	}

	// 4. Create default admin user with ADMIN role
	_, err = userRepo.FindByEmail("admin@example.com")
	if err != nil {
		adminRole, _ := roleRepo.FindByCode(model.RoleAdmin)

		admin := &model.User{
			Email:       "admin@example.com",
			FullName:    "Administrator",
			PhoneNumber: "",
			RoleID:      &adminRole.ID,
			IsActive:    true,
			Language:    "th",
			Privileges:  adminRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("✅ Admin user created: admin@example.com / admin123 (ADMIN)")
		}
	}
}

// seedSystemSettings creates the store settings the POS and receipts read
func seedSystemSettings(db *gorm.DB) {
	settingRepo := repository.NewSettingRepo(db)

	defaults := []model.SystemSetting{
		{SettingKey: "store_name", SettingValue: "Restaurant POS", Category: "store", Description: "Printed on receipt headers"},
		{SettingKey: "store_address", SettingValue: "", Category: "store", Description: "Printed on receipt headers"},
		{SettingKey: "store_phone", SettingValue: "", Category: "store", Description: "Printed on receipt headers"},
		{SettingKey: "receipt_footer", SettingValue: "Thank you!", Category: "receipt", Description: "Printed at the bottom of receipts"},
		{SettingKey: "default_language", SettingValue: "th", Category: "ui", Description: "Language for new users"},
	}

	for _, s := range defaults {
		if _, err := settingRepo.FindByKey(s.SettingKey); err == nil {
			continue
		}
		s.CreatedBy = "system"
		s.UpdatedBy = "system"
		if err := settingRepo.Create(&s); err != nil {
			log.Printf("Warning: Failed to seed setting %s: %v", s.SettingKey, err)
		}
	}
}
