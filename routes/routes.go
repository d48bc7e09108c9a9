package routes

import (
	"gateway/configs"
	"gateway/controllers"
	"gateway/middlewares"
	"gateway/services"
	"gateway/upstream"
	"gateway/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.KitchenHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()
	client := upstream.New(cfg.UpstreamBaseURL)

	orderSvc := services.NewOrderService(client)
	exportSvc := services.NewExportService(client)
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, exportSvc)
	menuCtrl := controllers.NewMenuController(client)
	tableCtrl := controllers.NewTableController(client)
	taxCtrl := controllers.NewTaxChargeController(client)
	settingsCtrl := controllers.NewSettingsController(client)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public menu for the customer-facing pages
	r.GET("/menu", menuCtrl.List)

	// Desk (desk or admin)
	desk := r.Group("/desk", middlewares.AuthMiddleware(cfg.JWTSecret, "desk", "admin"))
	{
		desk.GET("/orders", orderCtrl.List)
		desk.GET("/orders/grouped", orderCtrl.ListGrouped)
		desk.GET("/orders/export", orderCtrl.ExportCSV)
		desk.GET("/orders/:id", orderCtrl.Detail)
		desk.GET("/orders/:id/invoice", orderCtrl.Invoice)
		desk.POST("/orders/:id/invoice", orderCtrl.CreateInvoice)
	}

	// Kitchen display feed
	r.GET("/kitchen/feed",
		middlewares.WSAuthMiddleware(cfg.JWTSecret, "desk", "admin"),
		hub.HandleWebSocket)

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu/categories", menuCtrl.List)
		admin.POST("/menu/categories", menuCtrl.CreateCategory)
		admin.PATCH("/menu/categories/:id", menuCtrl.UpdateCategory)
		admin.DELETE("/menu/categories/:id", menuCtrl.DeleteCategory)
		admin.POST("/menu/items", menuCtrl.CreateItem)
		admin.PATCH("/menu/items/:id", menuCtrl.UpdateItem)
		admin.DELETE("/menu/items/:id", menuCtrl.DeleteItem)

		admin.GET("/tables", tableCtrl.List)
		admin.POST("/tables", tableCtrl.Create)
		admin.PATCH("/tables/:id", tableCtrl.Update)
		admin.DELETE("/tables/:id", tableCtrl.Delete)

		admin.GET("/taxes", taxCtrl.ListTaxes)
		admin.POST("/taxes", taxCtrl.CreateTax)
		admin.PATCH("/taxes/:id", taxCtrl.UpdateTax)
		admin.DELETE("/taxes/:id", taxCtrl.DeleteTax)

		admin.GET("/charges", taxCtrl.ListCharges)
		admin.POST("/charges", taxCtrl.CreateCharge)
		admin.PATCH("/charges/:id", taxCtrl.UpdateCharge)
		admin.DELETE("/charges/:id", taxCtrl.DeleteCharge)

		admin.GET("/invoice-settings", settingsCtrl.Get)
		admin.PATCH("/invoice-settings", settingsCtrl.Update)

		// Admins see the same order history as the desk.
		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/grouped", orderCtrl.ListGrouped)
		admin.GET("/orders/export", orderCtrl.ExportCSV)
		admin.GET("/orders/:id", orderCtrl.Detail)
	}
}
