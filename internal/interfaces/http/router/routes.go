package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vyapar/backend/docs"
	"github.com/vyapar/backend/internal/interfaces/http/handler"
)

// Handlers bundles every HTTP handler of the API
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Sale     *handler.SaleHandler
	Expense  *handler.ExpenseHandler
	Report   *handler.ReportHandler
	Payment  *handler.PaymentHandler
	System   *handler.SystemHandler

	// DocsGuard runs in front of /swagger. Nil leaves the docs open.
	DocsGuard gin.HandlerFunc
}

// Mount wires the whole API onto engine. auth guards everything except
// the auth and payment sections, the health checks and the docs.
func Mount(engine *gin.Engine, h Handlers, auth ...gin.HandlerFunc) {
	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	docs := []gin.HandlerFunc{ginSwagger.WrapHandler(swaggerFiles.Handler)}
	if h.DocsGuard != nil {
		docs = append([]gin.HandlerFunc{h.DocsGuard}, docs...)
	}
	engine.GET("/swagger/*any", docs...)

	NewRouter(engine, WithAuth(auth...)).
		Public(
			NewSection("").GET("/health", h.System.Health),
			NewSection("/auth").
				POST("/register", h.Auth.Register).
				POST("/login", h.Auth.Login).
				POST("/get-question", h.Auth.GetSecurityQuestion).
				POST("/verify-answer", h.Auth.VerifyAnswer).
				POST("/reset-password", h.Auth.ResetPassword),
			NewSection("/payments").
				POST("/create-order", h.Payment.CreateOrder).
				POST("/verify", h.Payment.Verify),
		).
		Protected(
			NewSection("/products").
				GET("", h.Product.List).
				POST("", h.Product.Create).
				PUT("/:id", h.Product.Update).
				DELETE("/:id", h.Product.Delete),
			NewSection("/customers").
				GET("", h.Customer.ListWithDues).
				POST("/:id/pay", h.Customer.RecordPayment),
			NewSection("/sales").
				POST("", h.Sale.Create).
				GET("/:id", h.Sale.Get),
			NewSection("/expenses").
				POST("", h.Expense.Create).
				GET("", h.Expense.List),
			NewSection("/reports").
				GET("/daily", h.Report.Daily).
				GET("/daily/export", h.Report.Export),
		).
		Setup()
}
