package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "gstreturns/docs"
	"gstreturns/internal/handler"
	"gstreturns/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log *zap.Logger,
	allowedOrigins []string,
	taxH *handler.TaxHandler,
	returnH *handler.ReturnHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Stateless calculators
	tax := v1.Group("/tax")
	tax.GET("/rates", taxH.Rates)
	tax.POST("/items/calculate", taxH.CalculateItem)
	tax.POST("/documents/calculate", taxH.CalculateDocument)
	tax.POST("/purchases/calculate", taxH.CalculatePurchase)

	biz := v1.Group("/businesses/:id")
	biz.POST("/purchases/check-duplicate", taxH.CheckPurchaseDuplicate)

	// Periodic returns
	rets := biz.Group("/returns")
	rets.GET("", returnH.List)
	rets.GET("/:type/:period", returnH.Get)
	rets.POST("/:type/:period/generate", returnH.Generate)
	rets.POST("/:type/:period/file", returnH.MarkFiled)
	rets.GET("/:type/:period/archive-url", returnH.ArchiveURL)
	rets.GET("/:type/:period/export.xlsx", returnH.ExportXLSX)
	rets.GET("/:type/:period/hsn.csv", returnH.ExportHSNCSV)

	return r
}
