package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"otc-randomizer/app/controller"
	"otc-randomizer/logger"
)

// ImagesPath is where barcode images are served from
const ImagesPath = "/images"

type Controllers struct {
	Catalog     *controller.CatalogController
	Transaction *controller.TransactionController
}

// pingHandler handles GET /ping
func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger logs one line per request
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("📥 "+c.Request.Method+" "+c.FullPath(),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// NewRouter wires every route. imagesDir is served under ImagesPath so the HTML
// reports can load their barcodes.
func NewRouter(controllers *Controllers, imagesDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	// Ping endpoint
	r.GET("/ping", pingHandler)

	// Catalog routes
	catalog := r.Group("/catalog/:category")
	{
		catalog.GET("", controllers.Catalog.ListItems)
		catalog.GET("/master-list", controllers.Catalog.MasterList)
		catalog.POST("/items", controllers.Catalog.CreateItem)
	}

	// Item routes, looked up by SKU across both catalogs
	items := r.Group("/items")
	{
		items.GET("/:sku", controllers.Catalog.GetItem)
		items.PUT("/:sku", controllers.Catalog.UpdateItem)
		items.DELETE("/:sku", controllers.Catalog.DeleteItem)
	}

	// Transaction routes
	transactions := r.Group("/transactions")
	{
		transactions.POST("", controllers.Transaction.Generate)
		transactions.GET("", controllers.Transaction.History)
		transactions.GET("/report", controllers.Transaction.Report)
		transactions.GET("/:id", controllers.Transaction.GetTransaction)
	}

	if imagesDir != "" {
		r.Static(ImagesPath, imagesDir)
	}

	return r
}
