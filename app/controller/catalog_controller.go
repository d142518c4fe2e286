package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/service"
)

// CatalogController handles HTTP requests for the item catalogs
type CatalogController struct {
	catalog service.CatalogServiceInterface
	reports service.ReportServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog service.CatalogServiceInterface, reports service.ReportServiceInterface) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		reports: reports,
	}
}

// CreateItemRequest is the body of POST /catalog/:category/items
type CreateItemRequest struct {
	Name      string           `json:"name" binding:"required"`
	SKU       string           `json:"skuNum" binding:"required"`
	BasePrice *decimal.Decimal `json:"price" binding:"required"`
	Taxable   bool             `json:"taxable"`
}

// UpdateItemRequest is the body of PUT /items/:sku. Omitted fields are left alone.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	BasePrice     *decimal.Decimal `json:"price"`
	ToggleTaxable bool             `json:"toggleTaxable"`
}

// ItemResponse is an item together with the catalog holding it
type ItemResponse struct {
	Category models.Category    `json:"category"`
	Item     models.CatalogItem `json:"item"`
}

// ListItems handles GET /catalog/:category
// Example response:
// {
//   "category": "otc",
//   "count": 1,
//   "items": [{"name": "Aspirin", "price": 3.49, "skuNum": "305730154505", "taxable": "TAX", "fullPrice": 3.8}]
// }
func (c *CatalogController) ListItems(ctx *gin.Context) {
	category, ok := categoryParam(ctx)
	if !ok {
		return
	}

	items, err := c.catalog.ListItems(ctx.Request.Context(), category)
	if err != nil {
		respondError(ctx, "ListItems", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(items),
		"items":    items,
	})
}

// MasterList handles GET /catalog/:category/master-list and returns the HTML master list
func (c *CatalogController) MasterList(ctx *gin.Context) {
	category, ok := categoryParam(ctx)
	if !ok {
		return
	}

	items, err := c.catalog.ListItems(ctx.Request.Context(), category)
	if err != nil {
		respondError(ctx, "MasterList", err)
		return
	}

	html, err := c.reports.RenderMasterList(category, items)
	if err != nil {
		respondError(ctx, "MasterList", err)
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// CreateItem handles POST /catalog/:category/items
// Example request:
// POST /catalog/food/items
// {"name": "Potato Chips", "skuNum": "028400090858", "price": 2.00, "taxable": true}
func (c *CatalogController) CreateItem(ctx *gin.Context) {
	category, ok := categoryParam(ctx)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid request body: "+err.Error())
		return
	}

	item, err := c.catalog.CreateItem(ctx.Request.Context(), category, service.NewItemInput{
		Name:      req.Name,
		SKU:       req.SKU,
		BasePrice: *req.BasePrice,
		Taxable:   req.Taxable,
	})
	if err != nil {
		respondError(ctx, "CreateItem", err)
		return
	}

	logger.Info("✅ Item created", zap.String("category", category.String()), zap.String("sku", item.SKU))
	ctx.JSON(http.StatusCreated, ItemResponse{Category: category, Item: *item})
}

// GetItem handles GET /items/:sku. The first ten characters of the SKU are enough.
func (c *CatalogController) GetItem(ctx *gin.Context) {
	category, item, err := c.catalog.FindItem(ctx.Request.Context(), ctx.Param("sku"))
	if err != nil {
		respondError(ctx, "GetItem", err)
		return
	}
	ctx.JSON(http.StatusOK, ItemResponse{Category: category, Item: *item})
}

// UpdateItem handles PUT /items/:sku
// Example request:
// PUT /items/0284000908
// {"price": 10.00, "toggleTaxable": true}
func (c *CatalogController) UpdateItem(ctx *gin.Context) {
	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid request body: "+err.Error())
		return
	}

	item, err := c.catalog.UpdateItem(ctx.Request.Context(), ctx.Param("sku"), service.ItemUpdate{
		Name:          req.Name,
		BasePrice:     req.BasePrice,
		ToggleTaxable: req.ToggleTaxable,
	})
	if err != nil {
		respondError(ctx, "UpdateItem", err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:sku and returns the removed item
func (c *CatalogController) DeleteItem(ctx *gin.Context) {
	item, err := c.catalog.DeleteItem(ctx.Request.Context(), ctx.Param("sku"))
	if err != nil {
		respondError(ctx, "DeleteItem", err)
		return
	}
	logger.Info("🗑️  Item deleted", zap.String("sku", item.SKU))
	ctx.JSON(http.StatusOK, item)
}

func categoryParam(ctx *gin.Context) (models.Category, bool) {
	category, err := models.ParseCategory(ctx.Param("category"))
	if err != nil {
		badRequest(ctx, err.Error())
		return "", false
	}
	return category, true
}
