package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"otc-randomizer/models"
	"otc-randomizer/service"
	"otc-randomizer/utils"
)

// TransactionController handles HTTP requests for random transactions
type TransactionController struct {
	transactions service.TransactionServiceInterface
	reports      service.ReportServiceInterface
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactions service.TransactionServiceInterface, reports service.ReportServiceInterface) *TransactionController {
	return &TransactionController{
		transactions: transactions,
		reports:      reports,
	}
}

// GenerateRequest is the body of POST /transactions
type GenerateRequest struct {
	Category string           `json:"category" binding:"required"`
	Total    *decimal.Decimal `json:"total" binding:"required"`
}

// Generate handles POST /transactions
// Example request:
// POST /transactions
// {"category": "food", "total": 24.00}
// Example response:
// {
//   "id": "7b1d4b52-54a7-4c1c-a8f4-0b5a6e1d2c3f",
//   "category": "food",
//   "basket": {"items": [...], "target": 24, "remainder": 0.4, "attempts": 2},
//   "createdAt": "2024-03-09T14:30:00Z"
// }
func (c *TransactionController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid request body: "+err.Error())
		return
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	tx, err := c.transactions.Generate(ctx.Request.Context(), category, *req.Total)
	if err != nil {
		respondError(ctx, "Generate", err)
		return
	}
	ctx.JSON(http.StatusOK, tx)
}

// Report handles GET /transactions/report?category=food&total=24.00 and returns
// the transaction rendered as HTML. Nothing is written to disk.
func (c *TransactionController) Report(ctx *gin.Context) {
	category, err := models.ParseCategory(ctx.Query("category"))
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	rawTotal := ctx.Query("total")
	if !utils.ValidMonetary(rawTotal) {
		badRequest(ctx, "total must be a monetary amount such as 24.00")
		return
	}
	total, err := utils.ParseMonetary(rawTotal)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	tx, err := c.transactions.Generate(ctx.Request.Context(), category, total)
	if err != nil {
		respondError(ctx, "Report", err)
		return
	}

	html, err := c.reports.RenderTransaction(tx)
	if err != nil {
		respondError(ctx, "Report", err)
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// History handles GET /transactions?category=food&from=2024-03-01&to=2024-03-31&limit=20
// Example response:
// {
//   "count": 1,
//   "transactions": [
//     {"id": "7b1d4b52-...", "category": "food", "target": 24, "total": 23.6, "remainder": 0.4, "itemCount": 3, "createdAt": "2024-03-09T14:30:00Z"}
//   ]
// }
func (c *TransactionController) History(ctx *gin.Context) {
	var filter models.TransactionFilter

	if raw := ctx.Query("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		filter.Category = category
	}

	var err error
	if filter.From, err = parseTime(ctx.Query("from"), false); err != nil {
		badRequest(ctx, "from: "+err.Error())
		return
	}
	if filter.To, err = parseTime(ctx.Query("to"), true); err != nil {
		badRequest(ctx, "to: "+err.Error())
		return
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			badRequest(ctx, "limit must be a positive integer")
			return
		}
		filter.Limit = limit
	}

	summaries, err := c.transactions.History(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, "History", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"count":        len(summaries),
		"transactions": summaries,
	})
}

// GetTransaction handles GET /transactions/:id
func (c *TransactionController) GetTransaction(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "invalid transaction id")
		return
	}

	tx, err := c.transactions.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, "GetTransaction", err)
		return
	}
	ctx.JSON(http.StatusOK, tx)
}

// parseTime accepts RFC 3339 timestamps or plain dates. A plain date used as
// an upper bound covers the whole day.
func parseTime(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
