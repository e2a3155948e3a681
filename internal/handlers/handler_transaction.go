package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/export"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	accountService     portssvc.AccountReaderSvc
	categoryService    portssvc.CategorySvcFacade
	currencyService    portssvc.CurrencySvcFacade
}

func newTransactionHandler(
	ts portssvc.TransactionSvcFacade,
	as portssvc.AccountReaderSvc,
	cats portssvc.CategorySvcFacade,
	cs portssvc.CurrencySvcFacade,
) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		accountService:     as,
		categoryService:    cats,
		currencyService:    cs,
	}
}

func registerTransactionRoutes(
	rg *gin.RouterGroup,
	ts portssvc.TransactionSvcFacade,
	as portssvc.AccountReaderSvc,
	cats portssvc.CategorySvcFacade,
	cs portssvc.CurrencySvcFacade,
) {
	h := newTransactionHandler(ts, as, cats, cs)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/export", h.exportTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Logs a transaction in the current team, optionally attached to an account and a category
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(ctx, identity, req)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, h.symbolFor(c, identity, txn)))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, h.symbolFor(c, identity, txn)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the current team's transactions, newest first, one page at a time
// @Tags transactions
// @Produce  json
// @Param   accountID query string false "Account filter"
// @Param   categoryID query string false "Category filter"
// @Param   month query string false "Month filter (YYYY-MM)"
// @Param   sign query string false "positive or negative"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 403 {object} ErrorResponse "No current team"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(ctx, identity, params)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	lookup, err := loadTeamLookup(ctx, identity, h.accountService, h.currencyService)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page, lookup.symbolFor))
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Downloads every transaction matching the filters as an XLSX workbook
// @Tags transactions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   accountID query string false "Account filter"
// @Param   categoryID query string false "Category filter"
// @Param   month query string false "Month filter (YYYY-MM)"
// @Param   sign query string false "positive or negative"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 403 {object} ErrorResponse "No current team"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	txns, err := h.transactionService.ExportTransactions(ctx, identity, params)
	if err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}

	lookup, err := loadTeamLookup(ctx, identity, h.accountService, h.currencyService)
	if err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}
	categories, err := h.categoryService.ListCategories(ctx, identity)
	if err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.CategoryID] = cat.Name
	}

	var buf bytes.Buffer
	names := export.Names{Accounts: lookup.accountNames, Categories: categoryNames, SymbolFor: lookup.symbolFor}
	if err := export.WriteTransactions(&buf, txns, names); err != nil {
		respondWithError(c, err, "Failed to export transactions")
		return
	}

	logger.Info("Transactions exported", slog.Int("rows", len(txns)))
	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().UTC().Format(domain.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Changes the provided fields. An empty accountID or categoryID detaches the transaction.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, h.symbolFor(c, identity, txn)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	transactionID := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), identity, transactionID); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

// symbolFor resolves the symbol of a single transaction's account currency.
func (h *transactionHandler) symbolFor(c *gin.Context, identity *domain.Identity, txn *domain.Transaction) string {
	if txn.AccountID == nil {
		return domain.DefaultCurrencySymbol
	}
	account, err := h.accountService.GetAccount(c.Request.Context(), identity, *txn.AccountID)
	if err != nil {
		return domain.DefaultCurrencySymbol
	}
	return h.currencyService.SymbolFor(c.Request.Context(), account.CurrencyCode)
}
