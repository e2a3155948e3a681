package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, cs portssvc.CurrencySvcFacade) *accountHandler {
	return &accountHandler{accountService: as, currencyService: cs}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, cs portssvc.CurrencySvcFacade) {
	h := newAccountHandler(as, cs)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.POST("/:id/transactions", h.addTransaction)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account in the caller's current team
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not allowed to create accounts in the current team"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("currency_code", req.CurrencyCode))

	account, err := h.accountService.CreateAccount(c.Request.Context(), identity, req)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the current team's accounts with their current balances
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "No current team"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	summaries, err := h.accountService.ListAccounts(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}

	currencies, err := h.currencyService.CurrencyTable(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountsResponse(summaries, currencies))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account with its current balance
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Account belongs to a team the caller is not in"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	accountID := c.Param("id")
	ctx := c.Request.Context()

	account, err := h.accountService.GetAccount(ctx, identity, accountID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve account")
		return
	}

	balance, err := h.accountService.CurrentBalance(ctx, identity, accountID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve account")
		return
	}

	summary := domain.AccountSummary{Account: *account, CurrentBalance: balance}
	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(&summary, h.currencyService.SymbolFor(ctx, account.CurrencyCode)))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the provided fields of an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update account")
		return
	}

	logger.Info("Account updated", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account together with all of its transactions
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to delete account"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	accountID := c.Param("id")

	if err := h.accountService.DeleteAccount(c.Request.Context(), identity, accountID); err != nil {
		respondWithError(c, err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// getAccountBalance godoc
// @Summary Get account balance
// @Description Returns the start balance plus the sum of the account's transactions
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to calculate balance"
// @Security BearerAuth
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	accountID := c.Param("id")
	ctx := c.Request.Context()

	account, err := h.accountService.GetAccount(ctx, identity, accountID)
	if err != nil {
		respondWithError(c, err, "Failed to calculate balance")
		return
	}

	balance, err := h.accountService.CurrentBalance(ctx, identity, accountID)
	if err != nil {
		respondWithError(c, err, "Failed to calculate balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(accountID, balance, h.currencyService.SymbolFor(ctx, account.CurrencyCode)))
}

// addTransaction godoc
// @Summary Add a transaction to an account
// @Description Records a transaction against the account, stamped with the account's team
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   transaction body dto.AddAccountTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to add transaction"
// @Security BearerAuth
// @Router /accounts/{id}/transactions [post]
func (h *accountHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	accountID := c.Param("id")
	ctx := c.Request.Context()

	var req dto.AddAccountTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.accountService.AddTransaction(ctx, identity, accountID, req)
	if err != nil {
		respondWithError(c, err, "Failed to add transaction")
		return
	}

	symbol := domain.DefaultCurrencySymbol
	if account, err := h.accountService.GetAccount(ctx, identity, accountID); err == nil {
		symbol = h.currencyService.SymbolFor(ctx, account.CurrencyCode)
	}

	logger.Info("Transaction added to account", slog.String("account_id", accountID), slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, symbol))
}
