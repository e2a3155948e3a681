package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHistoryParams pages through a category's transactions.
type categoryHistoryParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
	accountService  portssvc.AccountReaderSvc
	currencyService portssvc.CurrencySvcFacade
}

func newCategoryHandler(cats portssvc.CategorySvcFacade, as portssvc.AccountReaderSvc, cs portssvc.CurrencySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cats, accountService: as, currencyService: cs}
}

func registerCategoryRoutes(rg *gin.RouterGroup, cats portssvc.CategorySvcFacade, as portssvc.AccountReaderSvc, cs portssvc.CurrencySvcFacade) {
	h := newCategoryHandler(cats, as, cs)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.renameCategory)
		categories.DELETE("/:id", h.deleteCategory)
		categories.GET("/:id/transactions", h.categoryHistory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category in the current team. Names are unique per team.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input or name already taken"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), identity, req)
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the current team's categories ordered by name
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 403 {object} ErrorResponse "No current team"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// getCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// renameCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "New name"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid input or name already taken"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), identity, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to rename category")
		return
	}

	logger.Info("Category renamed", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category. Its transactions are kept without a category.
// @Tags categories
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	categoryID := c.Param("id")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), identity, categoryID); err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

// categoryHistory godoc
// @Summary Category transactions
// @Description Pages through the category's transactions, newest first
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /categories/{id}/transactions [get]
func (h *categoryHandler) categoryHistory(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var params categoryHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	page, err := h.categoryService.CategoryHistory(ctx, identity, c.Param("id"), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err, "Failed to list category transactions")
		return
	}

	lookup, err := loadTeamLookup(ctx, identity, h.accountService, h.currencyService)
	if err != nil {
		respondWithError(c, err, "Failed to list category transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page, lookup.symbolFor))
}
