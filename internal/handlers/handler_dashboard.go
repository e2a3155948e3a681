package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the monthly summary of the current team.
type dashboardHandler struct {
	ledgerService portssvc.TeamLedgerSvc
	now           func() time.Time
}

func newDashboardHandler(ls portssvc.TeamLedgerSvc) *dashboardHandler {
	return &dashboardHandler{ledgerService: ls, now: time.Now}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ls portssvc.TeamLedgerSvc) {
	h := newDashboardHandler(ls)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Monthly dashboard
// @Description Expenses, income and end balance of the current team for the month containing date, compared with the previous month.
// @Tags dashboard
// @Produce  json
// @Param   date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 403 {object} ErrorResponse "No current team"
// @Failure 500 {object} ErrorResponse "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	date := h.now().UTC()
	if params.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, params.Date)
		if err != nil {
			respondWithBindError(c, err)
			return
		}
		date = parsed
	}

	summary, err := h.ledgerService.Dashboard(c.Request.Context(), identity, date)
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
