package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves the caller's own profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
	teamService portssvc.TeamSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ts portssvc.TeamSvcFacade) *userHandler {
	return &userHandler{userService: us, teamService: ts}
}

func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ts portssvc.TeamSvcFacade) {
	h := newUserHandler(us, ts)

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.PUT("/current-team", h.switchCurrentTeam)
	}
}

// getMe godoc
// @Summary Current user
// @Description Returns the authenticated user, including the selected team.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// switchCurrentTeam godoc
// @Summary Switch current team
// @Description Selects the team subsequent requests act in. The caller must belong to it.
// @Tags users
// @Accept json
// @Produce json
// @Param team body dto.SwitchTeamRequest true "Team to select"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/current-team [put]
func (h *userHandler) switchCurrentTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.SwitchTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.teamService.SwitchCurrentTeam(c.Request.Context(), identity, req.TeamID); err != nil {
		respondWithError(c, err, "Failed to switch team")
		return
	}

	logger.Info("Current team switched", slog.String("team_id", req.TeamID))
	c.Status(http.StatusNoContent)
}
