package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/family_finance_tracker/internal/dto"
	"github.com/SscSPs/family_finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// teamHandler handles HTTP requests related to teams.
type teamHandler struct {
	teamService portssvc.TeamSvcFacade
}

func newTeamHandler(ts portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{teamService: ts}
}

func registerTeamRoutes(rg *gin.RouterGroup, ts portssvc.TeamSvcFacade) {
	h := newTeamHandler(ts)

	teams := rg.Group("/teams")
	{
		teams.GET("", h.listTeams)
		teams.POST("", h.createTeam)
		teams.POST("/:team_id/members", h.addMember)
	}
}

// createTeam godoc
// @Summary Create a team
// @Description Creates a shared team owned by the caller and selects it as the current team.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), identity, req)
	if err != nil {
		respondWithError(c, err, "Failed to create team")
		return
	}

	logger.Info("Team created", slog.String("team_id", team.TeamID))
	c.JSON(http.StatusCreated, dto.ToTeamResponse(team))
}

// listTeams godoc
// @Summary List my teams
// @Description Lists the teams the caller owns or belongs to.
// @Tags teams
// @Produce json
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err, "Failed to list teams")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTeamsResponse(teams))
}

// addMember godoc
// @Summary Add a team member
// @Description Adds an existing user to the team by email. Only the owner or an admin may add members.
// @Tags teams
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param member body dto.AddTeamMemberRequest true "Member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{team_id}/members [post]
func (h *teamHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	teamID := c.Param("team_id")
	membership, err := h.teamService.AddMember(c.Request.Context(), identity, teamID, req)
	if err != nil {
		respondWithError(c, err, "Failed to add team member")
		return
	}

	logger.Info("Team member added", slog.String("team_id", teamID), slog.String("member_id", membership.UserID))
	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(membership))
}
