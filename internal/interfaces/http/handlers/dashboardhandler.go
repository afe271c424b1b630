package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adaptivegame/internal/shared/constants"
	apperrors "adaptivegame/internal/shared/errors"
	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/utils"
)

// DashboardHandler renders the game list page and serves the health probe.
type DashboardHandler struct {
	listGamesUC listGamesUseCase
	pinger      func() error
	logger      logger.Interface
}

func NewDashboardHandler(
	listGamesUC listGamesUseCase,
	pinger func() error,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		listGamesUC: listGamesUC,
		pinger:      pinger,
		logger:      logger,
	}
}

// Dashboard lists every game for the logged-in facilitator.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	games, err := h.listGamesUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load dashboard", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}

	if wantsJSON(c) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"games": games})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"UserName": c.GetString(constants.ContextKeyUserName),
		"Games":    games,
	})
}

// Health reports process liveness and store reachability.
func (h *DashboardHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if h.pinger != nil {
		if err := h.pinger(); err != nil {
			h.logger.Warnw("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		status["database"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}

func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return accept == "application/json"
}
