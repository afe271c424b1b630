package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adaptivegame/internal/application/game/dto"
	"adaptivegame/internal/application/game/formstate"
	gameusecases "adaptivegame/internal/application/game/usecases"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/shared/constants"
	apperrors "adaptivegame/internal/shared/errors"
	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/utils"
)

// GameHandler serves the creation form endpoints: defaults, derivation of
// form state on the server, submission, and message preview.
type GameHandler struct {
	newFormUC    newGameFormUseCase
	createGameUC createGameUseCase
	renderUC     renderEventMessageUseCase
	logger       logger.Interface
}

func NewGameHandler(
	newFormUC newGameFormUseCase,
	createGameUC createGameUseCase,
	renderUC renderEventMessageUseCase,
	logger logger.Interface,
) *GameHandler {
	return &GameHandler{
		newFormUC:    newFormUC,
		createGameUC: createGameUC,
		renderUC:     renderUC,
		logger:       logger,
	}
}

// NewGameForm returns the default form state plus the lookup options the
// selectors need.
func (h *GameHandler) NewGameForm(c *gin.Context) {
	form, err := h.newFormUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to build new game form", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", form)
}

type createGameRequest struct {
	Form               formstate.State              `json:"form"`
	OrderRestrictions  []dto.OrderRestrictionInput  `json:"order_restrictions"`
	EventMessages      []dto.EventMessageInput      `json:"event_messages"`
	StockNotifications []dto.StockNotificationInput `json:"stock_notifications"`
}

// CreateGame validates and persists a submission as one transaction.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("request body must be valid JSON"))
		return
	}

	result, err := h.createGameUC.Execute(c.Request.Context(), gameusecases.CreateGameCommand{
		Form:               req.Form,
		OrderRestrictions:  req.OrderRestrictions,
		EventMessages:      req.EventMessages,
		StockNotifications: req.StockNotifications,
	})
	if err != nil {
		var vErr *gameusecases.ValidationError
		if errors.As(err, &vErr) {
			utils.FieldErrorResponse(c, constants.ErrMsgValidationFailed, vErr.Fields)
			return
		}
		h.logger.Errorw("failed to create game", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}

	utils.CreatedResponse(c, result, "game created")
}

type deriveRequest struct {
	State formstate.State `json:"state"`

	SetPeriods  *int `json:"set_periods,omitempty"`
	SetDemand   *struct {
		Period int    `json:"period"`
		Value  string `json:"value"`
	} `json:"set_demand,omitempty"`
	ApplyGlobal *struct {
		Category formstate.Category `json:"category"`
		Value    string             `json:"value"`
	} `json:"apply_global,omitempty"`
	SetNode *struct {
		Category formstate.Category `json:"category"`
		NodeType string             `json:"node_type"`
		Value    string             `json:"value"`
	} `json:"set_node,omitempty"`
	Reset bool `json:"reset,omitempty"`
}

type deriveResponse struct {
	State        *formstate.State      `json:"state"`
	Chart        []formstate.ChartPoint `json:"chart"`
	DemandInputs []float64             `json:"demand_inputs"`
	Fields       map[string]string     `json:"fields,omitempty"`
}

// Derive applies one form interaction to a posted state and returns the
// recomputed state with its chart projection. The browser round-trips the
// whole state; nothing is kept server-side between calls.
func (h *GameHandler) Derive(c *gin.Context) {
	var req deriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("request body must be valid JSON"))
		return
	}

	state := req.State
	state.Normalize()

	switch {
	case req.Reset:
		state.Reset()
	case req.SetPeriods != nil:
		state.SetPeriodCount(*req.SetPeriods)
	case req.SetDemand != nil:
		state.SetDemand(req.SetDemand.Period, req.SetDemand.Value)
	case req.ApplyGlobal != nil:
		state.ApplyGlobal(req.ApplyGlobal.Category, req.ApplyGlobal.Value)
	case req.SetNode != nil:
		state.SetNodeValue(req.SetNode.Category, game.NodeType(req.SetNode.NodeType), req.SetNode.Value)
	}

	utils.SuccessResponse(c, http.StatusOK, "", deriveResponse{
		State:        &state,
		Chart:        state.DemandChart(),
		DemandInputs: state.DemandInputs(),
		Fields:       state.Validate(),
	})
}

type previewMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PreviewMessage renders an authored event or stock notification message to
// sanitized HTML.
func (h *GameHandler) PreviewMessage(c *gin.Context) {
	var req previewMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AppErrorResponse(c, apperrors.NewBadRequestError("message is required"))
		return
	}

	rendered, err := h.renderUC.Execute(req.Message)
	if err != nil {
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"html": rendered})
}
