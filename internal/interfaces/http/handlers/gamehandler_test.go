package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptivegame/internal/application/game/dto"
	"adaptivegame/internal/application/game/formstate"
	gameusecases "adaptivegame/internal/application/game/usecases"
	"adaptivegame/internal/domain/game"
	"adaptivegame/internal/interfaces/http/handlers/testutil"
)

type mockNewFormUC struct {
	result *gameusecases.NewGameForm
	err    error
}

func (m *mockNewFormUC) Execute(ctx context.Context) (*gameusecases.NewGameForm, error) {
	return m.result, m.err
}

type mockCreateGameUC struct {
	result  *dto.CreateGameResult
	err     error
	lastCmd gameusecases.CreateGameCommand
	called  bool
}

func (m *mockCreateGameUC) Execute(ctx context.Context, cmd gameusecases.CreateGameCommand) (*dto.CreateGameResult, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockRenderUC struct {
	result string
	err    error
}

func (m *mockRenderUC) Execute(message string) (string, error) {
	return m.result, m.err
}

func newTestGameHandler(newFormUC newGameFormUseCase, createUC createGameUseCase, renderUC renderEventMessageUseCase) *GameHandler {
	return NewGameHandler(newFormUC, createUC, renderUC, testutil.NewMockLogger())
}

func TestGameHandler_NewGameForm(t *testing.T) {
	mockUC := &mockNewFormUC{result: &gameusecases.NewGameForm{
		State: formstate.New(),
		NodeTypes: []dto.NodeTypeOption{
			{Name: "manufacturer"}, {Name: "distributor"}, {Name: "wholesaler"}, {Name: "retail"},
		},
		Products: []dto.ProductOption{{Name: "beer"}},
	}}
	handler := newTestGameHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/games/new", nil)

	handler.NewGameForm(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data gameusecases.NewGameForm
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 1, data.State.Periods)
	assert.Equal(t, game.PeriodWeeks, data.State.PeriodType)
	assert.Len(t, data.NodeTypes, 4)
}

func TestGameHandler_CreateGame_Success(t *testing.T) {
	mockUC := &mockCreateGameUC{result: &dto.CreateGameResult{GameID: 3, ConfigurationID: 9}}
	handler := newTestGameHandler(nil, mockUC, nil)

	form := formstate.New()
	form.GameName = "Autumn League"
	form.StartDate = "2026-09-01"
	form.EndDate = "2026-10-01"
	form.Product = "beer"
	form.BusinessName = "Autumn Co."

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games", createGameRequest{Form: *form})

	handler.CreateGame(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockUC.called)
	assert.Equal(t, "Autumn League", mockUC.lastCmd.Form.GameName)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.CreateGameResult
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, uint(3), data.GameID)
	assert.Equal(t, uint(9), data.ConfigurationID)
}

func TestGameHandler_CreateGame_ValidationErrors(t *testing.T) {
	mockUC := &mockCreateGameUC{err: &gameusecases.ValidationError{Fields: map[string]string{
		"game_name": "game name is required",
		"end_date":  "end date must not be before start date",
	}}}
	handler := newTestGameHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games", createGameRequest{Form: *formstate.New()})

	handler.CreateGame(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Fields, "game_name")
	assert.Contains(t, resp.Error.Fields, "end_date")
}

func TestGameHandler_CreateGame_MalformedBody(t *testing.T) {
	mockUC := &mockCreateGameUC{}
	handler := newTestGameHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games", map[string]interface{}{
		"form": 5,
	})

	handler.CreateGame(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "bad_request", resp.Error.Type)
}

func TestGameHandler_CreateGame_RepositoryFailure(t *testing.T) {
	mockUC := &mockCreateGameUC{err: errors.New("tree insert failed")}
	handler := newTestGameHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games", createGameRequest{Form: *formstate.New()})

	handler.CreateGame(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "internal_error", resp.Error.Type)
}

func TestGameHandler_Derive_SetPeriods(t *testing.T) {
	handler := newTestGameHandler(nil, nil, nil)

	form := formstate.New()
	form.SetPeriodCount(8)
	form.SetDemandValue(2, 40)

	periods := 12
	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games/derive", deriveRequest{
		State:      *form,
		SetPeriods: &periods,
	})

	handler.Derive(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data deriveResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 12, data.State.Periods)
	require.Len(t, data.Chart, 12)
	assert.Equal(t, 40.0, data.Chart[1].Demand)
	assert.Equal(t, 0.0, data.Chart[11].Demand)
	assert.Len(t, data.DemandInputs, 12)
}

func TestGameHandler_Derive_ApplyGlobalPropagates(t *testing.T) {
	handler := newTestGameHandler(nil, nil, nil)

	body := map[string]interface{}{
		"state": formstate.New(),
		"apply_global": map[string]interface{}{
			"category": "lead_time",
			"value":    "3",
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games/derive", body)

	handler.Derive(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data deriveResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	values := data.State.Categories[formstate.CategoryLeadTime]
	assert.Equal(t, 3.0, values.Global)
	for _, nt := range game.AllNodeTypes() {
		assert.Equal(t, 3.0, values.Nodes[nt])
	}
	// Other categories keep their defaults.
	assert.Equal(t, 1.0, data.State.Categories[formstate.CategoryInitialStock].Global)
}

func TestGameHandler_Derive_Reset(t *testing.T) {
	handler := newTestGameHandler(nil, nil, nil)

	form := formstate.New()
	form.GameName = "Scratch"
	form.SetPeriodCount(15)
	form.SetDemandValue(3, 99)

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games/derive", deriveRequest{
		State: *form,
		Reset: true,
	})

	handler.Derive(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data deriveResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Empty(t, data.State.GameName)
	assert.Equal(t, 1, data.State.Periods)
	assert.Empty(t, data.State.Demand)
}

func TestGameHandler_PreviewMessage(t *testing.T) {
	handler := newTestGameHandler(nil, nil, &mockRenderUC{result: "<p><strong>Storm</strong> incoming</p>"})

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games/messages/preview", previewMessageRequest{
		Message: "**Storm** incoming",
	})

	handler.PreviewMessage(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		HTML string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Contains(t, data.HTML, "<strong>Storm</strong>")
}

func TestGameHandler_PreviewMessage_MissingMessage(t *testing.T) {
	handler := newTestGameHandler(nil, nil, &mockRenderUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/games/messages/preview", map[string]string{})

	handler.PreviewMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
