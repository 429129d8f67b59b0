package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"worldchronicles/internal/app/game"
	"worldchronicles/internal/app/journal"
	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	Game      *game.Service
	JournalUC journal.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.GET("/options", h.options)
	g.GET("/state", h.state)
	g.POST("/begin", h.begin)
	g.POST("/choose", h.choose)
	g.POST("/retry", h.retry)
	g.POST("/reroll", h.reroll)
	g.POST("/connectivity", h.connectivity)
	g.POST("/equip", h.equip)
	g.POST("/title", h.title)
	g.POST("/ability", h.ability)
	g.POST("/stat", h.stat)
	g.POST("/view", h.view)
	g.GET("/save", h.hasSave)
	g.POST("/save", h.save)
	g.POST("/load", h.load)
	g.POST("/reset", h.reset)
	g.GET("/journal", h.journal)

	s.GET("/ops/kpi", h.kpi)
}

type chooseRequest struct {
	ChoiceID int `json:"choice_id"`
}

type connectivityRequest struct {
	Online *bool `json:"online"`
}

type equipRequest struct {
	Slot string `json:"slot"`
	Name string `json:"name"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type abilityRequest struct {
	Name string `json:"name"`
}

type statRequest struct {
	Stat   string `json:"stat"`
	Change int    `json:"change"`
}

type viewRequest struct {
	View string `json:"view"`
}

func (h Handler) options(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.Options())
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	st, err := h.Game.State(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, st)
}

func (h Handler) begin(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body adventure.CharacterSetup
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", false)
		return
	}
	res, err := h.Game.Begin(c, playerID, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeTurn(ctx, res)
}

func (h Handler) choose(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body chooseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", false)
		return
	}
	res, err := h.Game.Choose(c, playerID, body.ChoiceID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeTurn(ctx, res)
}

func (h Handler) retry(c context.Context, ctx *app.RequestContext) {
	h.turn(c, ctx, h.Game.Retry)
}

func (h Handler) reroll(c context.Context, ctx *app.RequestContext) {
	h.turn(c, ctx, h.Game.Reroll)
}

func (h Handler) turn(c context.Context, ctx *app.RequestContext, fn func(context.Context, string) (game.TurnResult, error)) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	res, err := fn(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeTurn(ctx, res)
}

func (h Handler) connectivity(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body connectivityRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", false)
		return
	}
	if body.Online == nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "online is required", false)
		return
	}
	res, err := h.Game.SetConnectivity(c, playerID, *body.Online)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeTurn(ctx, res)
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	var body equipRequest
	h.mutate(c, ctx, &body, func(playerID string) (game.Status, error) {
		return h.Game.EquipItem(c, playerID, adventure.ItemSlot(body.Slot), body.Name)
	})
}

func (h Handler) title(c context.Context, ctx *app.RequestContext) {
	var body titleRequest
	h.mutate(c, ctx, &body, func(playerID string) (game.Status, error) {
		return h.Game.EquipTitle(c, playerID, body.Title)
	})
}

func (h Handler) ability(c context.Context, ctx *app.RequestContext) {
	var body abilityRequest
	h.mutate(c, ctx, &body, func(playerID string) (game.Status, error) {
		return h.Game.ToggleAbility(c, playerID, body.Name)
	})
}

func (h Handler) stat(c context.Context, ctx *app.RequestContext) {
	var body statRequest
	h.mutate(c, ctx, &body, func(playerID string) (game.Status, error) {
		return h.Game.AdjustStat(c, playerID, adventure.StatKey(body.Stat), body.Change)
	})
}

func (h Handler) view(c context.Context, ctx *app.RequestContext) {
	var body viewRequest
	h.mutate(c, ctx, &body, func(playerID string) (game.Status, error) {
		return h.Game.SetView(c, playerID, adventure.View(body.View))
	})
}

// mutate decodes body, then runs fn for the requesting player.
func (h Handler) mutate(_ context.Context, ctx *app.RequestContext, body any, fn func(playerID string) (game.Status, error)) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := decodeJSON(ctx, body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", false)
		return
	}
	st, err := fn(playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, st)
}

func (h Handler) hasSave(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ok, err := h.Game.HasSave(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"exists": ok})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	res, err := h.Game.Save(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	res, err := h.Game.Load(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	st, err := h.Game.Reset(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, st)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.JournalUC.Execute(c, journal.Request{
		PlayerID:     playerID,
		Limit:        limit,
		Kind:         adventure.JournalKind(ctx.Query("kind")),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured", false)
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

// writeTurn answers 202 for a choice queued while offline.
func writeTurn(ctx *app.RequestContext, res game.TurnResult) {
	status := consts.StatusOK
	if res.Outcome == game.OutcomeQueued {
		status = consts.StatusAccepted
	}
	ctx.JSON(status, res)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")

func requirePlayer(ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	return playerID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	var corrupt *game.SaveCorruptError
	var offline *game.OfflineError
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error(), false)
	case errors.As(err, &corrupt):
		writeNoticeError(ctx, consts.StatusConflict, "save_corrupt", err.Error(), corrupt.Notice)
	case errors.As(err, &offline):
		writeNoticeError(ctx, consts.StatusConflict, "offline", err.Error(), offline.Notice)
	case errors.Is(err, game.ErrActionInProgress):
		writeErrorBody(ctx, consts.StatusConflict, "action_in_progress", err.Error(), true)
	case errors.Is(err, game.ErrNotStarted):
		writeErrorBody(ctx, consts.StatusConflict, "not_started", err.Error(), false)
	case errors.Is(err, game.ErrNotOwned):
		writeErrorBody(ctx, consts.StatusConflict, "not_owned", err.Error(), false)
	case errors.Is(err, game.ErrChoiceUnavailable):
		writeErrorBody(ctx, consts.StatusConflict, "choice_unavailable", err.Error(), false)
	case errors.Is(err, game.ErrNothingToRetry):
		writeErrorBody(ctx, consts.StatusConflict, "nothing_to_retry", err.Error(), false)
	case errors.Is(err, game.ErrUnknownChoice):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_choice", err.Error(), false)
	case errors.Is(err, game.ErrInvalidRequest),
		errors.Is(err, journal.ErrInvalidRequest),
		errors.Is(err, adventure.ErrInvalidSetup),
		errors.Is(err, adventure.ErrUnknownStat):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error(), false)
	case errors.Is(err, ports.ErrQuota):
		writeErrorBody(ctx, consts.StatusTooManyRequests, "backend_quota", err.Error(), true)
	case errors.Is(err, ports.ErrTransport), errors.Is(err, ports.ErrFormat):
		writeErrorBody(ctx, consts.StatusBadGateway, "backend_unavailable", err.Error(), true)
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error(), false)
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error(), false)
	default:
		hlog.Errorf("unhandled error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error", false)
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string, retryable bool) {
	ctx.JSON(status, map[string]any{
		"error": map[string]any{
			"code":      code,
			"message":   message,
			"retryable": retryable,
		},
	})
}

func writeNoticeError(ctx *app.RequestContext, status int, code, message string, notice adventure.Notice) {
	ctx.JSON(status, map[string]any{
		"error": map[string]any{
			"code":      code,
			"message":   message,
			"retryable": false,
		},
		"notice": notice,
	})
}
