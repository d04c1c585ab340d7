package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"watchfloor/internal/app/action"
	"watchfloor/internal/app/ending"
	"watchfloor/internal/app/flag"
	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/replay"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/app/status"
	"watchfloor/internal/app/tick"
	"watchfloor/internal/domain/operation"
)

const operatorIDHeader = "X-Operator-ID"

type Handler struct {
	ActionUC action.UseCase
	FlagUC   flag.UseCase
	TickUC   tick.UseCase
	StatusUC status.UseCase
	EndingUC ending.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	op := s.Group("/api/operator")
	op.POST("/action", h.action)
	op.POST("/no-action", h.noAction)
	op.POST("/flag", h.submitFlag)
	op.POST("/flag/review", h.reviewFlag)
	op.POST("/advance", h.advance)
	op.GET("/status", h.status)
	op.POST("/ending", h.ending)
	op.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	DirectiveID     string            `json:"directive_id,omitempty"`
	Kind            string            `json:"kind"`
	Justification   string            `json:"justification"`
	DecisionSeconds float64           `json:"decision_seconds"`
	WasHesitant     bool              `json:"was_hesitant"`
	Targets         operation.Targets `json:"targets"`
}

type noActionRequest struct {
	DirectiveID     string  `json:"directive_id,omitempty"`
	CitizenID       string  `json:"citizen_id,omitempty"`
	Justification   string  `json:"justification,omitempty"`
	DecisionSeconds float64 `json:"decision_seconds"`
	WasHesitant     bool    `json:"was_hesitant"`
}

type flagRequest struct {
	DirectiveID     string  `json:"directive_id,omitempty"`
	CitizenID       string  `json:"citizen_id"`
	FlagType        string  `json:"flag_type"`
	Justification   string  `json:"justification"`
	DecisionSeconds float64 `json:"decision_seconds"`
	WasHesitant     bool    `json:"was_hesitant"`
}

type reviewRequest struct {
	FlagID  string `json:"flag_id"`
	Outcome string `json:"outcome"`
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		OperatorID:      operatorID,
		DirectiveID:     body.DirectiveID,
		Kind:            operation.ActionKind(body.Kind),
		Justification:   body.Justification,
		DecisionSeconds: body.DecisionSeconds,
		WasHesitant:     body.WasHesitant,
		Targets:         body.Targets,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	// Business refusals are a normal outcome carried in the body.
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) noAction(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body noActionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.SubmitNoAction(c, action.NoActionRequest{
		OperatorID:      operatorID,
		DirectiveID:     body.DirectiveID,
		CitizenID:       body.CitizenID,
		Justification:   body.Justification,
		DecisionSeconds: body.DecisionSeconds,
		WasHesitant:     body.WasHesitant,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) submitFlag(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body flagRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.FlagUC.Submit(c, flag.SubmitRequest{
		OperatorID:      operatorID,
		DirectiveID:     body.DirectiveID,
		CitizenID:       body.CitizenID,
		FlagType:        body.FlagType,
		Justification:   body.Justification,
		DecisionSeconds: body.DecisionSeconds,
		WasHesitant:     body.WasHesitant,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) reviewFlag(c context.Context, ctx *app.RequestContext) {
	if _, err := requireOperator(ctx); err != nil {
		writeError(ctx, err)
		return
	}
	var body reviewRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.FlagUC.Review(c, flag.ReviewRequest{
		FlagID:  body.FlagID,
		Outcome: operation.FlagOutcome(body.Outcome),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advance(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TickUC.Advance(c, tick.Request{OperatorID: operatorID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("article_limit")))
	resp, err := h.StatusUC.Execute(c, status.Request{OperatorID: operatorID, ArticleLimit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) ending(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.EndingUC.Execute(c, ending.Request{OperatorID: operatorID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	operatorID, err := requireOperator(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		OperatorID:   operatorID,
		Kind:         operation.ActionKind(strings.TrimSpace(string(ctx.Query("kind")))),
		Limit:        limit,
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
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingOperatorHeader = errors.New("missing x-operator-id header")

func requireOperator(ctx *app.RequestContext) (string, error) {
	operatorID := strings.TrimSpace(string(ctx.GetHeader(operatorIDHeader)))
	if operatorID == "" {
		return "", ErrMissingOperatorHeader
	}
	return operatorID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingOperatorHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_operator_id", err.Error())
	case errors.Is(err, operatorstate.ErrOperatorTerminated):
		writeErrorBody(ctx, consts.StatusForbidden, "operator_terminated", err.Error())
	case errors.Is(err, flag.ErrAlreadyReviewed):
		writeErrorBody(ctx, consts.StatusConflict, "flag_already_reviewed", err.Error())
	case errors.Is(err, operation.ErrUnknownActionKind):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action_kind", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, flag.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, ending.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrReferenceDataMissing):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "reference_data_missing", err.Error())
	case errors.Is(err, operatorstate.ErrOperatorNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "operator_not_found", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
