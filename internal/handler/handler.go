package handler

import (
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"brutnet/internal/engine"
	"brutnet/internal/model"
	"brutnet/internal/rates"
)

type Handler struct {
	engine *engine.Engine
	table  *rates.Table
	log    *slog.Logger
}

func New(e *engine.Engine, table *rates.Table, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{engine: e, table: table, log: log}
}

// Route is the fasthttp.RequestHandler for the whole service.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculation-requests":
		h.HandleCalculation(ctx)
	case "/rates":
		h.HandleRates(ctx)
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.log.Warn("invalid request body", "remote_addr", ctx.RemoteAddr().String(), "error", err)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.CalculationInstructions.Calculations) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one calculation is required")
		return
	}

	resp := h.engine.Process(&req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) HandleRates(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.table)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
