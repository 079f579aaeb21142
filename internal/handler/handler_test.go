package handler

import (
	"io"
	"log/slog"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"brutnet/internal/engine"
	"brutnet/internal/model"
	"brutnet/internal/rates"
	"brutnet/internal/salary"
)

func newTestHandler() *Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	table := rates.Default()
	return New(engine.New(salary.NewConverter(table), log), table, log)
}

func do(h *Handler, method, uri, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.Route(&ctx)
	return &ctx
}

func TestHandleCalculation(t *testing.T) {
	body := `{
		"tenant_id": "acme",
		"calculation_instructions": {
			"calculations": [{
				"calculation_id": "c1",
				"calculation_name": "compute_employer_cost",
				"calculation_properties": {"gross_monthly": 3000, "status": "cadre"}
			}]
		}
	}`
	ctx := do(newTestHandler(), fasthttp.MethodPost, "/calculation-requests", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if ct := string(ctx.Response.Header.ContentType()); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}

	var resp model.CalculationResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CalculationMetadata.TenantID != "acme" {
		t.Fatalf("expected tenant acme, got %s", resp.CalculationMetadata.TenantID)
	}
	var cost model.EmployerCostResult
	if err := json.Unmarshal(resp.CalculationResult.Calculations[0].Result, &cost); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.TotalCost != 4350 {
		t.Fatalf("expected total cost 4350, got %v", cost.TotalCost)
	}
}

func TestHandleCalculationErrors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		uri    string
		body   string
		status int
	}{
		{"wrong method", fasthttp.MethodGet, "/calculation-requests", "", fasthttp.StatusBadRequest},
		{"malformed json", fasthttp.MethodPost, "/calculation-requests", "{", fasthttp.StatusBadRequest},
		{"no calculations", fasthttp.MethodPost, "/calculation-requests", `{"calculation_instructions": {"calculations": []}}`, fasthttp.StatusBadRequest},
		{"unknown path", fasthttp.MethodGet, "/salaries", "", fasthttp.StatusNotFound},
		{"rates by post", fasthttp.MethodPost, "/rates", "", fasthttp.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := do(newTestHandler(), tc.method, tc.uri, tc.body)
			if ctx.Response.StatusCode() != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, ctx.Response.StatusCode())
			}
			var er model.ErrorResponse
			if err := json.Unmarshal(ctx.Response.Body(), &er); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if er.Status != tc.status || er.Message == "" {
				t.Fatalf("unexpected error body %+v", er)
			}
		})
	}
}

func TestHandleRates(t *testing.T) {
	ctx := do(newTestHandler(), fasthttp.MethodGet, "/rates", "")
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var tbl rates.Table
	if err := json.Unmarshal(ctx.Response.Body(), &tbl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.ContributionRates[rates.StatusNonCadre] != 0.22 {
		t.Fatalf("expected non-cadre rate 0.22, got %v", tbl.ContributionRates[rates.StatusNonCadre])
	}
	if len(tbl.Brackets) != 5 {
		t.Fatalf("expected 5 brackets, got %d", len(tbl.Brackets))
	}
}

func TestHealth(t *testing.T) {
	ctx := do(newTestHandler(), fasthttp.MethodGet, "/health", "")
	if string(ctx.Response.Body()) != `{"status":"ok"}` {
		t.Fatalf("unexpected body %s", ctx.Response.Body())
	}
}
