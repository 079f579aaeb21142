package engine

import (
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"brutnet/internal/calculations"
	"brutnet/internal/model"
	"brutnet/internal/salary"
)

var jsonNull = json.RawMessage("null")

// Engine runs calculation requests against one converter. It keeps no state
// between requests and may be shared by concurrent callers.
type Engine struct {
	registry *calculations.Registry
	log      *slog.Logger
}

func New(conv *salary.Converter, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{registry: calculations.NewRegistry(conv), log: log}
}

func (e *Engine) Registry() *calculations.Registry {
	return e.registry
}

// Process runs the calculations in order and stops at the first CRITICAL
// message. Calculations processed so far, including the failing one, are
// reported.
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	processed := make([]model.ProcessedCalculation, 0, len(req.CalculationInstructions.Calculations))
	outcome := model.OutcomeSuccess

	record := func(msgs []model.CalculationMessage) (indexes []int, hasCritical bool) {
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				hasCritical = true
			}
		}
		return indexes, hasCritical
	}

	for i := range req.CalculationInstructions.Calculations {
		calc := req.CalculationInstructions.Calculations[i]

		handler, ok := e.registry.Get(calc.CalculationName)
		if !ok {
			idx, _ := record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownCalculation,
				Message: fmt.Sprintf("Unknown calculation: %s", calc.CalculationName),
			}})
			processed = append(processed, model.ProcessedCalculation{
				Calculation:               calc,
				Result:                    jsonNull,
				CalculationMessageIndexes: idx,
			})
			outcome = model.OutcomeFailure
			break
		}

		msgIndexes, hasCritical := record(handler.Validate(&calc))
		if hasCritical {
			processed = append(processed, model.ProcessedCalculation{
				Calculation:               calc,
				Result:                    jsonNull,
				CalculationMessageIndexes: msgIndexes,
			})
			outcome = model.OutcomeFailure
			break
		}

		result, applyMsgs := handler.Apply(&calc)
		applyIndexes, hasCritical := record(applyMsgs)
		msgIndexes = append(msgIndexes, applyIndexes...)

		raw := jsonNull
		if !hasCritical {
			b, err := json.Marshal(result)
			if err != nil {
				idx, _ := record([]model.CalculationMessage{{
					Level:   model.LevelCritical,
					Code:    model.CodeInvalidProperties,
					Message: fmt.Sprintf("encode result: %v", err),
				}})
				msgIndexes = append(msgIndexes, idx...)
				hasCritical = true
			} else {
				raw = b
			}
		}

		processed = append(processed, model.ProcessedCalculation{
			Calculation:               calc,
			Result:                    raw,
			CalculationMessageIndexes: msgIndexes,
		})

		e.log.Debug("calculation processed",
			"tenant_id", req.TenantID,
			"calculation_id", calc.CalculationID,
			"calculation_name", calc.CalculationName,
			"messages", len(msgIndexes),
		)

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	resp := &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Calculations: processed,
		},
	}

	e.log.Info("calculation request processed",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"tenant_id", req.TenantID,
		"outcome", outcome,
		"calculations", len(processed),
		"duration_ms", resp.CalculationMetadata.CalculationDurationMs,
	)
	return resp
}
