package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mong0520/kapaipai-api/internal/engine"
)

// PriceChecker defines the interface for triggering a full price check.
type PriceChecker interface {
	RunPriceCheck(ctx context.Context) (*engine.PriceCheckSummary, error)
}

// PriceCheckHandler handles manual price-check trigger requests.
type PriceCheckHandler struct {
	checker PriceChecker
}

// NewPriceCheckHandler creates a new PriceCheckHandler.
func NewPriceCheckHandler(c PriceChecker) *PriceCheckHandler {
	return &PriceCheckHandler{checker: c}
}

// PriceCheckOutput is the response body for the price-check endpoint.
type PriceCheckOutput struct {
	Body struct {
		Status  string                    `json:"status" example:"price check completed" doc:"Price check status"`
		Summary *engine.PriceCheckSummary `json:"summary"`
	}
}

// Run checks every active watch and reports the outcome counts.
func (h *PriceCheckHandler) Run(ctx context.Context, _ *struct{}) (*PriceCheckOutput, error) {
	sum, err := h.checker.RunPriceCheck(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("price check failed: " + err.Error())
	}

	resp := &PriceCheckOutput{}
	resp.Body.Status = "price check completed"
	resp.Body.Summary = sum
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *PriceCheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-price-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/price-check",
		Summary:     "Trigger a price check",
		Description: "Checks every active watch, records snapshots and delivers due notifications.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Run)
}
