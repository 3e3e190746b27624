package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bjods/cazno-quote-api/internal/common"
	"github.com/bjods/cazno-quote-api/internal/obs"
)

// Handler exposes the quote endpoints consumed by embedded widgets.
type Handler struct {
	Engine   *Engine
	Validate *validator.Validate
	// LookupTimeout bounds the distance lookup inside the final-quote path.
	// On timeout the provider resolves non-OK and the quote omits the
	// surcharge.
	LookupTimeout time.Duration
}

type quoteRequest struct {
	Config   Calculator `json:"config" validate:"required"`
	FormData FormData   `json:"formData"`
}

type quoteResponse struct {
	QuoteID string        `json:"quoteId,omitempty"`
	Result  PricingResult `json:"result"`
	Display DisplayPrice  `json:"display"`
	Text    string        `json:"text"`
}

// Estimate returns a live estimate without the drive-time step. Called on
// every form change, so it must stay I/O free.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		writeError(w, err)
		return
	}
	result := h.Engine.CalculatePriceSync(req.FormData, req.Config)
	recordCalculation("sync", result)
	respond(w, "", result, req.Config.Display)
}

// Quote returns the authoritative estimate including the drive-time
// surcharge and a generated quote identifier.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ctx := r.Context()
	if h.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.LookupTimeout)
		defer cancel()
	}
	result := h.Engine.CalculatePrice(ctx, req.FormData, req.Config)
	recordCalculation("async", result)
	respond(w, uuid.NewString(), result, req.Config.Display)
}

func (h *Handler) decode(r *http.Request) (quoteRequest, error) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, common.NewAppError("BAD_REQUEST", "invalid payload", http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return req, common.NewAppError("BAD_REQUEST", "invalid pricing configuration", http.StatusBadRequest, err)
		}
	}
	if req.FormData == nil {
		req.FormData = FormData{}
	}
	return req, nil
}

func respond(w http.ResponseWriter, quoteID string, result PricingResult, display DisplayConfig) {
	price := FormatPrice(result, display)
	common.JSON(w, http.StatusOK, map[string]any{"data": quoteResponse{
		QuoteID: quoteID,
		Result:  result,
		Display: price,
		Text:    price.Text(),
	}})
}

func writeError(w http.ResponseWriter, err error) {
	if appErr, ok := common.AsAppError(err); ok {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}

func recordCalculation(mode string, result PricingResult) {
	if obs.QuoteCalculationsTotal == nil {
		return
	}
	outcome := "quoted"
	if result.FinalPrice == 0 && len(result.Modifiers) == 0 && result.Breakdown.BaseUnit == "" {
		outcome = "empty"
	}
	obs.QuoteCalculationsTotal.WithLabelValues(mode, outcome).Inc()
}
