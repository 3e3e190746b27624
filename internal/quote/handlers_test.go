package quote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/bjods/cazno-quote-api/internal/quote"
)

type quoteEnvelope struct {
	Data struct {
		QuoteID string              `json:"quoteId"`
		Result  quote.PricingResult `json:"result"`
		Display quote.DisplayPrice  `json:"display"`
		Text    string              `json:"text"`
	} `json:"data"`
}

const fenceRequest = `{
	"config": {
		"basePricing": {
			"service_field": "service",
			"prices": {
				"wood_fence": {"amount": 25, "unit": "linear_foot", "minCharge": 500}
			}
		},
		"display": {"format": "range", "rangeMultiplier": 1.3}
	},
	"formData": {"service": "wood_fence", "linearFeet": 30}
}`

func newHandler() *quote.Handler {
	return &quote.Handler{
		Engine:   &quote.Engine{},
		Validate: validator.New(),
	}
}

func TestEstimateReturnsDisplayPrice(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/estimate", strings.NewReader(fenceRequest))
	rec := httptest.NewRecorder()
	handler.Estimate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body quoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Data.QuoteID)
	require.Equal(t, 750.0, body.Data.Result.FinalPrice)
	require.Equal(t, 750.0, body.Data.Display.Min)
	require.Equal(t, 975.0, body.Data.Display.Max)
	require.Equal(t, "$750 - $975", body.Data.Text)
}

func TestQuoteAssignsQuoteID(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(fenceRequest))
	rec := httptest.NewRecorder()
	handler.Quote(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body quoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.QuoteID)
	require.Equal(t, 750.0, body.Data.Result.FinalPrice)
}

func TestEstimateRejectsMalformedPayload(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/estimate", strings.NewReader(`{"config": `))
	rec := httptest.NewRecorder()
	handler.Estimate(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestEstimateToleratesMissingFormData(t *testing.T) {
	handler := newHandler()

	payload := `{"config": {"basePricing": {"service_field": "service", "prices": {}}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/estimate", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Estimate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body quoteEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Zero(t, body.Data.Result.FinalPrice)
	require.Empty(t, body.Data.Result.Modifiers)
}
