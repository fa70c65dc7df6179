package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvista/landscaping-backend/internal/leads"
	"github.com/greenvista/landscaping-backend/internal/locations"
	"github.com/greenvista/landscaping-backend/internal/promotions"
	"github.com/greenvista/landscaping-backend/internal/quotes"
	"github.com/greenvista/landscaping-backend/internal/reviews"
	"github.com/greenvista/landscaping-backend/pkg/config"
	"github.com/greenvista/landscaping-backend/pkg/db/models"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
)

var quoteTestNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

type memQuoteRepo struct {
	rows map[uuid.UUID]*models.Quote
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{rows: map[uuid.UUID]*models.Quote{}}
}

func (r *memQuoteRepo) Create(_ context.Context, quote *models.Quote) error {
	r.rows[quote.ID] = quote
	return nil
}

func (r *memQuoteRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Quote, error) {
	quote, ok := r.rows[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
	}
	return quote, nil
}

type staticReviews struct{}

func (staticReviews) Get(context.Context) reviews.Snapshot {
	return reviews.FallbackSnapshot()
}

func newQuoteService(t *testing.T) *quotes.Service {
	t.Helper()

	registry := promotions.NewRegistry(promotions.DefaultPromotions(), nil, quoteTestNow)
	resolver, err := promotions.NewResolver(registry, nil, nil, func() time.Time { return quoteTestNow })
	require.NoError(t, err)

	svc, err := quotes.NewService(
		newMemQuoteRepo(),
		locations.DefaultRegistry(),
		resolver,
		leads.DefaultRubric(config.LeadsConfig{HotThreshold: 80, WarmThreshold: 55, StandardThreshold: 30}),
		staticReviews{},
		nil,
		nil,
		nil,
		func() time.Time { return quoteTestNow },
	)
	require.NoError(t, err)
	return svc
}

func validQuoteBody() string {
	return `{
		"name": "Maria Torres",
		"email": "maria@example.com",
		"phone": "614-555-0182",
		"address": "1234 Main St, Dublin, OH 43017",
		"propertySize": "medium",
		"services": ["spring-cleanup", "mulching"],
		"urgency": "this-week"
	}`
}

func TestSubmitQuoteSuccess(t *testing.T) {
	handler := SubmitQuote(newQuoteService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(validQuoteBody()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Success bool            `json:"success"`
			QuoteID string          `json:"quoteId"`
			Message string          `json:"message"`
			Context json.RawMessage `json:"context"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Success)
	assert.NotEmpty(t, envelope.Data.Message)
	_, err := uuid.Parse(envelope.Data.QuoteID)
	assert.NoError(t, err)
	assert.NotEmpty(t, envelope.Data.Context)
}

func TestSubmitQuoteMissingFields(t *testing.T) {
	handler := SubmitQuote(newQuoteService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(`{"name": "No Contact"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(pkgerrors.CodeValidation))
}

func TestSubmitQuoteMalformedJSON(t *testing.T) {
	handler := SubmitQuote(newQuoteService(t), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitQuoteInvalidPromoCode(t *testing.T) {
	handler := SubmitQuote(newQuoteService(t), nil)

	body := strings.Replace(validQuoteBody(), `"urgency": "this-week"`, `"urgency": "this-week", "promoCode": "BOGUS"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), string(pkgerrors.CodePromoCode))
}

func TestGetQuoteRequiresUUID(t *testing.T) {
	handler := GetQuote(newQuoteService(t), nil)

	for _, target := range []string{"/api/quote", "/api/quote?id=not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetReviewsAlwaysOK(t *testing.T) {
	handler := GetReviews(staticReviews{})

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trust_signals")
}
