package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/greenvista/landscaping-backend/internal/leads"
	"github.com/greenvista/landscaping-backend/internal/locations"
	"github.com/greenvista/landscaping-backend/internal/promotions"
	"github.com/greenvista/landscaping-backend/internal/quotes"
	"github.com/greenvista/landscaping-backend/internal/reviews"
	"github.com/greenvista/landscaping-backend/pkg/config"
	"github.com/greenvista/landscaping-backend/pkg/db/models"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type memRepo struct {
	rows map[uuid.UUID]*models.Quote
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[uuid.UUID]*models.Quote{}}
}

func (r *memRepo) Create(_ context.Context, quote *models.Quote) error {
	r.rows[quote.ID] = quote
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Quote, error) {
	quote, ok := r.rows[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
	}
	return quote, nil
}

type fallbackReviews struct{}

func (fallbackReviews) Get(context.Context) reviews.Snapshot {
	return reviews.FallbackSnapshot()
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		Leads: config.LeadsConfig{
			HotThreshold:      80,
			WarmThreshold:     55,
			StandardThreshold: 30,
		},
		QuoteLimit: config.QuoteRateLimitConfig{Window: time.Minute, IPLimit: 100, EmailLimit: 100},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	registry := promotions.NewRegistry(promotions.DefaultPromotions(), nil, now)
	resolver, err := promotions.NewResolver(registry, nil, nil, func() time.Time { return now })
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}

	cfg := testConfig()
	svc, err := quotes.NewService(
		newMemRepo(),
		locations.DefaultRegistry(),
		resolver,
		leads.DefaultRubric(cfg.Leads),
		fallbackReviews{},
		nil,
		nil,
		nil,
		func() time.Time { return now },
	)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	return NewRouter(cfg, nil, stubPinger{}, nil, svc, fallbackReviews{})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterQuoteSubmitAndLookup(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"name": "Maria Torres",
		"email": "maria@example.com",
		"phone": "614-555-0182",
		"address": "1234 Main St, Dublin, OH 43017",
		"propertySize": "medium",
		"services": ["spring-cleanup", "mulching"],
		"urgency": "this-week",
		"promoCode": "WELCOME15",
		"usedAIPlanner": true,
		"pageViewCount": 4
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Success bool   `json:"success"`
			QuoteID string `json:"quoteId"`
			Message string `json:"message"`
			Context struct {
				Priority string `json:"priority"`
				Location struct {
					Slug string `json:"slug"`
				} `json:"location"`
			} `json:"context"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Success {
		t.Fatal("expected success flag")
	}
	if envelope.Data.Context.Location.Slug != "dublin" {
		t.Fatalf("unexpected location: %s", envelope.Data.Context.Location.Slug)
	}

	lookup := httptest.NewRequest(http.MethodGet, "/api/quote?id="+envelope.Data.QuoteID, nil)
	lookupRec := httptest.NewRecorder()
	router.ServeHTTP(lookupRec, lookup)
	if lookupRec.Code != http.StatusOK {
		t.Fatalf("lookup: expected 200, got %d", lookupRec.Code)
	}

	missing := httptest.NewRequest(http.MethodGet, "/api/quote?id="+uuid.NewString(), nil)
	missingRec := httptest.NewRecorder()
	router.ServeHTTP(missingRec, missing)
	if missingRec.Code != http.StatusNotFound {
		t.Fatalf("missing: expected 404, got %d", missingRec.Code)
	}
}

func TestRouterQuoteValidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(`{"name": "No Contact"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouterReviewsAlways200(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "trust_signals") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
