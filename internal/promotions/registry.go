package promotions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenvista/landscaping-backend/pkg/enums"
	"github.com/greenvista/landscaping-backend/pkg/logger"
)

// Registry holds the static promotion table, built once at startup and passed
// by reference so resolvers stay testable with substituted fixtures.
type Registry struct {
	promotions []Promotion
	byCode     map[string]int
}

// NewRegistry copies the table and indexes codes. Records stored "active"
// outside their date window are logged as inconsistent; they still pass
// through so the date filter can exclude them at query time.
func NewRegistry(promotions []Promotion, logg *logger.Logger, now time.Time) *Registry {
	copied := make([]Promotion, len(promotions))
	copy(copied, promotions)

	byCode := make(map[string]int, len(copied))
	for i, p := range copied {
		if p.Code != "" {
			byCode[p.Code] = i
		}
		if logg == nil {
			continue
		}
		if effective := p.EffectiveStatus(now); p.Status == enums.PromotionStatusActive && effective != enums.PromotionStatusActive {
			ctx := logg.WithFields(context.Background(), map[string]any{
				"promotion_id":     p.ID,
				"stored_status":    p.Status.String(),
				"effective_status": effective.String(),
			})
			logg.Warn(ctx, "promotion stored active outside its date window")
		}
	}

	return &Registry{promotions: copied, byCode: byCode}
}

// All returns the promotion table in registry order.
func (r *Registry) All() []Promotion {
	return r.promotions
}

// ByCode looks up a promotion by its redemption code.
func (r *Registry) ByCode(code string) (Promotion, bool) {
	idx, ok := r.byCode[code]
	if !ok {
		return Promotion{}, false
	}
	return r.promotions[idx], true
}

func intPtr(v int) *int { return &v }

// DefaultPromotions is the 2026 seed table.
func DefaultPromotions() []Promotion {
	return []Promotion{
		{
			ID:           "new-customer-2026",
			Name:         "New Customer Welcome",
			Type:         enums.PromotionTypePercentage,
			Value:        decimal.NewFromFloat(0.15),
			StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			Status:       enums.PromotionStatusActive,
			CustomerType: enums.CustomerTypeNew,
			MaxDiscountCents: intPtr(15000),
			AutoApply:    true,
			Code:         "WELCOME15",
			Banner:       "15% off your first service",
			Terms:        "New customers only. Max discount $150. One use per customer.",
			MaxPerCustomer: intPtr(1),
		},
		{
			ID:        "spring-cleanup-bundle-2026",
			Name:      "Spring Cleanup + Mulch Bundle",
			Type:      enums.PromotionTypeBundle,
			Value:     decimal.NewFromInt(75),
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC),
			Status:    enums.PromotionStatusActive,
			ApplicableServices: []string{"spring-cleanup", "mulching"},
			CustomerType:       enums.CustomerTypeAll,
			MinOrderCents:      intPtr(40000),
			AutoApply:          true,
			Code:               "SPRINGBUNDLE",
			Banner:             "$75 off when you bundle cleanup with mulch",
			Terms:              "Requires both spring cleanup and mulch installation. Minimum order $400.",
		},
		{
			ID:           "commercial-contract-2026",
			Name:         "Commercial Season Contract",
			Type:         enums.PromotionTypeFixed,
			Value:        decimal.NewFromInt(200),
			StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			Status:       enums.PromotionStatusActive,
			CustomerType: enums.CustomerTypeCommercial,
			MinOrderCents:  intPtr(100000),
			MaxRedemptions: intPtr(25),
			Code:           "COMMERCIAL200",
			Banner:         "$200 off season-long commercial contracts",
			Terms:          "Commercial properties with contracts of $1,000 or more. Limited to 25 redemptions.",
		},
		{
			ID:           "free-aeration-fall-2026",
			Name:         "Free Aeration Add-on",
			Type:         enums.PromotionTypeFreeAddon,
			Value:        decimal.Zero,
			StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 11, 15, 23, 59, 59, 0, time.UTC),
			Status:       enums.PromotionStatusActive,
			ApplicableServices: []string{"lawn-care", "fall-cleanup"},
			CustomerType:       enums.CustomerTypeAll,
			AutoApply:          true,
			Banner:             "Free core aeration with fall lawn service",
			Terms:              "Added at no charge to qualifying fall bookings.",
		},
		{
			ID:           "referral-2026",
			Name:         "Neighbor Referral Credit",
			Type:         enums.PromotionTypeReferral,
			Value:        decimal.NewFromInt(50),
			StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			Status:       enums.PromotionStatusActive,
			CustomerType: enums.CustomerTypeAll,
			Code:         "NEIGHBOR50",
			Banner:       "Give $50, get $50 for every neighbor you refer",
			Terms:        "Credit applies to the referrer's next invoice, not this quote.",
		},
		{
			// Carried from last season's table; the status was never flipped.
			ID:           "fall-2025-cleanup",
			Name:         "Fall 2025 Cleanup Special",
			Type:         enums.PromotionTypePercentage,
			Value:        decimal.NewFromFloat(0.10),
			StartDate:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, 11, 30, 23, 59, 59, 0, time.UTC),
			Status:       enums.PromotionStatusActive,
			ApplicableServices: []string{"fall-cleanup"},
			CustomerType:       enums.CustomerTypeAll,
			Code:               "FALL10",
			Banner:             "10% off fall cleanup",
		},
	}
}
