package promotions

import (
	"context"
	"sort"
	"time"

	"github.com/greenvista/landscaping-backend/pkg/enums"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
	"github.com/greenvista/landscaping-backend/pkg/logger"
)

// QuoteFacts is the slice of a quote request the eligibility predicates need.
type QuoteFacts struct {
	LocationSlug    string
	Services        []string
	CustomerType    enums.CustomerType
	OrderValueCents int
}

// RedemptionCounter reads the live redemption count for a promotion. The
// Redis-backed client satisfies this; tests substitute a map.
type RedemptionCounter interface {
	RedemptionCount(ctx context.Context, promotionID string) (int64, error)
}

// Resolver filters the promotion table against quote facts.
type Resolver struct {
	registry *Registry
	counters RedemptionCounter
	logg     *logger.Logger
	now      func() time.Time
}

// NewResolver builds a resolver. counters may be nil, in which case only the
// seed counts gate redemption caps. nowFn may be nil for wall-clock time.
func NewResolver(registry *Registry, counters RedemptionCounter, logg *logger.Logger, nowFn func() time.Time) (*Resolver, error) {
	if registry == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "promotion registry required")
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Resolver{registry: registry, counters: counters, logg: logg, now: nowFn}, nil
}

// FindApplicable returns every promotion the quote qualifies for, with
// computed discounts. All eligible promotions are returned; exclusivity is a
// policy for the consumer, not this layer.
func (r *Resolver) FindApplicable(ctx context.Context, facts QuoteFacts) []Applicable {
	now := r.now()
	var out []Applicable
	for _, p := range r.registry.All() {
		if !r.eligible(ctx, p, facts, now) {
			continue
		}
		out = append(out, Applicable{
			Promotion:         p,
			DiscountCents:     p.DiscountCents(facts.OrderValueCents),
			AppliesToReferrer: p.Type == enums.PromotionTypeReferral,
		})
	}
	return out
}

// ValidateCode resolves an explicitly supplied promo code against the quote.
// A code that exists but fails eligibility and a code that does not exist both
// come back as CodePromoCode so the form cannot probe the table.
func (r *Resolver) ValidateCode(ctx context.Context, code string, facts QuoteFacts) (*Applicable, error) {
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodePromoCode, "promo code is empty")
	}
	p, ok := r.registry.ByCode(code)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodePromoCode, "unknown promo code").
			WithDetails(map[string]any{"code": code})
	}
	if !r.eligible(ctx, p, facts, r.now()) {
		return nil, pkgerrors.New(pkgerrors.CodePromoCode, "promo code is not valid for this quote").
			WithDetails(map[string]any{"code": code})
	}
	return &Applicable{
		Promotion:         p,
		DiscountCents:     p.DiscountCents(facts.OrderValueCents),
		AppliesToReferrer: p.Type == enums.PromotionTypeReferral,
	}, nil
}

// BestAutoApply picks the deterministic winner among auto-apply candidates:
// highest discount first, registry order breaking ties. Returns nil when no
// candidate is marked auto-apply.
func BestAutoApply(applicable []Applicable) *Applicable {
	candidates := make([]Applicable, 0, len(applicable))
	order := make(map[string]int, len(applicable))
	for i, a := range applicable {
		order[a.Promotion.ID] = i
		if a.Promotion.AutoApply && !a.AppliesToReferrer {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DiscountCents != candidates[j].DiscountCents {
			return candidates[i].DiscountCents > candidates[j].DiscountCents
		}
		return order[candidates[i].Promotion.ID] < order[candidates[j].Promotion.ID]
	})
	winner := candidates[0]
	return &winner
}

func (r *Resolver) eligible(ctx context.Context, p Promotion, facts QuoteFacts, now time.Time) bool {
	if p.Status != enums.PromotionStatusActive {
		return false
	}
	if !p.InWindow(now) {
		return false
	}
	if len(p.ApplicableServices) > 0 && !intersects(p.ApplicableServices, facts.Services) {
		return false
	}
	if len(p.ApplicableLocations) > 0 && !contains(p.ApplicableLocations, facts.LocationSlug) {
		return false
	}
	if p.CustomerType != enums.CustomerTypeAll && p.CustomerType != facts.CustomerType {
		return false
	}
	if p.MinOrderCents != nil && facts.OrderValueCents < *p.MinOrderCents {
		return false
	}
	if p.MaxRedemptions != nil {
		count := int64(p.SeedRedemptions)
		if r.counters != nil {
			live, err := r.counters.RedemptionCount(ctx, p.ID)
			if err != nil {
				// Counter outage must not block the quote flow; the cap is
				// enforced best-effort against the seed count.
				if r.logg != nil {
					r.logg.Error(ctx, "reading redemption counter", err)
				}
			} else {
				count += live
			}
		}
		if count >= int64(*p.MaxRedemptions) {
			return false
		}
	}
	return true
}

func intersects(haystack, needles []string) bool {
	for _, n := range needles {
		if contains(haystack, n) {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
