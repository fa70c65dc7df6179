package promotions

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// Promotion is one static marketing offer. Records are manual data entry; they
// are never deleted, only status-flipped.
type Promotion struct {
	ID   string
	Name string
	Type enums.PromotionType

	// Value is a fraction for percentage promotions (0.15 = 15%) and whole
	// dollars for fixed/bundle/referral promotions. Free-addon promotions
	// carry a zero monetary value; the perk lives in the display copy.
	Value decimal.Decimal

	StartDate time.Time
	EndDate   time.Time
	Status    enums.PromotionStatus

	// Empty slices mean "all" for services and locations.
	ApplicableServices  []string
	ApplicableLocations []string
	CustomerType        enums.CustomerType

	MinOrderCents    *int
	MaxDiscountCents *int

	MaxRedemptions *int
	MaxPerCustomer *int
	// SeedRedemptions is the count carried over from manual bookkeeping
	// before the live counter existed.
	SeedRedemptions int

	AutoApply bool

	Code   string
	Banner string
	Terms  string
}

// EffectiveStatus reconciles the stored status with the date window. A record
// left "active" past its end date is reported as expired here even though the
// stored field was never flipped.
func (p Promotion) EffectiveStatus(now time.Time) enums.PromotionStatus {
	if p.Status != enums.PromotionStatusActive {
		return p.Status
	}
	if now.Before(p.StartDate) {
		return enums.PromotionStatusScheduled
	}
	if now.After(p.EndDate) {
		return enums.PromotionStatusExpired
	}
	return enums.PromotionStatusActive
}

// InWindow reports whether now falls inside [StartDate, EndDate] inclusive.
func (p Promotion) InWindow(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// DiscountCents computes the monetary discount for the given order value.
// Referral amounts apply to the referrer, not this order; the caller checks
// AppliesToReferrer before deducting anything.
func (p Promotion) DiscountCents(orderValueCents int) int {
	switch p.Type {
	case enums.PromotionTypePercentage:
		order := decimal.New(int64(orderValueCents), 0)
		discount := order.Mul(p.Value).Round(0)
		cents := int(discount.IntPart())
		if p.MaxDiscountCents != nil && cents > *p.MaxDiscountCents {
			cents = *p.MaxDiscountCents
		}
		return cents
	case enums.PromotionTypeFixed, enums.PromotionTypeBundle, enums.PromotionTypeReferral:
		return int(p.Value.Mul(decimal.New(100, 0)).Round(0).IntPart())
	default:
		// free-addon: non-monetary perk
		return 0
	}
}

// Applicable pairs an eligible promotion with its computed discount.
type Applicable struct {
	Promotion         Promotion
	DiscountCents     int
	AppliesToReferrer bool
}
