package quotes

import (
	"time"

	"github.com/greenvista/landscaping-backend/internal/leads"
	"github.com/greenvista/landscaping-backend/internal/promotions"
	"github.com/greenvista/landscaping-backend/internal/seasonal"
	"github.com/greenvista/landscaping-backend/pkg/enums"
	"github.com/greenvista/landscaping-backend/pkg/types"
)

// QuoteInput is the normalized quote request handed to the service. The HTTP
// layer owns payload decoding and validation tags; this struct is already
// parsed into domain enums.
type QuoteInput struct {
	Name    string
	Email   string
	Phone   string
	Address string

	PropertySize   enums.PropertySize
	Services       []string
	AdditionalInfo string
	Urgency        *enums.Urgency

	PromoCode    string
	Source       enums.LeadSource
	CustomerType enums.CustomerType

	UsedPlanner bool
	UsedAudit   bool
	PageViews   int
	ReturnVisit bool
}

// QuoteContext is the derived sales context returned with every accepted
// quote. Computed fresh per request; a flattened subset is persisted on the
// Quote row.
type QuoteContext struct {
	LeadScore leads.Breakdown    `json:"leadScore"`
	Priority  enums.LeadPriority `json:"priority"`

	Location LocationBlock    `json:"location"`
	Seasonal seasonal.Pricing `json:"seasonal"`

	Promotions  PromotionBlock           `json:"promotions"`
	SocialProof SocialProofBlock         `json:"socialProof"`
	Competitor  types.CompetitorSnapshot `json:"competitor"`
	FollowUp    FollowUpBlock            `json:"followUp"`

	EstimatedOrderCents int       `json:"estimatedOrderCents"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// LocationBlock names the resolved service area.
type LocationBlock struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// PromotionBlock carries every offer the quote qualifies for plus the
// resolution of any explicitly supplied code.
type PromotionBlock struct {
	Applicable  []PromotionOffer `json:"applicable"`
	AutoApplied *PromotionOffer  `json:"autoApplied,omitempty"`
	Validated   *PromotionOffer  `json:"validated,omitempty"`
}

// PromotionOffer is the wire shape for one applicable promotion.
type PromotionOffer struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          enums.PromotionType `json:"type"`
	Code          string              `json:"code,omitempty"`
	Banner        string              `json:"banner,omitempty"`
	Terms         string              `json:"terms,omitempty"`
	DiscountCents int                 `json:"discountCents"`
	AutoApply     bool                `json:"autoApply"`
	// AppliesToReferrer marks referral rewards: the amount credits the
	// referrer, not this order.
	AppliesToReferrer bool `json:"appliesToReferrer,omitempty"`
}

func offerFrom(a promotions.Applicable) PromotionOffer {
	return PromotionOffer{
		ID:                a.Promotion.ID,
		Name:              a.Promotion.Name,
		Type:              a.Promotion.Type,
		Code:              a.Promotion.Code,
		Banner:            a.Promotion.Banner,
		Terms:             a.Promotion.Terms,
		DiscountCents:     a.DiscountCents,
		AutoApply:         a.Promotion.AutoApply,
		AppliesToReferrer: a.AppliesToReferrer,
	}
}

// SocialProofBlock summarizes the review snapshot for the quote page.
type SocialProofBlock struct {
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	TrustSignals []string `json:"trustSignals"`
	Highlights   []string `json:"highlights,omitempty"`
}

// FollowUpBlock is the sales team's commitment for this lead tier.
type FollowUpBlock struct {
	Action string    `json:"action"`
	DueAt  time.Time `json:"dueAt"`
}
