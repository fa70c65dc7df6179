package leads

import (
	"time"

	"github.com/greenvista/landscaping-backend/pkg/config"
	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// Signals are the request attributes the rubric scores.
type Signals struct {
	CustomerType enums.CustomerType
	Services     []string
	PropertySize enums.PropertySize
	Urgency      *enums.Urgency

	UsedPlanner bool
	UsedAudit   bool
	PageViews   int
	ReturnVisit bool
}

// Breakdown is the computed score with its per-component contributions.
type Breakdown struct {
	Total      int            `json:"total"`
	Components map[string]int `json:"components"`
}

// Rubric holds the additive weights and tier cutoffs. Weights are data, not
// law: construct one from config so tests and ops can substitute values.
type Rubric struct {
	CustomerTypeWeights map[enums.CustomerType]int
	PropertySizeWeights map[enums.PropertySize]int
	UrgencyWeights      map[enums.Urgency]int

	PlannerWeight       int
	AuditWeight         int
	ReturnVisitWeight   int
	PageViewsManyWeight int
	PageViewsSomeWeight int
	PageViewsMany       int
	PageViewsSome       int

	PremiumServices     map[string]struct{}
	PremiumServiceTier  int
	StandardServiceTier int

	HotThreshold      int
	WarmThreshold     int
	StandardThreshold int
}

// DefaultRubric returns the production weights with tier cutoffs taken from
// config.
func DefaultRubric(cfg config.LeadsConfig) Rubric {
	return Rubric{
		CustomerTypeWeights: map[enums.CustomerType]int{
			enums.CustomerTypeCommercial: 25,
			enums.CustomerTypeReturning:  15,
			enums.CustomerTypeNew:        10,
		},
		PropertySizeWeights: map[enums.PropertySize]int{
			enums.PropertySizeEstate: 20,
			enums.PropertySizeLarge:  15,
			enums.PropertySizeMedium: 10,
			enums.PropertySizeSmall:  5,
		},
		UrgencyWeights: map[enums.Urgency]int{
			enums.UrgencyASAP:      20,
			enums.UrgencyThisWeek:  15,
			enums.UrgencyThisMonth: 10,
			enums.UrgencyFlexible:  0,
		},
		PlannerWeight:       15,
		AuditWeight:         10,
		ReturnVisitWeight:   10,
		PageViewsManyWeight: 10,
		PageViewsSomeWeight: 5,
		PageViewsMany:       5,
		PageViewsSome:       3,
		PremiumServices: map[string]struct{}{
			"landscape-design": {},
			"hardscaping":      {},
			"irrigation":       {},
			"outdoor-lighting": {},
		},
		PremiumServiceTier:  20,
		StandardServiceTier: 10,
		HotThreshold:        cfg.HotThreshold,
		WarmThreshold:       cfg.WarmThreshold,
		StandardThreshold:   cfg.StandardThreshold,
	}
}

// Score computes the additive lead score with its component breakdown.
func (r Rubric) Score(s Signals) Breakdown {
	components := map[string]int{}

	components["customer_type"] = r.CustomerTypeWeights[s.CustomerType]
	components["property_size"] = r.PropertySizeWeights[s.PropertySize]

	if s.Urgency != nil {
		components["urgency"] = r.UrgencyWeights[*s.Urgency]
	}

	engagement := 0
	if s.UsedPlanner {
		engagement += r.PlannerWeight
	}
	if s.UsedAudit {
		engagement += r.AuditWeight
	}
	if s.ReturnVisit {
		engagement += r.ReturnVisitWeight
	}
	switch {
	case s.PageViews >= r.PageViewsMany:
		engagement += r.PageViewsManyWeight
	case s.PageViews >= r.PageViewsSome:
		engagement += r.PageViewsSomeWeight
	}
	components["engagement"] = engagement

	components["services"] = r.serviceTier(s.Services)

	total := 0
	for _, v := range components {
		total += v
	}
	return Breakdown{Total: total, Components: components}
}

// serviceTier scores the highest tier present in the requested mix.
func (r Rubric) serviceTier(services []string) int {
	if len(services) == 0 {
		return 0
	}
	for _, svc := range services {
		if _, ok := r.PremiumServices[svc]; ok {
			return r.PremiumServiceTier
		}
	}
	return r.StandardServiceTier
}

// Priority maps a total score onto a tier.
func (r Rubric) Priority(total int) enums.LeadPriority {
	switch {
	case total >= r.HotThreshold:
		return enums.LeadPriorityHot
	case total >= r.WarmThreshold:
		return enums.LeadPriorityWarm
	case total >= r.StandardThreshold:
		return enums.LeadPriorityStandard
	default:
		return enums.LeadPriorityCold
	}
}

// RecommendedAction returns the follow-up copy and due window for a tier.
func RecommendedAction(priority enums.LeadPriority) (string, time.Duration) {
	switch priority {
	case enums.LeadPriorityHot:
		return "Call within 1 hour; hot leads book with whoever answers first.", time.Hour
	case enums.LeadPriorityWarm:
		return "Call or text within 4 business hours with a tailored estimate.", 4 * time.Hour
	case enums.LeadPriorityStandard:
		return "Email a detailed quote within 1 business day.", 24 * time.Hour
	default:
		return "Add to the nurture sequence; follow up within 3 business days.", 72 * time.Hour
	}
}
