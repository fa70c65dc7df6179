package quotes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/greenvista/landscaping-backend/internal/leads"
	"github.com/greenvista/landscaping-backend/internal/locations"
	"github.com/greenvista/landscaping-backend/internal/promotions"
	"github.com/greenvista/landscaping-backend/internal/reviews"
	"github.com/greenvista/landscaping-backend/internal/seasonal"
	"github.com/greenvista/landscaping-backend/pkg/db/models"
	"github.com/greenvista/landscaping-backend/pkg/enums"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
	"github.com/greenvista/landscaping-backend/pkg/logger"
	"github.com/greenvista/landscaping-backend/pkg/metrics"
	"github.com/greenvista/landscaping-backend/pkg/types"
)

// Repository persists and loads quote rows.
type Repository interface {
	Create(ctx context.Context, quote *models.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

// Redemptions increments the live promo counter. The Redis client satisfies
// this.
type Redemptions interface {
	IncrementRedemption(ctx context.Context, promotionID string) (int64, error)
}

// ReviewSource serves the current review snapshot.
type ReviewSource interface {
	Get(ctx context.Context) reviews.Snapshot
}

// Service glues the resolvers into the quote funnel.
type Service struct {
	repo        Repository
	locations   *locations.Registry
	promos      *promotions.Resolver
	rubric      leads.Rubric
	reviews     ReviewSource
	redemptions Redemptions
	logg        *logger.Logger
	qm          *metrics.QuoteMetrics
	now         func() time.Time
}

// NewService wires the quote service. redemptions and reviews may be nil in
// degraded deployments; nowFn may be nil for wall-clock time.
func NewService(
	repo Repository,
	locationReg *locations.Registry,
	promoResolver *promotions.Resolver,
	rubric leads.Rubric,
	reviewSource ReviewSource,
	redemptions Redemptions,
	logg *logger.Logger,
	qm *metrics.QuoteMetrics,
	nowFn func() time.Time,
) (*Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "quote repository required")
	}
	if locationReg == nil || promoResolver == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "location registry and promotion resolver required")
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		repo:        repo,
		locations:   locationReg,
		promos:      promoResolver,
		rubric:      rubric,
		reviews:     reviewSource,
		redemptions: redemptions,
		logg:        logg,
		qm:          qm,
		now:         nowFn,
	}, nil
}

// Static market-position copy attached to every quote. Presentation content,
// not live competitor data.
func competitorSnapshot() types.CompetitorSnapshot {
	return types.CompetitorSnapshot{
		PricePosition: "mid-market",
		Advantages: []string{
			"Dedicated crew per neighborhood, not rotating subcontractors",
			"Written quotes honored for 30 days",
			"All plantings guaranteed through the first season",
		},
	}
}

// GenerateContext derives the full sales context for a quote request. It
// never fails: unknown locations fall back to the default area, an empty
// service list yields no promotions, and an invalid promo code simply leaves
// Validated unset. Submit decides whether that last case is an error.
func (s *Service) GenerateContext(ctx context.Context, input QuoteInput) QuoteContext {
	now := s.now()

	slug := s.locations.Resolve(input.Address)
	customerType := normalizeCustomerType(input.CustomerType)

	breakdown := s.rubric.Score(leads.Signals{
		CustomerType: customerType,
		Services:     input.Services,
		PropertySize: input.PropertySize,
		Urgency:      input.Urgency,
		UsedPlanner:  input.UsedPlanner,
		UsedAudit:    input.UsedAudit,
		PageViews:    input.PageViews,
		ReturnVisit:  input.ReturnVisit,
	})
	priority := s.rubric.Priority(breakdown.Total)

	orderCents := EstimateOrderCents(input.Services, input.PropertySize)
	facts := promotions.QuoteFacts{
		LocationSlug:    slug,
		Services:        input.Services,
		CustomerType:    customerType,
		OrderValueCents: orderCents,
	}

	block := PromotionBlock{Applicable: []PromotionOffer{}}
	if len(input.Services) > 0 {
		applicable := s.promos.FindApplicable(ctx, facts)
		for _, a := range applicable {
			block.Applicable = append(block.Applicable, offerFrom(a))
		}
		if best := promotions.BestAutoApply(applicable); best != nil {
			offer := offerFrom(*best)
			block.AutoApplied = &offer
		}
	}
	if code := strings.TrimSpace(input.PromoCode); code != "" {
		if validated, err := s.promos.ValidateCode(ctx, code, facts); err == nil {
			offer := offerFrom(*validated)
			block.Validated = &offer
		}
	}

	action, window := leads.RecommendedAction(priority)

	return QuoteContext{
		LeadScore:           breakdown,
		Priority:            priority,
		Location:            LocationBlock{Slug: slug, Name: s.locations.Name(slug)},
		Seasonal:            seasonal.Resolve(now),
		Promotions:          block,
		SocialProof:         s.socialProof(ctx),
		Competitor:          competitorSnapshot(),
		FollowUp:            FollowUpBlock{Action: action, DueAt: now.Add(window)},
		EstimatedOrderCents: orderCents,
		GeneratedAt:         now,
	}
}

func (s *Service) socialProof(ctx context.Context) SocialProofBlock {
	var snap reviews.Snapshot
	if s.reviews != nil {
		snap = s.reviews.Get(ctx)
	} else {
		snap = reviews.FallbackSnapshot()
	}

	var highlights []string
	for _, r := range snap.Reviews {
		if r.Featured && len(highlights) < 3 {
			highlights = append(highlights, r.Content)
		}
	}
	return SocialProofBlock{
		Rating:       snap.Rating,
		ReviewCount:  snap.TotalReviews,
		TrustSignals: snap.TrustSignals,
		Highlights:   highlights,
	}
}

// SubmitResult is what the POST handler returns to the form.
type SubmitResult struct {
	QuoteID uuid.UUID
	Message string
	Context QuoteContext
}

// Submit validates the request, generates its context, persists the flattened
// quote row, and records the redemption when a promo code was accepted.
func (s *Service) Submit(ctx context.Context, input QuoteInput) (*SubmitResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	started := time.Now()
	quoteCtx := s.GenerateContext(ctx, input)
	s.qm.ObserveContextDuration(string(quoteCtx.Priority), time.Since(started))

	code := strings.TrimSpace(input.PromoCode)
	if code != "" && quoteCtx.Promotions.Validated == nil {
		return nil, pkgerrors.New(pkgerrors.CodePromoCode, "promo code is not valid for this quote").
			WithDetails(map[string]any{"code": code})
	}

	row := s.buildRow(input, quoteCtx)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	ctx = s.logQuote(ctx, row, quoteCtx)

	if validated := quoteCtx.Promotions.Validated; validated != nil && s.redemptions != nil {
		if _, err := s.redemptions.IncrementRedemption(ctx, validated.ID); err != nil {
			// The quote is already saved; a counter outage only loosens the
			// redemption cap.
			if s.logg != nil {
				s.logg.Error(ctx, "incrementing promo redemption", err)
			}
		} else {
			s.qm.IncPromoRedemption()
		}
	}

	s.qm.IncSubmission(string(quoteCtx.Priority))

	return &SubmitResult{
		QuoteID: row.ID,
		Message: confirmationMessage(quoteCtx.Priority),
		Context: quoteCtx,
	}, nil
}

// StatusView is the lookup result for a persisted quote.
type StatusView struct {
	ID                uuid.UUID          `json:"id"`
	Status            enums.QuoteStatus  `json:"status"`
	Priority          enums.LeadPriority `json:"priority"`
	RecommendedAction string             `json:"recommendedAction"`
	FollowUpDueAt     time.Time          `json:"followUpDueAt"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// Get loads the status view for a quote ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*StatusView, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &StatusView{
		ID:                row.ID,
		Status:            row.Status,
		Priority:          row.LeadPriority,
		RecommendedAction: row.RecommendedAction,
		FollowUpDueAt:     row.FollowUpDueAt,
		CreatedAt:         row.CreatedAt,
	}, nil
}

func (s *Service) buildRow(input QuoteInput, quoteCtx QuoteContext) *models.Quote {
	row := &models.Quote{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,

		Address:      input.Address,
		LocationSlug: quoteCtx.Location.Slug,
		PropertySize: input.PropertySize,
		Services:     pq.StringArray(input.Services),

		Source:       normalizeSource(input.Source),
		CustomerType: normalizeCustomerType(input.CustomerType),
		Urgency:      input.Urgency,

		LeadScore:    quoteCtx.LeadScore.Total,
		LeadPriority: quoteCtx.Priority,

		Season:          quoteCtx.Seasonal.Season,
		PriceAdjustment: quoteCtx.Seasonal.Adjustment,

		EstimatedOrderCents: quoteCtx.EstimatedOrderCents,
		CLVEstimateCents:    EstimateCLVCents(normalizeCustomerType(input.CustomerType), quoteCtx.EstimatedOrderCents),

		Status:            enums.QuoteStatusNew,
		RecommendedAction: quoteCtx.FollowUp.Action,
		FollowUpDueAt:     quoteCtx.FollowUp.DueAt,
	}
	if input.AdditionalInfo != "" {
		info := input.AdditionalInfo
		row.AdditionalInfo = &info
	}
	if validated := quoteCtx.Promotions.Validated; validated != nil {
		code := validated.Code
		row.PromoCode = &code
		if !validated.AppliesToReferrer {
			row.PromoDiscountCents = validated.DiscountCents
		}
	}
	snapshot := quoteCtx.Competitor
	row.CompetitorContext = &snapshot
	return row
}

func (s *Service) logQuote(ctx context.Context, row *models.Quote, quoteCtx QuoteContext) context.Context {
	if s.logg == nil {
		return ctx
	}
	ctx = s.logg.WithQuoteID(ctx, row.ID.String())
	ctx = s.logg.WithLocation(ctx, row.LocationSlug)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"priority":   string(quoteCtx.Priority),
		"lead_score": quoteCtx.LeadScore.Total,
	})
	s.logg.Info(ctx, "quote submitted")
	return ctx
}

func validateInput(input QuoteInput) error {
	missing := []string{}
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(input.Address) == "" {
		missing = append(missing, "address")
	}
	if len(input.Services) == 0 {
		missing = append(missing, "services")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(map[string]any{"fields": missing})
	}
	if !input.PropertySize.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown property size").
			WithDetails(map[string]any{"propertySize": string(input.PropertySize)})
	}
	return nil
}

func normalizeCustomerType(ct enums.CustomerType) enums.CustomerType {
	if ct.IsValid() {
		return ct
	}
	return enums.CustomerTypeNew
}

func normalizeSource(src enums.LeadSource) enums.LeadSource {
	if src.IsValid() {
		return src
	}
	return enums.LeadSourceWebsite
}

func confirmationMessage(priority enums.LeadPriority) string {
	switch priority {
	case enums.LeadPriorityHot:
		return "Thanks! A crew lead will call you within the hour."
	case enums.LeadPriorityWarm:
		return "Thanks! We'll reach out today with a tailored estimate."
	case enums.LeadPriorityStandard:
		return "Thanks! Your detailed quote will arrive within one business day."
	default:
		return "Thanks! We'll follow up within a few business days."
	}
}
