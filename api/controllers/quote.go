package controllers

import (
	"net/http"

	"github.com/greenvista/landscaping-backend/api/responses"
	"github.com/greenvista/landscaping-backend/api/validators"
	"github.com/greenvista/landscaping-backend/internal/quotes"
	"github.com/greenvista/landscaping-backend/pkg/enums"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
	"github.com/greenvista/landscaping-backend/pkg/logger"
)

type quotePayload struct {
	Name         string   `json:"name" validate:"required,max=120"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"required,max=32"`
	Address      string   `json:"address" validate:"required,max=240"`
	PropertySize string   `json:"propertySize" validate:"required,oneof=small medium large estate"`
	Services     []string `json:"services" validate:"required,min=1,dive,max=64"`

	AdditionalInfo string `json:"additionalInfo,omitempty" validate:"max=2000"`
	Urgency        string `json:"urgency,omitempty" validate:"omitempty,oneof=asap this-week this-month flexible"`
	PromoCode      string `json:"promoCode,omitempty" validate:"max=32"`
	Source         string `json:"source,omitempty" validate:"omitempty,oneof=website google referral social other"`
	CustomerType   string `json:"customerType,omitempty" validate:"omitempty,oneof=new returning commercial"`

	UsedAIPlanner bool `json:"usedAIPlanner,omitempty"`
	UsedAudit     bool `json:"usedAudit,omitempty"`
	PageViewCount int  `json:"pageViewCount,omitempty" validate:"min=0"`
	IsReturnVisit bool `json:"isReturnVisit,omitempty"`
}

func (p quotePayload) toInput() (quotes.QuoteInput, error) {
	customerType, err := enums.ParseCustomerType(p.CustomerType)
	if err != nil {
		return quotes.QuoteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer type")
	}
	propertySize, err := enums.ParsePropertySize(p.PropertySize)
	if err != nil {
		return quotes.QuoteInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid property size")
	}

	input := quotes.QuoteInput{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,

		PropertySize:   propertySize,
		Services:       p.Services,
		AdditionalInfo: p.AdditionalInfo,

		PromoCode:    p.PromoCode,
		Source:       enums.LeadSource(p.Source),
		CustomerType: customerType,

		UsedPlanner: p.UsedAIPlanner,
		UsedAudit:   p.UsedAudit,
		PageViews:   p.PageViewCount,
		ReturnVisit: p.IsReturnVisit,
	}
	if p.Urgency != "" {
		urgency := enums.Urgency(p.Urgency)
		input.Urgency = &urgency
	}
	return input, nil
}

type quoteResponse struct {
	Success bool                `json:"success"`
	QuoteID string              `json:"quoteId"`
	Message string              `json:"message"`
	Context quotes.QuoteContext `json:"context"`
}

// SubmitQuote handles POST /api/quote.
func SubmitQuote(svc *quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload quotePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Submit(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quoteResponse{
			Success: true,
			QuoteID: result.QuoteID.String(),
			Message: result.Message,
			Context: result.Context,
		})
	}
}

// GetQuote handles GET /api/quote?id=.
func GetQuote(svc *quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParseQueryUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
