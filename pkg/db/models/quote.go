package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/greenvista/landscaping-backend/pkg/enums"
	"github.com/greenvista/landscaping-backend/pkg/types"
)

// Quote is the persisted, flattened snapshot of a submitted quote request and
// the context that was computed for it.
type Quote struct {
	ID    uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name  string    `gorm:"column:name;not null"`
	Email string    `gorm:"column:email;not null"`
	Phone string    `gorm:"column:phone;not null"`

	Address      string             `gorm:"column:address;not null"`
	LocationSlug string             `gorm:"column:location_slug;not null;index"`
	PropertySize enums.PropertySize `gorm:"column:property_size;not null"`
	Services     pq.StringArray     `gorm:"column:services;type:text[]"`

	Source         enums.LeadSource   `gorm:"column:source;not null;default:'website'"`
	CustomerType   enums.CustomerType `gorm:"column:customer_type;not null;default:'new'"`
	Urgency        *enums.Urgency     `gorm:"column:urgency"`
	AdditionalInfo *string            `gorm:"column:additional_info"`

	LeadScore    int                `gorm:"column:lead_score;not null"`
	LeadPriority enums.LeadPriority `gorm:"column:lead_priority;not null;index"`

	Season          enums.Season `gorm:"column:season;not null"`
	PriceAdjustment float64      `gorm:"column:price_adjustment;not null;default:1"`

	EstimatedOrderCents int     `gorm:"column:estimated_order_cents;not null;default:0"`
	PromoCode           *string `gorm:"column:promo_code"`
	PromoDiscountCents  int     `gorm:"column:promo_discount_cents;not null;default:0"`
	CLVEstimateCents    int     `gorm:"column:clv_estimate_cents;not null;default:0"`

	CompetitorContext *types.CompetitorSnapshot `gorm:"column:competitor_context;type:jsonb;serializer:json"`

	Status            enums.QuoteStatus `gorm:"column:status;not null;default:'new'"`
	RecommendedAction string            `gorm:"column:recommended_action;not null"`
	FollowUpDueAt     time.Time         `gorm:"column:follow_up_due_at;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the caller did not; app-side generation keeps
// the sqlite test driver working alongside Postgres.
func (q *Quote) BeforeCreate(_ *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
