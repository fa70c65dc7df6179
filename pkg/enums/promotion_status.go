package enums

import "fmt"

// PromotionStatus is the stored lifecycle state of a promotion record.
// A record can be stored "active" while its date window has already closed;
// promotions.EffectiveStatus reconciles the two.
type PromotionStatus string

const (
	PromotionStatusActive    PromotionStatus = "active"
	PromotionStatusPaused    PromotionStatus = "paused"
	PromotionStatusScheduled PromotionStatus = "scheduled"
	PromotionStatusExpired   PromotionStatus = "expired"
)

var validPromotionStatuses = []PromotionStatus{
	PromotionStatusActive,
	PromotionStatusPaused,
	PromotionStatusScheduled,
	PromotionStatusExpired,
}

// String implements fmt.Stringer.
func (p PromotionStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PromotionStatus.
func (p PromotionStatus) IsValid() bool {
	for _, candidate := range validPromotionStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePromotionStatus converts raw input into a PromotionStatus.
func ParsePromotionStatus(value string) (PromotionStatus, error) {
	for _, candidate := range validPromotionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid promotion status %q", value)
}
