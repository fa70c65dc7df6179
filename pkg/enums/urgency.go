package enums

// Urgency is how soon the requester wants the work done.
type Urgency string

const (
	UrgencyASAP      Urgency = "asap"
	UrgencyThisWeek  Urgency = "this-week"
	UrgencyThisMonth Urgency = "this-month"
	UrgencyFlexible  Urgency = "flexible"
)

var validUrgencies = []Urgency{
	UrgencyASAP,
	UrgencyThisWeek,
	UrgencyThisMonth,
	UrgencyFlexible,
}

// String implements fmt.Stringer.
func (u Urgency) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Urgency.
func (u Urgency) IsValid() bool {
	for _, candidate := range validUrgencies {
		if candidate == u {
			return true
		}
	}
	return false
}
