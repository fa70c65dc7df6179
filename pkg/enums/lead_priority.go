package enums

// LeadPriority is the tier a lead score maps into.
type LeadPriority string

const (
	LeadPriorityHot      LeadPriority = "hot"
	LeadPriorityWarm     LeadPriority = "warm"
	LeadPriorityStandard LeadPriority = "standard"
	LeadPriorityCold     LeadPriority = "cold"
)

var validLeadPriorities = []LeadPriority{
	LeadPriorityHot,
	LeadPriorityWarm,
	LeadPriorityStandard,
	LeadPriorityCold,
}

// String implements fmt.Stringer.
func (l LeadPriority) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LeadPriority.
func (l LeadPriority) IsValid() bool {
	for _, candidate := range validLeadPriorities {
		if candidate == l {
			return true
		}
	}
	return false
}
