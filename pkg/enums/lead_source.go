package enums

// LeadSource is the acquisition channel reported with a quote request.
type LeadSource string

const (
	LeadSourceWebsite  LeadSource = "website"
	LeadSourceGoogle   LeadSource = "google"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceSocial   LeadSource = "social"
	LeadSourceOther    LeadSource = "other"
)

var validLeadSources = []LeadSource{
	LeadSourceWebsite,
	LeadSourceGoogle,
	LeadSourceReferral,
	LeadSourceSocial,
	LeadSourceOther,
}

// String implements fmt.Stringer.
func (l LeadSource) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LeadSource.
func (l LeadSource) IsValid() bool {
	for _, candidate := range validLeadSources {
		if candidate == l {
			return true
		}
	}
	return false
}
