package enums

// DemandLevel labels how booked the crews are for a given season.
type DemandLevel string

const (
	DemandLevelLow  DemandLevel = "low"
	DemandLevelHigh DemandLevel = "high"
	DemandLevelPeak DemandLevel = "peak"
)

// String implements fmt.Stringer.
func (d DemandLevel) String() string {
	return string(d)
}
