package enums

// Season drives the seasonal pricing table.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// String implements fmt.Stringer.
func (s Season) String() string {
	return string(s)
}
