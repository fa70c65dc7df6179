package seasonal

import (
	"time"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// Pricing is the static seasonal context attached to a quote.
type Pricing struct {
	Season     enums.Season      `json:"season"`
	Demand     enums.DemandLevel `json:"demand"`
	Adjustment float64           `json:"adjustment"`
	Message    string            `json:"message"`
}

var table = map[enums.Season]Pricing{
	enums.SeasonSpring: {
		Season:     enums.SeasonSpring,
		Demand:     enums.DemandLevelPeak,
		Adjustment: 1.10,
		Message:    "Spring is our busiest season. Book early to lock in your slot.",
	},
	enums.SeasonSummer: {
		Season:     enums.SeasonSummer,
		Demand:     enums.DemandLevelHigh,
		Adjustment: 1.05,
		Message:    "Summer crews fill up fast. Mid-week slots have the best availability.",
	},
	enums.SeasonFall: {
		Season:     enums.SeasonFall,
		Demand:     enums.DemandLevelHigh,
		Adjustment: 1.00,
		Message:    "Fall cleanup season. Standard pricing through November.",
	},
	enums.SeasonWinter: {
		Season:     enums.SeasonWinter,
		Demand:     enums.DemandLevelLow,
		Adjustment: 0.90,
		Message:    "Winter booking discount: 10% off projects scheduled for spring.",
	},
}

// Resolve returns the pricing context for the given moment.
func Resolve(now time.Time) Pricing {
	return table[seasonOf(now.Month())]
}

func seasonOf(m time.Month) enums.Season {
	switch m {
	case time.March, time.April, time.May:
		return enums.SeasonSpring
	case time.June, time.July, time.August:
		return enums.SeasonSummer
	case time.September, time.October, time.November:
		return enums.SeasonFall
	default:
		return enums.SeasonWinter
	}
}
