package reviews

import (
	"math"
	"time"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// Review is one customer review. Records are immutable once entered.
type Review struct {
	ID        string               `json:"id"`
	Customer  string               `json:"customer"`
	Location  string               `json:"location,omitempty"`
	Services  []string             `json:"services,omitempty"`
	Platform  enums.ReviewPlatform `json:"platform"`
	Rating    int                  `json:"rating"`
	Content   string               `json:"content"`
	Date      time.Time            `json:"date"`
	Verified  bool                 `json:"verified"`
	Response  string               `json:"response,omitempty"`
	Featured  bool                 `json:"featured"`
	Sentiment string               `json:"sentiment,omitempty"`
	Themes    []string             `json:"themes,omitempty"`
}

// Snapshot is the canonical review payload served to the widget and embedded
// in quote social proof.
type Snapshot struct {
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"total_reviews"`
	TrustSignals []string `json:"trust_signals"`
	Reviews      []Review `json:"reviews"`
}

// Aggregate summarizes a review list into a snapshot. The average is rounded
// to one decimal, matching how the widget displays it.
func Aggregate(list []Review, trustSignals []string) Snapshot {
	if len(list) == 0 {
		return Snapshot{TrustSignals: trustSignals, Reviews: []Review{}}
	}
	sum := 0
	for _, r := range list {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(list))*10) / 10
	return Snapshot{
		Rating:       avg,
		TotalReviews: len(list),
		TrustSignals: trustSignals,
		Reviews:      list,
	}
}

var defaultTrustSignals = []string{
	"Licensed and insured",
	"Serving central Ohio since 2012",
	"4.8 average across Google, Nextdoor, and Angi",
}

// FallbackSnapshot returns the hardcoded dataset served when the upstream
// fetch fails. Page rendering beats data freshness here.
func FallbackSnapshot() Snapshot {
	return Aggregate(seedReviews(), defaultTrustSignals)
}

func seedReviews() []Review {
	return []Review{
		{
			ID:        "rev-001",
			Customer:  "Maria T.",
			Location:  "dublin",
			Services:  []string{"landscape-design", "hardscaping"},
			Platform:  enums.ReviewPlatformGoogle,
			Rating:    5,
			Content:   "The patio redesign completely changed our backyard. The crew was on time every day and left the site spotless.",
			Date:      time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
			Verified:  true,
			Featured:  true,
			Sentiment: "positive",
			Themes:    []string{"quality", "punctuality"},
		},
		{
			ID:        "rev-002",
			Customer:  "Dan W.",
			Location:  "westerville",
			Services:  []string{"lawn-care"},
			Platform:  enums.ReviewPlatformNextdoor,
			Rating:    5,
			Content:   "Third season with them. Lawn has never looked better.",
			Date:      time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			Verified:  true,
			Sentiment: "positive",
			Themes:    []string{"consistency"},
		},
		{
			ID:        "rev-003",
			Customer:  "Priya K.",
			Location:  "powell",
			Services:  []string{"irrigation"},
			Platform:  enums.ReviewPlatformAngi,
			Rating:    4,
			Content:   "Irrigation install went smoothly. Scheduling took a bit longer than quoted.",
			Date:      time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
			Verified:  true,
			Response:  "Thanks Priya - spring scheduling is our crunch; we appreciate the patience.",
			Sentiment: "positive",
			Themes:    []string{"quality", "scheduling"},
		},
		{
			ID:        "rev-004",
			Customer:  "James O.",
			Platform:  enums.ReviewPlatformFacebook,
			Services:  []string{"spring-cleanup", "mulching"},
			Rating:    5,
			Content:   "Spring cleanup and fresh mulch in one day. Fair price, great work.",
			Date:      time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
			Verified:  false,
			Sentiment: "positive",
			Themes:    []string{"value"},
		},
	}
}
