package reviews

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// The upstream endpoint has shipped two response shapes: the current flat
// payload and a legacy one nested under "result". Both are decoded here, at
// the boundary, into the one canonical Snapshot; nothing downstream branches
// on shape.

type wireBody struct {
	Success      *bool        `json:"success,omitempty"`
	Reviews      []wireReview `json:"reviews,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	TotalReviews int          `json:"totalReviews,omitempty"`

	Result *wireResult `json:"result,omitempty"`
}

type wireResult struct {
	Success      *bool        `json:"success,omitempty"`
	Reviews      []wireReview `json:"reviews,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	TotalReviews int          `json:"totalReviews,omitempty"`
}

type wireReview struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Platform string  `json:"platform"`
	Rating   int     `json:"rating"`
	Text     string  `json:"text"`
	Date     string  `json:"date"`
	Verified bool    `json:"verified"`
	Location *string `json:"location,omitempty"`
}

// DecodeSnapshot normalizes an upstream payload into a Snapshot. An explicit
// success=false, an empty review list, or an out-of-range rating is an error;
// the caller degrades to the fallback.
func DecodeSnapshot(raw []byte) (Snapshot, error) {
	var body wireBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return Snapshot{}, fmt.Errorf("decoding review payload: %w", err)
	}

	success, reviews, rating, total := body.Success, body.Reviews, body.Rating, body.TotalReviews
	if body.Result != nil {
		success, reviews, rating, total = body.Result.Success, body.Result.Reviews, body.Result.Rating, body.Result.TotalReviews
	}

	if success != nil && !*success {
		return Snapshot{}, fmt.Errorf("upstream reported failure")
	}
	if len(reviews) == 0 {
		return Snapshot{}, fmt.Errorf("upstream payload contains no reviews")
	}

	normalized := make([]Review, 0, len(reviews))
	for _, wr := range reviews {
		if wr.Rating < 1 || wr.Rating > 5 {
			return Snapshot{}, fmt.Errorf("review %q has out-of-range rating %d", wr.ID, wr.Rating)
		}
		review := Review{
			ID:       wr.ID,
			Customer: wr.Name,
			Rating:   wr.Rating,
			Content:  wr.Text,
			Verified: wr.Verified,
		}
		if wr.Location != nil {
			review.Location = *wr.Location
		}
		if platform, err := enums.ParseReviewPlatform(wr.Platform); err == nil {
			review.Platform = platform
		} else {
			review.Platform = enums.ReviewPlatformInternal
		}
		if parsed, err := time.Parse(time.RFC3339, wr.Date); err == nil {
			review.Date = parsed
		} else if parsed, err := time.Parse("2006-01-02", wr.Date); err == nil {
			review.Date = parsed
		}
		normalized = append(normalized, review)
	}

	if total == 0 {
		total = len(normalized)
	}
	return Snapshot{
		Rating:       rating,
		TotalReviews: total,
		TrustSignals: defaultTrustSignals,
		Reviews:      normalized,
	}, nil
}
