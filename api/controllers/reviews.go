package controllers

import (
	"context"
	"net/http"

	"github.com/greenvista/landscaping-backend/api/responses"
	"github.com/greenvista/landscaping-backend/internal/reviews"
)

// ReviewSource serves the current review snapshot.
type ReviewSource interface {
	Get(ctx context.Context) reviews.Snapshot
}

// GetReviews handles GET /api/reviews. The cache already degrades to the
// fallback snapshot, so this endpoint always answers 200.
func GetReviews(source ReviewSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteSuccess(w, reviews.FallbackSnapshot())
			return
		}
		responses.WriteSuccess(w, source.Get(r.Context()))
	}
}
