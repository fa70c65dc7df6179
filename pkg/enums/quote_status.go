package enums

import "fmt"

// QuoteStatus tracks a persisted quote through the follow-up pipeline.
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusWon       QuoteStatus = "won"
	QuoteStatusLost      QuoteStatus = "lost"
)

var validQuoteStatuses = []QuoteStatus{
	QuoteStatusNew,
	QuoteStatusContacted,
	QuoteStatusQuoted,
	QuoteStatusWon,
	QuoteStatusLost,
}

// String implements fmt.Stringer.
func (q QuoteStatus) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuoteStatus.
func (q QuoteStatus) IsValid() bool {
	for _, candidate := range validQuoteStatuses {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuoteStatus converts raw input into a QuoteStatus.
func ParseQuoteStatus(value string) (QuoteStatus, error) {
	for _, candidate := range validQuoteStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote status %q", value)
}
