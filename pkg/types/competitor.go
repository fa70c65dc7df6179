package types

// CompetitorSnapshot is presentation copy describing our market position. It is
// static content attached to a quote, not computed from live competitor data.
type CompetitorSnapshot struct {
	PricePosition string   `json:"price_position"`
	Advantages    []string `json:"advantages"`
}
