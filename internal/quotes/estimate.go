package quotes

import (
	"github.com/shopspring/decimal"

	"github.com/greenvista/landscaping-backend/pkg/enums"
)

// Per-service base prices in cents for a medium lot. These feed the order
// value that gates minimum-order promotions and the CLV estimate; the numbers
// a customer actually signs come from the sales visit, not from here.
var serviceBaseCents = map[string]int{
	"lawn-care":        18000,
	"spring-cleanup":   35000,
	"fall-cleanup":     30000,
	"mulching":         25000,
	"tree-trimming":    40000,
	"aeration":         22000,
	"snow-removal":     20000,
	"landscape-design": 250000,
	"hardscaping":      450000,
	"irrigation":       320000,
	"outdoor-lighting": 180000,
}

const unknownServiceCents = 30000

var propertyMultiplier = map[enums.PropertySize]decimal.Decimal{
	enums.PropertySizeSmall:  decimal.NewFromFloat(0.8),
	enums.PropertySizeMedium: decimal.NewFromInt(1),
	enums.PropertySizeLarge:  decimal.NewFromFloat(1.3),
	enums.PropertySizeEstate: decimal.NewFromFloat(1.8),
}

// EstimateOrderCents sums the base prices for the requested services and
// scales by property size. Unknown service keys get a flat placeholder rather
// than zero so promotion minimums stay meaningful.
func EstimateOrderCents(services []string, size enums.PropertySize) int {
	if len(services) == 0 {
		return 0
	}
	total := 0
	for _, svc := range services {
		base, ok := serviceBaseCents[svc]
		if !ok {
			base = unknownServiceCents
		}
		total += base
	}
	mult, ok := propertyMultiplier[size]
	if !ok {
		mult = decimal.NewFromInt(1)
	}
	scaled := decimal.New(int64(total), 0).Mul(mult).Round(0)
	return int(scaled.IntPart())
}

// Lifetime multiples applied to the first order. Commercial accounts renew on
// contract; returning residential customers rebook seasonally.
var clvMultiple = map[enums.CustomerType]decimal.Decimal{
	enums.CustomerTypeNew:        decimal.NewFromInt(3),
	enums.CustomerTypeReturning:  decimal.NewFromInt(5),
	enums.CustomerTypeCommercial: decimal.NewFromInt(8),
}

// EstimateCLVCents projects customer lifetime value from the first order.
func EstimateCLVCents(customerType enums.CustomerType, orderCents int) int {
	mult, ok := clvMultiple[customerType]
	if !ok {
		mult = decimal.NewFromInt(3)
	}
	return int(decimal.New(int64(orderCents), 0).Mul(mult).IntPart())
}
