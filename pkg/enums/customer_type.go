package enums

import "fmt"

// CustomerType buckets the requester for scoring and promotion eligibility.
type CustomerType string

const (
	CustomerTypeNew        CustomerType = "new"
	CustomerTypeReturning  CustomerType = "returning"
	CustomerTypeCommercial CustomerType = "commercial"

	// CustomerTypeAll is only valid inside promotion eligibility rules.
	CustomerTypeAll CustomerType = "all"
)

var validCustomerTypes = []CustomerType{
	CustomerTypeNew,
	CustomerTypeReturning,
	CustomerTypeCommercial,
}

// String implements fmt.Stringer.
func (c CustomerType) String() string {
	return string(c)
}

// IsValid reports whether the value is a customer-facing CustomerType.
// CustomerTypeAll is deliberately excluded; it never appears on a quote.
func (c CustomerType) IsValid() bool {
	for _, candidate := range validCustomerTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCustomerType converts raw input into a CustomerType, defaulting to new.
func ParseCustomerType(value string) (CustomerType, error) {
	if value == "" {
		return CustomerTypeNew, nil
	}
	for _, candidate := range validCustomerTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer type %q", value)
}
