package enums

import "fmt"

// PropertySize is the self-reported lot bucket on a quote request.
type PropertySize string

const (
	PropertySizeSmall  PropertySize = "small"
	PropertySizeMedium PropertySize = "medium"
	PropertySizeLarge  PropertySize = "large"
	PropertySizeEstate PropertySize = "estate"
)

var validPropertySizes = []PropertySize{
	PropertySizeSmall,
	PropertySizeMedium,
	PropertySizeLarge,
	PropertySizeEstate,
}

// String implements fmt.Stringer.
func (p PropertySize) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PropertySize.
func (p PropertySize) IsValid() bool {
	for _, candidate := range validPropertySizes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePropertySize converts raw input into a PropertySize.
func ParsePropertySize(value string) (PropertySize, error) {
	for _, candidate := range validPropertySizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property size %q", value)
}
