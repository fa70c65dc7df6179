package enums

import "fmt"

// ReviewPlatform is where a customer review originated.
type ReviewPlatform string

const (
	ReviewPlatformGoogle   ReviewPlatform = "google"
	ReviewPlatformFacebook ReviewPlatform = "facebook"
	ReviewPlatformNextdoor ReviewPlatform = "nextdoor"
	ReviewPlatformYelp     ReviewPlatform = "yelp"
	ReviewPlatformAngi     ReviewPlatform = "angi"
	ReviewPlatformInternal ReviewPlatform = "internal"
)

var validReviewPlatforms = []ReviewPlatform{
	ReviewPlatformGoogle,
	ReviewPlatformFacebook,
	ReviewPlatformNextdoor,
	ReviewPlatformYelp,
	ReviewPlatformAngi,
	ReviewPlatformInternal,
}

// String implements fmt.Stringer.
func (r ReviewPlatform) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReviewPlatform.
func (r ReviewPlatform) IsValid() bool {
	for _, candidate := range validReviewPlatforms {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReviewPlatform converts raw input into a ReviewPlatform.
func ParseReviewPlatform(value string) (ReviewPlatform, error) {
	for _, candidate := range validReviewPlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid review platform %q", value)
}
