package payload

import (
	"fmt"
	"strings"
)

// ComplexityTier selects one of the fixed workload size classes.
type ComplexityTier string

const (
	TierSmall  ComplexityTier = "SMALL"
	TierMedium ComplexityTier = "MEDIUM"
	TierLarge  ComplexityTier = "LARGE"
	TierHuge   ComplexityTier = "HUGE"
)

// tierSpec fixes the collection sizes for one tier. The mapping is a static
// table: generated shape depends on nothing but this spec and the seed.
type tierSpec struct {
	Users          int
	Addresses      int
	Orders         int
	ItemsPerOrder  int
	TrackingEvents int
	Skills         int
	Education      int
	Languages      int
	Social         int
	Tags           int
	Interests      int
	// OptionalFields controls population of omittable fields (second street
	// line, order notes, custom fields, card details).
	OptionalFields bool
}

var tierSpecs = map[ComplexityTier]tierSpec{
	TierSmall:  {Users: 1, Addresses: 2, Orders: 1, ItemsPerOrder: 2, TrackingEvents: 1, Skills: 3, Education: 1, Languages: 1, Social: 1, Tags: 2, Interests: 2, OptionalFields: false},
	TierMedium: {Users: 10, Addresses: 3, Orders: 5, ItemsPerOrder: 3, TrackingEvents: 2, Skills: 8, Education: 2, Languages: 3, Social: 2, Tags: 5, Interests: 4, OptionalFields: true},
	TierLarge:  {Users: 100, Addresses: 5, Orders: 10, ItemsPerOrder: 5, TrackingEvents: 4, Skills: 12, Education: 3, Languages: 4, Social: 3, Tags: 8, Interests: 6, OptionalFields: true},
	TierHuge:   {Users: 1000, Addresses: 8, Orders: 20, ItemsPerOrder: 8, TrackingEvents: 6, Skills: 15, Education: 4, Languages: 5, Social: 5, Tags: 10, Interests: 8, OptionalFields: true},
}

// Tiers returns all tiers in ascending size order.
func Tiers() []ComplexityTier {
	return []ComplexityTier{TierSmall, TierMedium, TierLarge, TierHuge}
}

// ParseTier converts a user-supplied tier name (case-insensitive) into a
// ComplexityTier. It returns an error for unknown names so CLI input can be
// rejected before it reaches the generator.
func ParseTier(s string) (ComplexityTier, error) {
	switch ComplexityTier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierSmall:
		return TierSmall, nil
	case TierMedium:
		return TierMedium, nil
	case TierLarge:
		return TierLarge, nil
	case TierHuge:
		return TierHuge, nil
	}
	return "", fmt.Errorf("payload: unknown complexity tier %q (must be one of small, medium, large, huge)", s)
}

// specFor returns the size table entry for a tier. Unknown tiers are a
// programming error, not a handled condition.
func specFor(tier ComplexityTier) tierSpec {
	spec, ok := tierSpecs[tier]
	if !ok {
		panic(fmt.Sprintf("payload: unknown complexity tier %q", tier))
	}
	return spec
}
