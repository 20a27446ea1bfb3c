package game

import "strings"

// Resource is a claimable tile type offered face-up each round.
type Resource string

const (
	Corn    Resource = "Corn"
	Indigo  Resource = "Indigo"
	Sugar   Resource = "Sugar"
	Tobacco Resource = "Tobacco"
	Coffee  Resource = "Coffee"

	// Quarry is the discount pseudo-resource. It can sit in the face-up row
	// but is claimed as a discount token, never as a plantation.
	Quarry Resource = "Quarry"

	// ResourceNone marks an empty or already claimed face-up slot.
	ResourceNone Resource = "None"

	// ResourceUnknown is what ParseResource returns for names outside the catalog.
	ResourceUnknown Resource = "Unknown"
)

// Plantations returns the five production goods in catalog order.
func Plantations() []Resource {
	return []Resource{Corn, Indigo, Sugar, Tobacco, Coffee}
}

// ParseResource maps a display or wire name onto a Resource. It never fails:
// empty input and "none" map to ResourceNone, anything else it does not know
// maps to ResourceUnknown.
func ParseResource(name string) Resource {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, string(ResourceNone)) || strings.EqualFold(trimmed, "null") {
		return ResourceNone
	}
	for _, r := range append(Plantations(), Quarry) {
		if strings.EqualFold(trimmed, string(r)) {
			return r
		}
	}
	return ResourceUnknown
}

// IsPlantation reports whether r is one of the five production goods.
func (r Resource) IsPlantation() bool {
	switch r {
	case Corn, Indigo, Sugar, Tobacco, Coffee:
		return true
	default:
		return false
	}
}

// Claimable reports whether a face-up slot holding r can be offered.
func (r Resource) Claimable() bool {
	return r.IsPlantation() || r == Quarry
}

func (r Resource) String() string {
	return string(r)
}
