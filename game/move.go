package game

import "fmt"

// MoveKind tags the variant a move belongs to.
type MoveKind int

const (
	KindNone MoveKind = iota
	ClaimResource
	ClaimDiscountToken
	TakeSecondaryRole
	PurchaseBuilding
)

var kindNames = map[MoveKind]string{
	KindNone:           "none",
	ClaimResource:      "claim_resource",
	ClaimDiscountToken: "claim_discount_token",
	TakeSecondaryRole:  "take_secondary_role",
	PurchaseBuilding:   "purchase_building",
}

func (k MoveKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Move is a chosen action: a role plus the optional resource or building it
// acts on.
type Move struct {
	Role     Role
	Resource Resource
	Building Building
}

// Kind classifies m. A Settler move on the Quarry is a discount-token claim.
func (m Move) Kind() MoveKind {
	switch {
	case m.Role == Settler && m.Resource == Quarry:
		return ClaimDiscountToken
	case m.Role == Settler:
		return ClaimResource
	case m.Role == Builder:
		return PurchaseBuilding
	case m.Role.Secondary():
		return TakeSecondaryRole
	default:
		return KindNone
	}
}

// Complete reports whether m carries every field its kind needs.
func (m Move) Complete() bool {
	switch m.Kind() {
	case ClaimResource:
		return m.Resource.IsPlantation()
	case ClaimDiscountToken, TakeSecondaryRole:
		return true
	case PurchaseBuilding:
		return m.Building != NoBuilding
	default:
		return false
	}
}

func (m Move) String() string {
	switch m.Kind() {
	case ClaimResource:
		return fmt.Sprintf("%s: take %s", m.Role, m.Resource)
	case ClaimDiscountToken:
		return fmt.Sprintf("%s: take a quarry", m.Role)
	case PurchaseBuilding:
		if m.Building == NoBuilding {
			return fmt.Sprintf("%s: build nothing", m.Role)
		}
		return fmt.Sprintf("%s: build %s", m.Role, m.Building)
	default:
		return m.Role.String()
	}
}
