package game

import "planter/utils"

// Board holds one player's accumulated holdings.
type Board struct {
	StartingResource Resource
	ExtraResources   []Resource // acquisition order
	DiscountTokens   int
	OwnedBuildings   []Building // set semantics, acquisition order
	Money            int
}

// NewBoard returns a board in its start-of-game configuration.
func NewBoard(start Resource) Board {
	return Board{
		StartingResource: start,
		Money:            StartingMoney,
	}
}

// Owns reports whether b is already built.
func (b *Board) Owns(building Building) bool {
	return utils.FindIndex(b.OwnedBuildings, building) >= 0
}

// HeldCount counts extra holdings of r. The starting resource is not counted.
func (b *Board) HeldCount(r Resource) int {
	return utils.Count(b.ExtraResources, r)
}

// HasResource reports whether r is present anywhere on the board.
func (b *Board) HasResource(r Resource) bool {
	return b.StartingResource == r || b.HeldCount(r) > 0
}

// DistinctResources counts the plantation types on the board, start included.
func (b *Board) DistinctResources() int {
	n := 0
	for _, r := range Plantations() {
		if b.HasResource(r) {
			n++
		}
	}
	return n
}

// AddBuilding adds building unless it is already owned.
func (b *Board) AddBuilding(building Building) bool {
	var added bool
	b.OwnedBuildings, added = utils.AppendUnique(b.OwnedBuildings, building)
	return added
}

// Pay deducts amount from the board's money, flooring at zero. It returns the
// amount actually paid.
func (b *Board) Pay(amount int) int {
	if amount <= 0 {
		return 0
	}
	paid := min(amount, b.Money)
	b.Money -= paid
	return paid
}

// Normalize restores the board invariants on externally supplied data:
// no duplicate buildings and no negative counters.
func (b *Board) Normalize() {
	var buildings []Building
	for _, building := range b.OwnedBuildings {
		if building == NoBuilding {
			continue
		}
		buildings, _ = utils.AppendUnique(buildings, building)
	}
	b.OwnedBuildings = buildings
	b.DiscountTokens = max(0, b.DiscountTokens)
	b.Money = max(0, b.Money)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	b.ExtraResources = utils.Clone(b.ExtraResources)
	b.OwnedBuildings = utils.Clone(b.OwnedBuildings)
	return b
}
