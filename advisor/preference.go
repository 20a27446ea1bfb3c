package advisor

import (
	"cmp"
	"slices"

	"planter/game"
)

// PreferenceKey identifies an affirmed move. Resource and Building are empty
// when the move does not carry them.
type PreferenceKey struct {
	Role     game.Role
	Resource game.Resource
	Building game.Building
}

// KeyFor reduces m to the fields that matter for its kind.
func KeyFor(m game.Move) PreferenceKey {
	key := PreferenceKey{Role: m.Role}
	switch m.Kind() {
	case game.ClaimResource, game.ClaimDiscountToken:
		key.Resource = m.Resource
	case game.PurchaseBuilding:
		key.Building = m.Building
	}
	return key
}

// PreferenceEntry is one row of a PreferenceMemory snapshot.
type PreferenceEntry struct {
	Key   PreferenceKey
	Count int
}

// PreferenceMemory counts how often the advised player affirmed each move.
// Counts only grow until Reset; there is no cap.
type PreferenceMemory struct {
	counts map[PreferenceKey]int
}

func NewPreferenceMemory() *PreferenceMemory {
	return &PreferenceMemory{counts: make(map[PreferenceKey]int)}
}

// Affirm records one affirmation of m and returns the new count.
func (p *PreferenceMemory) Affirm(m game.Move) int {
	if p.counts == nil {
		p.counts = make(map[PreferenceKey]int)
	}
	key := KeyFor(m)
	p.counts[key]++
	return p.counts[key]
}

// Count returns how often m was affirmed. A nil memory counts zero.
func (p *PreferenceMemory) Count(m game.Move) int {
	if p == nil {
		return 0
	}
	return p.counts[KeyFor(m)]
}

// Len returns the number of distinct affirmed moves.
func (p *PreferenceMemory) Len() int {
	if p == nil {
		return 0
	}
	return len(p.counts)
}

// Reset forgets every affirmation.
func (p *PreferenceMemory) Reset() {
	p.counts = make(map[PreferenceKey]int)
}

// Snapshot returns the counts ordered by descending count, then by key.
func (p *PreferenceMemory) Snapshot() []PreferenceEntry {
	if p == nil {
		return nil
	}
	entries := make([]PreferenceEntry, 0, len(p.counts))
	for key, count := range p.counts {
		entries = append(entries, PreferenceEntry{Key: key, Count: count})
	}
	slices.SortFunc(entries, func(a, b PreferenceEntry) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Key.Role, b.Key.Role),
			cmp.Compare(a.Key.Resource, b.Key.Resource),
			cmp.Compare(a.Key.Building, b.Key.Building),
		)
	})
	return entries
}
