package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := StandardCatalog()

	t.Run("untabulated resources are worth zero", func(t *testing.T) {
		v, ok := c.BaseValue(ResourceUnknown)
		assert.False(t, ok)
		assert.Zero(t, v)

		v, ok = c.BaseValue(Coffee)
		assert.True(t, ok)
		assert.Equal(t, 5.0, v)
	})

	t.Run("unknown buildings cost zero", func(t *testing.T) {
		cost, ok := c.Cost("Lighthouse")
		assert.False(t, ok)
		assert.Zero(t, cost)
	})

	t.Run("cost-only buildings are never scored", func(t *testing.T) {
		def, ok := c.Lookup(Harbor)
		require.True(t, ok)
		assert.False(t, def.Scored)
		assert.Equal(t, 8, def.Cost)

		for _, def := range c.Scored() {
			assert.True(t, def.Scored, "%s should be scored", def.Name)
		}
		assert.Len(t, c.Scored(), 12)
	})

	t.Run("building names are normalised", func(t *testing.T) {
		b, ok := c.ParseBuilding("  small   market ")
		assert.True(t, ok)
		assert.Equal(t, SmallMarket, b)

		b, ok = c.ParseBuilding("Lighthouse")
		assert.False(t, ok)
		assert.Equal(t, Building("Lighthouse"), b)
	})
}

func TestParseResource(t *testing.T) {
	tests := map[string]Resource{
		"coffee":  Coffee,
		" Corn ":  Corn,
		"QUARRY":  Quarry,
		"None":    ResourceNone,
		"":        ResourceNone,
		"Cocoa":   ResourceUnknown,
		"tobacco": Tobacco,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseResource(input), "ParseResource(%q)", input)
	}
	assert.False(t, Quarry.IsPlantation())
	assert.True(t, Quarry.Claimable())
	assert.False(t, ResourceNone.Claimable())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, Settler, ParseRole("settler"))
	assert.Equal(t, Prospector, ParseRole(" PROSPECTOR"))
	assert.Equal(t, RoleUnknown, ParseRole("Governor"))

	var r Role
	require.NoError(t, r.UnmarshalText([]byte("builder")))
	assert.Equal(t, Builder, r)
	assert.ErrorIs(t, r.UnmarshalText([]byte("governor")), ErrUnknownRole)
}

func TestBoardNormalize(t *testing.T) {
	b := Board{
		OwnedBuildings: []Building{SmallMarket, "", SmallMarket, Hospice},
		DiscountTokens: -2,
		Money:          -1,
	}
	b.Normalize()

	assert.Equal(t, []Building{SmallMarket, Hospice}, b.OwnedBuildings)
	assert.Zero(t, b.DiscountTokens)
	assert.Zero(t, b.Money)
}

func TestBoardDistinctResources(t *testing.T) {
	b := NewBoard(Indigo)
	assert.Equal(t, 1, b.DistinctResources())

	b.ExtraResources = []Resource{Indigo, Corn, Corn}
	assert.Equal(t, 2, b.DistinctResources())
	assert.Equal(t, 1, b.HeldCount(Indigo), "Starting resource is not a held extra")
}

func TestBuildingCategoryText(t *testing.T) {
	raw, err := CategoryMarket.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Market", string(raw))

	var c BuildingCategory
	require.NoError(t, c.UnmarshalText([]byte("production")))
	assert.Equal(t, CategoryProduction, c)

	assert.Error(t, c.UnmarshalText([]byte("Lighthouse")))
	assert.Equal(t, CategoryProduction, c, "a failed parse leaves the value alone")
}
