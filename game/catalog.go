package game

import (
	"fmt"
	"strings"
)

// Building names a building from the full two-player set.
type Building string

const NoBuilding Building = ""

const (
	SmallIndigoPlant Building = "Small Indigo Plant"
	SmallSugarMill   Building = "Small Sugar Mill"
	SmallMarket      Building = "Small Market"
	Hacienda         Building = "Hacienda"
	ConstructionHut  Building = "Construction Hut"
	SmallWarehouse   Building = "Small Warehouse"
	Hospice          Building = "Hospice"
	IndigoPlant      Building = "Indigo Plant"
	SugarMill        Building = "Sugar Mill"
	TobaccoStorage   Building = "Tobacco Storage"
	CoffeeRoaster    Building = "Coffee Roaster"
	LargeMarket      Building = "Large Market"

	Office         Building = "Office"
	LargeWarehouse Building = "Large Warehouse"
	Factory        Building = "Factory"
	University     Building = "University"
	Harbor         Building = "Harbor"
	Wharf          Building = "Wharf"
	GuildHall      Building = "Guild Hall"
	Residence      Building = "Residence"
	Fortress       Building = "Fortress"
	CustomsHouse   Building = "Customs House"
	CityHall       Building = "City Hall"
)

func (b Building) String() string {
	return string(b)
}

// BuildingCategory groups buildings by the bonus they earn when scored.
type BuildingCategory int

const (
	CategoryNone BuildingCategory = iota
	CategoryProduction
	CategoryMarket
	CategoryColonist
	CategoryPlantation
	CategoryStorage
	CategoryCivic
)

var categoryNames = map[BuildingCategory]string{
	CategoryNone:       "None",
	CategoryProduction: "Production",
	CategoryMarket:     "Market",
	CategoryColonist:   "Colonist",
	CategoryPlantation: "Plantation",
	CategoryStorage:    "Storage",
	CategoryCivic:      "Civic",
}

func (c BuildingCategory) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Unknown"
}

func (c BuildingCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *BuildingCategory) UnmarshalText(text []byte) error {
	for category, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(string(text))) {
			*c = category
			return nil
		}
	}
	return fmt.Errorf("unknown building category %q", string(text))
}

// BuildingDef is one catalog row.
type BuildingDef struct {
	Name     Building         `json:"name"`
	Cost     int              `json:"cost"`
	Category BuildingCategory `json:"category"`
	Resource Resource         `json:"resource,omitempty"`
	Value    float64          `json:"value"`
	// Scored buildings are offered by the advisor. The rest only exist so that
	// an opponent purchase can be charged correctly.
	Scored bool `json:"scored"`
}

// Catalog holds the static tables the advisor scores against.
type Catalog struct {
	values    map[Resource]float64
	buildings []BuildingDef
	index     map[Building]int
	weak      Resource
}

// StandardCatalog returns the two-player base catalog.
func StandardCatalog() *Catalog {
	c := &Catalog{
		values: map[Resource]float64{
			Corn:    2,
			Indigo:  3,
			Sugar:   3.5,
			Tobacco: 4.5,
			Coffee:  5,
		},
		index: make(map[Building]int),
		weak:  Corn,
	}

	add := func(name Building, cost int, category BuildingCategory, resource Resource, value float64) {
		c.index[name] = len(c.buildings)
		c.buildings = append(c.buildings, BuildingDef{
			Name:     name,
			Cost:     cost,
			Category: category,
			Resource: resource,
			Value:    value,
			Scored:   true,
		})
	}
	costOnly := func(name Building, cost int, category BuildingCategory) {
		c.index[name] = len(c.buildings)
		c.buildings = append(c.buildings, BuildingDef{Name: name, Cost: cost, Category: category})
	}

	add(SmallIndigoPlant, 1, CategoryProduction, Indigo, 3)
	add(SmallSugarMill, 2, CategoryProduction, Sugar, 3)
	add(SmallMarket, 1, CategoryMarket, "", 2.5)
	add(Hacienda, 2, CategoryPlantation, "", 2)
	add(ConstructionHut, 2, CategoryPlantation, "", 2)
	add(SmallWarehouse, 3, CategoryStorage, "", 1.5)
	add(Hospice, 4, CategoryColonist, "", 3)
	add(IndigoPlant, 3, CategoryProduction, Indigo, 3.5)
	add(SugarMill, 4, CategoryProduction, Sugar, 4)
	add(TobaccoStorage, 5, CategoryProduction, Tobacco, 5)
	add(CoffeeRoaster, 6, CategoryProduction, Coffee, 5.5)
	add(LargeMarket, 5, CategoryMarket, "", 4)

	costOnly(Office, 5, CategoryMarket)
	costOnly(LargeWarehouse, 6, CategoryStorage)
	costOnly(Factory, 7, CategoryProduction)
	costOnly(University, 8, CategoryColonist)
	costOnly(Harbor, 8, CategoryStorage)
	costOnly(Wharf, 9, CategoryStorage)
	costOnly(GuildHall, 10, CategoryCivic)
	costOnly(Residence, 10, CategoryCivic)
	costOnly(Fortress, 10, CategoryCivic)
	costOnly(CustomsHouse, 10, CategoryCivic)
	costOnly(CityHall, 10, CategoryCivic)

	return c
}

// BaseValue returns the tabulated value of r. Untabulated resources report
// (0, false).
func (c *Catalog) BaseValue(r Resource) (float64, bool) {
	v, ok := c.values[r]
	return v, ok
}

// WeakResource is the starting resource that gains least from duplication.
func (c *Catalog) WeakResource() Resource {
	return c.weak
}

// Lookup returns the definition of b, or (zero, false) for unknown names.
func (c *Catalog) Lookup(b Building) (BuildingDef, bool) {
	i, ok := c.index[b]
	if !ok {
		return BuildingDef{}, false
	}
	return c.buildings[i], true
}

// Cost returns the purchase price of b. Unknown buildings cost (0, false).
func (c *Catalog) Cost(b Building) (int, bool) {
	def, ok := c.Lookup(b)
	if !ok {
		return 0, false
	}
	return def.Cost, true
}

// Scored returns the buildings the advisor may recommend, in catalog order.
func (c *Catalog) Scored() []BuildingDef {
	defs := make([]BuildingDef, 0, len(c.buildings))
	for _, def := range c.buildings {
		if def.Scored {
			defs = append(defs, def)
		}
	}
	return defs
}

// All returns every building in catalog order.
func (c *Catalog) All() []BuildingDef {
	defs := make([]BuildingDef, len(c.buildings))
	copy(defs, c.buildings)
	return defs
}

// ParseBuilding resolves a loosely written name ("small  market") onto the
// catalog spelling. Names it cannot resolve are returned trimmed and with
// ok == false; callers decide whether to keep them.
func (c *Catalog) ParseBuilding(name string) (Building, bool) {
	normalized := strings.Join(strings.Fields(name), " ")
	if normalized == "" {
		return NoBuilding, false
	}
	for _, def := range c.buildings {
		if strings.EqualFold(normalized, string(def.Name)) {
			return def.Name, true
		}
	}
	return Building(normalized), false
}
