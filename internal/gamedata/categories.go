package gamedata

import (
	"slices"
	"strings"
)

// Pattern describes how a category node is turned into a list of names.
type Pattern int

const (
	// PatternList reads a sequence of scalars verbatim.
	PatternList Pattern = iota
	// PatternKeys reads the key names of a mapping.
	PatternKeys
	// PatternNestedKeys reads the key names of every group in the node.
	PatternNestedKeys
)

// String returns a human-readable pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternList:
		return "list"
	case PatternKeys:
		return "keys"
	case PatternNestedKeys:
		return "nested keys"
	default:
		return "unknown"
	}
}

// Category names one fixed section of the content document.
type Category string

const (
	CategoryClasses      Category = "Classes"
	CategoryNPCs         Category = "NPCs"
	CategoryEnemies      Category = "Enemies"
	CategoryItemStats    Category = "Item Stats"
	CategoryItemTypes    Category = "Item Types"
	CategoryWeapons      Category = "Weapons"
	CategoryArmor        Category = "Armor"
	CategoryConsumables  Category = "Consumables"
	CategoryUtilityItems Category = "Utility Items"
	CategoryRewardItems  Category = "Reward Items"
	CategoryLocations    Category = "Locations"
	CategoryArmoryList   Category = "Armory List"
	CategoryMagicList    Category = "Magic List"
)

// Document section and field names.
const (
	nodeAttributes    = "Attributes"
	nodeWearItem      = "Wear Item"
	nodeShopInventory = "Shop Inventory"

	fieldType        = "type"
	fieldDescription = "description"
	fieldNeighbors   = "neighbors"
	fieldCommands    = "commands"
	fieldNPC         = "npc"
)

type categoryDef struct {
	path    []string
	pattern Pattern
	noun    string // completes "valid ..."
}

var categories = map[Category]categoryDef{
	CategoryClasses:      {path: []string{"Classes"}, pattern: PatternKeys, noun: "class"},
	CategoryNPCs:         {path: []string{"NPCs"}, pattern: PatternNestedKeys, noun: "NPC"},
	CategoryEnemies:      {path: []string{"Enemies"}, pattern: PatternKeys, noun: "enemy"},
	CategoryItemStats:    {path: []string{nodeAttributes, "stats"}, pattern: PatternList, noun: "item stat"},
	CategoryItemTypes:    {path: []string{nodeAttributes, "type"}, pattern: PatternList, noun: "item type"},
	CategoryWeapons:      {path: []string{nodeWearItem, "weapons"}, pattern: PatternKeys, noun: "weapon"},
	CategoryArmor:        {path: []string{nodeWearItem, "armor"}, pattern: PatternKeys, noun: "armor"},
	CategoryConsumables:  {path: []string{"Consumables"}, pattern: PatternKeys, noun: "consumable"},
	CategoryUtilityItems: {path: []string{"Utility"}, pattern: PatternList, noun: "utility item"},
	CategoryRewardItems:  {path: []string{"Rewards"}, pattern: PatternList, noun: "reward item"},
	CategoryLocations:    {path: []string{"Locations"}, pattern: PatternKeys, noun: "location"},
	CategoryArmoryList:   {path: []string{nodeShopInventory, "armoryList"}, pattern: PatternList, noun: "armory item"},
	CategoryMagicList:    {path: []string{nodeShopInventory, "magicList"}, pattern: PatternList, noun: "magic item"},
}

var categoryOrder = []Category{
	CategoryClasses,
	CategoryNPCs,
	CategoryEnemies,
	CategoryItemStats,
	CategoryItemTypes,
	CategoryWeapons,
	CategoryArmor,
	CategoryConsumables,
	CategoryUtilityItems,
	CategoryRewardItems,
	CategoryLocations,
	CategoryArmoryList,
	CategoryMagicList,
}

// Categories returns every supported category in document order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// LookupCategory finds a category by name, ignoring case, spaces,
// dashes and underscores ("armory-list" matches "Armory List").
func LookupCategory(name string) (Category, bool) {
	want := normalize(name)
	for _, c := range categoryOrder {
		if normalize(string(c)) == want {
			return c, true
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// Known returns true if the category is registered.
func (c Category) Known() bool {
	_, ok := categories[c]
	return ok
}

// Path returns the document path of the category, or nil if unknown.
func (c Category) Path() []string {
	def, ok := categories[c]
	if !ok {
		return nil
	}
	return slices.Clone(def.path)
}

// Pattern returns the category's access pattern.
func (c Category) Pattern() (Pattern, bool) {
	def, ok := categories[c]
	return def.pattern, ok
}

// Expectation describes a member of the category, e.g. "valid weapon".
func (c Category) Expectation() string {
	def, ok := categories[c]
	if !ok {
		return "valid " + strings.ToLower(string(c))
	}
	return "valid " + def.noun
}
