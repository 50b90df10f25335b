package gamedata

import (
	"log/slog"
	"slices"
)

// Engine answers queries against a Store. It holds no state of its own,
// so one Engine may be shared freely between goroutines.
type Engine struct {
	store  *Store
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for rejected lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over the given store. A nil store behaves
// as an empty document: lists are empty and every fetch is rejected.
func NewEngine(store *Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger.Debug("game data ready", "source", store.Source(), "sections", store.Root().Keys())
	return e
}

// Store returns the store the engine reads from.
func (e *Engine) Store() *Store {
	return e.store
}

// List returns the names in a category, in document order. Unknown
// categories and absent sections produce an empty list.
func (e *Engine) List(c Category) []string {
	def, ok := categories[c]
	if !ok {
		return []string{}
	}
	node := e.store.Root().Path(def.path...)

	switch def.pattern {
	case PatternList:
		return node.Strings()
	case PatternKeys:
		return node.Keys()
	case PatternNestedKeys:
		// Names defined in more than one group appear once per group.
		names := []string{}
		for _, group := range node.Elements() {
			names = append(names, group.Keys()...)
		}
		return names
	default:
		return []string{}
	}
}

// Exists returns true if name is part of the category.
func (e *Engine) Exists(c Category, name string) bool {
	return slices.Contains(e.List(c), name)
}

// Fetch returns the node for a named entry after checking that the name
// belongs to the category. For nested categories the first group that
// defines the name wins; for lists the matching element is returned.
func (e *Engine) Fetch(c Category, name string) (Node, error) {
	return e.fetch(c, name, "please input a "+c.Expectation())
}

func (e *Engine) fetch(c Category, name, reason string) (Node, error) {
	if !e.Exists(c, name) {
		e.logger.Debug("lookup rejected", "category", string(c), "name", name)
		return Node{}, &NotFoundError{Category: c, Name: name, Reason: reason}
	}

	def := categories[c]
	node := e.store.Root().Path(def.path...)

	switch def.pattern {
	case PatternKeys:
		return node.Path(name), nil
	case PatternNestedKeys:
		for _, group := range node.Elements() {
			if entry := group.Path(name); !entry.IsMissing() {
				return entry, nil
			}
		}
	case PatternList:
		for _, elem := range node.Elements() {
			if elem.Text() == name {
				return elem, nil
			}
		}
	}
	return Node{}, &NotFoundError{Category: c, Name: name, Reason: reason}
}

// Player classes

func (e *Engine) PlayerClasses() []string { return e.List(CategoryClasses) }

func (e *Engine) IsPlayerClass(name string) bool { return e.Exists(CategoryClasses, name) }

// NPCs

// NPCs returns NPC names across every group. A name defined in two groups
// is listed twice.
func (e *Engine) NPCs() []string { return e.List(CategoryNPCs) }

func (e *Engine) IsNPC(name string) bool { return e.Exists(CategoryNPCs, name) }

func (e *Engine) NPC(name string) (Node, error) { return e.Fetch(CategoryNPCs, name) }

// Enemies

func (e *Engine) Enemies() []string { return e.List(CategoryEnemies) }

func (e *Engine) IsEnemy(name string) bool { return e.Exists(CategoryEnemies, name) }

func (e *Engine) Enemy(name string) (Node, error) { return e.Fetch(CategoryEnemies, name) }

// Item attributes

func (e *Engine) ItemStats() []string { return e.List(CategoryItemStats) }

func (e *Engine) IsItemStat(name string) bool { return e.Exists(CategoryItemStats, name) }

func (e *Engine) ItemTypes() []string { return e.List(CategoryItemTypes) }

func (e *Engine) IsItemType(name string) bool { return e.Exists(CategoryItemTypes, name) }

// Weapons

func (e *Engine) Weapons() []string { return e.List(CategoryWeapons) }

func (e *Engine) IsWeapon(name string) bool { return e.Exists(CategoryWeapons, name) }

func (e *Engine) Weapon(name string) (Node, error) { return e.Fetch(CategoryWeapons, name) }

// Armor

func (e *Engine) Armors() []string { return e.List(CategoryArmor) }

func (e *Engine) IsArmor(name string) bool { return e.Exists(CategoryArmor, name) }

func (e *Engine) Armor(name string) (Node, error) { return e.Fetch(CategoryArmor, name) }

// Consumables

func (e *Engine) Consumables() []string { return e.List(CategoryConsumables) }

func (e *Engine) IsConsumable(name string) bool { return e.Exists(CategoryConsumables, name) }

func (e *Engine) Consumable(name string) (Node, error) { return e.Fetch(CategoryConsumables, name) }

// Utility and reward items

func (e *Engine) UtilityItems() []string { return e.List(CategoryUtilityItems) }

func (e *Engine) IsUtilityItem(name string) bool { return e.Exists(CategoryUtilityItems, name) }

func (e *Engine) RewardItems() []string { return e.List(CategoryRewardItems) }

func (e *Engine) IsRewardItem(name string) bool { return e.Exists(CategoryRewardItems, name) }

// Shops

// ArmoryList returns the items sold by the armory.
func (e *Engine) ArmoryList() []string { return e.List(CategoryArmoryList) }

// MagicList returns the items sold by the magic shop.
func (e *Engine) MagicList() []string { return e.List(CategoryMagicList) }

// Locations

func (e *Engine) Locations() []string { return e.List(CategoryLocations) }

func (e *Engine) IsLocation(name string) bool { return e.Exists(CategoryLocations, name) }

// Location returns the whole entry for a location.
func (e *Engine) Location(name string) (Node, error) { return e.Fetch(CategoryLocations, name) }

func (e *Engine) locationField(name, field string) (Node, error) {
	loc, err := e.Fetch(CategoryLocations, name)
	if err != nil {
		return Node{}, err
	}
	return loc.Path(field), nil
}

// LocationType returns the location's type, e.g. "safe" or "shop".
func (e *Engine) LocationType(name string) (string, error) {
	node, err := e.locationField(name, fieldType)
	if err != nil {
		return "", err
	}
	return node.Text(), nil
}

// LocationDescription returns the text shown on arrival.
func (e *Engine) LocationDescription(name string) (string, error) {
	node, err := e.locationField(name, fieldDescription)
	if err != nil {
		return "", err
	}
	return node.Text(), nil
}

// LocationNeighbors returns the names of the locations reachable from here.
func (e *Engine) LocationNeighbors(name string) ([]string, error) {
	node, err := e.locationField(name, fieldNeighbors)
	if err != nil {
		return nil, err
	}
	return node.Strings(), nil
}

// LocationCommands returns the commands available at the location.
func (e *Engine) LocationCommands(name string) ([]string, error) {
	node, err := e.locationField(name, fieldCommands)
	if err != nil {
		return nil, err
	}
	return node.Strings(), nil
}

// LocationNPC returns the location's npc field. It is usually a scalar
// NPC name but may be a nested node, or missing.
func (e *Engine) LocationNPC(name string) (Node, error) {
	return e.locationField(name, fieldNPC)
}
