// Package validate checks a content document for broken references.
package validate

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fourforfour/eldanialight/internal/gamedata"
	"github.com/fourforfour/eldanialight/internal/telemetry"
	"github.com/fourforfour/eldanialight/internal/world"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDanglingNeighbor = "dangling_neighbor"
	codeOneWayLink       = "one_way_link"
	codeUnreachable      = "unreachable_location"
	codeUnknownNPC       = "unknown_npc"
	codeUnknownShopItem  = "unknown_shop_item"
	codeUnknownReward    = "unknown_reward"
	codeUnknownInventory = "unknown_inventory_item"
	codeUnknownItemType  = "unknown_item_type"
	codeUnknownItemStat  = "unknown_item_stat"
	codeHydrationFailed  = "hydration_failed"
	codeDuplicateName    = "duplicate_name"
)

type Issue struct {
	Severity Severity
	Code     string
	Category gamedata.Category
	Entry    string
	Message  string
}

type Report struct {
	Issues []Issue
}

// Errors returns the issues that make the content unusable.
func (r *Report) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the issues worth a look but not fatal.
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarn) }

func (r *Report) HasErrors() bool { return len(r.Errors()) > 0 }

func (r *Report) filter(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks every cross-reference in the document behind engine.
func Run(ctx context.Context, engine *gamedata.Engine) (*Report, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}

	ctx, span := telemetry.Tracer("validate").Start(ctx, "validate.run")
	defer span.End()

	m, err := world.Build(ctx, engine)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	issues := make([]Issue, 0)
	issues = append(issues, checkDuplicates(engine)...)
	issues = append(issues, checkLocations(engine, m)...)
	issues = append(issues, checkShops(engine)...)
	issues = append(issues, checkItems(engine)...)
	issues = append(issues, checkClasses(ctx, engine)...)
	issues = append(issues, checkEnemies(ctx, engine)...)

	report := &Report{Issues: issues}
	span.SetAttributes(
		attribute.Int("validate.errors", len(report.Errors())),
		attribute.Int("validate.warnings", len(report.Warnings())),
	)
	return report, nil
}

// checkDuplicates flags names declared twice in one category. NPCs may
// legitimately appear under more than one group, so they are skipped.
func checkDuplicates(engine *gamedata.Engine) []Issue {
	var issues []Issue
	for _, c := range gamedata.Categories() {
		if c == gamedata.CategoryNPCs {
			continue
		}
		seen := make(map[string]bool)
		for _, name := range engine.List(c) {
			if seen[name] {
				issues = append(issues, Issue{SeverityWarn, codeDuplicateName, c, name, "declared more than once"})
			}
			seen[name] = true
		}
	}
	return issues
}

func checkLocations(engine *gamedata.Engine, m *world.Map) []Issue {
	var issues []Issue
	names := m.Names()

	for _, name := range names {
		loc, _ := m.Get(name)
		for _, next := range loc.Neighbors {
			other, ok := m.Get(next)
			if !ok {
				issues = append(issues, Issue{SeverityError, codeDanglingNeighbor, gamedata.CategoryLocations, name,
					fmt.Sprintf("neighbor %q is not a location", next)})
				continue
			}
			if !other.HasNeighbor(name) {
				issues = append(issues, Issue{SeverityWarn, codeOneWayLink, gamedata.CategoryLocations, name,
					fmt.Sprintf("%q does not link back", next)})
			}
		}
		for _, npc := range loc.NPCs {
			if !engine.IsNPC(npc) {
				issues = append(issues, Issue{SeverityError, codeUnknownNPC, gamedata.CategoryLocations, name,
					fmt.Sprintf("npc %q is not an NPC", npc)})
			}
		}
	}

	if len(names) > 0 {
		reachable := m.Reachable(names[0])
		for _, name := range names {
			if !slices.Contains(reachable, name) {
				issues = append(issues, Issue{SeverityWarn, codeUnreachable, gamedata.CategoryLocations, name,
					fmt.Sprintf("cannot be reached from %q", names[0])})
			}
		}
	}
	return issues
}

// isItem returns true if name is something a player can carry.
func isItem(engine *gamedata.Engine, name string) bool {
	return engine.IsWeapon(name) || engine.IsArmor(name) ||
		engine.IsConsumable(name) || engine.IsUtilityItem(name)
}

func checkShops(engine *gamedata.Engine) []Issue {
	var issues []Issue
	for _, c := range []gamedata.Category{gamedata.CategoryArmoryList, gamedata.CategoryMagicList} {
		for _, item := range engine.List(c) {
			if !isItem(engine, item) {
				issues = append(issues, Issue{SeverityError, codeUnknownShopItem, c, item, "not a weapon, armor, consumable or utility item"})
			}
		}
	}
	return issues
}

// checkItems verifies the type and stat fields of wearable and
// consumable entries against the Attributes section.
func checkItems(engine *gamedata.Engine) []Issue {
	var issues []Issue
	for _, c := range []gamedata.Category{gamedata.CategoryWeapons, gamedata.CategoryArmor, gamedata.CategoryConsumables} {
		for _, name := range engine.List(c) {
			node, err := engine.Fetch(c, name)
			if err != nil {
				continue
			}
			if t := node.Path("type"); !t.IsMissing() && !engine.IsItemType(t.Text()) {
				issues = append(issues, Issue{SeverityWarn, codeUnknownItemType, c, name,
					fmt.Sprintf("type %q is not an item type", t.Text())})
			}
			if s := node.Path("stat"); !s.IsMissing() && !engine.IsItemStat(s.Text()) {
				issues = append(issues, Issue{SeverityWarn, codeUnknownItemStat, c, name,
					fmt.Sprintf("stat %q is not an item stat", s.Text())})
			}
		}
	}
	return issues
}

func checkClasses(ctx context.Context, engine *gamedata.Engine) []Issue {
	var issues []Issue
	for _, class := range engine.PlayerClasses() {
		player, err := engine.NewPlayer(ctx, class)
		if err != nil {
			issues = append(issues, hydrationIssue(gamedata.CategoryClasses, class, err))
			continue
		}
		for _, item := range player.Inventory {
			if !isItem(engine, item) {
				issues = append(issues, Issue{SeverityError, codeUnknownInventory, gamedata.CategoryClasses, class,
					fmt.Sprintf("inventory item %q does not exist", item)})
			}
		}
	}
	return issues
}

func checkEnemies(ctx context.Context, engine *gamedata.Engine) []Issue {
	var issues []Issue
	for _, name := range engine.Enemies() {
		enemy, err := engine.NewEnemy(ctx, name)
		if err != nil {
			issues = append(issues, hydrationIssue(gamedata.CategoryEnemies, name, err))
			continue
		}
		for _, reward := range enemy.Rewards {
			if !engine.IsRewardItem(reward) {
				issues = append(issues, Issue{SeverityError, codeUnknownReward, gamedata.CategoryEnemies, name,
					fmt.Sprintf("reward %q is not a reward item", reward)})
			}
		}
	}
	return issues
}

func hydrationIssue(c gamedata.Category, name string, err error) Issue {
	msg := err.Error()
	var hErr *gamedata.HydrationError
	if errors.As(err, &hErr) && hErr.Field != "" {
		msg = fmt.Sprintf("field %q: %v", hErr.Field, hErr.Err)
	}
	return Issue{SeverityError, codeHydrationFailed, c, name, msg}
}
