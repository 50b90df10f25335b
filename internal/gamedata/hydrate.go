package gamedata

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/fourforfour/eldanialight/internal/entity"
	"github.com/fourforfour/eldanialight/internal/telemetry"
)

const (
	targetPlayer = "player"
	targetEnemy  = "enemy"
)

// NewPlayer builds a fresh player from the named class entry.
func (e *Engine) NewPlayer(ctx context.Context, class string) (*entity.Player, error) {
	_, span := telemetry.Tracer("gamedata").Start(ctx, "gamedata.hydrate_player")
	defer span.End()
	span.SetAttributes(attribute.String("player.class", class))

	node, err := e.fetch(CategoryClasses, class, "requested character class does not exist in game data")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	player, err := HydratePlayer(class, node)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		e.logger.Warn("class entry does not fit player", "class", class, "error", err)
		return nil, err
	}
	return player, nil
}

// NewEnemy builds a fresh enemy from the named enemy entry.
func (e *Engine) NewEnemy(ctx context.Context, name string) (*entity.Enemy, error) {
	_, span := telemetry.Tracer("gamedata").Start(ctx, "gamedata.hydrate_enemy")
	defer span.End()
	span.SetAttributes(attribute.String("enemy.name", name))

	node, err := e.fetch(CategoryEnemies, name, "requested enemy does not exist in game data")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	enemy, err := HydrateEnemy(name, node)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		e.logger.Warn("enemy entry does not fit enemy", "enemy", name, "error", err)
		return nil, err
	}
	span.SetAttributes(attribute.String("enemy.id", enemy.ID.String()))
	return enemy, nil
}

// HydratePlayer maps a class entry onto a Player. hp, mp, attack, defense
// and magic are required; description, gold and inventory are optional.
// Other fields are ignored.
func HydratePlayer(class string, node Node) (*entity.Player, error) {
	r := newFieldReader(targetPlayer, class, node)
	p := &entity.Player{
		Class:       class,
		Description: r.optionalString(fieldDescription),
		HP:          r.requiredInt("hp"),
		MP:          r.requiredInt("mp"),
		Attack:      r.requiredInt("attack"),
		Defense:     r.requiredInt("defense"),
		Magic:       r.requiredInt("magic"),
		Gold:        r.optionalInt("gold"),
		Inventory:   r.optionalStrings("inventory"),
	}
	if r.err != nil {
		return nil, r.err
	}
	p.MaxHP = p.HP
	p.MaxMP = p.MP
	return p, nil
}

// HydrateEnemy maps an enemy entry onto an Enemy. hp, attack and defense
// are required; description, magic, gold and rewards are optional.
func HydrateEnemy(name string, node Node) (*entity.Enemy, error) {
	r := newFieldReader(targetEnemy, name, node)
	en := &entity.Enemy{
		Name:        name,
		Description: r.optionalString(fieldDescription),
		HP:          r.requiredInt("hp"),
		Attack:      r.requiredInt("attack"),
		Defense:     r.requiredInt("defense"),
		Magic:       r.optionalInt("magic"),
		Gold:        r.optionalInt("gold"),
		Rewards:     r.optionalStrings("rewards"),
	}
	if r.err != nil {
		return nil, r.err
	}
	en.ID = uuid.New()
	en.MaxHP = en.HP
	return en, nil
}

// fieldReader reads named fields from an entry, keeping the first error.
// Once an error is recorded every further read returns a zero value.
type fieldReader struct {
	target string
	entry  string
	node   Node
	err    error
}

func newFieldReader(target, entry string, node Node) *fieldReader {
	r := &fieldReader{target: target, entry: entry, node: node}
	if !node.IsMapping() {
		r.fail("", fmt.Errorf("%w: entry is a %s, not a mapping", ErrFieldKind, node.kind()))
	}
	return r
}

func (r *fieldReader) fail(field string, err error) {
	if r.err == nil {
		r.err = &HydrationError{Target: r.target, Entry: r.entry, Field: field, Err: err}
	}
}

func (r *fieldReader) field(name string) (Node, bool) {
	if r.err != nil {
		return Node{}, false
	}
	n := r.node.Path(name)
	return n, !n.IsMissing()
}

func (r *fieldReader) requiredInt(name string) int {
	n, ok := r.field(name)
	if !ok {
		r.fail(name, ErrMissingField)
		return 0
	}
	return r.toInt(name, n)
}

func (r *fieldReader) optionalInt(name string) int {
	n, ok := r.field(name)
	if !ok {
		return 0
	}
	return r.toInt(name, n)
}

func (r *fieldReader) toInt(name string, n Node) int {
	v, err := n.Int()
	if err != nil {
		r.fail(name, errors.Join(ErrFieldKind, err))
		return 0
	}
	return v
}

func (r *fieldReader) optionalString(name string) string {
	n, ok := r.field(name)
	if !ok {
		return ""
	}
	if !n.IsScalar() {
		r.fail(name, fmt.Errorf("%w: expected scalar, got %s", ErrFieldKind, n.kind()))
		return ""
	}
	return n.Text()
}

func (r *fieldReader) optionalStrings(name string) []string {
	n, ok := r.field(name)
	if !ok {
		return nil
	}
	if !n.IsSequence() {
		r.fail(name, fmt.Errorf("%w: expected sequence, got %s", ErrFieldKind, n.kind()))
		return nil
	}
	out := make([]string, 0, len(n.Elements()))
	for i, elem := range n.Elements() {
		if !elem.IsScalar() {
			r.fail(name, fmt.Errorf("%w: element %d is a %s", ErrFieldKind, i, elem.kind()))
			return nil
		}
		out = append(out, elem.Text())
	}
	return out
}
