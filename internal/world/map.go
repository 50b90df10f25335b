package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fourforfour/eldanialight/internal/gamedata"
	"github.com/fourforfour/eldanialight/internal/telemetry"
)

var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrNoRoute         = errors.New("no route between locations")
)

// Map holds every location and the links between them.
type Map struct {
	locations map[string]*Location
	order     []string
}

// Build reads every location from the engine.
func Build(ctx context.Context, engine *gamedata.Engine) (*Map, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "world.build")
	defer span.End()

	m := &Map{locations: make(map[string]*Location)}

	for _, name := range engine.Locations() {
		if _, seen := m.locations[name]; seen {
			continue
		}
		loc, err := readLocation(engine, name)
		if err != nil {
			return nil, fmt.Errorf("reading location %q: %w", name, err)
		}
		m.locations[name] = loc
		m.order = append(m.order, name)
	}

	span.SetAttributes(attribute.Int("world.locations", len(m.order)))
	return m, nil
}

func readLocation(engine *gamedata.Engine, name string) (*Location, error) {
	locType, err := engine.LocationType(name)
	if err != nil {
		return nil, err
	}
	desc, err := engine.LocationDescription(name)
	if err != nil {
		return nil, err
	}
	neighbors, err := engine.LocationNeighbors(name)
	if err != nil {
		return nil, err
	}
	commands, err := engine.LocationCommands(name)
	if err != nil {
		return nil, err
	}
	npc, err := engine.LocationNPC(name)
	if err != nil {
		return nil, err
	}

	return &Location{
		Name:        name,
		Type:        LocationType(locType),
		Description: desc,
		Neighbors:   neighbors,
		Commands:    commands,
		NPCs:        NPCNames(npc),
	}, nil
}

// NPCNames flattens a location's npc field into NPC names. A scalar names
// one NPC; a mapping or sequence names one per scalar value. Blank names
// are dropped.
func NPCNames(npc gamedata.Node) []string {
	var raw []string
	if npc.IsScalar() {
		raw = []string{npc.Text()}
	} else {
		raw = npc.Strings()
	}

	names := []string{}
	for _, n := range raw {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Names returns every location name in document order.
func (m *Map) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get returns the named location.
func (m *Map) Get(name string) (*Location, bool) {
	loc, ok := m.locations[name]
	return loc, ok
}

// Len returns the number of locations.
func (m *Map) Len() int {
	return len(m.order)
}

// CanTravel returns true if to is a known neighbor of from.
func (m *Map) CanTravel(from, to string) bool {
	loc, ok := m.locations[from]
	if !ok {
		return false
	}
	if _, ok := m.locations[to]; !ok {
		return false
	}
	return loc.HasNeighbor(to)
}

// Route returns the shortest list of locations leading from one place to
// another, both ends included. Ties are broken by neighbor order.
func (m *Map) Route(from, to string) ([]string, error) {
	if _, ok := m.locations[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	if _, ok := m.locations[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return buildPath(prev, to), nil
		}
		for _, next := range m.locations[cur].Neighbors {
			if _, known := m.locations[next]; !known {
				continue
			}
			if _, visited := prev[next]; visited {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return nil, fmt.Errorf("%w: %q to %q", ErrNoRoute, from, to)
}

func buildPath(prev map[string]string, to string) []string {
	var path []string
	for cur := to; cur != ""; cur = prev[cur] {
		path = append([]string{cur}, path...)
	}
	return path
}

// Reachable returns every location that can be reached from start,
// start included, in visiting order.
func (m *Map) Reachable(start string) []string {
	if _, ok := m.locations[start]; !ok {
		return nil
	}
	seen := map[string]bool{start: true}
	out := []string{start}
	for i := 0; i < len(out); i++ {
		for _, next := range m.locations[out[i]].Neighbors {
			if _, known := m.locations[next]; known && !seen[next] {
				seen[next] = true
				out = append(out, next)
			}
		}
	}
	return out
}
