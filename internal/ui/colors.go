package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/fourforfour/eldanialight/internal/world"
)

// locationColors maps location types to header colours.
var locationColors = map[world.LocationType]string{
	world.TypeSafe:   "#7FD47F",
	world.TypeShop:   "#E8C547",
	world.TypeDanger: "#E05A47",
}

const fallbackColor = "#C0C0C0"

// LocationColor returns the header colour for a location type.
// Unknown types fall back to grey.
func LocationColor(t world.LocationType) tcell.Color {
	hex, ok := locationColors[t]
	if !ok {
		hex = fallbackColor
	}
	return MustParseHexColor(hex)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
