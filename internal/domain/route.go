package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const DetailRoutePrefix = "pokemon_detail_screen"

// DetailRoute builds the navigation route of a detail screen:
// pokemon_detail_screen/{colorArgbInteger}/{pokemonName}
func DetailRoute(color Color, name string) string {
	return fmt.Sprintf("%s/%d/%s", DetailRoutePrefix, color.ARGB(), name)
}

// ParseDetailRoute is the inverse of DetailRoute.
func ParseDetailRoute(route string) (Color, string, error) {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	if len(parts) != 3 || parts[0] != DetailRoutePrefix {
		return Color{}, "", fmt.Errorf("invalid detail route: %q", route)
	}

	argb, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return Color{}, "", fmt.Errorf("invalid color in route %q: %w", route, err)
	}

	name := parts[2]
	if name == "" {
		return Color{}, "", fmt.Errorf("missing pokemon name in route %q", route)
	}

	return ColorFromARGB(int32(argb)), name, nil
}
