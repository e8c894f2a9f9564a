package domain

import "testing"

func TestColorARGB(t *testing.T) {
	tests := []struct {
		color Color
		argb  int32
	}{
		{Color{R: 0xFF, G: 0xFF, B: 0xFF}, -1},
		{Color{}, -16777216},
		{Color{R: 0xFF}, -65536},
		{Color{R: 0x12, G: 0x34, B: 0x56}, -15584170},
	}

	for _, tt := range tests {
		if got := tt.color.ARGB(); got != tt.argb {
			t.Errorf("%s: expected %d, got %d", tt.color, tt.argb, got)
		}
		if back := ColorFromARGB(tt.argb); back != tt.color {
			t.Errorf("%d: expected %s, got %s", tt.argb, tt.color, back)
		}
	}
}

func TestDetailRoute(t *testing.T) {
	color := Color{R: 0x78, G: 0xC8, B: 0x50}
	route := DetailRoute(color, "bulbasaur")

	if route != "pokemon_detail_screen/-8861616/bulbasaur" {
		t.Errorf("unexpected route: %s", route)
	}

	gotColor, gotName, err := ParseDetailRoute(route)
	if err != nil {
		t.Fatalf("ParseDetailRoute failed: %v", err)
	}
	if gotColor != color || gotName != "bulbasaur" {
		t.Errorf("expected %s/bulbasaur, got %s/%s", color, gotColor, gotName)
	}
}

func TestParseDetailRoute_Invalid(t *testing.T) {
	routes := []string{
		"",
		"pokemon_detail_screen/-1",
		"pokemon_detail_screen/-1/",
		"pokemon_list_screen/-1/pikachu",
		"pokemon_detail_screen/red/pikachu",
		"pokemon_detail_screen/99999999999/pikachu",
		"pokemon_detail_screen/-1/pikachu/extra",
	}

	for _, route := range routes {
		if _, _, err := ParseDetailRoute(route); err == nil {
			t.Errorf("expected error for %q", route)
		}
	}
}

func TestResult(t *testing.T) {
	ok := Success(42)
	if !ok.IsSuccess() || ok.IsError() || ok.IsLoading() || ok.Value() != 42 || ok.Message() != "" {
		t.Errorf("unexpected success result: %+v", ok)
	}

	failed := Error[int]("boom")
	if !failed.IsError() || failed.IsSuccess() || failed.Value() != 0 || failed.Message() != "boom" {
		t.Errorf("unexpected error result: %+v", failed)
	}

	loading := Loading[int]()
	if !loading.IsLoading() || loading.Status() != StatusLoading {
		t.Errorf("unexpected loading result: %+v", loading)
	}
}

func TestPokemonDetailImageURL(t *testing.T) {
	detail := &PokemonDetail{}
	detail.Sprites.FrontDefault = "front.png"
	if detail.ImageURL() != "front.png" {
		t.Errorf("expected fallback to front sprite, got %s", detail.ImageURL())
	}

	detail.Sprites.Other.OfficialArtwork.FrontDefault = "artwork.png"
	if detail.ImageURL() != "artwork.png" {
		t.Errorf("expected artwork, got %s", detail.ImageURL())
	}
}
