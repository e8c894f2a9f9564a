package service

import (
	"errors"
	"testing"

	"pokedex/app/internal/domain"
)

const testArtworkURL = "https://img.example.com/artwork/"

func TestMapEntry(t *testing.T) {
	mapper := NewEntryMapper(testArtworkURL)

	tests := []struct {
		name      string
		raw       domain.PokemonListResult
		dexNumber int
		display   string
	}{
		{
			name:      "trailing slash",
			raw:       domain.PokemonListResult{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
			dexNumber: 1,
			display:   "Bulbasaur",
		},
		{
			name:      "no trailing slash",
			raw:       domain.PokemonListResult{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25"},
			dexNumber: 25,
			display:   "Pikachu",
		},
		{
			name:      "form id",
			raw:       domain.PokemonListResult{Name: "deoxys-attack", URL: "https://pokeapi.co/api/v2/pokemon/10001/"},
			dexNumber: 10001,
			display:   "Deoxys-Attack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := mapper.MapEntry(tt.raw)
			if err != nil {
				t.Fatalf("MapEntry failed: %v", err)
			}

			if entry.Name != tt.raw.Name {
				t.Errorf("expected name %s, got %s", tt.raw.Name, entry.Name)
			}
			if entry.DexNumber != tt.dexNumber {
				t.Errorf("expected dex number %d, got %d", tt.dexNumber, entry.DexNumber)
			}
			if entry.DisplayName != tt.display {
				t.Errorf("expected display name %s, got %s", tt.display, entry.DisplayName)
			}
			if entry.DisplayImageURL != mapper.ArtworkURL(tt.dexNumber) {
				t.Errorf("unexpected image url %s", entry.DisplayImageURL)
			}
		})
	}
}

func TestArtworkURL(t *testing.T) {
	got := NewEntryMapper(testArtworkURL).ArtworkURL(7)
	if got != "https://img.example.com/artwork/7.png" {
		t.Errorf("unexpected artwork url: %s", got)
	}
}

func TestMapEntry_Malformed(t *testing.T) {
	mapper := NewEntryMapper(testArtworkURL)

	raws := []domain.PokemonListResult{
		{Name: "missingno", URL: "https://pokeapi.co/api/v2/pokemon/missingno/"},
		{Name: "zero", URL: "https://pokeapi.co/api/v2/pokemon/0/"},
		{Name: "glued", URL: "https://pokeapi.co/api/v2/pokemon/abc12/"},
		{Name: "empty", URL: ""},
		{Name: "huge", URL: "https://pokeapi.co/api/v2/pokemon/99999999999999999999999/"},
		{Name: "  ", URL: "https://pokeapi.co/api/v2/pokemon/4/"},
	}

	for _, raw := range raws {
		_, err := mapper.MapEntry(raw)

		var malformed *MalformedEntryError
		if !errors.As(err, &malformed) {
			t.Errorf("%q: expected MalformedEntryError, got %v", raw.URL, err)
		}
	}
}
