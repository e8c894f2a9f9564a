package domain

import "encoding/json"

// PokemonListResult is one raw item of a list page as returned by the API.
type PokemonListResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonListPage struct {
	Count    int                 `json:"count"`    // Total entries available
	Next     *string             `json:"next"`     // URL of the next page, nil on the last one
	Previous *string             `json:"previous"` // URL of the previous page, nil on the first one
	Results  []PokemonListResult `json:"results"`  // Entries of this page in API order
}

// PokemonListEntry is a list item ready to be rendered in the grid.
type PokemonListEntry struct {
	Name            string `json:"name"`              // API identity, e.g. "mr-mime"
	DisplayName     string `json:"display_name"`      // Title-cased name, e.g. "Mr-Mime"
	DisplayImageURL string `json:"display_image_url"` // Official artwork for the dex number
	DexNumber       int    `json:"dex_number"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type Artwork struct {
	FrontDefault string `json:"front_default"`
}

type OtherSprites struct {
	OfficialArtwork Artwork `json:"official-artwork"`
}

type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// PokemonDetail holds the fields of the detail endpoint that are read here.
// Raw keeps the full response body for callers that need the rest.
type PokemonDetail struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience int              `json:"base_experience"`
	Types          []PokemonType    `json:"types"`
	Stats          []PokemonStat    `json:"stats"`
	Abilities      []PokemonAbility `json:"abilities"`
	Sprites        Sprites          `json:"sprites"`
	Raw            json.RawMessage  `json:"-"`
}

// ImageURL prefers the official artwork and falls back to the default sprite.
func (d *PokemonDetail) ImageURL() string {
	if d.Sprites.Other.OfficialArtwork.FrontDefault != "" {
		return d.Sprites.Other.OfficialArtwork.FrontDefault
	}
	return d.Sprites.FrontDefault
}

func (d *PokemonDetail) TypeNames() []string {
	names := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		names = append(names, t.Type.Name)
	}
	return names
}
