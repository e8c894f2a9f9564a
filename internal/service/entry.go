package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pokedex/app/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matches the trailing numeric path segment of an entry URL such as
// https://pokeapi.co/api/v2/pokemon/25/
var dexNumberRegex = regexp.MustCompile(`/(\d+)/?$`)

// MalformedEntryError reports a list item that cannot become a PokemonListEntry.
type MalformedEntryError struct {
	Name   string
	URL    string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed pokemon entry (name=%q, url=%q): %s", e.Name, e.URL, e.Reason)
}

// EntryMapper turns raw list items into grid entries.
type EntryMapper struct {
	artworkURL string
}

func NewEntryMapper(artworkURL string) *EntryMapper {
	return &EntryMapper{
		artworkURL: strings.TrimRight(artworkURL, "/"),
	}
}

func (m *EntryMapper) MapEntry(raw domain.PokemonListResult) (domain.PokemonListEntry, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return domain.PokemonListEntry{}, &MalformedEntryError{URL: raw.URL, Reason: "missing name"}
	}

	dexNumber, err := parseDexNumber(raw.URL)
	if err != nil {
		return domain.PokemonListEntry{}, &MalformedEntryError{Name: name, URL: raw.URL, Reason: err.Error()}
	}

	return domain.PokemonListEntry{
		Name:            name,
		DisplayName:     cases.Title(language.English).String(name),
		DisplayImageURL: m.ArtworkURL(dexNumber),
		DexNumber:       dexNumber,
	}, nil
}

// ArtworkURL returns the official artwork of a dex number.
func (m *EntryMapper) ArtworkURL(dexNumber int) string {
	return fmt.Sprintf("%s/%d.png", m.artworkURL, dexNumber)
}

func parseDexNumber(url string) (int, error) {
	matches := dexNumberRegex.FindStringSubmatch(url)
	if len(matches) < 2 {
		return 0, fmt.Errorf("no trailing dex number in url")
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid dex number %q: %w", matches[1], err)
	}
	if number <= 0 {
		return 0, fmt.Errorf("dex number must be positive, got %d", number)
	}

	return number, nil
}
