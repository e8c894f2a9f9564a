package server

import (
	"context"
	"image"
	"sync"

	"pokedex/app/internal/client"
	"pokedex/app/internal/domain"
	"pokedex/app/internal/palette"

	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// ColorBoard holds one dominant color slot per list entry. A slot is written
// once by its extraction callback and read without locking.
type ColorBoard struct {
	mu    sync.RWMutex
	slots map[string]*atomic.Uint32 // 0 means not resolved yet
}

func NewColorBoard() *ColorBoard {
	return &ColorBoard{
		slots: make(map[string]*atomic.Uint32),
	}
}

// Claim creates the slot for name and reports whether it did not exist yet.
func (b *ColorBoard) Claim(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.slots[name]; ok {
		return false
	}
	b.slots[name] = atomic.NewUint32(0)
	return true
}

// Set stores the color of name. Only the first write wins.
func (b *ColorBoard) Set(name string, color domain.Color) bool {
	b.mu.RLock()
	slot, ok := b.slots[name]
	b.mu.RUnlock()

	if !ok {
		return false
	}
	return slot.CompareAndSwap(0, uint32(color.ARGB()))
}

// Get returns the resolved color of name, or DefaultColor and false.
func (b *ColorBoard) Get(name string) (domain.Color, bool) {
	b.mu.RLock()
	slot, ok := b.slots[name]
	b.mu.RUnlock()

	if !ok {
		return domain.DefaultColor, false
	}

	argb := slot.Load()
	if argb == 0 {
		return domain.DefaultColor, false
	}
	return domain.ColorFromARGB(int32(argb)), true
}

// Themer chains the image loader and the extractor for list entries.
type Themer struct {
	loader    client.ImageLoader
	extractor palette.Extractor
}

func NewThemer(loader client.ImageLoader, extractor palette.Extractor) *Themer {
	return &Themer{
		loader:    loader,
		extractor: extractor,
	}
}

// Theme starts a fire-and-forget extraction for every entry not yet claimed on board.
func (t *Themer) Theme(ctx context.Context, board *ColorBoard, entries []domain.PokemonListEntry) {
	for _, entry := range entries {
		if !board.Claim(entry.Name) {
			continue
		}

		name := entry.Name
		t.loader.Load(ctx, entry.DisplayImageURL, func(img image.Image, err error) {
			if err != nil {
				return
			}
			t.extractor.ComputeDominantColorFunc(img, func(color domain.Color) {
				board.Set(name, color)
				log.Debugf("Dominant color of %s is %s", name, color)
			})
		})
	}
}
