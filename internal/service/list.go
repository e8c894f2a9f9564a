package service

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"

	"pokedex/app/internal/domain"
	"pokedex/app/internal/repository"

	log "github.com/sirupsen/logrus"
)

const DefaultPageSize = 20

type Phase string

func (p Phase) String() string {
	return string(p)
}

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseLoaded     Phase = "loaded"
	PhaseEndReached Phase = "end_reached"
	PhaseErrored    Phase = "errored"
)

// PaginationState is a snapshot of the list screen.
type PaginationState struct {
	Items         []domain.PokemonListEntry `json:"items"`          // Append-only, API order
	CurrentOffset int                       `json:"current_offset"` // Advances by PageSize per successful page
	PageSize      int                       `json:"page_size"`
	IsLoading     bool                      `json:"is_loading"`
	EndReached    bool                      `json:"end_reached"`
	LastError     string                    `json:"last_error,omitempty"`
	Phase         Phase                     `json:"phase"`
}

// ListController drives offset pagination of the pokemon list. At most one
// page fetch is in flight; once the end is reached it stops fetching. Entry
// names are unique across all loaded items.
type ListController struct {
	repository repository.PokemonRepository
	mapper     *EntryMapper

	mu    sync.RWMutex
	state PaginationState
	names map[string]struct{} // names already in state.Items

	subsMu      sync.Mutex
	subscribers map[int]func(PaginationState)
	nextSubID   int
}

func NewListController(repository repository.PokemonRepository, mapper *EntryMapper, pageSize int) *ListController {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &ListController{
		repository: repository,
		mapper:     mapper,
		state: PaginationState{
			Items:    make([]domain.PokemonListEntry, 0),
			PageSize: pageSize,
			Phase:    PhaseIdle,
		},
		names:       make(map[string]struct{}),
		subscribers: make(map[int]func(PaginationState)),
	}
}

// LoadNextPage fetches the page at the current offset. It returns false without
// touching the network when a fetch is already running or the end was reached.
func (c *ListController) LoadNextPage(ctx context.Context) bool {
	c.mu.Lock()
	if c.state.IsLoading || c.state.EndReached {
		c.mu.Unlock()
		return false
	}
	c.state.IsLoading = true
	c.state.Phase = PhaseLoading
	limit, offset := c.state.PageSize, c.state.CurrentOffset
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)

	result := c.repository.GetPokemonList(ctx, limit, offset)

	c.mu.Lock()
	c.state.IsLoading = false
	if result.IsSuccess() {
		c.applyPageLocked(result.Value(), limit, offset)
	} else {
		c.state.LastError = result.Message()
		c.state.Phase = PhaseErrored
		log.WithFields(log.Fields{
			"offset": offset,
			"error":  c.state.LastError,
		}).Warn("🔄 Page load failed, waiting for retry")
	}
	snapshot = c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return true
}

func (c *ListController) applyPageLocked(page *domain.PokemonListPage, limit, offset int) {
	var results []domain.PokemonListResult
	if page != nil {
		results = page.Results
	}

	entries := make([]domain.PokemonListEntry, 0, len(results))
	for _, raw := range results {
		entry, err := c.mapper.MapEntry(raw)
		if err == nil {
			if _, seen := c.names[entry.Name]; seen {
				err = &MalformedEntryError{Name: entry.Name, URL: raw.URL, Reason: "duplicate name"}
			}
		}
		if err != nil {
			log.Warnf("Skipping entry: %v", err)
			continue
		}
		c.names[entry.Name] = struct{}{}
		entries = append(entries, entry)
	}

	c.state.Items = append(c.state.Items, entries...)
	c.state.CurrentOffset = offset + limit
	c.state.LastError = ""
	c.state.EndReached = len(results) < limit

	if c.state.EndReached {
		c.state.Phase = PhaseEndReached
		log.Infof("✅ Reached the end of the list with %d entries", len(c.state.Items))
	} else {
		c.state.Phase = PhaseLoaded
	}

	log.Debugf("Loaded page offset=%d: %d entries, %d skipped", offset, len(entries), len(results)-len(entries))
}

// State returns a copy of the current pagination state.
func (c *ListController) State() PaginationState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Search filters the loaded entries by name substring or exact dex number.
// An empty query returns every loaded entry.
func (c *ListController) Search(query string) []domain.PokemonListEntry {
	query = strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]domain.PokemonListEntry, 0, len(c.state.Items))
	for _, entry := range c.state.Items {
		if query == "" ||
			strings.Contains(strings.ToLower(entry.Name), query) ||
			strconv.Itoa(entry.DexNumber) == query {
			results = append(results, entry)
		}
	}

	return results
}

// Subscribe registers fn to receive a snapshot after every state transition.
// Snapshots are delivered on the goroutine that called LoadNextPage.
func (c *ListController) Subscribe(fn func(PaginationState)) (unsubscribe func()) {
	c.subsMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subscribers, id)
		c.subsMu.Unlock()
	}
}

func (c *ListController) notify(state PaginationState) {
	c.subsMu.Lock()
	ids := make([]int, 0, len(c.subscribers))
	for id := range c.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subscribers := make([]func(PaginationState), 0, len(ids))
	for _, id := range ids {
		subscribers = append(subscribers, c.subscribers[id])
	}
	c.subsMu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

func (c *ListController) snapshotLocked() PaginationState {
	snapshot := c.state
	snapshot.Items = make([]domain.PokemonListEntry, len(c.state.Items))
	copy(snapshot.Items, c.state.Items)
	return snapshot
}
