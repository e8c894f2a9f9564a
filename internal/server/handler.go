package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"pokedex/app/internal/domain"
	"pokedex/app/internal/repository"
	"pokedex/app/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type entryView struct {
	domain.PokemonListEntry
	DominantColor string `json:"dominant_color"`
	ColorResolved bool   `json:"color_resolved"`
	Route         string `json:"route"`
}

type sessionView struct {
	ID            string        `json:"id"`
	Phase         service.Phase `json:"phase"`
	CurrentOffset int           `json:"current_offset"`
	PageSize      int           `json:"page_size"`
	IsLoading     bool          `json:"is_loading"`
	EndReached    bool          `json:"end_reached"`
	LastError     string        `json:"last_error,omitempty"`
	Query         string        `json:"query,omitempty"`
	Items         []entryView   `json:"items"`
}

type detailView struct {
	Status        domain.Status         `json:"status"`
	Message       string                `json:"message,omitempty"`
	DominantColor string                `json:"dominant_color,omitempty"`
	Data          *domain.PokemonDetail `json:"data,omitempty"`
	Raw           json.RawMessage       `json:"raw,omitempty"`
}

// Handler serves the list and detail screens.
type Handler struct {
	sessions   *SessionManager
	repository repository.PokemonRepository
}

func NewHandler(sessions *SessionManager, repository repository.PokemonRepository) *Handler {
	return &Handler{
		sessions:   sessions,
		repository: repository,
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "pokedex",
		"sessions": h.sessions.Len(),
	})
}

// CreateSession opens a list screen and loads its first page.
// Route: POST /sessions
func (h *Handler) CreateSession(c *gin.Context) {
	session, err := h.sessions.Create()
	if err != nil {
		log.WithError(err).Error("❌ Failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	session.Controller.LoadNextPage(c.Request.Context())
	c.JSON(http.StatusCreated, newSessionView(session, ""))
}

// GetSession renders the list screen, filtered by ?q= when present.
// Route: GET /sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newSessionView(session, c.Query("q")))
}

// NextPage loads the next page. While another load runs or after the end
// was reached the current state is returned unchanged.
// Route: POST /sessions/:id/next
func (h *Handler) NextPage(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Controller.LoadNextPage(c.Request.Context())
	c.JSON(http.StatusOK, newSessionView(session, c.Query("q")))
}

// DeleteSession ends a list screen.
// Route: DELETE /sessions/:id
func (h *Handler) DeleteSession(c *gin.Context) {
	if !h.sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPokemon renders the detail screen of one pokemon.
// Route: GET /pokemon/:name
func (h *Handler) GetPokemon(c *gin.Context) {
	h.renderDetail(c, c.Param("name"), "")
}

// GetDetailRoute resolves a navigation route produced by the list screen.
// Route: GET /pokemon_detail_screen/:color/:name
func (h *Handler) GetDetailRoute(c *gin.Context) {
	route := fmt.Sprintf("%s/%s/%s", domain.DetailRoutePrefix, c.Param("color"), c.Param("name"))
	color, name, err := domain.ParseDetailRoute(route)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.renderDetail(c, name, color.Hex())
}

func (h *Handler) renderDetail(c *gin.Context, name, colorHex string) {
	result := h.repository.GetPokemonInfo(c.Request.Context(), name)
	if result.IsError() {
		c.JSON(http.StatusBadGateway, detailView{
			Status:  result.Status(),
			Message: result.Message(),
		})
		return
	}

	detail := result.Value()
	c.JSON(http.StatusOK, detailView{
		Status:        result.Status(),
		DominantColor: colorHex,
		Data:          detail,
		Raw:           detail.Raw,
	})
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func newSessionView(session *Session, query string) sessionView {
	state := session.Controller.State()

	items := state.Items
	if query != "" {
		items = session.Controller.Search(query)
	}

	views := make([]entryView, 0, len(items))
	for _, entry := range items {
		color, resolved := session.Colors.Get(entry.Name)
		views = append(views, entryView{
			PokemonListEntry: entry,
			DominantColor:    color.Hex(),
			ColorResolved:    resolved,
			Route:            domain.DetailRoute(color, entry.Name),
		})
	}

	return sessionView{
		ID:            session.ID,
		Phase:         state.Phase,
		CurrentOffset: state.CurrentOffset,
		PageSize:      state.PageSize,
		IsLoading:     state.IsLoading,
		EndReached:    state.EndReached,
		LastError:     state.LastError,
		Query:         query,
		Items:         views,
	}
}
