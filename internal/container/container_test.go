package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokedex/app/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0},
		PokeAPI: config.PokeAPIConfig{BaseURL: baseURL, ArtworkURL: baseURL + "/artwork", Timeout: 5, UserAgent: "pokedex-test"},
		List:    config.ListConfig{PageSize: 20, SessionTTL: 60},
		Palette: config.PaletteConfig{Algorithm: "histogram", Clusters: 3},
		Log:     config.LogConfig{Level: "info", Format: "text"},
	}
}

func TestNew(t *testing.T) {
	app, err := New(testConfig("http://localhost"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer app.Close()

	controller := app.NewListController()
	if got := controller.State().PageSize; got != 20 {
		t.Errorf("expected page size 20, got %d", got)
	}
	if app.Sessions.Len() != 0 {
		t.Errorf("expected no sessions, got %d", app.Sessions.Len())
	}
}

func TestNew_InvalidPalette(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.Palette.Algorithm = "median-cut"

	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown palette algorithm")
	}
}

func TestClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer srv.Close()

	app, err := New(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := app.Client.FetchListPage(context.Background(), 20, 0); err != nil {
		t.Fatalf("FetchListPage failed: %v", err)
	}

	if err := app.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
