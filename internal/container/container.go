package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"pokedex/app/internal/client"
	"pokedex/app/internal/config"
	"pokedex/app/internal/palette"
	"pokedex/app/internal/repository"
	"pokedex/app/internal/server"
	"pokedex/app/internal/service"

	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Container holds all initialized components
type Container struct {
	Config      *config.Config
	Client      client.PokeAPIClient
	Repository  repository.PokemonRepository
	ImageLoader client.ImageLoader
	Extractor   palette.Extractor
	Mapper      *service.EntryMapper
	Sessions    *server.SessionManager

	Server *server.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	container.Client = client.NewPokeAPIClient(cfg.PokeAPI)
	container.Repository = repository.NewPokemonRepository(container.Client)
	container.ImageLoader = client.NewImageLoader(cfg.PokeAPI)
	container.Mapper = service.NewEntryMapper(cfg.PokeAPI.ArtworkURL)

	extractor, err := palette.NewExtractor(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize color extractor: %w", err)
	}
	container.Extractor = extractor

	themer := server.NewThemer(container.ImageLoader, container.Extractor)
	sessionTTL := time.Duration(cfg.List.SessionTTL) * time.Second
	container.Sessions = server.NewSessionManager(container.NewListController, themer, sessionTTL)

	handler := server.NewHandler(container.Sessions, container.Repository)
	container.Server = server.New(cfg, handler)

	log.WithFields(log.Fields{
		"base_url":    cfg.PokeAPI.BaseURL,
		"page_size":   cfg.List.PageSize,
		"session_ttl": sessionTTL.String(),
		"palette":     cfg.Palette.Algorithm,
	}).Info("✅ Container initialized")

	return container, nil
}

// NewListController creates the controller of a fresh list screen
func (c *Container) NewListController() *service.ListController {
	return service.NewListController(c.Repository, c.Mapper, c.Config.List.PageSize)
}

// Run serves HTTP until ctx is cancelled
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Start()
	})

	g.Go(func() error {
		c.Sessions.RunReaper(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return c.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the HTTP clients. It must be called at most once.
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	var errs []error
	if err := c.Client.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing api client: %w", err))
	}
	if err := c.ImageLoader.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing image loader: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info("Container shut down successfully")
	return nil
}
