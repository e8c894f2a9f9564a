package main

import (
	"context"
	"fmt"
	"image"
	"text/tabwriter"
	"time"

	"pokedex/app/internal/config"
	"pokedex/app/internal/container"
	"pokedex/app/internal/domain"
	"pokedex/app/internal/palette"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const colorTimeout = 30 * time.Second

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse the Pokédex from the terminal or over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")

	root.AddCommand(serveCmd(&configPath), listCmd(&configPath), showCmd(&configPath))
	return root
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the list and detail screens over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer closeContainer(app)

			if err := app.Run(cmd.Context()); err != nil {
				return fmt.Errorf("application exited with error: %w", err)
			}
			log.Info("Application finished successfully")
			return nil
		},
	}
}

func listCmd(configPath *string) *cobra.Command {
	var (
		pages int
		query string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load pages of the pokemon list and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer closeContainer(app)

			controller := app.NewListController()
			for i := 0; i < pages; i++ {
				if !controller.LoadNextPage(cmd.Context()) {
					break
				}
				if state := controller.State(); state.LastError != "" {
					return fmt.Errorf("loading page at offset %d: %s", state.CurrentOffset, state.LastError)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range controller.Search(query) {
				fmt.Fprintf(w, "#%03d\t%s\t%s\n", entry.DexNumber, entry.DisplayName, entry.DisplayImageURL)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			state := controller.State()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d loaded, offset %d, end reached: %t\n",
				len(state.Items), state.CurrentOffset, state.EndReached)
			return nil
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	cmd.Flags().StringVar(&query, "query", "", "Filter loaded entries by name or dex number")
	return cmd
}

func showCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a pokemon and the route of its detail screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer closeContainer(app)

			result := app.Repository.GetPokemonInfo(cmd.Context(), args[0])
			if result.IsError() {
				return fmt.Errorf("%s", result.Message())
			}
			detail := result.Value()

			color := domain.DefaultColor
			if found, ok := artworkColor(cmd.Context(), app, detail.ImageURL()); ok {
				color = found
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%03d %s\n", detail.ID, detail.Name)
			fmt.Fprintf(out, "Types:  %v\n", detail.TypeNames())
			fmt.Fprintf(out, "Height: %d  Weight: %d\n", detail.Height, detail.Weight)
			for _, stat := range detail.Stats {
				fmt.Fprintf(out, "  %-16s %d\n", stat.Stat.Name, stat.BaseStat)
			}
			fmt.Fprintf(out, "Color:  %s\n", color)
			fmt.Fprintf(out, "Route:  %s\n", domain.DetailRoute(color, detail.Name))
			return nil
		},
	}
}

// artworkColor loads url and waits for its dominant color.
func artworkColor(ctx context.Context, app *container.Container, url string) (domain.Color, bool) {
	if url == "" {
		return domain.Color{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, colorTimeout)
	defer cancel()

	images := make(chan image.Image, 1)
	app.ImageLoader.Load(ctx, url, func(img image.Image, err error) {
		if err != nil {
			img = nil
		}
		images <- img
	})

	var outcome palette.Outcome
	select {
	case img := <-images:
		if img == nil {
			return domain.Color{}, false
		}
		outcome = <-app.Extractor.ComputeDominantColor(img)
	case <-ctx.Done():
		return domain.Color{}, false
	}

	return outcome.Color, outcome.Found
}

func closeContainer(app *container.Container) {
	if err := app.Close(); err != nil {
		log.WithError(err).Warn("Failed to close container")
	}
}

func setup(configPath string) (*container.Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.SetupLogging(cfg.Log); err != nil {
		return nil, err
	}
	log.Debug("Configuration loaded successfully")

	app, err := container.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	return app, nil
}
