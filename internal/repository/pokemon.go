package repository

import (
	"context"

	"pokedex/app/internal/client"
	"pokedex/app/internal/domain"

	log "github.com/sirupsen/logrus"
)

// UnknownErrorMessage is the only error text that leaves the repository.
const UnknownErrorMessage = "An unknown error occurred."

type PokemonRepository interface {
	GetPokemonList(ctx context.Context, limit, offset int) domain.Result[*domain.PokemonListPage]
	GetPokemonInfo(ctx context.Context, name string) domain.Result[*domain.PokemonDetail]
}

type pokemonRepository struct {
	client client.PokeAPIClient
}

func NewPokemonRepository(client client.PokeAPIClient) PokemonRepository {
	return &pokemonRepository{
		client: client,
	}
}

func (r *pokemonRepository) GetPokemonList(ctx context.Context, limit, offset int) domain.Result[*domain.PokemonListPage] {
	page, err := r.client.FetchListPage(ctx, limit, offset)
	if err != nil {
		log.WithFields(log.Fields{
			"limit":  limit,
			"offset": offset,
			"kind":   client.ErrorKind(err),
		}).WithError(err).Warn("❌ Failed to fetch pokemon list page")
		return domain.Error[*domain.PokemonListPage](UnknownErrorMessage)
	}

	return domain.Success(page)
}

func (r *pokemonRepository) GetPokemonInfo(ctx context.Context, name string) domain.Result[*domain.PokemonDetail] {
	detail, err := r.client.FetchDetail(ctx, name)
	if err != nil {
		log.WithFields(log.Fields{
			"name": name,
			"kind": client.ErrorKind(err),
		}).WithError(err).Warn("❌ Failed to fetch pokemon details")
		return domain.Error[*domain.PokemonDetail](UnknownErrorMessage)
	}

	return domain.Success(detail)
}
