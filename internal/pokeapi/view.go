package pokeapi

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the remote data source used by View.
type Fetcher interface {
	Pokemon(ctx context.Context, name string) (model.Pokemon, error)
	Ability(ctx context.Context, name string) (model.Ability, error)
}

// Phase summarises both fetches for rendering.
type Phase string

const (
	// PhaseLoading means at least one fetch has not finished yet.
	PhaseLoading Phase = "loading"
	// PhaseNoData means every fetch finished and at least one failed.
	PhaseNoData Phase = "no-data"
	// PhaseReady means both fetches loaded.
	PhaseReady Phase = "ready"
)

// View owns the two independent remote fetches and their states.
type View struct {
	fetcher     Fetcher
	pokemonName string
	abilityName string
	pokemon     *resource[model.Pokemon]
	ability     *resource[model.Ability]
	loading     atomic.Bool
}

// NewView creates a View for the given pokemon and ability. Nothing is fetched until Load.
func NewView(fetcher Fetcher, pokemonName, abilityName string) *View {
	return &View{
		fetcher:     fetcher,
		pokemonName: pokemonName,
		abilityName: abilityName,
		pokemon:     newResource[model.Pokemon](),
		ability:     newResource[model.Ability](),
	}
}

// Load issues both requests concurrently and returns once both settle. A
// failure of one never cancels the other. A Load already in flight makes
// this call return immediately.
func (v *View) Load(ctx context.Context) {
	if !v.loading.CompareAndSwap(false, true) {
		return
	}
	defer v.loading.Store(false)

	var g errgroup.Group
	g.Go(func() error {
		fetchInto(ctx, "pokemon", v.pokemon, func(ctx context.Context) (model.Pokemon, error) {
			return v.fetcher.Pokemon(ctx, v.pokemonName)
		})
		return nil
	})
	g.Go(func() error {
		fetchInto(ctx, "ability", v.ability, func(ctx context.Context) (model.Ability, error) {
			return v.fetcher.Ability(ctx, v.abilityName)
		})
		return nil
	})
	_ = g.Wait()
}

func fetchInto[T any](ctx context.Context, name string, r *resource[T], fetch func(context.Context) (T, error)) {
	r.set(FetchState[T]{Status: StatusLoading})

	data, err := fetch(ctx)
	if err != nil {
		slog.Error("Remote fetch failed", slog.String("resource", name), slog.Any("err", err))
		metrics.RemoteFetches.WithLabelValues(name, string(StatusFailed)).Inc()
		r.set(FetchState[T]{Status: StatusFailed, Err: err})
		return
	}

	metrics.RemoteFetches.WithLabelValues(name, string(StatusLoaded)).Inc()
	r.set(FetchState[T]{Status: StatusLoaded, Data: data})
}

// Pokemon returns the state of the pokemon fetch.
func (v *View) Pokemon() FetchState[model.Pokemon] {
	return v.pokemon.get()
}

// Ability returns the state of the ability fetch.
func (v *View) Ability() FetchState[model.Ability] {
	return v.ability.get()
}

// Phase combines both states the way the page renders them.
func (v *View) Phase() Phase {
	return phaseOf(v.Pokemon().Status, v.Ability().Status)
}

func phaseOf(statuses ...Status) Phase {
	phase := PhaseReady
	for _, s := range statuses {
		switch s {
		case StatusIdle, StatusLoading:
			return PhaseLoading
		case StatusFailed:
			phase = PhaseNoData
		}
	}
	return phase
}

// GameIndices returns the loaded game indices, or nil.
func (v *View) GameIndices() []model.GameIndex {
	return v.Pokemon().Data.GameIndices
}

// Effects returns the loaded ability effect entries, or nil.
func (v *View) Effects() []model.EffectEntry {
	return v.Ability().Data.EffectEntries
}

// HiddenPokemon returns the pokemon holding the ability as a hidden one.
func (v *View) HiddenPokemon() []model.AbilityPokemon {
	return v.Ability().Data.HiddenPokemon()
}
