package pokeapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	pokemonFunc func(ctx context.Context, name string) (model.Pokemon, error)
	abilityFunc func(ctx context.Context, name string) (model.Ability, error)
}

func (f *fakeFetcher) Pokemon(ctx context.Context, name string) (model.Pokemon, error) {
	return f.pokemonFunc(ctx, name)
}

func (f *fakeFetcher) Ability(ctx context.Context, name string) (model.Ability, error) {
	return f.abilityFunc(ctx, name)
}

func okPokemon(_ context.Context, _ string) (model.Pokemon, error) {
	return model.Pokemon{GameIndices: []model.GameIndex{{GameIndex: 132, Version: model.NamedResource{Name: "red"}}}}, nil
}

func okAbility(_ context.Context, _ string) (model.Ability, error) {
	return model.Ability{
		EffectEntries: []model.EffectEntry{{Effect: "Protects from critical hits."}},
		Pokemon: []model.AbilityPokemon{
			{IsHidden: false, Pokemon: model.NamedResource{Name: "kabuto"}},
			{IsHidden: true, Pokemon: model.NamedResource{Name: "cubone"}},
			{IsHidden: true, Pokemon: model.NamedResource{Name: "marowak"}},
		},
	}, nil
}

func TestView_BeforeLoad(t *testing.T) {
	view := NewView(&fakeFetcher{pokemonFunc: okPokemon, abilityFunc: okAbility}, "ditto", "battle-armor")

	assert.Equal(t, StatusIdle, view.Pokemon().Status)
	assert.Equal(t, StatusIdle, view.Ability().Status)
	assert.Equal(t, PhaseLoading, view.Phase())
	assert.Empty(t, view.GameIndices())
}

func TestView_LoadBoth(t *testing.T) {
	var gotPokemon, gotAbility string
	fetcher := &fakeFetcher{
		pokemonFunc: func(ctx context.Context, name string) (model.Pokemon, error) {
			gotPokemon = name
			return okPokemon(ctx, name)
		},
		abilityFunc: func(ctx context.Context, name string) (model.Ability, error) {
			gotAbility = name
			return okAbility(ctx, name)
		},
	}
	view := NewView(fetcher, "ditto", "battle-armor")

	view.Load(context.Background())

	assert.Equal(t, "ditto", gotPokemon)
	assert.Equal(t, "battle-armor", gotAbility)
	assert.Equal(t, PhaseReady, view.Phase())
	assert.True(t, view.Pokemon().Settled())
	assert.Len(t, view.GameIndices(), 1)
	assert.Len(t, view.Effects(), 1)
	hidden := view.HiddenPokemon()
	require.Len(t, hidden, 2)
	assert.Equal(t, "cubone", hidden[0].Pokemon.Name)
	assert.Equal(t, "marowak", hidden[1].Pokemon.Name)
}

func TestView_FailureIsIndependent(t *testing.T) {
	fetchErr := &FetchError{Resource: "ability/battle-armor", Kind: KindHTTPStatus, StatusCode: 500}
	view := NewView(&fakeFetcher{
		pokemonFunc: okPokemon,
		abilityFunc: func(context.Context, string) (model.Ability, error) { return model.Ability{}, fetchErr },
	}, "ditto", "battle-armor")

	view.Load(context.Background())

	assert.Equal(t, StatusLoaded, view.Pokemon().Status)
	assert.Len(t, view.GameIndices(), 1)
	ability := view.Ability()
	assert.Equal(t, StatusFailed, ability.Status)
	assert.True(t, errors.Is(ability.Err, fetchErr))
	assert.Empty(t, view.HiddenPokemon())
	assert.Equal(t, PhaseNoData, view.Phase())
}

func TestView_FetchesAreNotCoordinated(t *testing.T) {
	release := make(chan struct{})
	view := NewView(&fakeFetcher{
		pokemonFunc: okPokemon,
		abilityFunc: func(ctx context.Context, name string) (model.Ability, error) {
			<-release
			return okAbility(ctx, name)
		},
	}, "ditto", "battle-armor")

	done := make(chan struct{})
	go func() {
		view.Load(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool { return view.Pokemon().Status == StatusLoaded }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StatusLoading, view.Ability().Status)
	assert.Equal(t, PhaseLoading, view.Phase())

	// a second Load while the first is in flight is ignored
	view.Load(context.Background())

	close(release)
	<-done
	assert.Equal(t, PhaseReady, view.Phase())
}

func TestView_Reload(t *testing.T) {
	calls := 0
	view := NewView(&fakeFetcher{
		pokemonFunc: func(ctx context.Context, name string) (model.Pokemon, error) {
			calls++
			if calls == 1 {
				return model.Pokemon{}, &FetchError{Resource: "pokemon/ditto", Kind: KindNetwork, Err: context.DeadlineExceeded}
			}
			return okPokemon(ctx, name)
		},
		abilityFunc: okAbility,
	}, "ditto", "battle-armor")

	view.Load(context.Background())
	assert.Equal(t, PhaseNoData, view.Phase())

	view.Load(context.Background())
	assert.Equal(t, PhaseReady, view.Phase())
}

func TestPhaseOf(t *testing.T) {
	assert.Equal(t, PhaseLoading, phaseOf(StatusFailed, StatusLoading))
	assert.Equal(t, PhaseLoading, phaseOf(StatusLoaded, StatusIdle))
	assert.Equal(t, PhaseNoData, phaseOf(StatusLoaded, StatusFailed))
	assert.Equal(t, PhaseReady, phaseOf(StatusLoaded, StatusLoaded))
}
