package model

// NamedResource is a PokeAPI reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GameIndex is one entry of a pokemon's game_indices list.
type GameIndex struct {
	GameIndex int           `json:"game_index"`
	Version   NamedResource `json:"version"`
}

// Pokemon is the subset of /pokemon/{name} the catalog displays.
type Pokemon struct {
	GameIndices []GameIndex `json:"game_indices"`
}

// EffectEntry is one entry of an ability's effect_entries list.
type EffectEntry struct {
	Effect string `json:"effect"`
}

// AbilityPokemon links a pokemon to an ability.
type AbilityPokemon struct {
	IsHidden bool          `json:"is_hidden"`
	Pokemon  NamedResource `json:"pokemon"`
}

// Ability is the subset of /ability/{name} the catalog displays.
type Ability struct {
	EffectEntries []EffectEntry    `json:"effect_entries"`
	Pokemon       []AbilityPokemon `json:"pokemon"`
}

// HiddenPokemon returns the pokemon that carry the ability as a hidden one.
func (a Ability) HiddenPokemon() []AbilityPokemon {
	hidden := make([]AbilityPokemon, 0, len(a.Pokemon))
	for _, p := range a.Pokemon {
		if p.IsHidden {
			hidden = append(hidden, p)
		}
	}
	return hidden
}
