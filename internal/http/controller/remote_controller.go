package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/pokeapi"
)

// RemoteController serves the PokeAPI data shown next to the catalog.
type RemoteController struct {
	view *pokeapi.View
}

// NewRemoteController creates a new RemoteController.
func NewRemoteController(view *pokeapi.View) *RemoteController {
	return &RemoteController{view: view}
}

// FetchStatusResponse describes one remote fetch.
type FetchStatusResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// RemoteResponse represents both fetches and the lists derived from them.
type RemoteResponse struct {
	Phase         string                 `json:"phase"`
	Pokemon       FetchStatusResponse    `json:"pokemon"`
	Ability       FetchStatusResponse    `json:"ability"`
	GameIndices   []model.GameIndex      `json:"game_indices"`
	Effects       []model.EffectEntry    `json:"effects"`
	HiddenPokemon []model.AbilityPokemon `json:"hidden_pokemon"`
}

// GetRemote handles the HTTP GET request for the remote data.
func (rc *RemoteController) GetRemote(c *gin.Context) {
	c.JSON(http.StatusOK, rc.response())
}

// Reload handles the HTTP POST request fetching both resources again.
// It responds once both have settled.
func (rc *RemoteController) Reload(c *gin.Context) {
	rc.view.Load(c.Request.Context())
	c.JSON(http.StatusOK, rc.response())
}

func (rc *RemoteController) response() RemoteResponse {
	pokemon := rc.view.Pokemon()
	ability := rc.view.Ability()

	resp := RemoteResponse{
		Phase:         string(rc.view.Phase()),
		Pokemon:       toFetchStatus(pokemon.Status, pokemon.Err),
		Ability:       toFetchStatus(ability.Status, ability.Err),
		GameIndices:   []model.GameIndex{},
		Effects:       []model.EffectEntry{},
		HiddenPokemon: []model.AbilityPokemon{},
	}
	if pokemon.Status == pokeapi.StatusLoaded && pokemon.Data.GameIndices != nil {
		resp.GameIndices = pokemon.Data.GameIndices
	}
	if ability.Status == pokeapi.StatusLoaded {
		if ability.Data.EffectEntries != nil {
			resp.Effects = ability.Data.EffectEntries
		}
		resp.HiddenPokemon = ability.Data.HiddenPokemon()
	}
	return resp
}

func toFetchStatus(status pokeapi.Status, err error) FetchStatusResponse {
	resp := FetchStatusResponse{Status: string(status)}
	if err == nil {
		return resp
	}
	resp.Error = err.Error()
	var fetchErr *pokeapi.FetchError
	if errors.As(err, &fetchErr) {
		resp.ErrorKind = string(fetchErr.Kind)
		resp.StatusCode = fetchErr.StatusCode
	}
	return resp
}
