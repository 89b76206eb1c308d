package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/config"
	httpAPI "github.com/iyhunko/product-catalog/internal/http"
	"github.com/iyhunko/product-catalog/internal/http/controller"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/pokeapi"
	"github.com/stretchr/testify/require"
)

// testDebounce keeps search tests fast while still exercising the timer.
const testDebounce = 20 * time.Millisecond

const dittoJSON = `{
	"game_indices": [
		{"game_index": 76, "version": {"name": "red", "url": "https://pokeapi.co/api/v2/version/1/"}},
		{"game_index": 76, "version": {"name": "blue", "url": "https://pokeapi.co/api/v2/version/2/"}}
	]
}`

const battleArmorJSON = `{
	"effect_entries": [{"effect": "Protects the Pokémon from critical hits."}],
	"pokemon": [
		{"is_hidden": false, "pokemon": {"name": "kabuto", "url": "https://pokeapi.co/api/v2/pokemon/140/"}},
		{"is_hidden": true, "pokemon": {"name": "cubone", "url": "https://pokeapi.co/api/v2/pokemon/104/"}}
	]
}`

// TestApp is a fully wired catalog service backed by fakes.
type TestApp struct {
	Router  *gin.Engine
	Store   *catalog.Store
	View    *catalog.SearchView
	Remote  *pokeapi.View
	PokeAPI *httptest.Server
}

// SetupTestApp wires the router the way the catalog service does, against an
// in-process PokeAPI. Extra store options (notifier, clock) can be passed in.
func SetupTestApp(t *testing.T, seed bool, opts ...catalog.Option) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pokeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/pokemon/ditto":
			_, _ = w.Write([]byte(dittoJSON))
		case "/ability/battle-armor":
			_, _ = w.Write([]byte(battleArmorJSON))
		default:
			http.NotFound(w, r)
		}
	}))

	var products []model.Product
	if seed {
		products = catalog.DemoProducts()
	}
	store := catalog.NewStore(products, opts...)
	view := catalog.NewSearchView(testDebounce)
	remote := pokeapi.NewView(pokeapi.NewClient(pokeServer.URL, time.Second), config.DefaultPokemon, config.DefaultAbility)

	conf := &config.Config{}
	router := httpAPI.InitRouter(gin.New(), httpAPI.Controllers{
		General: controller.New(conf, store),
		Product: controller.NewProductController(store, view),
		View:    controller.NewViewController(view),
		Remote:  controller.NewRemoteController(remote),
	})

	t.Cleanup(func() {
		view.Close()
		pokeServer.Close()
	})

	return &TestApp{
		Router:  router,
		Store:   store,
		View:    view,
		Remote:  remote,
		PokeAPI: pokeServer,
	}
}

// Do sends a request with an optional JSON body through the router.
func (a *TestApp) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the recorded response body into a value of type T.
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
