package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/logger"
	"github.com/Master1941/foodgram-project-react/route"
	"github.com/Master1941/foodgram-project-react/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitializeLogger()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	cfg := &entity.Config{
		JWTSecretKey: "test-secret",
		MediaRoot:    t.TempDir(),
		Limits: entity.LimitsConfig{
			MinAmount:      1,
			MaxAmount:      32000,
			MinCookingTime: 1,
			MaxCookingTime: 32000,
			PageSize:       6,
		},
	}

	gormDB := testutil.OpenTestDB(t)
	r := gin.New()
	route.SetupRoutes(r, cfg, gormDB)
	return r, gormDB
}

func perform(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := perform(t, r, http.MethodPost, "/api/auth/token/login/", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["auth_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func recipeBody(name string, tagID uint, ingredients []gin.H) gin.H {
	return gin.H{
		"ingredients":  ingredients,
		"tags":         []uint{tagID},
		"image":        testutil.PNGDataURI,
		"name":         name,
		"text":         "Cook it.",
		"cooking_time": 30,
	}
}

func TestRegistrationAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := perform(t, r, http.MethodPost, "/api/users/", "", gin.H{
		"email":      "bob@example.com",
		"username":   "bob",
		"first_name": "Bob",
		"last_name":  "Stone",
		"password":   "Secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "bob", body["username"])
	assert.NotContains(t, body, "password")

	w = perform(t, r, http.MethodPost, "/api/auth/token/login/", "", gin.H{
		"email":    "bob@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r, "bob@example.com", "Secret123")

	w = perform(t, r, http.MethodGet, "/api/users/me/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", decode(t, w)["username"])

	w = perform(t, r, http.MethodGet, "/api/users/me/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(t, r, http.MethodPost, "/api/auth/token/logout/", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecipeScenario(t *testing.T) {
	r, gormDB := newTestServer(t)

	testutil.SeedUser(t, gormDB, "alice")
	tag := testutil.SeedTag(t, gormDB, "Dessert", "dessert")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	sugar := testutil.SeedIngredient(t, gormDB, "Sugar", "g")
	token := login(t, r, "alice@example.com", "Secret123")

	// Anonymous writes are rejected.
	w := perform(t, r, http.MethodPost, "/api/recipes/", "", recipeBody("Cake", tag.ID, nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(t, r, http.MethodPost, "/api/recipes/", token, recipeBody("Cake", tag.ID, []gin.H{
		{"id": flour.ID, "amount": 100},
		{"id": sugar.ID, "amount": 50},
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	recipeID := uint(created["id"].(float64))
	assert.Equal(t, "Cake", created["name"])

	// A second recipe with the same name by the same author conflicts.
	w = perform(t, r, http.MethodPost, "/api/recipes/", token, recipeBody("Cake", tag.ID, []gin.H{
		{"id": flour.ID, "amount": 1},
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Anonymous readers see the recipe with the flags cleared.
	w = perform(t, r, http.MethodGet, "/api/recipes/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.EqualValues(t, 1, page["count"])
	results := page["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, false, first["is_favorited"])
	assert.Equal(t, false, first["is_in_shopping_cart"])
	author := first["author"].(map[string]any)
	assert.Equal(t, "alice", author["username"])

	// Favorite it, twice. The repeat is a conflict.
	favoriteURL := fmt.Sprintf("/api/recipes/%d/favorite/", recipeID)
	w = perform(t, r, http.MethodPost, favoriteURL, token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Cake", decode(t, w)["name"])

	w = perform(t, r, http.MethodPost, favoriteURL, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The membership filter only applies to the authenticated requester.
	w = perform(t, r, http.MethodGet, "/api/recipes/?is_favorited=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = perform(t, r, http.MethodGet, "/api/recipes/?is_favorited=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = perform(t, r, http.MethodDelete, favoriteURL, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, r, http.MethodGet, "/api/recipes/?is_favorited=1", token, nil)
	assert.EqualValues(t, 0, decode(t, w)["count"])

	// Tag slug filter.
	w = perform(t, r, http.MethodGet, "/api/recipes/?tags=dessert", "", nil)
	assert.EqualValues(t, 1, decode(t, w)["count"])
	w = perform(t, r, http.MethodGet, "/api/recipes/?tags=unknown", "", nil)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestDownloadShoppingCart(t *testing.T) {
	r, gormDB := newTestServer(t)

	testutil.SeedUser(t, gormDB, "alice")
	tag := testutil.SeedTag(t, gormDB, "Dinner", "dinner")
	flour := testutil.SeedIngredient(t, gormDB, "Flour", "g")
	sugar := testutil.SeedIngredient(t, gormDB, "Sugar", "g")
	token := login(t, r, "alice@example.com", "Secret123")

	ids := make([]uint, 0, 2)
	for _, rec := range []gin.H{
		recipeBody("Cake", tag.ID, []gin.H{
			{"id": flour.ID, "amount": 100},
			{"id": sugar.ID, "amount": 50},
		}),
		recipeBody("Bread", tag.ID, []gin.H{
			{"id": flour.ID, "amount": 20},
		}),
	} {
		w := perform(t, r, http.MethodPost, "/api/recipes/", token, rec)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ids = append(ids, uint(decode(t, w)["id"].(float64)))
	}

	for _, id := range ids {
		w := perform(t, r, http.MethodPost, fmt.Sprintf("/api/recipes/%d/shopping_cart/", id), token, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := perform(t, r, http.MethodGet, "/api/recipes/download_shopping_cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "alice_shopping_list_")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Список продуктов на "), body)
	assert.Contains(t, body, "Flour: 120 g\n")
	assert.Contains(t, body, "Sugar: 50 g\n")
}

func TestSubscriptionEndpoints(t *testing.T) {
	r, gormDB := newTestServer(t)

	alice := testutil.SeedUser(t, gormDB, "alice")
	bob := testutil.SeedUser(t, gormDB, "bob")
	token := login(t, r, "alice@example.com", "Secret123")

	subscribeURL := fmt.Sprintf("/api/users/%d/subscribe/", bob.ID)

	w := perform(t, r, http.MethodPost, fmt.Sprintf("/api/users/%d/subscribe/", alice.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPost, subscribeURL, token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "bob", body["username"])
	assert.Equal(t, true, body["is_subscribed"])

	w = perform(t, r, http.MethodPost, subscribeURL, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/users/subscriptions/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.EqualValues(t, 1, page["count"])

	w = perform(t, r, http.MethodDelete, subscribeURL, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, r, http.MethodDelete, subscribeURL, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaginationEnvelope(t *testing.T) {
	r, gormDB := newTestServer(t)

	for _, name := range []string{"alice", "bob", "carol"} {
		testutil.SeedUser(t, gormDB, name)
	}

	w := perform(t, r, http.MethodGet, "/api/users/?limit=2&page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.EqualValues(t, 3, page["count"])
	assert.Len(t, page["results"].([]any), 2)
	require.NotNil(t, page["next"])
	assert.Contains(t, page["next"].(string), "page=2")
	assert.Nil(t, page["previous"])

	w = perform(t, r, http.MethodGet, "/api/users/?limit=2&page=2", "", nil)
	page = decode(t, w)
	assert.Len(t, page["results"].([]any), 1)
	assert.Nil(t, page["next"])
	require.NotNil(t, page["previous"])
	assert.Contains(t, page["previous"].(string), "page=1")
}
