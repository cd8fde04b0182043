package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pantry-matcher/internal/core/ai/cache"
	"pantry-matcher/internal/infrastructure/config"
	"pantry-matcher/internal/infrastructure/storage"
	"pantry-matcher/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Version = "test"
	cfg.App.Env = "test"
	cfg.Server.Port = 8080
	cfg.Storage.Backend = "memory"
	cfg.Gemini.Enabled = false
	cfg.RateLimit.Enabled = false
	cfg.DedupWindow = time.Millisecond
	return cfg
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	router, err := SetupRouter(testConfig(), storage.NewMemoryRepository(), nil)
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestListRecipes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Recipes)
	assert.Equal(t, len(resp.Recipes), resp.Count)

	// source 查詢參數過濾
	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes?source=community", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, r := range resp.Recipes {
		assert.Equal(t, common.SourceCommunity, r.Source)
	}
}

func TestGetRecipeByID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, 1, recipe.ID)
	assert.NotEmpty(t, recipe.Title)

	// 不存在的 id
	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/999999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var errResp common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, common.ErrCodeNotFound, errResp.Code)

	// 非整數 id
	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthReportsCacheStats(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = 10
	cfg.Cache.TTL = time.Minute
	cfg.Cache.CleanupInterval = time.Minute

	manager := cache.NewManager(cfg)
	require.NotNil(t, manager)
	defer manager.Close()

	router, err := SetupRouter(cfg, storage.NewMemoryRepository(), manager)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cache map[string]interface{} `json:"cache"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cache)
	assert.Contains(t, resp.Cache, "hits")
	assert.Contains(t, resp.Cache, "hit_ratio")
}

func TestMatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/match", map[string]interface{}{
		"ingredients": []string{"rice", "beans", "onion"},
		"matchMode":   "partial",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe      `json:"recipes"`
		Matches []common.RecipeMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Recipes)
	assert.Equal(t, "Simple Rice & Beans Bowl", resp.Recipes[0].Title, "best match first")

	for _, m := range resp.Matches {
		assert.Greater(t, m.MatchCount, 0, "zero-match recipes must be dropped")
	}
}

func TestMatchEndpointWithFilters(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/match", map[string]interface{}{
		"ingredients": []string{"rice", "beans", "egg", "oats", "milk"},
		"filters": map[string]interface{}{
			"dietary": []string{"vegan"},
			"maxTime": 30,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, r := range resp.Recipes {
		assert.True(t, r.Dietary.Vegan, "non-vegan recipe leaked: %s", r.Title)
		assert.LessOrEqual(t, r.TotalTime(), 30)
	}
}

func TestMatchEndpointInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/match", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommunityLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// 新增投稿
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/community", map[string]interface{}{
		"title":            "Router Test Bowl",
		"ingredientsText":  "rice\nbeans\n",
		"instructionsText": "1. Cook the rice\n2. Add the beans",
		"prepTime":         5,
		"cookTime":         10,
		"dietaryTags":      []string{"vegan"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Router Test Bowl", created.Title)
	assert.Equal(t, []string{"rice", "beans"}, created.Ingredients)
	assert.Equal(t, []string{"Cook the rice", "Add the beans"}, created.Instructions)
	assert.Equal(t, common.SourceCommunity, created.Source)

	// 投稿要出現在社群清單
	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/community", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Recipes []common.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	found := false
	for _, r := range listResp.Recipes {
		if r.ID == created.ID {
			found = true
		}
		assert.Equal(t, common.SourceCommunity, r.Source)
	}
	assert.True(t, found)

	// 刪除後不可見
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/recipes/community/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/community", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	for _, r := range listResp.Recipes {
		assert.NotEqual(t, created.ID, r.ID)
	}
}

func TestCommunityValidation(t *testing.T) {
	router := newTestRouter(t)

	// 缺標題
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/community", map[string]interface{}{
		"ingredientsText":  "rice",
		"instructionsText": "Cook it",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 缺食材
	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes/community", map[string]interface{}{
		"title":            "No Ingredients",
		"instructionsText": "Cook it",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// id 非整數
	w = doJSON(t, router, http.MethodDelete, "/api/v1/recipes/community/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestEndpointDisabled(t *testing.T) {
	router := newTestRouter(t)

	// Gemini 停用時回空集合而非錯誤
	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/suggest", map[string]interface{}{
		"ingredients": []string{"mango"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.Recipe `json:"recipes"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
	assert.Zero(t, resp.Count)
}
