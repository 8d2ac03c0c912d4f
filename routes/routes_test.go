package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ancientastronautunearthed/fiber-app/services"
	"github.com/ancientastronautunearthed/fiber-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// setupTestRouter builds the router with no database; these tests only
// exercise paths that fail at auth or input validation, before any query.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Setenv("OPENAI_API_KEY", "")
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	gen := services.NewOpenAIGenerator(logger)
	art := services.NewImageService(logger)
	return SetupRouter(nil, gen, art, logger)
}

func authHeader(t *testing.T) string {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateJWT(1, "test@example.com")
	assert.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{
		"/api/auth/user",
		"/api/monster/active",
		"/api/dashboard",
		"/api/activities",
	} {
		w := doJSON(router, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(router, "POST", "/api/food-log", "", gin.H{"mealType": "lunch"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRejectBadToken(t *testing.T) {
	router := setupTestRouter(t)
	t.Setenv("JWT_SECRET", "test-secret")

	w := doJSON(router, "GET", "/api/dashboard", "Bearer not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "GET", "/api/dashboard", "not-bearer", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupTestRouter(t)

	// Missing email
	w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
		"password":  "supersecret",
		"firstName": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = doJSON(router, "POST", "/api/auth/register", "", gin.H{
		"email":     "not-an-email",
		"password":  "supersecret",
		"firstName": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short
	w = doJSON(router, "POST", "/api/auth/register", "", gin.H{
		"email":     "ada@example.com",
		"password":  "short",
		"firstName": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginValidation(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, "POST", "/api/auth/login", "", gin.H{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMonsterRequiresFiveWords(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	w := doJSON(router, "POST", "/api/monster/create", bearer, gin.H{
		"descriptiveWords": []string{"fuzzy", "purple"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "5 descriptive words")

	w = doJSON(router, "POST", "/api/monster/create", bearer, gin.H{
		"descriptiveWords": []string{"fuzzy", "purple", " ", "brave", "tiny"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetMonsterHealthValidation(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	// Non-numeric id
	w := doJSON(router, "PATCH", "/api/monster/abc/health", bearer, gin.H{"health": 50})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing health field
	w = doJSON(router, "PATCH", "/api/monster/1/health", bearer, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRiddleAnswerValidation(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	// Answer index out of range
	w := doJSON(router, "POST", "/api/riddle/answer", bearer, gin.H{
		"riddleId": 1,
		"answer":   7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing riddle id
	w = doJSON(router, "POST", "/api/riddle/answer", bearer, gin.H{"answer": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodLogValidation(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	// Missing foodItems
	w := doJSON(router, "POST", "/api/food-log", bearer, gin.H{"mealType": "lunch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing mealType
	w = doJSON(router, "POST", "/api/food-log", bearer, gin.H{"foodItems": "oatmeal"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSleepLogValidation(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	w := doJSON(router, "POST", "/api/sleep-log", bearer, gin.H{"quality": 15})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "POST", "/api/sleep-log", bearer, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommunityPostValidation(t *testing.T) {
	router := setupTestRouter(t)
	bearer := authHeader(t)

	w := doJSON(router, "POST", "/api/community/posts", bearer, gin.H{"title": "hello"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric post id on reply
	w = doJSON(router, "POST", "/api/community/posts/abc/replies", bearer, gin.H{"content": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
