package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
	"github.com/platewise/backend/internal/types"
)

// stubGenerator returns a canned completion or error without any network.
type stubGenerator struct {
	completion *service.Completion
	err        error
}

func (s *stubGenerator) GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string) (*service.Completion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func (s *stubGenerator) ModelName() string { return "stub-model" }

// healthProbe stands in for the database ping behind the health route.
type healthProbe struct{ err error }

func (p healthProbe) HealthCheck(ctx context.Context) error { return p.err }

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	userID uuid.UUID
	token  string
}

// setupTestEnv wires a full route tree over an in-memory database with a
// stubbed model and one authenticated user.
func setupTestEnv(t *testing.T, llm service.RecipeGenerator) *testEnv {
	return setupTestEnvWithImages(t, llm, nil)
}

// setupTestEnvWithImages additionally wires an S3-backed image service.
func setupTestEnvWithImages(t *testing.T, llm service.RecipeGenerator, images *service.ImageService) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	userID := testhelpers.CreateTestUser(t, db)
	testhelpers.CreateTestProfile(t, db, userID)

	auth := service.NewAuthService("test-secret")
	token, err := auth.GenerateToken(&types.TokenClaims{UserID: userID, Username: "tester"})
	require.NoError(t, err)

	prefs := service.NewPreferenceService(db)
	router := gin.New()
	RegisterRoutes(router, Deps{
		DB:          db,
		Auth:        auth,
		Generation:  service.NewGenerationService(db, prefs, llm),
		Recipes:     service.NewRecipeService(db),
		Preferences: prefs,
		Images:      images,
		Health:      healthProbe{},
	})

	return &testEnv{router: router, db: db, userID: userID, token: token}
}

// do performs an authenticated JSON request against the test router.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	var err error
	if body != "" {
		req, err = http.NewRequest(method, path, strings.NewReader(body))
	} else {
		req, err = http.NewRequest(method, path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+e.token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
