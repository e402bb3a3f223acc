package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/api"
	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/metrics"
	"github.com/nexusgo/foodtracker/backend/internal/middleware"
	"github.com/nexusgo/foodtracker/backend/internal/router"
	"github.com/nexusgo/foodtracker/backend/internal/security"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/testhelpers"
	"github.com/nexusgo/foodtracker/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newTestAPI(t *testing.T, policy service.DeletePolicy, postsPerHour int) *testAPI {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	log := zerolog.Nop()

	accounts := service.NewAccountService(db, policy, log)
	auth := service.NewAuthService("test-secret", time.Hour)
	reg := prometheus.NewRegistry()

	engine := router.SetupRouter(router.Handlers{
		Auth:      api.NewAuthHandler(accounts, auth, log),
		Accounts:  api.NewAccountHandler(accounts),
		FoodItems: api.NewFoodItemHandler(service.NewFoodItemService(db)),
		Recipes:   api.NewRecipeHandler(service.NewRecipeService(db)),
		Posts:     api.NewPostHandler(service.NewPostService(db), security.NewContentSanitizer()),
	}, auth, accounts, router.Options{
		Log:            log,
		Metrics:        metrics.NewCollector(reg),
		Gatherer:       reg,
		AllowedOrigins: []string{"*"},
		Ping:           func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
		PostLimiter:    middleware.NewLocalLimiter(middleware.PostCreationLimit(postsPerHour)),
	})

	return &testAPI{t: t, db: db, engine: engine}
}

func (a *testAPI) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its token and id.
func (a *testAPI) register(username string) (string, uint) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@x.com",
		"password": "pw12345",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.AuthResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	return resp.Token, resp.Account.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
