package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nexusgo/foodtracker/backend/internal/api"
	"github.com/nexusgo/foodtracker/backend/internal/middleware"
	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/security"
	"github.com/nexusgo/foodtracker/backend/internal/service"
	"github.com/nexusgo/foodtracker/backend/internal/testhelpers"
)

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func asAccount(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AccountIDKey, id)
		c.Next()
	}
}

func TestStoreFailureIsInternalError(t *testing.T) {
	items := new(testhelpers.MockFoodItemService)
	items.On("ListFoodItems", mock.Anything, uint(5)).Return(nil, errors.New("disk I/O error"))

	r := gin.New()
	r.GET("/food-items", asAccount(5), api.NewFoodItemHandler(items).ListFoodItems)

	w := serve(r, http.MethodGet, "/food-items", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	items.AssertExpectations(t)
}

func TestInvalidBodyNeverReachesStore(t *testing.T) {
	items := new(testhelpers.MockFoodItemService)

	r := gin.New()
	r.POST("/food-items", asAccount(5), api.NewFoodItemHandler(items).CreateFoodItem)

	w := serve(r, http.MethodPost, "/food-items", `{"name":"Milk"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	items.AssertNotCalled(t, "AddFoodItem", mock.Anything, mock.Anything)
}

func TestUpdateMissingItemIsNotFound(t *testing.T) {
	items := new(testhelpers.MockFoodItemService)
	items.On("GetFoodItem", mock.Anything, uint(8)).Return(nil, nil)

	r := gin.New()
	r.PUT("/food-items/:id", asAccount(5), api.NewFoodItemHandler(items).UpdateFoodItem)

	w := serve(r, http.MethodPut, "/food-items/8", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	items.AssertNotCalled(t, "UpdateFoodItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostStoresSanitizedContent(t *testing.T) {
	posts := new(testhelpers.MockPostService)
	posts.On("AddPost", mock.Anything, uint(5), "hello world").
		Return(&models.CommunityPost{ID: 1, AccountID: 5, Content: "hello world"}, nil)

	r := gin.New()
	r.POST("/posts", asAccount(5), api.NewPostHandler(posts, security.NewContentSanitizer()).CreatePost)

	w := serve(r, http.MethodPost, "/posts", `{"content":"<i>hello</i> world"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	posts.AssertExpectations(t)
}

func TestLoginMapsInvalidCredentials(t *testing.T) {
	accounts := new(testhelpers.MockAccountService)
	auth := new(testhelpers.MockAuthService)
	accounts.On("Authenticate", mock.Anything, "alice", "nope").Return(nil, service.ErrInvalidCredentials)

	r := gin.New()
	r.POST("/login", api.NewAuthHandler(accounts, auth, zerolog.Nop()).Login)

	w := serve(r, http.MethodPost, "/login", `{"login":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	auth.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestDeleteAccountWithDependentsIsConflict(t *testing.T) {
	accounts := new(testhelpers.MockAccountService)
	accounts.On("DeleteAccount", mock.Anything, uint(5)).Return(service.ErrAccountHasDependents)

	r := gin.New()
	r.DELETE("/account", asAccount(5), api.NewAccountHandler(accounts).DeleteAccount)

	w := serve(r, http.MethodDelete, "/account", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "still owns")
}
