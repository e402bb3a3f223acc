package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/models"
	"github.com/nexusgo/foodtracker/backend/internal/service"
)

func TestPostEndpoints(t *testing.T) {
	a := newTestAPI(t, service.DeleteRestrict, 10)
	alice, _ := a.register("alice")
	bob, _ := a.register("bob")

	w := a.do(http.MethodPost, "/api/v1/posts", alice, map[string]string{"content": "first"})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[models.CommunityPost](t, w)

	w = a.do(http.MethodPost, "/api/v1/posts", alice, map[string]string{"content": `<b>second</b><script>alert(1)</script>`})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "second", decode[models.CommunityPost](t, w).Content)

	w = a.do(http.MethodGet, "/api/v1/posts", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decode[[]models.PostView](t, w)
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Content)
	assert.Equal(t, "alice", feed[0].AuthorUsername)

	path := fmt.Sprintf("/api/v1/posts/%d", first.ID)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodDelete, path, bob, nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, path, alice, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, path, alice, nil).Code)
}

func TestPostRejectsMarkupOnly(t *testing.T) {
	a := newTestAPI(t, service.DeleteRestrict, 10)
	token, _ := a.register("alice")

	w := a.do(http.MethodPost, "/api/v1/posts", token, map[string]string{"content": "<script>x</script>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostCreationIsRateLimited(t *testing.T) {
	a := newTestAPI(t, service.DeleteRestrict, 2)
	token, _ := a.register("alice")

	for i := 0; i < 2; i++ {
		w := a.do(http.MethodPost, "/api/v1/posts", token, map[string]string{"content": "hi"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := a.do(http.MethodPost, "/api/v1/posts", token, map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	other, _ := a.register("bob")
	w = a.do(http.MethodPost, "/api/v1/posts", other, map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusCreated, w.Code)
}
