package api_test

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/internal/service"
)

func uploadRequest(t *testing.T, token string, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/account/profile-pic", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestProfilePicUploadAndDownload(t *testing.T) {
	a := newTestAPI(t, service.DeleteRestrict, 10)
	token, _ := a.register("alice")

	w := a.do(http.MethodGet, "/api/v1/account/profile-pic", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var pic bytes.Buffer
	require.NoError(t, png.Encode(&pic, image.NewGray(image.Rect(0, 0, 1, 1))))

	w = httptest.NewRecorder()
	a.engine.ServeHTTP(w, uploadRequest(t, token, "me.png", pic.Bytes()))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/account/profile-pic", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, pic.Bytes(), w.Body.Bytes())
}

func TestProfilePicRejectsNonImages(t *testing.T) {
	a := newTestAPI(t, service.DeleteRestrict, 10)
	token, _ := a.register("alice")

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, uploadRequest(t, token, "notes.txt", []byte("just some text")))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
