package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusgo/foodtracker/backend/config"
)

func TestNewUsesConfiguredAddress(t *testing.T) {
	srv := New(config.ServerConfig{Host: "127.0.0.1", Port: "9999", ReadTimeout: 5}, http.NotFoundHandler(), zerolog.Nop())
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())
	assert.Equal(t, 5*time.Second, srv.http.ReadTimeout)
}

func TestServeAndStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	srv := New(config.ServerConfig{Host: "127.0.0.1", Port: "0"}, handler, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, srv.Serve(ln))

	resp, err := http.Get(fmt.Sprintf("http://%s/", ln.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	_, err = http.Get(fmt.Sprintf("http://%s/", ln.Addr()))
	assert.Error(t, err)
}
