package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/folium-app/folium/pkg/internal/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *App {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	require.NoError(t, err)

	return NewServer(cache.NewPageCache(client, time.Second))
}

func TestAnonymousGate(t *testing.T) {
	srv := testServer(t)

	post := func(target string) *stdhttp.Request {
		req := httptest.NewRequest(stdhttp.MethodPost, target, strings.NewReader(`{"text":"hello"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	t.Run("CreatePostRedirectsToLogin", func(t *testing.T) {
		resp, err := srv.App.Test(post("/api/posts"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("CreateCommentRedirectsToLogin", func(t *testing.T) {
		resp, err := srv.App.Test(post("/api/posts/1/comments"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("FollowRedirectsToLogin", func(t *testing.T) {
		resp, err := srv.App.Test(post("/api/accounts/somebody/follow"))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("FeedRedirectsToLogin", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/api/feed", nil)
		resp, err := srv.App.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))
	})
}

func TestErrorPages(t *testing.T) {
	srv := testServer(t)

	t.Run("UnknownPathGetsNotFoundPage", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodGet, "/definitely/not/here", nil)
		resp, err := srv.App.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "not found", body["error"])
		assert.Equal(t, "/definitely/not/here", body["path"])
	})

	t.Run("CookieSessionWithoutTokenIsForbidden", func(t *testing.T) {
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/posts", strings.NewReader(`{"text":"hello"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.AddCookie(&stdhttp.Cookie{Name: "folium_login", Value: "some-session"})

		resp, err := srv.App.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "forbidden", body["error"])
	})
}
