package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/domain/cart"
)

// cartRouter exposes add and count endpoints behind CartProvider
func cartRouter(cfg *config.Config, stores CartStoreFactory) *gin.Engine {
	r := gin.New()
	r.Use(CartProvider(cfg, stores))
	r.POST("/add/:id", func(c *gin.Context) {
		MustCart(c).AddItem(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	})
	r.GET("/count", func(c *gin.Context) {
		// Both accessors must see the same aggregate
		if MustCart(c) != cart.FromContext(c.Request.Context()) {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": MustCart(c).TotalQuantity()})
	})
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "session_id" {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestCartProvider_IssuesSessionCookie(t *testing.T) {
	_, client := newRedis(t)
	logger, _ := logtest.NewNullLogger()
	cfg := testConfig()
	r := cartRouter(cfg, RedisCartStores(cfg, client, logger))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/count", nil))
	require.Equal(t, http.StatusOK, w.Code)

	ck := sessionCookie(t, w)
	_, err := uuid.Parse(ck.Value)
	assert.NoError(t, err)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, 86400, ck.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, "/", ck.Path)
}

func TestCartProvider_PersistsAcrossRequests(t *testing.T) {
	mr, client := newRedis(t)
	logger, _ := logtest.NewNullLogger()
	cfg := testConfig()
	r := cartRouter(cfg, RedisCartStores(cfg, client, logger))

	w := serve(r, httptest.NewRequest(http.MethodPost, "/add/p1", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	ck := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodPost, "/add/p1", nil)
	req.AddCookie(ck)
	serve(r, req)

	req = httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(ck)
	w = serve(r, req)
	assert.JSONEq(t, `{"total":2}`, w.Body.String())
	// Same session comes back
	assert.Equal(t, ck.Value, sessionCookie(t, w).Value)

	assert.True(t, mr.Exists(cart.SlotKey("weirdbites_cart", ck.Value)))
}

func TestCartProvider_RefreshesCookieLifetime(t *testing.T) {
	_, client := newRedis(t)
	logger, _ := logtest.NewNullLogger()
	cfg := testConfig()
	r := cartRouter(cfg, RedisCartStores(cfg, client, logger))

	w := serve(r, httptest.NewRequest(http.MethodPost, "/add/p1", nil))
	first := sessionCookie(t, w)

	// A returning visitor gets the full max-age again on every request
	for _, path := range []string{"/count", "/add/p2"} {
		method := http.MethodGet
		if path != "/count" {
			method = http.MethodPost
		}
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(first)
		w = serve(r, req)

		again := sessionCookie(t, w)
		assert.Equal(t, first.Value, again.Value, path)
		assert.Equal(t, 86400, again.MaxAge, path)
		assert.True(t, again.HttpOnly, path)
	}
}

func TestCartProvider_ReplacesForeignSessionID(t *testing.T) {
	mr, client := newRedis(t)
	logger, _ := logtest.NewNullLogger()
	cfg := testConfig()
	r := cartRouter(cfg, RedisCartStores(cfg, client, logger))

	req := httptest.NewRequest(http.MethodPost, "/add/p1", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "../../etc"})
	w := serve(r, req)

	ck := sessionCookie(t, w)
	assert.NotEqual(t, "../../etc", ck.Value)
	assert.False(t, mr.Exists(cart.SlotKey("weirdbites_cart", "../../etc")))
}

func TestCartProvider_WithoutPersistence(t *testing.T) {
	mr, client := newRedis(t)
	logger, _ := logtest.NewNullLogger()
	cfg := testConfig()
	cfg.Features.CartPersistence = false
	r := cartRouter(cfg, RedisCartStores(cfg, client, logger))

	w := serve(r, httptest.NewRequest(http.MethodPost, "/add/p1", nil))
	ck := sessionCookie(t, w)

	req := httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(ck)
	w = serve(r, req)
	assert.JSONEq(t, `{"total":0}`, w.Body.String())
	assert.Empty(t, mr.Keys())
}

func TestMustCart_PanicsWithoutProvider(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.PanicsWithValue(t, cart.ErrNoProvider, func() {
		MustCart(c)
	})
}
