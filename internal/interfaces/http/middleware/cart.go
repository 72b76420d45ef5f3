// internal/interfaces/http/middleware/cart.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/weirdbites/storefront/internal/config"
	"github.com/weirdbites/storefront/internal/domain/cart"
)

const cartKey = "cart"

// CartStoreFactory builds the snapshot store for one session
type CartStoreFactory func(sessionID string) cart.Store

// RedisCartStores keeps each session's cart in its own Redis slot. With
// cart persistence switched off carts only live for a single request.
func RedisCartStores(cfg *config.Config, redisClient redis.Cmdable, log logrus.FieldLogger) CartStoreFactory {
	return func(sessionID string) cart.Store {
		var slot cart.Slot = cart.NopSlot{}
		if cfg.Features.CartPersistence {
			slot = cart.NewRedisSlot(redisClient, cart.SlotKey(cfg.Cart.KeyPrefix, sessionID), cfg.Cart.SlotTTL)
		}
		return cart.NewSnapshotStore(slot, cart.SystemClock, log.WithField("session_id", sessionID))
	}
}

// CartProvider loads the session's cart and attaches it to the request
func CartProvider(cfg *config.Config, stores CartStoreFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getOrCreateSessionID(c, cfg)

		ctx := c.Request.Context()
		current := cart.New(ctx, stores(sessionID), cart.SystemClock)

		c.Set(cartKey, current)
		c.Request = c.Request.WithContext(cart.WithCart(ctx, current))

		c.Next()
	}
}

// MustCart returns the cart attached by CartProvider and panics without one
func MustCart(c *gin.Context) *cart.Cart {
	value, ok := c.Get(cartKey)
	if !ok {
		panic(cart.ErrNoProvider)
	}
	current, ok := value.(*cart.Cart)
	if !ok || current == nil {
		panic(cart.ErrNoProvider)
	}
	return current
}

// getOrCreateSessionID returns the request's session and re-issues the cookie
// so its lifetime slides with activity, like the cart snapshot's expiry.
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	// Try to get session ID from cookie; anything that isn't one of ours is replaced
	sessionID, err := c.Cookie(cfg.Cart.SessionCookie)
	if err != nil {
		sessionID = uuid.NewString()
	} else if _, parseErr := uuid.Parse(sessionID); parseErr != nil {
		sessionID = uuid.NewString()
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Cart.SessionCookie, sessionID, int(cfg.Cart.SessionMaxAge.Seconds()), "/", "", cfg.IsProduction(), true)

	return sessionID
}
