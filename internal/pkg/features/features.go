// internal/pkg/features/features.go
package features

import (
	"sort"

	"github.com/kelseyhightower/envconfig"
)

// Flag names a toggleable storefront feature
type Flag string

// Browse products
const (
	ProductListing    Flag = "productListing"
	ProductDetail     Flag = "productDetail"
	ProductFiltering  Flag = "productFiltering"
	ProductPagination Flag = "productPagination"
	ProductSearch     Flag = "productSearch"
)

// Shopping cart
const (
	ShoppingCart    Flag = "shoppingCart"
	CartPersistence Flag = "cartPersistence"
)

// Not built yet; kept so deployments can reference them safely
const (
	GuestCheckout       Flag = "guestCheckout"
	StripePayment       Flag = "stripePayment"
	UserRegistration    Flag = "userRegistration"
	UserLogin           Flag = "userLogin"
	OrderHistory        Flag = "orderHistory"
	SavedAddresses      Flag = "savedAddresses"
	ProductReviews      Flag = "productReviews"
	AdvancedSearch      Flag = "advancedSearch"
	AdminPanel          Flag = "adminPanel"
	ProductManagement   Flag = "productManagement"
	InventoryManagement Flag = "inventoryManagement"
	DarkMode            Flag = "darkMode"
	A11yEnhancements    Flag = "a11yEnhancements"
)

// Flags holds the on/off state of every feature.
// Each field can be overridden with FEATURE_<NAME>, e.g. FEATURE_SHOPPING_CART=false.
type Flags struct {
	ProductListing    bool `envconfig:"PRODUCT_LISTING" default:"true"`
	ProductDetail     bool `envconfig:"PRODUCT_DETAIL" default:"true"`
	ProductFiltering  bool `envconfig:"PRODUCT_FILTERING" default:"true"`
	ProductPagination bool `envconfig:"PRODUCT_PAGINATION" default:"true"`
	ProductSearch     bool `envconfig:"PRODUCT_SEARCH" default:"false"`

	ShoppingCart    bool `envconfig:"SHOPPING_CART" default:"true"`
	CartPersistence bool `envconfig:"CART_PERSISTENCE" default:"true"`

	GuestCheckout       bool `envconfig:"GUEST_CHECKOUT" default:"false"`
	StripePayment       bool `envconfig:"STRIPE_PAYMENT" default:"false"`
	UserRegistration    bool `envconfig:"USER_REGISTRATION" default:"false"`
	UserLogin           bool `envconfig:"USER_LOGIN" default:"false"`
	OrderHistory        bool `envconfig:"ORDER_HISTORY" default:"false"`
	SavedAddresses      bool `envconfig:"SAVED_ADDRESSES" default:"false"`
	ProductReviews      bool `envconfig:"PRODUCT_REVIEWS" default:"false"`
	AdvancedSearch      bool `envconfig:"ADVANCED_SEARCH" default:"false"`
	AdminPanel          bool `envconfig:"ADMIN_PANEL" default:"false"`
	ProductManagement   bool `envconfig:"PRODUCT_MANAGEMENT" default:"false"`
	InventoryManagement bool `envconfig:"INVENTORY_MANAGEMENT" default:"false"`
	DarkMode            bool `envconfig:"DARK_MODE" default:"false"`
	A11yEnhancements    bool `envconfig:"A11Y_ENHANCEMENTS" default:"false"`
}

// Load reads flag defaults and FEATURE_* overrides from the environment
func Load() (Flags, error) {
	var flags Flags
	if err := envconfig.Process("FEATURE", &flags); err != nil {
		return Flags{}, err
	}
	return flags, nil
}

func (f Flags) table() map[Flag]bool {
	return map[Flag]bool{
		ProductListing:      f.ProductListing,
		ProductDetail:       f.ProductDetail,
		ProductFiltering:    f.ProductFiltering,
		ProductPagination:   f.ProductPagination,
		ProductSearch:       f.ProductSearch,
		ShoppingCart:        f.ShoppingCart,
		CartPersistence:     f.CartPersistence,
		GuestCheckout:       f.GuestCheckout,
		StripePayment:       f.StripePayment,
		UserRegistration:    f.UserRegistration,
		UserLogin:           f.UserLogin,
		OrderHistory:        f.OrderHistory,
		SavedAddresses:      f.SavedAddresses,
		ProductReviews:      f.ProductReviews,
		AdvancedSearch:      f.AdvancedSearch,
		AdminPanel:          f.AdminPanel,
		ProductManagement:   f.ProductManagement,
		InventoryManagement: f.InventoryManagement,
		DarkMode:            f.DarkMode,
		A11yEnhancements:    f.A11yEnhancements,
	}
}

// IsEnabled reports whether flag is on. Unknown flags are off.
func (f Flags) IsEnabled(flag Flag) bool {
	return f.table()[flag]
}

// Enabled returns the names of all enabled flags, sorted
func (f Flags) Enabled() []Flag {
	return f.collect(true)
}

// Disabled returns the names of all disabled flags, sorted
func (f Flags) Disabled() []Flag {
	return f.collect(false)
}

func (f Flags) collect(state bool) []Flag {
	out := []Flag{}
	for flag, on := range f.table() {
		if on == state {
			out = append(out, flag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithFeature runs onEnabled when flag is on, otherwise onDisabled.
// A nil onDisabled yields the zero value of T.
func WithFeature[T any](f Flags, flag Flag, onEnabled func() T, onDisabled func() T) T {
	if f.IsEnabled(flag) {
		return onEnabled()
	}
	if onDisabled != nil {
		return onDisabled()
	}
	var zero T
	return zero
}

// Gated is implemented by items that may belong to a feature.
// An empty Flag means the item is always visible.
type Gated interface {
	Feature() Flag
}

// Filter keeps the items whose feature is enabled or that have none
func Filter[T Gated](f Flags, items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if flag := item.Feature(); flag != "" && !f.IsEnabled(flag) {
			continue
		}
		out = append(out, item)
	}
	return out
}
