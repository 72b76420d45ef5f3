package cart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weirdbites/storefront/internal/domain/product"
)

func TestBuildView(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Quantity: 2, AddedAt: testNow},
		{ProductID: "gone", Quantity: 1, AddedAt: testNow},
		{ProductID: "p2", Quantity: 1, AddedAt: testNow},
	}
	products := []product.BulkProduct{
		{ID: "p2", Name: "Wasabi Peas", Price: decimal.RequireFromString("6.50"), Stock: 75},
		{ID: "p1", Name: "Durian Chips", Price: decimal.RequireFromString("12.99"), Stock: 50},
	}

	view := BuildView(lines, products)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Durian Chips", view.Lines[0].Name)
	assert.Equal(t, "Wasabi Peas", view.Lines[1].Name)
	assert.Equal(t, "25.98", view.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "32.48", view.Subtotal.StringFixed(2))
	assert.True(t, view.Total.Equal(view.Subtotal))
	assert.Equal(t, 3, view.TotalQuantity)
	assert.True(t, view.CanCheckout)
}

func TestBuildView_EmptyCart(t *testing.T) {
	view := BuildView(nil, nil)

	assert.NotNil(t, view.Lines)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())
	assert.False(t, view.CanCheckout)
}

func TestBuildView_ZeroQuantityCannotCheckout(t *testing.T) {
	view := BuildView(
		[]Line{{ProductID: "p1", Quantity: 0, AddedAt: testNow}},
		[]product.BulkProduct{{ID: "p1", Price: decimal.RequireFromString("4.50")}},
	)

	require.Len(t, view.Lines, 1)
	assert.False(t, view.CanCheckout)
}

func TestBuildView_JSON(t *testing.T) {
	prev := decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = prev })

	view := BuildView(
		[]Line{{ProductID: "p1", Quantity: 1, AddedAt: testNow}},
		[]product.BulkProduct{{ID: "p1", Name: "Lychee Jelly", Price: decimal.RequireFromString("8.50"), ImageURL: "/images/products/lychee-jelly.jpg", Stock: 55}},
	)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	lines := decoded["lines"].([]any)
	line := lines[0].(map[string]any)
	assert.Equal(t, "p1", line["id"])
	assert.Equal(t, "Lychee Jelly", line["name"])
	assert.Equal(t, float64(1), line["quantity"])
	assert.Equal(t, 8.5, line["price"])
	assert.Equal(t, 8.5, decoded["subtotal"])
	assert.Equal(t, true, decoded["canCheckout"])
}

func TestProductIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ProductIDs([]Line{{ProductID: "a"}, {ProductID: "b"}}))
	assert.Empty(t, ProductIDs(nil))
}
