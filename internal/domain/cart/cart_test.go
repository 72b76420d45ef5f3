package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts persistence calls made by the aggregate
type recordingStore struct {
	loaded []Line
	saves  [][]Line
	clears int
}

func (s *recordingStore) LoadCart(context.Context) []Line {
	out := make([]Line, len(s.loaded))
	copy(out, s.loaded)
	return out
}

func (s *recordingStore) SaveCart(_ context.Context, items []Line) {
	snap := make([]Line, len(items))
	copy(snap, items)
	s.saves = append(s.saves, snap)
}

func (s *recordingStore) ClearCartStorage(context.Context) {
	s.clears++
}

type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func newTestCart(t *testing.T, loaded ...Line) (*Cart, *recordingStore, *tickingClock) {
	t.Helper()
	store := &recordingStore{loaded: loaded}
	clock := &tickingClock{now: testNow}
	return New(context.Background(), store, clock.Now), store, clock
}

func TestNew_LoadsWithoutSaving(t *testing.T) {
	existing := Line{ProductID: "p1", Quantity: 4, AddedAt: testNow}
	c, store, _ := newTestCart(t, existing)

	assert.Equal(t, []Line{existing}, c.Items())
	assert.Empty(t, store.saves)
	assert.Zero(t, store.clears)
}

func TestAddItem_SameProductIncrements(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	c.AddItem(ctx, "p1")
	c.AddItem(ctx, "p1")

	assert.Equal(t, []Line{{ProductID: "p1", Quantity: 2, AddedAt: testNow}}, c.Items())
	assert.Equal(t, 2, c.TotalQuantity())
	assert.Len(t, store.saves, 2)
}

func TestAddItem_KeepsFirstAddedAt(t *testing.T) {
	c, _, _ := newTestCart(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c.AddItem(ctx, "p1")
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, testNow, items[0].AddedAt)
}

func TestAddItem_MixedProducts(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	c.AddItem(ctx, "A")
	c.AddItem(ctx, "A")
	c.AddItem(ctx, "B")

	want := []Line{
		{ProductID: "A", Quantity: 2, AddedAt: testNow},
		{ProductID: "B", Quantity: 1, AddedAt: testNow.Add(time.Second)},
	}
	if diff := cmp.Diff(want, c.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, c.TotalQuantity())
	assert.Equal(t, want, store.saves[len(store.saves)-1])
}

func TestUpdateQuantity(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	c.AddItem(ctx, "p1")
	c.UpdateQuantity(ctx, "p1", 7)
	assert.Equal(t, 7, c.Items()[0].Quantity)

	c.UpdateQuantity(ctx, "p1", 0)
	assert.Equal(t, 0, c.Items()[0].Quantity)

	c.UpdateQuantity(ctx, "p1", -3)
	assert.Equal(t, -3, c.Items()[0].Quantity)
	assert.Equal(t, -3, c.TotalQuantity())

	assert.Len(t, store.saves, 4)
	assert.Equal(t, testNow, c.Items()[0].AddedAt)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	assert.NotPanics(t, func() { c.UpdateQuantity(ctx, "nonexistent", 5) })
	assert.Empty(t, c.Items())
	assert.Empty(t, store.saves)

	c.AddItem(ctx, "p1")
	c.UpdateQuantity(ctx, "nonexistent", 5)
	assert.Equal(t, []Line{{ProductID: "p1", Quantity: 1, AddedAt: testNow}}, c.Items())
	assert.Len(t, store.saves, 1)
}

func TestRemoveItem(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	c.AddItem(ctx, "p1")
	c.AddItem(ctx, "p2")
	c.RemoveItem(ctx, "p1")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Len(t, store.saves, 3)

	c.RemoveItem(ctx, "missing")
	assert.Len(t, store.saves, 3)
}

func TestRemoveItem_LastLineSavesEmptyCart(t *testing.T) {
	c, store, _ := newTestCart(t)
	ctx := context.Background()

	c.AddItem(ctx, "p1")
	c.RemoveItem(ctx, "p1")

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalQuantity())
	assert.Empty(t, store.saves[len(store.saves)-1])
}

func TestClearCart_DeletesInsteadOfSaving(t *testing.T) {
	c, store, _ := newTestCart(t, Line{ProductID: "p1", Quantity: 2, AddedAt: testNow})

	c.ClearCart(context.Background())

	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalQuantity())
	assert.Equal(t, 1, store.clears)
	assert.Empty(t, store.saves)
}

func TestItems_ReturnsCopy(t *testing.T) {
	c, _, _ := newTestCart(t)
	c.AddItem(context.Background(), "p1")

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestNilCart_Panics(t *testing.T) {
	var c *Cart

	assert.PanicsWithValue(t, ErrNoProvider, func() { c.Items() })
	assert.PanicsWithValue(t, ErrNoProvider, func() { c.TotalQuantity() })
	assert.PanicsWithValue(t, ErrNoProvider, func() { c.AddItem(context.Background(), "p1") })
}

func TestFromContext(t *testing.T) {
	assert.PanicsWithValue(t, ErrNoProvider, func() { FromContext(context.Background()) })

	c, _, _ := newTestCart(t)
	ctx := WithCart(context.Background(), c)
	assert.Same(t, c, FromContext(ctx))
}

// Aggregate and snapshot store together over Redis, across two "requests"
func TestCart_PersistsAcrossRequests(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	clock := func() time.Time { return testNow }
	newStore := func() *SnapshotStore {
		return NewSnapshotStore(NewRedisSlot(client, testKey, 48*time.Hour), clock, logrus.New())
	}
	ctx := context.Background()

	first := New(ctx, newStore(), clock)
	assert.False(t, mr.Exists(testKey), "loading an empty cart must not write")
	first.AddItem(ctx, "p1")
	first.AddItem(ctx, "p1")
	first.AddItem(ctx, "p2")

	second := New(ctx, newStore(), clock)
	assert.Equal(t, 3, second.TotalQuantity())
	second.RemoveItem(ctx, "p1")

	third := New(ctx, newStore(), clock)
	assert.Equal(t, []Line{{ProductID: "p2", Quantity: 1, AddedAt: testNow}}, third.Items())

	third.ClearCart(ctx)
	assert.False(t, mr.Exists(testKey))
	assert.Empty(t, New(ctx, newStore(), clock).Items())
}
