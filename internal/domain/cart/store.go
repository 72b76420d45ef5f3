// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const (
	// FreshnessWindow is how long a saved cart stays loadable
	FreshnessWindow = 24 * time.Hour

	// millisecond ISO-8601, always in UTC
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var errInvalidSnapshot = errors.New("invalid cart snapshot")

// Store persists cart lines between requests
type Store interface {
	LoadCart(ctx context.Context) []Line
	SaveCart(ctx context.Context, items []Line)
	ClearCartStorage(ctx context.Context)
}

// SnapshotStore keeps one cart as an expiring JSON snapshot in a Slot
type SnapshotStore struct {
	slot   Slot
	clock  Clock
	logger logrus.FieldLogger
}

// NewSnapshotStore creates a store over slot
func NewSnapshotStore(slot Slot, clock Clock, logger logrus.FieldLogger) *SnapshotStore {
	if clock == nil {
		clock = SystemClock
	}
	return &SnapshotStore{
		slot:   slot,
		clock:  clock,
		logger: logger,
	}
}

// SaveCart writes items with a fresh expiry. Failures are logged, never returned.
func (s *SnapshotStore) SaveCart(ctx context.Context, items []Line) {
	snap := snapshot{
		Items:     make([]snapshotLine, 0, len(items)),
		ExpiresAt: formatTimestamp(s.clock().Add(FreshnessWindow)),
	}
	for _, item := range items {
		snap.Items = append(snap.Items, snapshotLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   formatTimestamp(item.AddedAt),
		})
	}

	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode cart snapshot")
		return
	}

	if err := s.slot.Set(ctx, string(data)); err != nil {
		s.logger.WithError(err).WithField("items", len(items)).Warn("Failed to save cart snapshot")
	}
}

// LoadCart returns the stored lines, or an empty slice when there is no
// usable snapshot. Invalid and expired snapshots are removed.
func (s *SnapshotStore) LoadCart(ctx context.Context) []Line {
	raw, err := s.slot.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			s.logger.WithError(err).Warn("Failed to read cart snapshot")
		}
		return []Line{}
	}

	items, expiresAt, err := decodeSnapshot(raw)
	if err != nil {
		s.logger.WithError(err).Warn("Discarding invalid cart snapshot")
		s.ClearCartStorage(ctx)
		return []Line{}
	}

	if s.IsCartExpired(expiresAt) {
		s.logger.WithField("expires_at", expiresAt).Debug("Discarding expired cart snapshot")
		s.ClearCartStorage(ctx)
		return []Line{}
	}

	return items
}

// IsCartExpired reports whether expiresAt is at or before now
func (s *SnapshotStore) IsCartExpired(expiresAt time.Time) bool {
	return !expiresAt.After(s.clock())
}

// ClearCartStorage deletes the snapshot. Failures are logged, never returned.
func (s *SnapshotStore) ClearCartStorage(ctx context.Context) {
	if err := s.slot.Delete(ctx); err != nil {
		s.logger.WithError(err).Warn("Failed to clear cart snapshot")
	}
}

func decodeSnapshot(raw string) ([]Line, time.Time, error) {
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, time.Time{}, errors.Wrap(errInvalidSnapshot, err.Error())
	}

	if snap.Items == nil {
		return nil, time.Time{}, errors.Wrap(errInvalidSnapshot, "missing items")
	}
	if snap.ExpiresAt == "" {
		return nil, time.Time{}, errors.Wrap(errInvalidSnapshot, "missing expiresAt")
	}

	expiresAt, err := time.Parse(time.RFC3339, snap.ExpiresAt)
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(errInvalidSnapshot, "expiresAt: %v", err)
	}

	items := make([]Line, 0, len(snap.Items))
	for _, item := range snap.Items {
		addedAt, err := time.Parse(time.RFC3339, item.AddedAt)
		if err != nil {
			return nil, time.Time{}, errors.Wrapf(errInvalidSnapshot, "addedAt for %q: %v", item.ProductID, err)
		}
		items = append(items, Line{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   addedAt,
		})
	}

	return items, expiresAt, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
